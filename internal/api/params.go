package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/crmforge-dev/crmforge/internal/query"
	"github.com/gin-gonic/gin"
)

// parseSpec maps the request query string onto a query.Spec. Filter params
// that fail to parse are treated as absent rather than rejected; the record
// id in the path is the only place where malformed input is a 400.
func parseSpec(c *gin.Context) query.Spec {
	spec := query.Spec{
		Search:    c.Query("q"),
		Status:    c.Query("status"),
		Company:   c.Query("company"),
		SortField: c.Query("_sort"),
		SortOrder: c.DefaultQuery("_order", query.OrderAsc),
		Page:      intOrDefault(c.Query("_page"), query.DefaultPage),
		Limit:     intOrDefault(c.Query("_limit"), query.DefaultLimit),
	}

	if t, ok := parseDate(c.Query("date_start")); ok {
		spec.DateStart = &t
	}
	if t, ok := parseDate(c.Query("date_end")); ok {
		spec.DateEnd = &t
	}

	if v, err := strconv.ParseFloat(c.Query("revenue_min"), 64); err == nil {
		spec.RevenueMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("revenue_max"), 64); err == nil {
		spec.RevenueMax = &v
	}

	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				spec.Tags = append(spec.Tags, t)
			}
		}
	}

	return spec
}

func intOrDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// parseDate accepts RFC3339 or a bare calendar date, the two formats the
// date-range pickers send.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
