// Package query is the shared filter/sort/paginate pipeline over customer
// records. It is pure: both the API handlers and the CSV exporter call into
// it rather than carrying their own copy of the logic.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/crmforge-dev/crmforge/pkg/schema"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	OrderAsc  = "asc"
	OrderDesc = "desc"

	// StatusAll is the sentinel that disables the status filter.
	StatusAll = "all"
)

// Spec is the full set of parameters controlling one read over the record
// set. Every field is optional; the zero value matches everything and
// returns the first page of ten.
type Spec struct {
	// Search matches case-insensitively against firstName, lastName or email.
	Search string
	// Status matches exactly; empty or "all" disables the filter.
	Status string
	// Company matches case-insensitively as a substring.
	Company string
	// DateStart/DateEnd bound dateCreated inclusively. The filter only
	// applies when both are set.
	DateStart *time.Time
	DateEnd   *time.Time
	// RevenueMin/RevenueMax bound revenue inclusively. The filter applies
	// when at least one is set; a missing min is 0, a missing max unbounded.
	RevenueMin *float64
	RevenueMax *float64
	// Tags selects records whose tag set intersects it (any-of).
	Tags []string
	// SortField orders the result when it names a known field; anything
	// else leaves the filtered order untouched.
	SortField string
	// SortOrder is "asc" (default) or "desc".
	SortOrder string
	// Page is 1-based; Limit is the page size.
	Page  int
	Limit int
}

// Result is one page of records plus the match count before pagination.
type Result struct {
	Customers []schema.Customer
	Total     int
}

// Apply runs the pipeline: filters in a fixed order, then sort, then count,
// then slice. len(Customers) <= Limit and Total >= len(Customers) always
// hold; an out-of-range page yields an empty slice, never an error.
func Apply(records []schema.Customer, spec Spec) Result {
	filtered := filter(records, spec)
	sortRecords(filtered, spec)

	total := len(filtered)

	page := spec.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := spec.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	start := (page - 1) * limit
	if start >= total {
		return Result{Customers: []schema.Customer{}, Total: total}
	}
	end := start + limit
	if end > total {
		end = total
	}
	return Result{Customers: filtered[start:end], Total: total}
}

func filter(records []schema.Customer, spec Spec) []schema.Customer {
	out := make([]schema.Customer, 0, len(records))
	for _, c := range records {
		if matches(c, spec) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c schema.Customer, spec Spec) bool {
	if spec.Search != "" {
		term := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(c.FirstName), term) &&
			!strings.Contains(strings.ToLower(c.LastName), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) {
			return false
		}
	}

	if spec.Status != "" && spec.Status != StatusAll {
		if string(c.Status) != spec.Status {
			return false
		}
	}

	if spec.Company != "" {
		if !strings.Contains(strings.ToLower(c.Company), strings.ToLower(spec.Company)) {
			return false
		}
	}

	// Date range only kicks in when both bounds are present.
	if spec.DateStart != nil && spec.DateEnd != nil {
		if c.DateCreated.Before(*spec.DateStart) || c.DateCreated.After(*spec.DateEnd) {
			return false
		}
	}

	if spec.RevenueMin != nil || spec.RevenueMax != nil {
		min := 0.0
		if spec.RevenueMin != nil {
			min = *spec.RevenueMin
		}
		if c.Revenue < min {
			return false
		}
		if spec.RevenueMax != nil && c.Revenue > *spec.RevenueMax {
			return false
		}
	}

	if len(spec.Tags) > 0 {
		if !intersects(c.Tags, spec.Tags) {
			return false
		}
	}

	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortRecords orders in place by the named field. The comparator is a simple
// two-way branch, so the sort is not stable: equal keys land in unspecified
// order. Text fields compare case-sensitively even though filtering is
// case-insensitive; sorting on an unknown field is a no-op.
func sortRecords(records []schema.Customer, spec Spec) {
	less := lessFunc(spec.SortField)
	if less == nil {
		return
	}
	desc := spec.SortOrder == OrderDesc
	sort.Slice(records, func(i, j int) bool {
		if desc {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}

func lessFunc(field string) func(a, b schema.Customer) bool {
	switch field {
	case "id":
		return func(a, b schema.Customer) bool { return a.ID < b.ID }
	case "firstName":
		return func(a, b schema.Customer) bool { return a.FirstName < b.FirstName }
	case "lastName":
		return func(a, b schema.Customer) bool { return a.LastName < b.LastName }
	case "email":
		return func(a, b schema.Customer) bool { return a.Email < b.Email }
	case "phone":
		return func(a, b schema.Customer) bool { return a.Phone < b.Phone }
	case "company":
		return func(a, b schema.Customer) bool { return a.Company < b.Company }
	case "position":
		return func(a, b schema.Customer) bool { return a.Position < b.Position }
	case "status":
		return func(a, b schema.Customer) bool { return a.Status < b.Status }
	case "revenue":
		return func(a, b schema.Customer) bool { return a.Revenue < b.Revenue }
	case "dateCreated":
		return func(a, b schema.Customer) bool { return a.DateCreated.Before(b.DateCreated) }
	case "lastUpdated":
		return func(a, b schema.Customer) bool { return a.LastUpdated.Before(b.LastUpdated) }
	default:
		return nil
	}
}

// DistinctTags returns the sorted set of tag labels present across records.
func DistinctTags(records []schema.Customer) []string {
	seen := make(map[string]bool)
	for _, c := range records {
		for _, t := range c.Tags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
