package query

import (
	"testing"
	"time"

	"github.com/crmforge-dev/crmforge/internal/engine"
	"github.com/crmforge-dev/crmforge/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []schema.Customer {
	return engine.SeedCustomers()
}

func ids(customers []schema.Customer) []int {
	out := make([]int, len(customers))
	for i, c := range customers {
		out[i] = c.ID
	}
	return out
}

func fptr(v float64) *float64 { return &v }

func tptr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestApply_EmptySet(t *testing.T) {
	res := Apply(nil, Spec{Search: "anything", Page: 3, Limit: 50})
	assert.Empty(t, res.Customers)
	assert.Equal(t, 0, res.Total)
}

func TestApply_NoFiltersDefaults(t *testing.T) {
	res := Apply(seed(), Spec{})
	assert.Len(t, res.Customers, DefaultLimit)
	assert.Equal(t, 15, res.Total)
}

func TestApply_SearchSarah(t *testing.T) {
	res := Apply(seed(), Spec{Search: "sarah"})
	require.Len(t, res.Customers, 1)
	assert.Equal(t, 2, res.Customers[0].ID)
	assert.Equal(t, "Sarah", res.Customers[0].FirstName)
	assert.Equal(t, 1, res.Total)
}

func TestApply_SearchMatchesAnyOfThreeFields(t *testing.T) {
	// "innovate" appears only in Sarah Johnson's email.
	res := Apply(seed(), Spec{Search: "INNOVATE"})
	require.Len(t, res.Customers, 1)
	assert.Equal(t, 2, res.Customers[0].ID)

	// "wil" hits lastName Williams and Wilson.
	res = Apply(seed(), Spec{Search: "wil"})
	assert.ElementsMatch(t, []int{3, 10}, ids(res.Customers))
}

func TestApply_StatusFilter(t *testing.T) {
	res := Apply(seed(), Spec{Status: "active", Limit: 5, Page: 1})
	require.Len(t, res.Customers, 5)
	for _, c := range res.Customers {
		assert.Equal(t, schema.StatusActive, c.Status)
	}
	// The seed carries exactly 10 active records.
	assert.Equal(t, 10, res.Total)
}

func TestApply_StatusSentinelAll(t *testing.T) {
	res := Apply(seed(), Spec{Status: StatusAll, Limit: 100})
	assert.Equal(t, 15, res.Total)
}

func TestApply_CompanyFilterCaseInsensitive(t *testing.T) {
	res := Apply(seed(), Spec{Company: "TECH", Limit: 100})
	assert.ElementsMatch(t, []int{1, 6, 8}, ids(res.Customers))
}

func TestApply_RevenueRange(t *testing.T) {
	res := Apply(seed(), Spec{RevenueMin: fptr(100000), RevenueMax: fptr(200000), Limit: 100})
	assert.ElementsMatch(t, []int{1, 6, 9, 10, 13}, ids(res.Customers))
	assert.NotContains(t, ids(res.Customers), 3, "id 3 (revenue 250000) is above range")

	// Bounds are inclusive.
	res = Apply(seed(), Spec{RevenueMin: fptr(250000), Limit: 100})
	assert.Equal(t, []int{3}, ids(res.Customers))

	// Min alone; max alone defaults the other side.
	res = Apply(seed(), Spec{RevenueMax: fptr(55000), Limit: 100})
	assert.Equal(t, []int{8}, ids(res.Customers))
}

func TestApply_DateRangeRequiresBothBounds(t *testing.T) {
	// Only a start date: filter must not apply.
	res := Apply(seed(), Spec{DateStart: tptr("2024-01-01"), Limit: 100})
	assert.Equal(t, 15, res.Total)

	res = Apply(seed(), Spec{DateStart: tptr("2024-01-01"), DateEnd: tptr("2024-03-31"), Limit: 100})
	assert.ElementsMatch(t, []int{1, 2, 4, 6, 9, 12}, ids(res.Customers))
}

func TestApply_TagsAnyOf(t *testing.T) {
	res := Apply(seed(), Spec{Tags: []string{"enterprise"}, Limit: 100})
	assert.ElementsMatch(t, []int{1, 3, 6}, ids(res.Customers))

	// Any-of, not all-of.
	res = Apply(seed(), Spec{Tags: []string{"enterprise", "startup"}, Limit: 100})
	assert.ElementsMatch(t, []int{1, 2, 3, 6}, ids(res.Customers))
}

func TestApply_SortRevenue(t *testing.T) {
	res := Apply(seed(), Spec{SortField: "revenue", Limit: 100})
	require.Len(t, res.Customers, 15)
	assert.Equal(t, 8, res.Customers[0].ID, "lowest revenue first")
	assert.Equal(t, 3, res.Customers[14].ID, "highest revenue last")
	for i := 1; i < len(res.Customers); i++ {
		assert.LessOrEqual(t, res.Customers[i-1].Revenue, res.Customers[i].Revenue)
	}

	res = Apply(seed(), Spec{SortField: "revenue", SortOrder: OrderDesc, Limit: 100})
	assert.Equal(t, 3, res.Customers[0].ID)
}

func TestApply_SortTextCaseSensitive(t *testing.T) {
	records := []schema.Customer{
		{ID: 1, Company: "apple"},
		{ID: 2, Company: "Zebra"},
	}
	// Byte order puts uppercase before lowercase; no case folding for sort.
	res := Apply(records, Spec{SortField: "company"})
	assert.Equal(t, []int{2, 1}, ids(res.Customers))
}

func TestApply_UnknownSortFieldIsNoOp(t *testing.T) {
	res := Apply(seed(), Spec{SortField: "nonsense", Limit: 100})
	assert.Equal(t, ids(seed()), ids(res.Customers))
}

func TestApply_Pagination(t *testing.T) {
	res := Apply(seed(), Spec{SortField: "id", Page: 2, Limit: 6})
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, ids(res.Customers))
	assert.Equal(t, 15, res.Total)

	// Last partial page.
	res = Apply(seed(), Spec{SortField: "id", Page: 3, Limit: 6})
	assert.Equal(t, []int{13, 14, 15}, ids(res.Customers))

	// Out-of-range page: empty slice, total intact, no error.
	res = Apply(seed(), Spec{Page: 99, Limit: 6})
	assert.Empty(t, res.Customers)
	assert.Equal(t, 15, res.Total)
}

func TestApply_Invariants(t *testing.T) {
	specs := []Spec{
		{},
		{Search: "a"},
		{Status: "active", Limit: 3},
		{RevenueMin: fptr(90000), SortField: "revenue", SortOrder: OrderDesc, Limit: 2, Page: 2},
		{Tags: []string{"technology"}, Limit: 1},
	}
	for _, spec := range specs {
		res := Apply(seed(), spec)
		limit := spec.Limit
		if limit < 1 {
			limit = DefaultLimit
		}
		assert.LessOrEqual(t, len(res.Customers), limit)
		assert.GreaterOrEqual(t, res.Total, len(res.Customers))
	}
}

func TestApply_Idempotent(t *testing.T) {
	spec := Spec{Search: "o", Status: "active", SortField: "lastName", Limit: 4, Page: 1}
	first := Apply(seed(), spec)
	second := Apply(seed(), spec)
	assert.Equal(t, first, second)
}

func TestApply_FiltersCombineWithAND(t *testing.T) {
	// active AND company contains "tech" AND revenue >= 100000 -> 1, 6.
	res := Apply(seed(), Spec{Status: "active", Company: "tech", RevenueMin: fptr(100000), Limit: 100})
	assert.ElementsMatch(t, []int{1, 6}, ids(res.Customers))
}

func TestDistinctTags(t *testing.T) {
	tags := DistinctTags([]schema.Customer{
		{Tags: []string{"b", "a"}},
		{Tags: []string{"a", "c"}},
		{Tags: nil},
	})
	assert.Equal(t, []string{"a", "b", "c"}, tags)
}
