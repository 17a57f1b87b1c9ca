package sdk_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crmforge-dev/crmforge/internal/engine"
	"github.com/crmforge-dev/crmforge/internal/server"
	"github.com/crmforge-dev/crmforge/pkg/schema"
	"github.com/crmforge-dev/crmforge/pkg/sdk"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testServer(t *testing.T) *sdk.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := engine.NewMemStore(engine.SeedCustomers())
	srv := httptest.NewServer(server.New(store, zap.NewNop().Sugar()))
	t.Cleanup(srv.Close)
	return sdk.New(srv.URL)
}

func validInput() schema.CustomerInput {
	return schema.CustomerInput{
		FirstName: "Priya",
		LastName:  "Raman",
		Email:     "priya@acme.dev",
		Phone:     "555-0300",
		Company:   "Acme Dev",
		Position:  "Founder",
		Status:    schema.StatusActive,
		Address:   schema.Address{Street: "5 Founders Rd", City: "Portland", State: "OR", ZipCode: "97201"},
		Tags:      []string{"startup", "priority"},
		Revenue:   64000,
	}
}

func TestClient_List(t *testing.T) {
	client := testServer(t)

	customers, total, err := client.List(sdk.ListQuery{Status: "active", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, customers, 5)
	assert.Equal(t, 10, total)
	for _, c := range customers {
		assert.Equal(t, schema.StatusActive, c.Status)
	}
}

func TestClient_ListFilters(t *testing.T) {
	client := testServer(t)

	customers, total, err := client.List(sdk.ListQuery{
		RevenueMin: "100000",
		RevenueMax: "200000",
		SortField:  "revenue",
		SortOrder:  "desc",
		Limit:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.NotEmpty(t, customers)
	assert.Equal(t, 6, customers[0].ID, "highest in-range revenue first")
}

func TestClient_CRUD(t *testing.T) {
	client := testServer(t)

	created, err := client.Create(validInput())
	require.NoError(t, err)
	assert.Equal(t, 16, created.ID)
	assert.False(t, created.DateCreated.IsZero())

	got, err := client.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	in := validInput()
	in.Position = "CEO"
	updated, err := client.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "CEO", updated.Position)
	assert.True(t, updated.DateCreated.Equal(created.DateCreated))

	require.NoError(t, client.Delete(created.ID))

	_, err = client.Get(created.ID)
	assert.ErrorIs(t, err, sdk.ErrNotFound)
}

func TestClient_ErrorMapping(t *testing.T) {
	client := testServer(t)

	_, err := client.Get(999)
	assert.ErrorIs(t, err, sdk.ErrNotFound)

	err = client.Delete(999)
	assert.ErrorIs(t, err, sdk.ErrNotFound)

	bad := validInput()
	bad.Email = "no-at-sign"
	_, err = client.Create(bad)
	assert.ErrorIs(t, err, sdk.ErrBadRequest)
	assert.False(t, errors.Is(err, sdk.ErrNotFound))
}

func TestClient_ExportCSV(t *testing.T) {
	client := testServer(t)

	csv, err := client.ExportCSV(sdk.ListQuery{Status: "pending"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	// Header plus the 2 pending seed records.
	assert.Len(t, lines, 3)
}

func TestClient_TagsAndPing(t *testing.T) {
	client := testServer(t)

	tags, err := client.Tags()
	require.NoError(t, err)
	assert.Contains(t, tags, "enterprise")

	assert.NoError(t, client.Ping())
}
