package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refill-system/pkg/types"
)

func testListParams() ListParams {
	return ListParams{
		Table:   "invoices i",
		Columns: []string{"i.id", "i.invoice_number", "c.name AS customer_name"},
		Joins: []Join{
			{Table: "customers c", On: "c.id = i.customer_id", Kind: "LEFT"},
		},
		AllowedFilters: map[string]string{"status": "i.status"},
		AllowedSearch:  []string{"i.invoice_number", "c.name"},
		AllowedSort: map[string]string{
			"invoice_number": "i.invoice_number",
			"generated_at":   "i.generated_at",
		},
		DefaultOrder: "i.id DESC",
	}
}

func TestBuildListQueryDefaults(t *testing.T) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(testListParams(), types.Filter{Limit: 25, Page: 1})
	require.NoError(t, err)

	assert.Contains(t, dataSQL, "LEFT JOIN customers c ON c.id = i.customer_id")
	assert.Contains(t, dataSQL, "ORDER BY i.id DESC")
	assert.Contains(t, dataSQL, "LIMIT 25")
	assert.Empty(t, dataArgs)

	assert.Contains(t, countSQL, "COUNT(*)")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.Empty(t, countArgs)
}

func TestBuildListQueryAllowedFilter(t *testing.T) {
	f := types.Filter{
		Filter: map[string]string{"status": "generated"},
		Limit:  25,
	}

	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(testListParams(), f)
	require.NoError(t, err)

	assert.Contains(t, dataSQL, "i.status = $1")
	assert.Equal(t, []interface{}{"generated"}, dataArgs)
	assert.Contains(t, countSQL, "i.status = $1")
	assert.Equal(t, []interface{}{"generated"}, countArgs)
}

func TestBuildListQueryIgnoresUnknownFilter(t *testing.T) {
	f := types.Filter{
		Filter: map[string]string{"password": "x", "id": "1 OR 1=1"},
		Limit:  25,
	}

	dataSQL, dataArgs, _, _, err := BuildListQuery(testListParams(), f)
	require.NoError(t, err)

	assert.NotContains(t, dataSQL, "password")
	assert.NotContains(t, dataSQL, "1=1")
	assert.Empty(t, dataArgs)
}

func TestBuildListQuerySearchSpansColumns(t *testing.T) {
	f := types.Filter{Search: "acme", Limit: 25}

	dataSQL, dataArgs, _, _, err := BuildListQuery(testListParams(), f)
	require.NoError(t, err)

	assert.Contains(t, dataSQL, "i.invoice_number ILIKE $1")
	assert.Contains(t, dataSQL, "c.name ILIKE $2")
	assert.Contains(t, dataSQL, " OR ")
	assert.Equal(t, []interface{}{"%acme%", "%acme%"}, dataArgs)
}

func TestBuildListQuerySortAllowList(t *testing.T) {
	p := testListParams()

	dataSQL, _, _, _, err := BuildListQuery(p, types.Filter{Sort: "invoice_number", Limit: 25})
	require.NoError(t, err)
	assert.Contains(t, dataSQL, "ORDER BY i.invoice_number ASC")

	dataSQL, _, _, _, err = BuildListQuery(p, types.Filter{Sort: "-generated_at", Limit: 25})
	require.NoError(t, err)
	assert.Contains(t, dataSQL, "ORDER BY i.generated_at DESC")

	// Unknown sort keys fall back to the default order.
	dataSQL, _, _, _, err = BuildListQuery(p, types.Filter{Sort: "password", Limit: 25})
	require.NoError(t, err)
	assert.Contains(t, dataSQL, "ORDER BY i.id DESC")
}

func TestBuildListQueryOffset(t *testing.T) {
	dataSQL, _, _, _, err := BuildListQuery(testListParams(), types.Filter{Limit: 10, Offset: 30})
	require.NoError(t, err)

	assert.Contains(t, dataSQL, "LIMIT 10")
	assert.Contains(t, dataSQL, "OFFSET 30")
}

func TestBuildListQueryRequiresTable(t *testing.T) {
	_, _, _, _, err := BuildListQuery(ListParams{}, types.Filter{})
	assert.Error(t, err)
}
