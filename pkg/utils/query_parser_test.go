package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterDefaults(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, uint64(DefaultLimit), f.Limit)
	assert.Equal(t, uint64(1), f.Page)
	assert.Equal(t, uint64(0), f.Offset)
	assert.Empty(t, f.Search)
	assert.Empty(t, f.Sort)
	assert.Empty(t, f.Filter)
}

func TestParseFilterBracketKeys(t *testing.T) {
	q := url.Values{}
	q.Set("filter[status]", "generated")
	q.Set("filter[customer]", "7")
	q.Set("status", "ignored")

	f := ParseFilterFromQuery(q)

	assert.Equal(t, map[string]string{"status": "generated", "customer": "7"}, f.Filter)
}

func TestParseFilterLimitIsCapped(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "500")

	f := ParseFilterFromQuery(q)
	assert.Equal(t, uint64(MaxLimit), f.Limit)
}

func TestParseFilterRejectsBadNumbers(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "abc")
	q.Set("page", "0")

	f := ParseFilterFromQuery(q)
	assert.Equal(t, uint64(DefaultLimit), f.Limit)
	assert.Equal(t, uint64(1), f.Page)
}

func TestParseFilterPageComputesOffset(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("limit", "10")

	f := ParseFilterFromQuery(q)
	assert.Equal(t, uint64(3), f.Page)
	assert.Equal(t, uint64(20), f.Offset)
}

func TestParseFilterExplicitOffsetWins(t *testing.T) {
	q := url.Values{}
	q.Set("page", "2")
	q.Set("limit", "10")
	q.Set("offset", "45")

	f := ParseFilterFromQuery(q)
	assert.Equal(t, uint64(45), f.Offset)
	assert.Equal(t, uint64(5), f.Page)
}

func TestParseFilterSearchAndSort(t *testing.T) {
	q := url.Values{}
	q.Set("search", "north")
	q.Set("sort", "-created_at")

	f := ParseFilterFromQuery(q)
	assert.Equal(t, "north", f.Search)
	assert.Equal(t, "-created_at", f.Sort)
}
