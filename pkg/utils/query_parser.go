package utils

import (
	"net/url"
	"strconv"
	"strings"

	"refill-system/pkg/types"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

// ParseFilterFromQuery reads pagination, search, sort and filter[...] keys
// from a URL query. Filter keys arrive as filter[column]=value; which
// columns are honored is decided by the repository allow-lists.
func ParseFilterFromQuery(query url.Values) types.Filter {
	f := types.Filter{
		Filter: make(map[string]string),
		Limit:  DefaultLimit,
		Page:   1,
	}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			filterKey := key[7 : len(key)-1]
			f.Filter[filterKey] = values[0]
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			f.Limit = l
		}
	}

	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			f.Page = p
		}
	}
	f.Offset = (f.Page - 1) * f.Limit

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			f.Offset = o
			if f.Limit > 0 {
				f.Page = (o / f.Limit) + 1
			}
		}
	}

	f.Search = query.Get("search")
	f.Sort = query.Get("sort")

	return f
}
