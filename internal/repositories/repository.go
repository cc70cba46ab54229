package repositories

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"refill-system/pkg/types"
)

type Join struct {
	Table string
	On    string
	Kind  string // LEFT, RIGHT, INNER; INNER when empty
}

// ListParams describes a list query: base table, joined relations and the
// allow-lists that decide which filter/search/sort keys from the request
// are honored. Keys of AllowedFilters match the admin registry's
// list_filter names; values are the SQL columns they map to.
type ListParams struct {
	Table          string
	Columns        []string
	Joins          []Join
	AllowedFilters map[string]string
	AllowedSearch  []string
	AllowedSort    map[string]string
	DefaultOrder   string
}

// BuildListQuery renders the data and count statements for a filtered,
// searched and paginated list view.
func BuildListQuery(p ListParams, f types.Filter) (dataSQL string, dataArgs []interface{}, countSQL string, countArgs []interface{}, err error) {
	if p.Table == "" {
		return "", nil, "", nil, fmt.Errorf("list query without table")
	}

	apply := func(b sq.SelectBuilder) sq.SelectBuilder {
		for _, j := range p.Joins {
			clause := fmt.Sprintf("%s ON %s", j.Table, j.On)
			switch strings.ToUpper(j.Kind) {
			case "LEFT":
				b = b.LeftJoin(clause)
			case "RIGHT":
				b = b.RightJoin(clause)
			default:
				b = b.Join(clause)
			}
		}

		for key, val := range f.Filter {
			if col, ok := p.AllowedFilters[key]; ok {
				b = b.Where(sq.Eq{col: val})
			}
		}

		if f.Search != "" && len(p.AllowedSearch) > 0 {
			pattern := "%" + f.Search + "%"
			var conds []sq.Sqlizer
			for _, col := range p.AllowedSearch {
				conds = append(conds, sq.Expr(col+" ILIKE ?", pattern))
			}
			b = b.Where(sq.Or(conds))
		}
		return b
	}

	data := apply(sq.Select(p.Columns...).From(p.Table).PlaceholderFormat(sq.Dollar))

	order := p.DefaultOrder
	if f.Sort != "" {
		dir := "ASC"
		key := f.Sort
		if strings.HasPrefix(key, "-") {
			dir = "DESC"
			key = key[1:]
		}
		if col, ok := p.AllowedSort[key]; ok {
			order = col + " " + dir
		}
	}
	if order != "" {
		data = data.OrderBy(order)
	}
	if f.Limit > 0 {
		data = data.Limit(f.Limit).Offset(f.Offset)
	}

	dataSQL, dataArgs, err = data.ToSql()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("building list query: %w", err)
	}

	count := apply(sq.Select("COUNT(*)").From(p.Table).PlaceholderFormat(sq.Dollar))
	countSQL, countArgs, err = count.ToSql()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("building count query: %w", err)
	}

	return dataSQL, dataArgs, countSQL, countArgs, nil
}
