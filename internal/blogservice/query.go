package blogservice

import (
	"fmt"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// sortColumns whitelists the fields a caller may sort by. Anything else
// falls back to created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
}

type listQuery struct {
	where   string
	args    []any
	orderBy string
	limit   int
	offset  int
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// buildListQuery translates listing parameters into a WHERE clause, an
// ORDER BY clause and LIMIT/OFFSET. The count query reuses the same clause
// and args so the reported total always matches the listed page's filter.
func buildListQuery(p ListBlogsParams) listQuery {
	var conds []string
	var args []any

	if p.Title != "" {
		args = append(args, "%"+escapeLike(p.Title)+"%")
		conds = append(conds, fmt.Sprintf("b.title ILIKE $%d", len(args)))
	}

	if p.AuthorID != 0 {
		args = append(args, p.AuthorID)
		conds = append(conds, fmt.Sprintf("b.user_id = $%d", len(args)))
	}

	var where string
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	page := defaultPage
	if p.Page != nil && *p.Page > 0 {
		page = *p.Page
	}

	limit := defaultLimit
	if p.Limit != nil && *p.Limit > 0 {
		limit = *p.Limit
	}

	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = "created_at"
	}

	// only the ascending keyword sorts ascending; anything else descends
	direction := "DESC"
	if p.SortOrder == "asc" {
		direction = "ASC"
	}

	return listQuery{
		where:   where,
		args:    args,
		orderBy: fmt.Sprintf("b.%s %s", column, direction),
		limit:   limit,
		offset:  (page - 1) * limit,
	}
}
