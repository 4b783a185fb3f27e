package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int {
	return &n
}

func TestBuildListQuery(t *testing.T) {
	testCases := []struct {
		name           string
		params         ListBlogsParams
		expectedWhere  string
		expectedArgs   []any
		expectedOrder  string
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "defaults",
			params:         ListBlogsParams{},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "title filter",
			params:         ListBlogsParams{Title: "cat"},
			expectedWhere:  "WHERE b.title ILIKE $1",
			expectedArgs:   []any{"%cat%"},
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "title filter escapes wildcards",
			params:         ListBlogsParams{Title: "100%_done"},
			expectedWhere:  "WHERE b.title ILIKE $1",
			expectedArgs:   []any{`%100\%\_done%`},
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "author filter",
			params:         ListBlogsParams{AuthorID: 7},
			expectedWhere:  "WHERE b.user_id = $1",
			expectedArgs:   []any{7},
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "title and author filters",
			params:         ListBlogsParams{Title: "cat", AuthorID: 7},
			expectedWhere:  "WHERE b.title ILIKE $1 AND b.user_id = $2",
			expectedArgs:   []any{"%cat%", 7},
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "second page",
			params:         ListBlogsParams{Page: intPtr(2), Limit: intPtr(10)},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 10,
		},
		{
			name:           "custom page size",
			params:         ListBlogsParams{Page: intPtr(3), Limit: intPtr(5)},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  5,
			expectedOffset: 10,
		},
		{
			name:           "non-positive page and limit take defaults",
			params:         ListBlogsParams{Page: intPtr(0), Limit: intPtr(-5)},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "sort by title ascending",
			params:         ListBlogsParams{SortBy: "title", SortOrder: "asc"},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.title ASC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "unknown sort field falls back to created_at",
			params:         ListBlogsParams{SortBy: "user_id; DROP TABLE blogs"},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.created_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "unknown sort order is descending",
			params:         ListBlogsParams{SortBy: "updatedAt", SortOrder: "sideways"},
			expectedWhere:  "",
			expectedArgs:   nil,
			expectedOrder:  "b.updated_at DESC",
			expectedLimit:  10,
			expectedOffset: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := buildListQuery(tc.params)

			assert.Equal(t, tc.expectedWhere, q.where)
			assert.Equal(t, tc.expectedArgs, q.args)
			assert.Equal(t, tc.expectedOrder, q.orderBy)
			assert.Equal(t, tc.expectedLimit, q.limit)
			assert.Equal(t, tc.expectedOffset, q.offset)
		})
	}
}

func TestBuildListQueryCountSharesFilter(t *testing.T) {
	params := ListBlogsParams{Title: "cat", AuthorID: 3, Page: intPtr(4), Limit: intPtr(2)}

	first := buildListQuery(params)
	second := buildListQuery(params)

	// the list and count queries must run against an identical filter
	assert.Equal(t, first.where, second.where)
	assert.Equal(t, first.args, second.args)
}
