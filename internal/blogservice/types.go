package blogservice

import (
	"database/sql"
	"time"
)

// Author is the public profile of the user who wrote a blog or comment.
type Author struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Blog struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Content is stored in Markdown format.
	Content   string        `json:"content"`
	UserID    int           `json:"user_id"`
	Author    Author        `json:"author"`
	Comments  []BlogComment `json:"comments,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BlogComment is a comment as seen from its parent blog, with the
// commenter's public profile resolved.
type BlogComment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Commenter Author    `json:"commenter"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogPatch carries a partial update. A nil field means "leave unchanged";
// a present field must be non-empty.
type BlogPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListBlogsParams are the raw listing parameters. Nil or non-positive page
// and limit take the defaults.
type ListBlogsParams struct {
	Title     string
	AuthorID  int
	Page      *int
	Limit     *int
	SortBy    string
	SortOrder string
}

// AuthorReport is one row of the unique-authors report. The per-author
// post count is kept internal and not part of the projection.
type AuthorReport struct {
	AuthorID   int    `json:"authorId"`
	AuthorName string `json:"authorName"`
	PostCount  int    `json:"-"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
