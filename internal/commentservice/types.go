package commentservice

import (
	"database/sql"
	"time"
)

type Comment struct {
	ID      int    `json:"id"`
	BlogID  int    `json:"blog_id"`
	Content string `json:"content"`
	// UserID is nil when the commenter's account no longer exists.
	UserID    *int      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommenterProfile is the public slice of the commenter's account.
type CommenterProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CommentView is one row of the comments-for-blog report: the comment's
// content and timestamp joined with the commenter's public profile.
type CommentView struct {
	ID        int              `json:"id"`
	Content   string           `json:"content"`
	Commenter CommenterProfile `json:"commenter"`
	CreatedAt time.Time        `json:"created_at"`
}

type CommentModel struct {
	db *sql.DB
}

type CommentService struct {
	m *CommentModel
}
