package commentservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BapiMajumder1402/depoy-blog/internal/common"
)

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

// insert creates the comment and touches the parent blog inside a single
// transaction, so the comment and its link to the blog land together or
// not at all.
func (m *CommentModel) insert(ctx context.Context, blogID, userID int, content string) (*Comment, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO comments (blog_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	comment := Comment{
		BlogID:  blogID,
		UserID:  &userID,
		Content: content,
	}

	err = tx.QueryRowContext(ctx, query, blogID, userID, content).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case common.ForeignKeyError(err, "comments_blog_id_fkey"):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	res, err := tx.ExecContext(ctx, "UPDATE blogs SET updated_at = now() WHERE id = $1", blogID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if rows != 1 {
		_ = tx.Rollback()
		return nil, common.ErrRecordNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (m *CommentModel) getCommentById(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT id, blog_id, user_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var comment Comment
	err := m.db.QueryRowContext(ctx, query, id).Scan(&comment.ID, &comment.BlogID, &comment.UserID, &comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &comment, nil
}

func (m *CommentModel) updateComment(ctx context.Context, comment *Comment) error {
	query := `
		UPDATE comments
		SET content = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at`

	err := m.db.QueryRowContext(ctx, query, comment.Content, comment.ID).Scan(&comment.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *CommentModel) deleteComment(ctx context.Context, id int) error {
	query := `
		DELETE FROM comments
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// getCommentsByBlogId builds the comments-for-blog report: comments for an
// exact blog match joined to the commenter's public profile, newest first.
// Comments whose commenter no longer exists are skipped by the join.
func (m *CommentModel) getCommentsByBlogId(ctx context.Context, blogID int) ([]CommentView, error) {
	query := `
		SELECT c.id, c.content, c.created_at, u.username, u.email
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.blog_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []CommentView{}
	for rows.Next() {
		var c CommentView
		err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.Commenter.Username, &c.Commenter.Email)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
