package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BapiMajumder1402/depoy-blog/internal/common"
)

var (
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) insert(ctx context.Context, title, content string, userID int) (*Blog, error) {
	query := `
		INSERT INTO blogs (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	blog := Blog{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	err := m.db.QueryRowContext(ctx, query, title, content, userID).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyError(err, "blogs_user_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// getBlogById fetches a blog with its author's public profile and its
// comments, each comment resolved to the commenter's public profile.
func (m *BlogModel) getBlogById(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.user_id, b.created_at, b.updated_at, u.username, u.email
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		WHERE b.id = $1`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, id).Scan(&blog.ID, &blog.Title, &blog.Content, &blog.UserID, &blog.CreatedAt, &blog.UpdatedAt, &blog.Author.Username, &blog.Author.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}
	blog.Author.ID = blog.UserID

	comments, err := m.getBlogComments(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Comments = comments

	return &blog, nil
}

// getBlogComments resolves the blog's comment list in insertion order.
// Comments whose commenter no longer exists are skipped by the join.
func (m *BlogModel) getBlogComments(ctx context.Context, blogID int) ([]BlogComment, error) {
	query := `
		SELECT c.id, c.content, c.created_at, u.id, u.username, u.email
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.blog_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []BlogComment
	for rows.Next() {
		var c BlogComment
		err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.Commenter.ID, &c.Commenter.Username, &c.Commenter.Email)
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

// getBlogs lists one page of blogs with their author profiles populated.
func (m *BlogModel) getBlogs(ctx context.Context, q listQuery) ([]Blog, error) {
	query := fmt.Sprintf(`
		SELECT b.id, b.title, b.content, b.user_id, b.created_at, b.updated_at, u.username, u.email
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, q.where, q.orderBy, len(q.args)+1, len(q.args)+2)

	args := append(append([]any{}, q.args...), q.limit, q.offset)

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.UserID, &blog.CreatedAt, &blog.UpdatedAt, &blog.Author.Username, &blog.Author.Email)
		if err != nil {
			return nil, err
		}
		blog.Author.ID = blog.UserID
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// countBlogs runs the count query over the identical filter so the total
// stays consistent with the listed page.
func (m *BlogModel) countBlogs(ctx context.Context, q listQuery) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM blogs b
		%s`, q.where)

	var total int
	err := m.db.QueryRowContext(ctx, query, q.args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (m *BlogModel) getBlogsByUserId(ctx context.Context, userID int) ([]Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.user_id, b.created_at, b.updated_at, u.username, u.email
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.UserID, &blog.CreatedAt, &blog.UpdatedAt, &blog.Author.Username, &blog.Author.Email)
		if err != nil {
			return nil, err
		}
		blog.Author.ID = blog.UserID
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) updateBlog(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at`

	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Content, blog.ID).Scan(&blog.UpdatedAt)
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

// deleteBlog removes the blog permanently. Its comments go with it via the
// comments_blog_id_fkey cascade.
func (m *BlogModel) deleteBlog(ctx context.Context, id int) error {
	query := `
		DELETE FROM blogs
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

// uniqueAuthors groups all blogs by author and joins each group to the
// author's public name. Authors with no posts never appear and no sort
// order is imposed.
func (m *BlogModel) uniqueAuthors(ctx context.Context) ([]AuthorReport, error) {
	query := `
		SELECT b.user_id, u.username, COUNT(*)
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		GROUP BY b.user_id, u.username`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []AuthorReport{}
	for rows.Next() {
		var a AuthorReport
		err := rows.Scan(&a.AuthorID, &a.AuthorName, &a.PostCount)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return authors, nil
}
