package commentservice

import (
	"context"
	"crypto/rand"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BapiMajumder1402/depoy-blog/internal/common"
)

func setupTestUser(db *sql.DB, username, email string) (*int, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err = db.QueryRow(query, username, email, randomBytes).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func setupTestBlog(db *sql.DB, userId int) (*int, error) {
	var id int
	err := db.QueryRow("INSERT INTO blogs (title, content, user_id) VALUES ($1, $2, $3) RETURNING id", "Test Blog", "This is a test blog.", userId).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func setupTestEnvironment(t *testing.T) (*CommentService, *sql.DB, func() error, *int, *int, error) {
	db := common.TestDB("file://../../migrations", t)

	userId, err := setupTestUser(db, "testuser", "testuser@example.com")
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	blogId, err := setupTestBlog(db, *userId)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM comments")
		return err
	}

	return NewCommentService(db), db, cleanup, userId, blogId, nil
}

func TestCreateComment(t *testing.T) {
	s, db, cleanup, userId, blogId, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		blogId      int
		content     string
		expectedErr error
	}{
		{
			name:        "valid comment",
			blogId:      *blogId,
			content:     "Nice post!",
			expectedErr: nil,
		},
		{
			name:        "missing blog ID",
			blogId:      0,
			content:     "Nice post!",
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_id": "must be greater than zero"}},
		},
		{
			name:        "empty content",
			blogId:      *blogId,
			content:     "",
			expectedErr: common.ValidationError{Errors: map[string]string{"content": "must be provided"}},
		},
		{
			name:        "unknown blog",
			blogId:      999,
			content:     "Nice post!",
			expectedErr: common.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			comment, err := s.CreateComment(ctx, *userId, tc.blogId, tc.content)
			assert.Equal(t, tc.expectedErr, err)

			var count int
			countErr := db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&count)
			assert.NoError(t, countErr)

			if err == nil {
				assert.NotZero(t, comment.ID)
				assert.Equal(t, tc.blogId, comment.BlogID)
				assert.Equal(t, 1, count)

				// the parent blog is touched in the same transaction
				var updatedAt time.Time
				err := db.QueryRow("SELECT updated_at FROM blogs WHERE id = $1", tc.blogId).Scan(&updatedAt)
				assert.NoError(t, err)
				assert.False(t, updatedAt.Before(comment.CreatedAt))
			} else {
				// a failed create leaves no orphan comment behind
				assert.Equal(t, 0, count)
			}

			t.Cleanup(func() {
				err := cleanup()
				assert.NoError(t, err)
			})
		})
	}
}

func TestUpdateComment(t *testing.T) {
	s, db, cleanup, userId, blogId, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	otherId, err := setupTestUser(db, "otheruser", "otheruser@example.com")
	assert.NoError(t, err)

	testCases := []struct {
		name            string
		actorId         int
		content         string
		expectedContent string
		expectedErr     error
	}{
		{
			name:            "owner updates",
			actorId:         *userId,
			content:         "Edited comment.",
			expectedContent: "Edited comment.",
			expectedErr:     nil,
		},
		{
			name:            "non-owner",
			actorId:         *otherId,
			content:         "Edited comment.",
			expectedContent: "Original comment.",
			expectedErr:     common.ErrNotPermitted,
		},
		{
			name:            "missing actor",
			actorId:         0,
			content:         "Edited comment.",
			expectedContent: "Original comment.",
			expectedErr:     common.ErrNotPermitted,
		},
		{
			name:        "empty content",
			actorId:     *userId,
			content:     "",
			expectedErr: common.ValidationError{Errors: map[string]string{"content": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			var commentId int
			err := db.QueryRow("INSERT INTO comments (blog_id, user_id, content) VALUES ($1, $2, $3) RETURNING id", *blogId, *userId, "Original comment.").Scan(&commentId)
			assert.NoError(t, err)

			_, err = s.UpdateComment(ctx, tc.actorId, commentId, tc.content)
			assert.Equal(t, tc.expectedErr, err)

			if tc.expectedContent != "" {
				var content string
				err = db.QueryRow("SELECT content FROM comments WHERE id = $1", commentId).Scan(&content)
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedContent, content)
			}

			t.Cleanup(func() {
				err := cleanup()
				assert.NoError(t, err)
			})
		})
	}

	t.Run("unknown comment", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.UpdateComment(ctx, *userId, 999, "Edited comment.")
		assert.Equal(t, common.ErrRecordNotFound, err)
	})

	t.Run("comment without commenter", func(t *testing.T) {
		ctx := context.Background()

		var commentId int
		err := db.QueryRow("INSERT INTO comments (blog_id, user_id, content) VALUES ($1, NULL, $2) RETURNING id", *blogId, "Orphan comment.").Scan(&commentId)
		assert.NoError(t, err)

		_, err = s.UpdateComment(ctx, *userId, commentId, "Edited comment.")
		assert.Equal(t, common.ErrNotPermitted, err)
	})
}

func TestDeleteComment(t *testing.T) {
	s, db, cleanup, userId, blogId, err := setupTestEnvironment(t)
	assert.NoError(t, err)
	defer cleanup()

	otherId, err := setupTestUser(db, "otheruser", "otheruser@example.com")
	assert.NoError(t, err)

	var commentId int
	err = db.QueryRow("INSERT INTO comments (blog_id, user_id, content) VALUES ($1, $2, $3) RETURNING id", *blogId, *userId, "Nice post!").Scan(&commentId)
	assert.NoError(t, err)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		ctx := context.Background()

		err := s.DeleteComment(ctx, *otherId, commentId)
		assert.Equal(t, common.ErrNotPermitted, err)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM comments WHERE id = $1", commentId).Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown comment", func(t *testing.T) {
		ctx := context.Background()

		err := s.DeleteComment(ctx, *userId, 999)
		assert.Equal(t, common.ErrRecordNotFound, err)
	})

	t.Run("owner deletes", func(t *testing.T) {
		ctx := context.Background()

		err := s.DeleteComment(ctx, *userId, commentId)
		assert.NoError(t, err)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestGetCommentsByBlogId(t *testing.T) {
	s, db, cleanup, userId, blogId, err := setupTestEnvironment(t)
	assert.NoError(t, err)
	defer cleanup()

	for i := 1; i <= 3; i++ {
		_, err := db.Exec(
			"INSERT INTO comments (blog_id, user_id, content, created_at) VALUES ($1, $2, $3, now() - make_interval(mins => $4))",
			*blogId, *userId, "Comment", i)
		assert.NoError(t, err)
	}

	// a comment whose commenter is gone is skipped by the join
	_, err = db.Exec("INSERT INTO comments (blog_id, user_id, content) VALUES ($1, NULL, $2)", *blogId, "Orphan comment.")
	assert.NoError(t, err)

	ctx := context.Background()

	comments, err := s.GetCommentsByBlogId(ctx, *blogId)
	assert.NoError(t, err)
	assert.Len(t, comments, 3)

	// newest first, commenter profile projected
	for i := 0; i < len(comments)-1; i++ {
		assert.False(t, comments[i].CreatedAt.Before(comments[i+1].CreatedAt))
	}
	assert.Equal(t, "testuser", comments[0].Commenter.Username)
	assert.Equal(t, "testuser@example.com", comments[0].Commenter.Email)

	t.Run("blog with no comments", func(t *testing.T) {
		blog2, err := setupTestBlog(db, *userId)
		assert.NoError(t, err)

		comments, err := s.GetCommentsByBlogId(ctx, *blog2)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})
}
