package commentservice

import (
	"context"
	"database/sql"

	"github.com/BapiMajumder1402/depoy-blog/internal/common"
)

func NewCommentService(db *sql.DB) *CommentService {
	return &CommentService{m: newCommentModel(db)}
}

// CreateComment persists a new comment owned by the acting user against an
// existing blog. The named blog must exist.
func (s *CommentService) CreateComment(ctx context.Context, userID, blogID int, content string) (*Comment, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	validateContent(v, content)
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insert(ctx, blogID, userID, content)
}

// UpdateComment replaces the comment's content. Only the user who wrote the
// comment can update it; a comment with no commenter cannot be updated.
func (s *CommentService) UpdateComment(ctx context.Context, actorID, id int, content string) (*Comment, error) {
	v := common.NewValidator()
	validateContent(v, content)
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	comment, err := s.m.getCommentById(ctx, id)
	if err != nil {
		return nil, err
	}

	if !common.CanMutate(actorID, comment.UserID) {
		return nil, common.ErrNotPermitted
	}

	comment.Content = content

	err = s.m.updateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment hard-deletes a comment. Only the user who wrote the comment
// can delete it.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	comment, err := s.m.getCommentById(ctx, id)
	if err != nil {
		return err
	}

	if !common.CanMutate(actorID, comment.UserID) {
		return common.ErrNotPermitted
	}

	return s.m.deleteComment(ctx, id)
}

// GetCommentsByBlogId returns the comments-for-blog report.
func (s *CommentService) GetCommentsByBlogId(ctx context.Context, blogID int) ([]CommentView, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getCommentsByBlogId(ctx, blogID)
}
