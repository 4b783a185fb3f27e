package blogservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/BapiMajumder1402/depoy-blog/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

// CreateBlog persists a new blog owned by the acting user and returns it.
// Validation runs on the sanitized content, so input reduced to nothing by
// sanitizing is rejected rather than stored empty.
func (s *BlogService) CreateBlog(ctx context.Context, userID int, title, content string) (*Blog, error) {
	title = strings.TrimSpace(title)
	content = sanitizeMarkdown(content)

	v := common.NewValidator()
	validateTitle(v, title)
	validateContent(v, content)
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insert(ctx, title, content, userID)
}

// GetBlogByID returns a blog with its author profile and its comments
// populated, each comment resolved to the commenter's public profile.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogById(ctx, id)
}

// GetBlogs returns one page of blogs matching the listing parameters plus
// the total count of all matching blogs, not just the page.
func (s *BlogService) GetBlogs(ctx context.Context, p ListBlogsParams) ([]Blog, int, error) {
	q := buildListQuery(p)

	blogs, err := s.m.getBlogs(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.m.countBlogs(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// GetBlogsByUserId returns all blogs owned by the user, newest first.
func (s *BlogService) GetBlogsByUserId(ctx context.Context, userID int) ([]Blog, error) {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogsByUserId(ctx, userID)
}

// UpdateBlog applies a partial update. Only the user who created the blog
// can update it; fields absent from the patch keep their prior values.
func (s *BlogService) UpdateBlog(ctx context.Context, actorID, id int, patch BlogPatch) (*Blog, error) {
	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return nil, err
	}

	if !common.CanMutate(actorID, &blog.UserID) {
		return nil, common.ErrNotPermitted
	}

	if patch.Title != nil {
		blog.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		blog.Content = sanitizeMarkdown(*patch.Content)
	}

	v := common.NewValidator()
	validateTitle(v, blog.Title)
	validateContent(v, blog.Content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err = s.m.updateBlog(ctx, blog)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// DeleteBlog removes a blog permanently. Only the user who created the blog
// can delete it.
func (s *BlogService) DeleteBlog(ctx context.Context, actorID, id int) error {
	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return err
	}

	if !common.CanMutate(actorID, &blog.UserID) {
		return common.ErrNotPermitted
	}

	return s.m.deleteBlog(ctx, id)
}

// GetUniqueAuthors returns one row per distinct author across all blogs.
func (s *BlogService) GetUniqueAuthors(ctx context.Context) ([]AuthorReport, error) {
	return s.m.uniqueAuthors(ctx)
}
