package ports

import (
	"context"

	"github.com/pressroom/content-api/internal/core/domain"
)

// CreatePostInput carries the payload for creating a post.
type CreatePostInput struct {
	Title string
	Body  string
}

// UpdatePostInput carries the payload for updating a post.
type UpdatePostInput struct {
	Title string
	Body  string
}

// PostService orchestrates post operations: authorize the acting principal,
// then execute against the repository. Existence is checked before policy, so
// a missing record is domain.ErrPostNotFound regardless of actor.
type PostService interface {
	List(ctx context.Context, actor domain.Principal, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Get(ctx context.Context, actor domain.Principal, id string) (*domain.Post, error)
	Create(ctx context.Context, actor domain.Principal, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, actor domain.Principal, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
	// Activity returns recent audit entries for a post the actor may show.
	Activity(ctx context.Context, actor domain.Principal, postID string, limit int) ([]*domain.Activity, error)
}
