package ports

import (
	"context"

	"github.com/pressroom/content-api/internal/core/domain"
)

// Page bounds applied to every collection listing. Handlers clamp the query
// values with them so the response envelope reflects the page actually
// served.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListPostsFilter carries all query parameters for listing posts.
// CreatedBy is set by the policy scope, never directly by handlers.
type ListPostsFilter struct {
	CreatedBy string // empty = no owner restriction
	Page      int    // 1-based
	Limit     int    // max rows per page (capped at 100 by service)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns a page of posts matching filter and the total count.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
