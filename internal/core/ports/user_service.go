package ports

import (
	"context"

	"github.com/pressroom/content-api/internal/core/domain"
)

// UpdateUserInput carries the mutable account fields. Zero values leave the
// field unchanged; Role changes are admin-only.
type UpdateUserInput struct {
	Email string
	Name  string
	Role  domain.Role
}

// UserService governs account administration. Listing is admin-only; reads
// and updates are admin-or-self.
type UserService interface {
	List(ctx context.Context, actor domain.Principal, filter ListUsersFilter) ([]*domain.User, int64, error)
	Get(ctx context.Context, actor domain.Principal, id string) (*domain.User, error)
	Update(ctx context.Context, actor domain.Principal, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
}
