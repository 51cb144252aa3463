package policy

import (
	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

// ForUsers builds the user account rule set: reads and updates are self-only
// (admin override grants everything else), account creation goes through
// registration rather than this policy, and deletion is admin-only.
func ForUsers() *Engine[*domain.User, ports.ListUsersFilter] {
	return NewEngine(Rules[*domain.User, ports.ListUsersFilter]{
		Show:    userSelf,
		Update:  userSelf,
		Destroy: nil, // admin-only, covered by the override
		Scope: func(_ domain.Principal, query ports.ListUsersFilter) ports.ListUsersFilter {
			return query
		},
	})
}

func userSelf(actor domain.Principal, user *domain.User) bool {
	return actor.IsAuthenticated() && actor.UserID() == user.ID
}
