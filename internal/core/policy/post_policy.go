package policy

import (
	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

// PostVisibility selects the index scope for non-admin actors.
type PostVisibility string

const (
	// VisibilityPublic lists every post to every actor the scope is asked for.
	VisibilityPublic PostVisibility = "public"
	// VisibilityOwner restricts non-admin listings to the actor's own posts.
	VisibilityOwner PostVisibility = "owner"
)

// ForPosts builds the post rule set: any authenticated actor may show and
// create, only the author may update or destroy. Anonymous fails every
// predicate.
func ForPosts(visibility PostVisibility) *Engine[*domain.Post, ports.ListPostsFilter] {
	return NewEngine(Rules[*domain.Post, ports.ListPostsFilter]{
		Show:    postAuthenticated,
		Create:  postAuthenticated,
		Update:  postOwner,
		Destroy: postOwner,
		Scope: func(actor domain.Principal, query ports.ListPostsFilter) ports.ListPostsFilter {
			if visibility == VisibilityOwner {
				query.CreatedBy = actor.UserID()
			}
			return query
		},
	})
}

func postAuthenticated(actor domain.Principal, _ *domain.Post) bool {
	return actor.IsAuthenticated()
}

func postOwner(actor domain.Principal, post *domain.Post) bool {
	return actor.IsAuthenticated() && actor.UserID() == post.CreatedBy
}
