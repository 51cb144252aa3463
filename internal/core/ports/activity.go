package ports

import (
	"context"
	"time"

	"github.com/pressroom/content-api/internal/core/domain"
)

// ActivityInput is one pending audit entry for a post mutation.
type ActivityInput struct {
	PostID     string
	ActorID    string
	Verb       domain.ActivityVerb
	OccurredAt time.Time
}

// ActivityRecorder accepts audit entries for asynchronous persistence.
// Enqueue never blocks the mutating request beyond channel capacity.
type ActivityRecorder interface {
	Enqueue(input ActivityInput)
}

// ActivityRepository defines persistence for audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// ListByPost returns the most recent entries for a post, newest first.
	ListByPost(ctx context.Context, postID string, limit int) ([]*domain.Activity, error)
}

// ActivityService persists and reads audit entries. Record is invoked by the
// dispatcher workers, ForPost by the read path.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
	ForPost(ctx context.Context, postID string, limit int) ([]*domain.Activity, error)
}
