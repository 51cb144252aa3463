package domain

import "time"

// ActivityVerb names the mutation recorded by an activity entry.
type ActivityVerb string

const (
	ActivityCreated ActivityVerb = "created"
	ActivityUpdated ActivityVerb = "updated"
	ActivityDeleted ActivityVerb = "deleted"
)

// Activity is an audit entry for a post mutation. Entries are written
// asynchronously and are informational, not transactional.
type Activity struct {
	ID         string       `json:"id"`
	PostID     string       `json:"post_id"`
	ActorID    string       `json:"actor_id"`
	Verb       ActivityVerb `json:"verb"`
	OccurredAt time.Time    `json:"occurred_at"`
}
