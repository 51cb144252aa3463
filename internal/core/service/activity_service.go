package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

// ActivityService persists audit entries for post mutations and serves the
// read path. Record is called from dispatcher workers, so failures are logged
// rather than surfaced to the originating request.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Record(ctx context.Context, input ports.ActivityInput) error {
	entry := &domain.Activity{
		PostID:     input.PostID,
		ActorID:    input.ActorID,
		Verb:       input.Verb,
		OccurredAt: input.OccurredAt,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("post_id", input.PostID).Str("verb", string(input.Verb)).Msg("failed to record activity")
		return err
	}
	return nil
}

func (s *ActivityService) ForPost(ctx context.Context, postID string, limit int) ([]*domain.Activity, error) {
	return s.repo.ListByPost(ctx, postID, limit)
}
