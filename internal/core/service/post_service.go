package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/policy"
	"github.com/pressroom/content-api/internal/core/ports"
	"github.com/pressroom/content-api/internal/metrics"
)

const (
	defaultActivityN = 20
	maxActivityN     = 100
)

// PostService orchestrates post CRUD: authorize the acting principal against
// the post policy, then execute. Mutations enqueue an activity entry.
type PostService struct {
	repo     ports.PostRepository
	policy   *policy.Engine[*domain.Post, ports.ListPostsFilter]
	recorder ports.ActivityRecorder
	activity ports.ActivityService
	logger   zerolog.Logger
}

func NewPostService(
	repo ports.PostRepository,
	engine *policy.Engine[*domain.Post, ports.ListPostsFilter],
	recorder ports.ActivityRecorder,
	activity ports.ActivityService,
	logger zerolog.Logger,
) *PostService {
	return &PostService{repo: repo, policy: engine, recorder: recorder, activity: activity, logger: logger}
}

// List returns a scoped page of posts. The policy scope is applied to every
// listing without exception.
func (s *PostService) List(ctx context.Context, actor domain.Principal, filter ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = ports.DefaultPageLimit
	}
	if filter.Limit > ports.MaxPageLimit {
		filter.Limit = ports.MaxPageLimit
	}

	filter = s.policy.Scope(actor, filter)
	return s.repo.List(ctx, filter)
}

func (s *PostService) Get(ctx context.Context, actor domain.Principal, id string) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionShow, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Create(ctx context.Context, actor domain.Principal, input ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Body:      input.Body,
		CreatedBy: actor.UserID(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.authorize(actor, policy.ActionCreate, post); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("user_id", actor.UserID()).Msg("post created")
	s.record(created.ID, actor, domain.ActivityCreated, now)
	return created, nil
}

func (s *PostService) Update(ctx context.Context, actor domain.Principal, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionUpdate, post); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.Title = input.Title
	post.Body = input.Body
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, err
	}

	s.record(post.ID, actor, domain.ActivityUpdated, now)
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, policy.ActionDestroy, post); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return err
	}

	s.record(post.ID, actor, domain.ActivityDeleted, time.Now().UTC())
	return nil
}

// Activity returns recent audit entries for a post the actor may show.
func (s *PostService) Activity(ctx context.Context, actor domain.Principal, postID string, limit int) ([]*domain.Activity, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionShow, post); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultActivityN
	}
	if limit > maxActivityN {
		limit = maxActivityN
	}
	return s.activity.ForPost(ctx, postID, limit)
}

func (s *PostService) authorize(actor domain.Principal, action policy.Action, post *domain.Post) error {
	err := s.policy.Authorize(actor, action, post)
	result := "allow"
	if errors.Is(err, domain.ErrForbidden) {
		result = "deny"
	}
	metrics.PolicyDecisionsTotal.WithLabelValues("post", string(action), result).Inc()
	return err
}

func (s *PostService) record(postID string, actor domain.Principal, verb domain.ActivityVerb, at time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		PostID:     postID,
		ActorID:    actor.UserID(),
		Verb:       verb,
		OccurredAt: at,
	})
}
