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

// UserService governs account administration. Listing the directory is
// admin-only; single-account reads and updates are admin-or-self via the user
// policy. Deleting a user leaves their posts in place: created_by stays as a
// weak reference.
type UserService struct {
	repo   ports.UserRepository
	policy *policy.Engine[*domain.User, ports.ListUsersFilter]
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, engine *policy.Engine[*domain.User, ports.ListUsersFilter], logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, policy: engine, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor domain.Principal, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	if !actor.IsAdmin() {
		metrics.PolicyDecisionsTotal.WithLabelValues("user", "index", "deny").Inc()
		return nil, 0, domain.ErrForbidden
	}
	metrics.PolicyDecisionsTotal.WithLabelValues("user", "index", "allow").Inc()

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

func (s *UserService) Get(ctx context.Context, actor domain.Principal, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionShow, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, actor domain.Principal, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionUpdate, user); err != nil {
		return nil, err
	}

	// Role escalation is a privileged action regardless of ownership. A
	// payload restating the current role is not a role change.
	if input.Role != "" && input.Role != user.Role {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		if !actor.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		user.Role = input.Role
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, policy.ActionDestroy, user); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.UserID()).Msg("user deleted")
	return nil
}

func (s *UserService) authorize(actor domain.Principal, action policy.Action, user *domain.User) error {
	err := s.policy.Authorize(actor, action, user)
	result := "allow"
	if errors.Is(err, domain.ErrForbidden) {
		result = "deny"
	}
	metrics.PolicyDecisionsTotal.WithLabelValues("user", string(action), result).Inc()
	return err
}
