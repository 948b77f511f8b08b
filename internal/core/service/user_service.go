package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-registry/internal/api/metrics"
	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

type UserService struct {
	factory *Factory
	repo    ports.UserRepository
	logger  zerolog.Logger
}

func NewUserService(factory *Factory, repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{factory: factory, repo: repo, logger: logger}
}

func (s *UserService) Create(name, email string) *domain.User {
	return s.factory.Create(name, email)
}

// Register builds a record through the factory and appends it to the store.
func (s *UserService) Register(ctx context.Context, name, email string) (*domain.User, error) {
	return s.Add(ctx, s.factory.Create(name, email))
}

// Add appends user to the store. Duplicate ids are accepted.
func (s *UserService) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	start := time.Now()
	added, err := s.repo.Add(ctx, user)
	metrics.StoreOperationDuration.WithLabelValues("add").Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to add user")
		return nil, fmt.Errorf("add user: %w", err)
	}

	metrics.UsersAddedTotal.Inc()
	s.logger.Info().Int64("user_id", added.ID).Str("email", added.Email).Msg("user added")
	return added, nil
}

// Get returns the first user with the given id, or nil when there is none.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	start := time.Now()
	user, err := s.repo.FindByID(ctx, id)
	metrics.StoreOperationDuration.WithLabelValues("find").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	if user == nil {
		metrics.UserLookupsTotal.WithLabelValues("absent").Inc()
		s.logger.Debug().Int64("user_id", id).Msg("user not found")
		return nil, nil
	}
	metrics.UserLookupsTotal.WithLabelValues("found").Inc()
	return user, nil
}

// Remove drops every user with the given id. Unknown ids are not an error.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.repo.Remove(ctx, id)
	metrics.StoreOperationDuration.WithLabelValues("remove").Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to remove user")
		return fmt.Errorf("remove user %d: %w", id, err)
	}

	metrics.UsersRemovedTotal.Inc()
	s.logger.Info().Int64("user_id", id).Msg("user removed")
	return nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := s.repo.Count(ctx)
	metrics.StoreOperationDuration.WithLabelValues("count").Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	metrics.UsersStored.Set(float64(n))
	return n, nil
}
