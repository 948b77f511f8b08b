package memory

import (
	"context"
	"sync"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

// Compile-time assertion: *UserRepository satisfies ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository keeps users in insertion order in a slice guarded by a
// sync.RWMutex. Lookups are linear scans.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository returns an empty repository ready for use.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make([]domain.User, 0, 16)}
}

// Add stores a copy of user at the end of the sequence and returns user.
func (r *UserRepository) Add(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *user)
	return user, nil
}

// FindByID returns a copy of the first user with the given id, or nil.
func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Remove replaces the sequence with one that omits every user with the given
// id. The old slice is left untouched.
func (r *UserRepository) Remove(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.users = kept
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func (r *UserRepository) MaxID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for i := range r.users {
		if r.users[i].ID > max {
			max = r.users[i].ID
		}
	}
	return max, nil
}
