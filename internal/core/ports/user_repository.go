package ports

import (
	"context"

	"github.com/99minutos/user-registry/internal/core/domain"
)

// UserRepository is an ordered collection of users.
//
// Implementations keep insertion order and do not reject duplicate ids.
// A lookup that matches nothing returns (nil, nil); errors are reserved for
// backend failures.
type UserRepository interface {
	// Add appends user and returns the same record.
	Add(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID returns the first stored user with the given id.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Remove drops every user with the given id. Unknown ids are a no-op.
	Remove(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// MaxID returns the largest stored id, or 0 when the store is empty.
	MaxID(ctx context.Context) (int64, error)
}
