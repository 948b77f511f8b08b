package ports

import (
	"context"

	"github.com/99minutos/user-registry/internal/core/domain"
)

// UserService defines the use cases exposed to the HTTP API and the CLI.
type UserService interface {
	// Create builds a new record without storing it.
	Create(name, email string) *domain.User
	// Register creates a record and adds it to the store.
	Register(ctx context.Context, name, email string) (*domain.User, error)
	Add(ctx context.Context, user *domain.User) (*domain.User, error)
	// Get returns nil when no user has the id.
	Get(ctx context.Context, id int64) (*domain.User, error)
	Remove(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
