package service

import (
	"context"
	"fmt"
	"time"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

// IDSource hands out user identifiers.
type IDSource interface {
	Next() int64
}

// ResumableIDSource is an IDSource that can be moved past ids issued by an
// earlier process.
type ResumableIDSource interface {
	IDSource
	Observe(id int64)
}

// ResumeIDs advances ids past the largest id already stored in repo.
func ResumeIDs(ctx context.Context, repo ports.UserRepository, ids ResumableIDSource) error {
	max, err := repo.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("resume ids: %w", err)
	}
	ids.Observe(max)
	return nil
}

// Factory builds user records. It reads the id source first and the wall
// clock second, so CreatedAt may trail the id's time basis slightly.
type Factory struct {
	ids IDSource
	now func() time.Time
}

func NewFactory(ids IDSource) *Factory {
	return &Factory{ids: ids, now: time.Now}
}

// Create returns a new record carrying name and email unmodified. CreatedAt
// is kept to millisecond precision, the coarsest any backend stores.
func (f *Factory) Create(name, email string) *domain.User {
	id := f.ids.Next()
	return domain.NewUser(id, name, email, f.now().UTC().Truncate(time.Millisecond))
}
