//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/99minutos/user-registry/internal/core/domain"
)

func newTestRepo(t *testing.T) (context.Context, *UserRepository) {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, Config{URL: url})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return ctx, NewUserRepository(pool)
}

func TestIntegrationUserRepository_Lifecycle(t *testing.T) {
	ctx, repo := newTestRepo(t)
	id := time.Now().UnixNano()
	t.Cleanup(func() { _ = repo.Remove(ctx, id) })

	before, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}

	created := time.Now().UTC().Truncate(time.Microsecond)
	if _, err := repo.Add(ctx, domain.NewUser(id, "first", "first@example.com", created)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := repo.Add(ctx, domain.NewUser(id, "second", "second@example.com", created)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := repo.FindByID(ctx, id)
	if err != nil || got == nil {
		t.Fatalf("FindByID = (%v, %v)", got, err)
	}
	if got.Name != "first" || !got.CreatedAt.Equal(created) {
		t.Errorf("expected first inserted record, got %+v", got)
	}

	if max, err := repo.MaxID(ctx); err != nil || max < id {
		t.Errorf("MaxID = (%d, %v), want at least %d", max, err, id)
	}

	if n, _ := repo.Count(ctx); n != before+2 {
		t.Errorf("Count = %d, want %d", n, before+2)
	}

	if err := repo.Remove(ctx, id); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got, _ := repo.FindByID(ctx, id); got != nil {
		t.Errorf("expected absence after remove, got %+v", got)
	}
	if n, _ := repo.Count(ctx); n != before {
		t.Errorf("Count = %d, want %d", n, before)
	}
}
