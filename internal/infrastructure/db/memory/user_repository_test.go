package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/user-registry/internal/core/domain"
)

var created = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func user(id int64, name string) *domain.User {
	return domain.NewUser(id, name, name+"@example.com", created)
}

func TestUserRepository_EmptyLookup(t *testing.T) {
	repo := NewUserRepository()

	for _, id := range []int64{0, 1, -5, 1 << 40} {
		u, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, u)
	}
}

func TestUserRepository_CountFollowsAdds(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	for i := int64(1); i <= 5; i++ {
		_, err := repo.Add(ctx, user(i, "u"))
		require.NoError(t, err)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
}

func TestUserRepository_AddThenFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	in := user(10, "jane")

	out, err := repo.Add(ctx, in)
	require.NoError(t, err)
	assert.Same(t, in, out)

	got, err := repo.FindByID(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *in, *got)
}

func TestUserRepository_StoredCopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	in := user(10, "jane")
	_, _ = repo.Add(ctx, in)

	in.Name = "changed after add"
	got, _ := repo.FindByID(ctx, 10)
	assert.Equal(t, "jane", got.Name)

	got.Name = "changed after find"
	again, _ := repo.FindByID(ctx, 10)
	assert.Equal(t, "jane", again.Name)
}

func TestUserRepository_DuplicatesReturnFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, _ = repo.Add(ctx, user(3, "first"))
	_, _ = repo.Add(ctx, user(3, "second"))

	n, _ := repo.Count(ctx)
	assert.EqualValues(t, 2, n)

	got, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
}

func TestUserRepository_RemoveDropsAllMatches(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, _ = repo.Add(ctx, user(1, "a"))
	_, _ = repo.Add(ctx, user(2, "b"))
	_, _ = repo.Add(ctx, user(1, "c"))
	_, _ = repo.Add(ctx, user(3, "d"))

	require.NoError(t, repo.Remove(ctx, 1))

	n, _ := repo.Count(ctx)
	assert.EqualValues(t, 2, n)
	got, _ := repo.FindByID(ctx, 1)
	assert.Nil(t, got)

	// Remaining records keep their relative order.
	assert.Equal(t, []string{"b", "d"}, []string{repo.users[0].Name, repo.users[1].Name})
}

func TestUserRepository_RemoveUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, _ = repo.Add(ctx, user(1, "a"))

	require.NoError(t, repo.Remove(ctx, 99))

	n, _ := repo.Count(ctx)
	assert.EqualValues(t, 1, n)
}

func TestUserRepository_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, _ = repo.Add(ctx, user(id, "x"))
			_, _ = repo.FindByID(ctx, id)
			if id%2 == 0 {
				_ = repo.Remove(ctx, id)
			}
		}(int64(i))
	}
	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)
}

func TestUserRepository_MaxID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	max, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Zero(t, max)

	for _, id := range []int64{1_700_000_003, 1_700_000_009, 1_700_000_001} {
		_, err := repo.Add(ctx, user(id, "u"))
		require.NoError(t, err)
	}
	max, err = repo.MaxID(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1_700_000_009, max)

	require.NoError(t, repo.Remove(ctx, 1_700_000_009))
	max, err = repo.MaxID(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1_700_000_003, max)
}
