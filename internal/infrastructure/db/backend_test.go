package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/user-registry/internal/infrastructure/config"
	"github.com/99minutos/user-registry/internal/infrastructure/db/memory"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: config.BackendMemory}}

	s, err := Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.IsType(t, &memory.UserRepository{}, s.Repo)
	assert.Empty(t, s.Checks)
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: "etcd"}}

	_, err := Open(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "etcd")
}

func TestStore_CloseReverseOrder(t *testing.T) {
	var order []int
	s := &Store{closers: []func(context.Context) error{
		func(context.Context) error { order = append(order, 1); return nil },
		func(context.Context) error { order = append(order, 2); return nil },
	}}

	require.NoError(t, s.Close(context.Background()))
	assert.Equal(t, []int{2, 1}, order)
	require.NoError(t, s.Close(context.Background()))
	assert.Equal(t, []int{2, 1}, order)
}
