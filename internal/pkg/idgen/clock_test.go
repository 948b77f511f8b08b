package idgen

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClock_StartsAtUnixSecond(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)
	c := New(WithTimeSource(fixedTime(now)))

	assert.Equal(t, now.Unix(), c.Next())
}

func TestClock_SameSecondStillUnique(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := New(WithTimeSource(fixedTime(now)))

	first := c.Next()
	second := c.Next()
	third := c.Next()

	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestClock_ClockStepsBackwards(t *testing.T) {
	current := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := New(WithTimeSource(func() time.Time { return current }))

	first := c.Next()
	current = current.Add(-time.Hour)
	second := c.Next()

	assert.Greater(t, second, first)
}

func TestClock_JumpsForwardWithTime(t *testing.T) {
	current := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := New(WithTimeSource(func() time.Time { return current }))

	_ = c.Next()
	current = current.Add(10 * time.Second)

	assert.Equal(t, current.Unix(), c.Next())
}

func TestClock_ObserveContinuesAfterRestart(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	before := New(WithTimeSource(fixedTime(start)))

	issued := make(map[int64]struct{})
	var highest int64
	for i := 0; i < 5; i++ {
		id := before.Next()
		issued[id] = struct{}{}
		highest = id
	}

	after := New(WithTimeSource(fixedTime(start.Add(time.Second))))
	after.Observe(highest)

	next := after.Next()
	assert.NotContains(t, issued, next)
	assert.Equal(t, highest+1, next)
}

func TestClock_ObserveNeverMovesBackwards(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := New(WithTimeSource(fixedTime(now)))

	first := c.Next()
	c.Observe(first - 100)

	assert.Equal(t, first+1, c.Next())
}

func TestClock_ConcurrentCallersGetDistinctIDs(t *testing.T) {
	c := New(WithTimeSource(fixedTime(time.Unix(1_700_000_000, 0))))

	const workers, perWorker = 8, 250
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := c.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}
