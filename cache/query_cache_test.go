package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFetchesOnceWhileFresh(t *testing.T) {
	c := New()
	var calls int32

	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "brands", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "brands:laptops", time.Minute, fetch)
		require.NoError(t, err)
		assert.Equal(t, "brands", v)
	}
	assert.EqualValues(t, 1, calls)
}

func TestGetRefetchesAfterStale(t *testing.T) {
	c := New()
	current := time.Now()
	c.now = func() time.Time { return current }

	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	v, err := c.Get(context.Background(), "tree", time.Minute, fetch)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	current = current.Add(2 * time.Minute)

	v, err = c.Get(context.Background(), "tree", time.Minute, fetch)
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)
}

func TestGetDeduplicatesConcurrentFetches(t *testing.T) {
	c := New()
	var calls int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "listing", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "listing:k", time.Minute, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "listing", v)
		}()
	}

	// give the goroutines time to pile onto the same key
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls)
}

func TestDistinctKeysAreIndependent(t *testing.T) {
	c := New()
	var calls int32

	fetch := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	_, err := c.Get(context.Background(), "brands:laptops", time.Minute, fetch)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "brands:phones", time.Minute, fetch)
	require.NoError(t, err)

	assert.EqualValues(t, 2, calls)
}

func TestErrorsAreNotCached(t *testing.T) {
	c := New()
	var calls int32
	boom := errors.New("db down")

	fetch := func(ctx context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	_, err := c.Get(context.Background(), "sellers:laptops", time.Minute, fetch)
	assert.ErrorIs(t, err, boom)

	v, err := c.Get(context.Background(), "sellers:laptops", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestInvalidateDropsOnlyThatKey(t *testing.T) {
	c := New()
	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	_, _ = c.Get(context.Background(), "a", time.Minute, fetch)
	_, _ = c.Get(context.Background(), "b", time.Minute, fetch)

	c.Invalidate("a")

	_, _ = c.Get(context.Background(), "a", time.Minute, fetch)
	_, _ = c.Get(context.Background(), "b", time.Minute, fetch)

	assert.EqualValues(t, 3, calls)
}
