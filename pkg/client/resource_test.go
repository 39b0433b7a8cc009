package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newFakeClock() *fakeClock               { return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)} }

func TestResourceServesFreshValueWithoutRefetch(t *testing.T) {
	clock := newFakeClock()
	var calls int32
	r := NewResource(func(ctx context.Context) (interface{}, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}, time.Minute, time.Hour)
	r.now = clock.now

	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	clock.advance(30 * time.Second)
	v, err = r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestResourceStaleWhileRevalidate(t *testing.T) {
	clock := newFakeClock()
	fetched := make(chan int, 2)
	var calls int32
	r := NewResource(func(ctx context.Context) (interface{}, error) {
		n := int(atomic.AddInt32(&calls, 1))
		fetched <- n
		return n, nil
	}, time.Minute, time.Hour)
	r.now = clock.now

	_, err := r.Get(context.Background())
	require.NoError(t, err)
	<-fetched

	// Past the fresh window: the stale value is returned immediately and a
	// background refresh updates the cache.
	clock.advance(2 * time.Minute)
	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	<-fetched
	require.Eventually(t, func() bool {
		cached, ok := r.Peek()
		return ok && cached == 2
	}, time.Second, 5*time.Millisecond)
}

func TestResourceBlocksPastMaxAge(t *testing.T) {
	clock := newFakeClock()
	var calls int32
	r := NewResource(func(ctx context.Context) (interface{}, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}, time.Minute, time.Hour)
	r.now = clock.now

	_, err := r.Get(context.Background())
	require.NoError(t, err)

	clock.advance(2 * time.Hour)
	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestResourceInvalidateSupersedesInflightFetch(t *testing.T) {
	clock := newFakeClock()
	started := make(chan struct{})
	release := make(chan struct{})
	r := NewResource(func(ctx context.Context) (interface{}, error) {
		close(started)
		<-release
		return "old", nil
	}, time.Minute, time.Hour)
	r.now = clock.now

	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := r.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "old", v)
	}()

	// Invalidate while the first fetch is still in flight; its result must
	// not repopulate the cache.
	<-started
	r.Invalidate()
	close(release)
	<-done

	_, ok := r.Peek()
	assert.False(t, ok)
}

func TestResourceKeepsStaleValueWhenRefreshFails(t *testing.T) {
	clock := newFakeClock()
	var calls int32
	attempted := make(chan struct{}, 2)
	r := NewResource(func(ctx context.Context) (interface{}, error) {
		defer func() { attempted <- struct{}{} }()
		if atomic.AddInt32(&calls, 1) > 1 {
			return nil, assert.AnError
		}
		return "v1", nil
	}, time.Minute, time.Hour)
	r.now = clock.now

	_, err := r.Get(context.Background())
	require.NoError(t, err)
	<-attempted

	clock.advance(2 * time.Minute)
	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	<-attempted
	cached, ok := r.Peek()
	require.True(t, ok)
	assert.Equal(t, "v1", cached)
}
