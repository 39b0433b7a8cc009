package client

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerTrailingWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	got := make(chan int, 3)

	for i := 1; i <= 3; i++ {
		n := i
		d.Call(func() { got <- n })
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case n := <-got:
		assert.Equal(t, 3, n)
	case <-time.After(time.Second):
		t.Fatal("debounced call never fired")
	}

	// Only the last call of the burst runs.
	select {
	case n := <-got:
		t.Fatalf("unexpected extra call %d", n)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var fired int32
	d.Call(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestThrottlerLeadingEdgeWithCooldown(t *testing.T) {
	clock := newFakeClock()
	th := NewThrottler(time.Second)
	th.now = clock.now

	var runs int
	fn := func() { runs++ }

	require.True(t, th.Call(fn))
	assert.False(t, th.Call(fn))
	assert.Equal(t, 1, runs)

	clock.advance(2 * time.Second)
	assert.True(t, th.Call(fn))
	assert.Equal(t, 2, runs)
}

func TestThrottlerReset(t *testing.T) {
	clock := newFakeClock()
	th := NewThrottler(time.Minute)
	th.now = clock.now

	var runs int
	require.True(t, th.Call(func() { runs++ }))
	require.False(t, th.Call(func() { runs++ }))

	th.Reset()
	assert.True(t, th.Call(func() { runs++ }))
	assert.Equal(t, 2, runs)
}
