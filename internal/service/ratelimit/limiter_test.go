package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterBurstThenDeny(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("1.2.3.4:monitor", 3, 0.001), "request %d inside burst", i)
	}
	assert.False(t, l.Allow("1.2.3.4:monitor", 3, 0.001))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := New()
	assert.True(t, l.Allow("a", 1, 0.001))
	assert.False(t, l.Allow("a", 1, 0.001))
	assert.True(t, l.Allow("b", 1, 0.001))
}
