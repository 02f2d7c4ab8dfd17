package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_BurstThenRejects(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
		Burst:   3,
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("client-a"), "request %d within burst", i+1)
	}
	assert.False(t, l.Allow("client-a"))
}

func TestLimiter_PerClientBuckets(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
		Burst:   1,
	})
	defer l.Stop()

	assert.True(t, l.Allow("client-a"))
	assert.False(t, l.Allow("client-a"))
	assert.True(t, l.Allow("client-b"))
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("client-a"))
	}
}

func TestLimiter_Refills(t *testing.T) {
	// 100 tokens/second so the bucket refills within the test.
	l := NewLimiter(&Config{
		Enabled: true,
		Limit:   100,
		Window:  time.Second,
		Burst:   1,
	})
	defer l.Stop()

	assert.True(t, l.Allow("client-a"))
	assert.False(t, l.Allow("client-a"))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, l.Allow("client-a"))
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	assert.True(t, l.Allow("client-a"))
}
