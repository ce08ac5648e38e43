package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory(10*time.Minute, newFakeClock())

	_, ok := m.Get(context.Background(), KeyLanding)
	assert.False(t, ok)
}

func TestMemory_SetGetWithinTTL(t *testing.T) {
	clock := newFakeClock()
	m := NewMemory(10*time.Minute, clock)
	ctx := context.Background()

	m.Set(ctx, KeyLanding, "<html>v1</html>")

	// Still fresh just before expiry.
	clock.Advance(10*time.Minute - time.Second)
	html, ok := m.Get(ctx, KeyLanding)
	require.True(t, ok)
	assert.Equal(t, "<html>v1</html>", html)
}

func TestMemory_ExpiresAfterTTL(t *testing.T) {
	clock := newFakeClock()
	m := NewMemory(10*time.Minute, clock)
	ctx := context.Background()

	m.Set(ctx, KeyLanding, "<html>v1</html>")
	clock.Advance(10 * time.Minute)

	_, ok := m.Get(ctx, KeyLanding)
	assert.False(t, ok, "entry at its expiry instant is stale")
}

func TestMemory_RecomputeAfterExpiryServesNewValue(t *testing.T) {
	clock := newFakeClock()
	m := NewMemory(10*time.Minute, clock)
	ctx := context.Background()

	m.Set(ctx, KeyLanding, "<html>v1</html>")
	clock.Advance(11 * time.Minute)
	m.Set(ctx, KeyLanding, "<html>v2</html>")

	html, ok := m.Get(ctx, KeyLanding)
	require.True(t, ok)
	assert.Equal(t, "<html>v2</html>", html)
}

func TestMemory_LastWriteWins(t *testing.T) {
	m := NewMemory(10*time.Minute, newFakeClock())
	ctx := context.Background()

	// Two concurrent misses both render and both store.
	m.Set(ctx, KeyLanding, "<html>first</html>")
	m.Set(ctx, KeyLanding, "<html>second</html>")

	html, ok := m.Get(ctx, KeyLanding)
	require.True(t, ok)
	assert.Equal(t, "<html>second</html>", html)
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory(10*time.Minute, newFakeClock())
	ctx := context.Background()

	m.Set(ctx, KeyLanding, "<html>v1</html>")
	m.Set(ctx, "page:other", "<html>other</html>")
	m.Clear(ctx)

	_, ok := m.Get(ctx, KeyLanding)
	assert.False(t, ok)
	_, ok = m.Get(ctx, "page:other")
	assert.False(t, ok)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory(10*time.Minute, newFakeClock())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Set(ctx, KeyLanding, "<html>v</html>")
			m.Get(ctx, KeyLanding)
		}()
	}
	wg.Wait()

	html, ok := m.Get(ctx, KeyLanding)
	require.True(t, ok)
	assert.Equal(t, "<html>v</html>", html)
}
