package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	r := NewRegistry(time.Hour)

	c := r.Create()
	got, ok := r.Get(c.ID())

	require.True(t, ok)
	assert.Same(t, c, got)
	assert.NotEqual(t, c.ID(), r.Create().ID())
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.Delete(c.ID()))
	assert.False(t, r.Delete(c.ID()))
	_, ok = r.Get(c.ID())
	assert.False(t, ok)
}

func TestRegistry_SweepRemovesIdleCarts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Hour)
	r.now = func() time.Time { return now }

	idle := r.Create()
	now = now.Add(50 * time.Minute)
	active := r.Create()
	now = now.Add(20 * time.Minute)

	removed := r.Sweep(now)

	assert.Equal(t, 1, removed)
	_, ok := r.Get(idle.ID())
	assert.False(t, ok)
	_, ok = r.Get(active.ID())
	assert.True(t, ok)
}

func TestRegistry_ZeroTTLKeepsCarts(t *testing.T) {
	r := NewRegistry(0)
	r.Create()

	assert.Zero(t, r.Sweep(time.Now().Add(1000*time.Hour)))
	assert.Equal(t, 1, r.Len())
}
