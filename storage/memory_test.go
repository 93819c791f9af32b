package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get("k")
	require.False(t, ok)

	s.Set("k", `{"a":1}`, time.Hour)
	v, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, v)

	s.Remove("k")
	_, ok = s.Get("k")
	require.False(t, ok)

	// Removing twice is fine.
	s.Remove("k")
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.Now = func() time.Time { return now }

	s.Set("session", "x", 30*24*time.Hour)

	now = now.Add(29 * 24 * time.Hour)
	_, ok := s.Get("session")
	require.True(t, ok)

	now = now.Add(24 * time.Hour)
	_, ok = s.Get("session")
	require.False(t, ok)
}

func TestMemoryStore_NonPositiveTTLRemoves(t *testing.T) {
	s := NewMemoryStore()
	s.Set("k", "v", time.Hour)
	s.Set("k", "v2", 0)

	_, ok := s.Get("k")
	require.False(t, ok)
}
