package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*MemoryStore, *time.Time) {
	t.Helper()
	s := NewMemoryStore(0)
	t.Cleanup(func() { _ = s.Close() })
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestMemoryStore_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns what was set until ttl passes", func(t *testing.T) {
		s, now := newTestStore(t)
		require.NoError(t, s.Set(ctx, "org1:user1", []byte(`{"a":1}`), time.Minute))

		got, ok, err := s.Get(ctx, "org1:user1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"a":1}`, string(got))

		*now = now.Add(time.Minute)
		_, ok, err = s.Get(ctx, "org1:user1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stored value is copied", func(t *testing.T) {
		s, _ := newTestStore(t)
		buf := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", buf, 0))
		buf[0] = 'z'

		got, _, _ := s.Get(ctx, "k")
		assert.Equal(t, "abc", string(got))
	})

	t.Run("delete prefix", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.Set(ctx, "org1:a", []byte("1"), 0))
		require.NoError(t, s.Set(ctx, "org1:b", []byte("2"), 0))
		require.NoError(t, s.Set(ctx, "org2:a", []byte("3"), 0))

		require.NoError(t, s.DeletePrefix(ctx, "org1:"))

		_, ok, _ := s.Get(ctx, "org1:a")
		assert.False(t, ok)
		_, ok, _ = s.Get(ctx, "org2:a")
		assert.True(t, ok)
	})

	t.Run("sweep removes expired entries", func(t *testing.T) {
		s, now := newTestStore(t)
		require.NoError(t, s.Set(ctx, "short", []byte("1"), time.Second))
		require.NoError(t, s.Set(ctx, "forever", []byte("1"), 0))

		*now = now.Add(time.Hour)
		s.sweep()

		assert.Equal(t, 1, s.Len())
	})
}

func TestMemoryStore_Idempotency(t *testing.T) {
	ctx := context.Background()
	s, now := newTestStore(t)

	claimed, err := s.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = s.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, claimed)

	done, err := s.IsProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, done)

	require.NoError(t, s.Release(ctx, "evt-1"))
	claimed, err = s.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed, "released claim can be taken again")

	*now = now.Add(2 * time.Hour)
	claimed, err = s.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed, "expired claim can be taken again")
}

func TestMemoryStore_ConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := s.MarkProcessed(ctx, "same", time.Minute)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestNewStores_WithoutRedis(t *testing.T) {
	stores := NewStores(nil, zap.NewNop())
	defer stores.Close()

	assert.IsType(t, &MemoryStore{}, stores.Dashboard)
	assert.IsType(t, &MemoryStore{}, stores.Idempotency)
	assert.NotSame(t, stores.Dashboard, stores.Idempotency)
}
