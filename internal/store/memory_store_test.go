package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "token", "abc"))
	v, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.Set(ctx, "token", "def"))
	v, _, _ = s.Get(ctx, "token")
	assert.Equal(t, "def", v)

	require.NoError(t, s.Remove(ctx, "token"))
	_, ok, _ = s.Get(ctx, "token")
	assert.False(t, ok)

	// повторное удаление не ошибка
	require.NoError(t, s.Remove(ctx, "token"))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			assert.NoError(t, s.Set(ctx, key, "v"))
			_, ok, err := s.Get(ctx, key)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}
