package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gmc-client/internal/mock"
	"github.com/MKhiriev/gmc-client/internal/store"
	"github.com/MKhiriev/gmc-client/models"
)

func TestManager_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	m := NewManager(kv)

	assert.False(t, m.IsLoggedIn(ctx))

	want := models.Session{UserID: "12", Token: "tok", MfaPending: true}
	require.NoError(t, m.Save(ctx, want))
	assert.True(t, m.IsLoggedIn(ctx))

	got, ok, err := m.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	v, _, _ := kv.Get(ctx, KeyMfaRequired)
	assert.Equal(t, "true", v)

	require.NoError(t, m.Clear(ctx))
	assert.False(t, m.IsLoggedIn(ctx))
	for _, key := range []string{KeyUserID, KeyToken, KeyMfaRequired} {
		_, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	// повторная очистка ничего не ломает
	require.NoError(t, m.Clear(ctx))
}

// TestManager_IsLoggedInFollowsStore checks that the manager never caches:
// a token written behind its back is visible immediately.
func TestManager_IsLoggedInFollowsStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	m := NewManager(kv)

	require.NoError(t, kv.Set(ctx, KeyToken, "external"))
	assert.True(t, m.IsLoggedIn(ctx))

	token, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "external", token)

	require.NoError(t, kv.Remove(ctx, KeyToken))
	assert.False(t, m.IsLoggedIn(ctx))
}

func TestManager_LoadMalformedMfaFlag(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, KeyToken, "t"))
	require.NoError(t, kv.Set(ctx, KeyMfaRequired, "maybe"))

	s, ok, err := NewManager(kv).Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, s.MfaPending)
}

func TestManager_StoreErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	m := NewManager(kv)

	kv.EXPECT().Get(gomock.Any(), KeyToken).Return("", false, assert.AnError).Times(2)
	assert.False(t, m.IsLoggedIn(ctx))
	_, err := m.Token(ctx)
	assert.ErrorIs(t, err, assert.AnError)

	kv.EXPECT().Set(gomock.Any(), KeyUserID, "1").Return(assert.AnError)
	assert.ErrorIs(t, m.Save(ctx, models.Session{UserID: "1"}), assert.AnError)

	kv.EXPECT().Remove(gomock.Any(), KeyUserID).Return(nil)
	kv.EXPECT().Remove(gomock.Any(), KeyToken).Return(assert.AnError)
	kv.EXPECT().Remove(gomock.Any(), KeyMfaRequired).Return(nil)
	assert.ErrorIs(t, m.Clear(ctx), assert.AnError)
}
