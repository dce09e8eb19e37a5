package jwt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-0123456789"

func TestGenerateAccessToken(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken(7, "rh.admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "rh.admin", claims["username"])
	assert.EqualValues(t, 7, claims["user_id"])
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService(testSecret, "forever")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)
	ctx := t.Context()

	token, expiresAt, err := svc.GenerateAccessToken(1, "a.user")
	require.NoError(t, err)
	assert.False(t, svc.IsTokenRevoked(token))

	require.NoError(t, svc.RevokeToken(ctx, token, expiresAt))
	assert.True(t, svc.IsTokenRevoked(token))

	// expired entries are pruned
	require.NoError(t, svc.RevokeToken(ctx, "stale", time.Now().Add(-time.Minute).Unix()))
	require.NoError(t, svc.RevokeToken(ctx, "other", expiresAt))
	assert.False(t, svc.IsTokenRevoked("stale"))
	assert.True(t, svc.IsTokenRevoked(token))
}

type memStore struct {
	saved map[string]time.Time
	err   error
}

func (m *memStore) SaveRevocation(_ context.Context, hash string, expiresAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	if m.saved == nil {
		m.saved = map[string]time.Time{}
	}
	m.saved[hash] = expiresAt
	return nil
}

func (m *memStore) ActiveRevocations(context.Context) (map[string]time.Time, error) {
	return m.saved, m.err
}

func TestRevokeToken_SurvivesRestart(t *testing.T) {
	store := &memStore{}
	first, err := NewJWTService(testSecret, "1h", WithRevocationStore(store))
	require.NoError(t, err)

	token, expiresAt, err := first.GenerateAccessToken(1, "a.user")
	require.NoError(t, err)
	require.NoError(t, first.RevokeToken(t.Context(), token, expiresAt))

	// Only the hash is persisted.
	require.Contains(t, store.saved, HashToken(token))
	assert.NotContains(t, store.saved, token)

	second, err := NewJWTService(testSecret, "1h", WithRevocationStore(store))
	require.NoError(t, err)
	assert.False(t, second.IsTokenRevoked(token))
	require.NoError(t, second.Restore(t.Context()))
	assert.True(t, second.IsTokenRevoked(token))
}

func TestRevokeToken_StoreFailureStillBlocks(t *testing.T) {
	boom := errors.New("db down")
	svc, err := NewJWTService(testSecret, "1h", WithRevocationStore(&memStore{err: boom}))
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken(1, "a.user")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RevokeToken(t.Context(), token, expiresAt), boom)
	assert.True(t, svc.IsTokenRevoked(token))
	assert.ErrorIs(t, svc.Restore(t.Context()), boom)
}

func TestRestore_WithoutStore(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)
	assert.NoError(t, svc.Restore(t.Context()))
}
