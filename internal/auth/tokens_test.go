package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func newTestService(t *testing.T, dur time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testKeyHex, dur)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RejectsBadKeys(t *testing.T) {
	_, err := NewTokenService("too-short", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenService(strings.Repeat("zz", 32), time.Hour)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "dana")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dana", claims.Nickname)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.Equal(t, tokenAudience, claims.Audience)
	assert.True(t, strings.HasPrefix(claims.TokenID, "token-"))
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	svc := newTestService(t, -time.Minute)

	token, err := svc.GenerateAccessToken("user-1", "dana")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_WrongKey(t *testing.T) {
	svc := newTestService(t, time.Hour)
	token, err := svc.GenerateAccessToken("user-1", "dana")
	require.NoError(t, err)

	otherKey := strings.Repeat("ab", 32)
	other, err := NewTokenService(otherKey, time.Hour)
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.VerifyAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestLoadOrGenerateKey(t *testing.T) {
	dir := t.TempDir()

	key1, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Len(t, key1, keyHexSize)

	// Second load returns the same persisted key.
	key2, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// The key must actually work as a token service key.
	_, err = NewTokenService(key1, time.Hour)
	assert.NoError(t, err)
}
