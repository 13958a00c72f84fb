package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:     "test-secret",
		Issuer:     "test-issuer",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

func TestGeneratePairAndValidate(t *testing.T) {
	manager := NewManager(testConfig())

	pair, err := manager.GeneratePair("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.NotEmpty(t, pair.RefreshID)
	require.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := manager.ValidateAccess(pair.Access)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, TypeAccess, claims.TokenType)
	require.Equal(t, "test-issuer", claims.Issuer)

	refreshClaims, err := manager.ValidateRefresh(pair.Refresh)
	require.NoError(t, err)
	require.Equal(t, "user-123", refreshClaims.UserID)
	require.Equal(t, pair.RefreshID, refreshClaims.ID)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	manager := NewManager(testConfig())

	pair, err := manager.GeneratePair("user-123")
	require.NoError(t, err)

	_, err = manager.ValidateRefresh(pair.Access)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.ValidateAccess(pair.Refresh)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokensRejected(t *testing.T) {
	manager := NewManager(testConfig())

	for _, bad := range []string{"", "not.a.token", "eyJhbGciOiJIUzI1NiJ9.garbage"} {
		_, err := manager.ValidateAccess(bad)
		require.Error(t, err, "token %q should be rejected", bad)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	manager := NewManager(testConfig())

	other := testConfig()
	other.Secret = "different-secret"
	otherManager := NewManager(other)

	pair, err := manager.GeneratePair("user-123")
	require.NoError(t, err)

	_, err = otherManager.ValidateAccess(pair.Access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTTL = time.Millisecond
	manager := NewManager(cfg)

	access, err := manager.GenerateAccess("user-123")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = manager.ValidateAccess(access)
	require.ErrorIs(t, err, ErrExpiredToken)
}
