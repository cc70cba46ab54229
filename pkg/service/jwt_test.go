package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "refill-system/pkg/errors"
)

const testSecret = "unit-test-secret"

func newTestJWTService(accessTTL, refreshTTL time.Duration) JWTService {
	return NewJWTService(testSecret, accessTTL, refreshTTL, zap.NewNop())
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(time.Minute, time.Hour)

	access, refresh, err := svc.GenerateTokens(42, 3, "session-abc")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), accessClaims.UserID)
	assert.Equal(t, uint64(3), accessClaims.RoleID)
	assert.Equal(t, "session-abc", accessClaims.ID)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", refreshClaims.ID)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute, -time.Minute)

	access, _, err := svc.GenerateTokens(1, 1, "expired-session")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenSignedWithDifferentKey(t *testing.T) {
	issuer := NewJWTService("other-secret", time.Minute, time.Hour, zap.NewNop())
	verifier := newTestJWTService(time.Minute, time.Hour)

	access, _, err := issuer.GenerateTokens(1, 1, "s")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestJWTService(time.Minute, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenTTLAccessors(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 24*time.Hour)

	assert.Equal(t, 15*time.Minute, svc.GetAccessTokenTTL())
	assert.Equal(t, 24*time.Hour, svc.GetRefreshTokenTTL())
}
