package auth

import (
	"testing"
	"time"

	"github.com/finvoice/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-jwt-signing-only",
		RefreshSecret:          "test-refresh-secret-key-for-jwt-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "finvoice-test",
		MaxRefreshCount:        2,
	})
}

func testTokenInput() GenerateTokenInput {
	return GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Username: "accounts.clerk",
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := testTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.TenantID.String(), claims.TenantID)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, "accounts.clerk", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
	assert.Equal(t, 0, refreshClaims.RefreshCount)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(testTokenInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-signing-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "finvoice-test",
		MaxRefreshCount:        2,
	})

	pair, err := other.GenerateTokenPair(testTokenInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenPair_IncrementsCountUntilLimit(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(testTokenInput())
	require.NoError(t, err)

	// MaxRefreshCount is 2: two refreshes succeed, the third is rejected.
	first, err := svc.RefreshTokenPair(pair.RefreshToken)
	require.NoError(t, err)
	second, err := svc.RefreshTokenPair(first.RefreshToken)
	require.NoError(t, err)

	_, err = svc.RefreshTokenPair(second.RefreshToken)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestRefreshTokenPair_PreservesIdentity(t *testing.T) {
	svc := newTestJWTService()
	input := testTokenInput()
	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokenPair(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.TenantID.String(), claims.TenantID)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, input.Username, claims.Username)
}

func TestClaimsHelpers(t *testing.T) {
	svc := newTestJWTService()
	input := testTokenInput()
	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	tenantID, err := claims.GetTenantUUID()
	require.NoError(t, err)
	assert.Equal(t, input.TenantID, tenantID)

	userID, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, userID)

	assert.False(t, claims.GetIssuedAtTime().IsZero())
	assert.Greater(t, claims.GetRemainingTTL(), time.Duration(0))
}
