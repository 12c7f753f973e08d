package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskzero/supplier-registry/internal/config"
	"github.com/riskzero/supplier-registry/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		Issuer:                "supplier-registry",
		Audience:              "supplier-registry-clients",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
	}
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	user := &domain.User{ID: 42, Email: "a@x.com"}

	token, expiresAt, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "supplier-registry", claims.Issuer)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	token, _, err := tm.GenerateAccessToken(&domain.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	other := testAuthConfig()
	other.JWTSecret = "different-secret"
	_, err = NewTokenManager(other).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongIssuerAndAudience(t *testing.T) {
	issuerCfg := testAuthConfig()
	issuerCfg.Issuer = "someone-else"
	token, _, err := NewTokenManager(issuerCfg).GenerateAccessToken(&domain.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	_, err = NewTokenManager(testAuthConfig()).ParseToken(token)
	assert.Error(t, err)

	audienceCfg := testAuthConfig()
	audienceCfg.Audience = "other-clients"
	token, _, err = NewTokenManager(audienceCfg).GenerateAccessToken(&domain.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	_, err = NewTokenManager(testAuthConfig()).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testAuthConfig()
	claims := &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = NewTokenManager(cfg).ParseToken(expired)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSigningMethod(t *testing.T) {
	cfg := testAuthConfig()
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager(cfg).ParseToken(unsigned)
	assert.Error(t, err)
}

func TestGenerateRefreshTokenIsOpaqueAndUnique(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	first := tm.GenerateRefreshToken()
	second := tm.GenerateRefreshToken()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
