package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour)

	token, err := tg.GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tg.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenGenerator_ValidateAccessToken_WrongSecret(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour)
	other := NewTokenGenerator("other-secret", time.Hour)

	token, err := tg.GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestTokenGenerator_ValidateAccessToken_Expired(t *testing.T) {
	tg := NewTokenGenerator("test-secret", -time.Hour)

	token, err := tg.GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = tg.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestTokenGenerator_ValidateAccessToken_Garbage(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour)

	_, err := tg.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenGenerator_ValidateAccessToken_WrongType(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
		"type":    "refresh",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tg := NewTokenGenerator("test-secret", time.Hour)
	_, err = tg.ValidateAccessToken(signed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an access token")
}
