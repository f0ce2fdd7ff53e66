package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewService("test-secret")

	token, err := service.GenerateToken("user-123", "ravi@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ravi@example.com", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := NewService("secret-a").GenerateToken("user-123", "ravi@example.com")
	require.NoError(t, err)

	_, err = NewService("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := NewService("test-secret").VerifyToken("not.a.jwt")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, CheckPassword(hashed, "s3cret-pass"))
	assert.False(t, CheckPassword(hashed, "wrong-pass"))
}
