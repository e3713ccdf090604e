package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "producer@test.com", "producer", testSecret, 24)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateJWT(t *testing.T) {
	t.Run("Success - Valid token round trip", func(t *testing.T) {
		token, err := GenerateJWT(42, "producer@test.com", "producer", testSecret, 24)
		require.NoError(t, err)

		claims, err := ValidateJWT(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "producer@test.com", claims.Email)
		assert.Equal(t, "producer", claims.Role)
	})

	t.Run("Failure - Wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(42, "producer@test.com", "producer", testSecret, 24)
		require.NoError(t, err)

		_, err = ValidateJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Failure - Expired token", func(t *testing.T) {
		claims := &Claims{
			UserID: 42,
			Email:  "producer@test.com",
			Role:   "producer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := tok.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateJWT(signed, testSecret)
		assert.Error(t, err)
	})

	t.Run("Failure - Garbage token", func(t *testing.T) {
		_, err := ValidateJWT("not-a-token", testSecret)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
