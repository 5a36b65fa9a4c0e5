package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "go-restaurant-orders", claims.Issuer)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "alice", "user")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
