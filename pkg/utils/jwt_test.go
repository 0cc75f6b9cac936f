package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	secret := []byte("s3cret")
	token, err := CreateToken(secret, 42, "user", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	secret := []byte("s3cret")

	expired, err := CreateToken(secret, 1, "", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(secret, expired)
	assert.Error(t, err)

	other, err := CreateToken([]byte("other"), 1, "", time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken(secret, other)
	assert.Error(t, err)

	anonymous, err := CreateToken(secret, 0, "", time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken(secret, anonymous)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
