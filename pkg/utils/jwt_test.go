package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndDecodeJWT(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignJWT(jwt.MapClaims{"username": "an", "role": "user"}, secret, time.Hour)
	require.NoError(t, err)

	claims, err := DecodeJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "an", claims["username"])
	assert.Equal(t, "user", claims["role"])
}

func TestDecodeJWT_WrongSecret(t *testing.T) {
	token, err := SignJWT(jwt.MapClaims{"username": "an"}, []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = DecodeJWT(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestDecodeJWT_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignJWT(jwt.MapClaims{"username": "an"}, secret, -time.Minute)
	require.NoError(t, err)

	_, err = DecodeJWT(token, secret)
	assert.Error(t, err)
}
