// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/platform/sec"
)

/*
TestTokenService_RoundTrip signs and verifies an access token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	service := sec.NewTokenServiceFromKey(key, "yomitube.test")

	token, err := service.GenerateAccessToken("user-1", "alice", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTokenService_RejectsExpiredAndForeign(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	service := sec.NewTokenServiceFromKey(key, "yomitube.test")
	foreign := sec.NewTokenServiceFromKey(otherKey, "yomitube.test")

	expired, err := service.GenerateAccessToken("user-1", "alice", -time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(expired)
	assert.Error(t, err)

	signedElsewhere, err := foreign.GenerateAccessToken("user-1", "alice", time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(signedElsewhere)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("battery staple", hash))
}

func TestSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, sec.HashToken(first), 64)
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := sec.HashPassword(string(make([]byte, sec.MaxPasswordBytes+1)))
	assert.ErrorIs(t, err, sec.ErrPasswordTooLong)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := sec.NewTokenServiceFromKey(key, "someone.else").GenerateAccessToken("user-1", "alice", time.Minute)
	require.NoError(t, err)

	_, err = sec.NewTokenServiceFromKey(key, "yomitube.test").VerifyToken(token)
	assert.Error(t, err)
}
