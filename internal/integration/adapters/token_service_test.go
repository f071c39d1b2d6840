package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/lawledger/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	token, err := service.GenerateAccessToken(ctx, userID, "partner")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "partner", claims.Username)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := NewTokenService("secret-a", time.Hour).GenerateAccessToken(ctx, uuid.New(), "partner")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).ValidateAccessToken(ctx, token)
	assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.GenerateAccessToken(ctx, uuid.New(), "partner")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(ctx, token)
	assert.True(t, errors.Is(err, domainerror.ErrExpiredToken))
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	_, err := service.ValidateAccessToken(context.Background(), "not-a-token")
	assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, service.VerifyPassword(hash, "correct horse battery"))
	assert.Error(t, service.VerifyPassword(hash, "wrong password"))
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	assert.NoError(t, service.ValidatePasswordStrength("longenough"))
	err := service.ValidatePasswordStrength("short")
	assert.True(t, errors.Is(err, domainerror.ErrWeakPassword))
}
