package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/auth"
	"github.com/dmitrijs2005/finledger/internal/server/config"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/repomanager"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewUserService(newTestDB(t), repomanager.NewInMemoryRepositoryManager(), cfg)
}

func TestRegister_Success(t *testing.T) {
	s := newUserService(t)

	u, err := s.Register(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secret123", u.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = s.Register(ctx, "Another Alice", "alice@example.com", "other")
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
}

func TestAuthenticate_Success(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	registered, err := s.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	result, err := s.Authenticate(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, registered.ID, result.User.ID)

	// the token must decode back to the authenticated user id
	userID, err := auth.GetUserIDFromToken(result.Token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	s := newUserService(t)

	_, err := s.Authenticate(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestProfile_Success(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	registered, err := s.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	u, err := s.Profile(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestProfile_UnknownUser(t *testing.T) {
	s := newUserService(t)

	_, err := s.Profile(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
