// Package services contains the server-side business logic. This file
// implements UserService, which handles registration, credential checks,
// and issuing access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/auth"
	"github.com/dmitrijs2005/finledger/internal/server/config"
	"github.com/dmitrijs2005/finledger/internal/server/models"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/repomanager"
)

// AuthResult bundles a signed access token with the authenticated user.
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService provides account-related operations:
// - Register: create users
// - Authenticate: verify credentials and mint an access token
// - Profile: fetch the account behind a user id
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// email yields ErrUserAlreadyExists; the email is the uniqueness key.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			return nil, common.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate verifies the email/password pair and, on success, returns a
// signed access token together with the user. An unknown email and a wrong
// password are indistinguishable to the caller: both yield
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Profile returns the user behind the given id, or ErrUserNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}
