package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/riskzero/supplier-registry/internal/auth"
	"github.com/riskzero/supplier-registry/internal/config"
	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/repository"
	apperrors "github.com/riskzero/supplier-registry/pkg/util"
)

// TokenPair carries the credentials returned on login. The refresh token
// is opaque and not redeemable anywhere; see DESIGN.md.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. The email must not already be taken;
// matching is exact and case-sensitive.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already in use", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewConflict("email already in use", nil)
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues a token pair. Failure is uniform
// whether the email is unknown or the password is wrong, so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	accessToken, _, err := s.tokenMgr.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: s.tokenMgr.GenerateRefreshToken(),
	}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
