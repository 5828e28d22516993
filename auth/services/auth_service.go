package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/newspulse/api/auth/errors"
	"github.com/newspulse/api/auth/models"
	"github.com/newspulse/api/auth/repository"
	"github.com/newspulse/api/internal/types"
)

// Password strength floor on the zxcvbn 0-4 scale.
const minPasswordScore = 2

// Service is the account service: registration, sign-in and token refresh.
type Service interface {
	// Register creates an app-user account and signs it in.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)

	// Login authenticates by email and password. Wrong email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// Refresh exchanges an allowlisted refresh token for a new pair. The old
	// session is revoked, so each refresh token works once.
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)

	// Logout revokes all of the user's refresh sessions.
	Logout(ctx context.Context, userID int64) error
}

// SessionStore captures the refresh-session allowlist operations backed by
// redis.
type SessionStore interface {
	AddRefreshSession(ctx context.Context, userID int64, jti string, ttl time.Duration) error
	HasRefreshSession(ctx context.Context, userID int64, jti string) (bool, error)
	RevokeRefreshSessions(ctx context.Context, userID int64) error
}

type service struct {
	repo     repository.Repository
	tokens   *TokenService
	sessions SessionStore
}

// NewService constructs the account service.
func NewService(repo repository.Repository, tokens *TokenService, sessions SessionStore) Service {
	return &service{repo: repo, tokens: tokens, sessions: sessions}
}

// CheckPasswordStrength rejects passwords below the zxcvbn floor, using the
// user's name and email as extra dictionary input so "annika1234" scores as
// weak for Annika.
func CheckPasswordStrength(password string, userInputs ...string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: must be at least 8 characters", errors.ErrWeakPassword)
	}
	result := zxcvbn.PasswordStrength(password, userInputs)
	if result.Score < minPasswordScore {
		return fmt.Errorf("%w: try a longer or less predictable password", errors.ErrWeakPassword)
	}
	return nil
}

func (s *service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", errors.ErrInvalidRequest)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", errors.ErrInvalidRequest)
	}
	if err := CheckPasswordStrength(req.Password, name, email); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if taken {
		return nil, errors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Mobile:   req.Mobile,
		Role:     types.UserRole,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	return s.signIn(ctx, user)
}

func (s *service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errors.ErrInvalidRequest)
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return s.signIn(ctx, user)
}

func (s *service) signIn(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	pair, jti, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if err := s.sessions.AddRefreshSession(ctx, user.ID, jti, s.tokens.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("store refresh session: %w", err)
	}

	return &models.AuthResponse{User: user.ToResponse(), Tokens: *pair}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	allowed, err := s.sessions.HasRefreshSession(ctx, claims.UserID, claims.JTI)
	if err != nil {
		return nil, fmt.Errorf("check refresh session: %w", err)
	}
	if !allowed {
		return nil, errors.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	// Rotate: a used refresh token, and any others for the account, stop
	// working.
	if err := s.sessions.RevokeRefreshSessions(ctx, claims.UserID); err != nil {
		return nil, fmt.Errorf("revoke refresh sessions: %w", err)
	}

	pair, jti, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if err := s.sessions.AddRefreshSession(ctx, user.ID, jti, s.tokens.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("store refresh session: %w", err)
	}
	return pair, nil
}

func (s *service) Logout(ctx context.Context, userID int64) error {
	return s.sessions.RevokeRefreshSessions(ctx, userID)
}
