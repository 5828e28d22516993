package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/newspulse/api/auth/errors"
	"github.com/newspulse/api/auth/models"
	"github.com/newspulse/api/auth/repository"
	"github.com/newspulse/api/auth/services"
	"github.com/newspulse/api/internal/types"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// googleProfile is the subset of the OpenID userinfo response we use.
type googleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Service completes the Google sign-in flow: exchange the code, read the
// profile and sign the matching account in, creating it on first visit.
type Service struct {
	config   *oauth2.Config
	repo     repository.Repository
	tokens   *services.TokenService
	sessions services.SessionStore
}

// NewService constructs the Google sign-in service.
func NewService(config *oauth2.Config, repo repository.Repository, tokens *services.TokenService, sessions services.SessionStore) *Service {
	return &Service{config: config, repo: repo, tokens: tokens, sessions: sessions}
}

// AuthURL returns the Google consent URL for the given state.
func (s *Service) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// HandleCallback exchanges the authorization code and signs the user in.
func (s *Service) HandleCallback(ctx context.Context, code string) (*models.AuthResponse, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange failed", errors.ErrInvalidToken)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", errors.ErrInvalidToken)
	}

	user, err := s.findOrCreate(ctx, profile)
	if err != nil {
		return nil, err
	}

	pair, jti, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if err := s.sessions.AddRefreshSession(ctx, user.ID, jti, s.tokens.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("store refresh session: %w", err)
	}

	return &models.AuthResponse{User: user.ToResponse(), Tokens: *pair}, nil
}

func (s *Service) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := s.config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch google profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read google profile: %w", err)
	}

	var profile googleProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decode google profile: %w", err)
	}
	return &profile, nil
}

func (s *Service) findOrCreate(ctx context.Context, profile *googleProfile) (*models.User, error) {
	if user, err := s.repo.FindByEmail(ctx, profile.Email); err == nil {
		return user, nil
	}

	// First Google sign-in: the account gets an unguessable random password
	// so the email/password flow stays closed until a reset.
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate placeholder password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(base64.StdEncoding.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	user := &models.User{
		Name:     profile.Name,
		Email:    profile.Email,
		Password: hash,
		Role:     types.UserRole,
	}
	if profile.Picture != "" {
		user.Avatar = &profile.Picture
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return user, nil
}
