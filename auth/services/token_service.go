package services

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"

	"github.com/newspulse/api/auth/errors"
	"github.com/newspulse/api/auth/models"
	platformconfig "github.com/newspulse/api/internal/platform/config"
)

// TokenService issues and validates the HS256 token pair. Access and refresh
// tokens are signed with separate secrets so a leaked access secret cannot
// mint refresh tokens.
type TokenService struct {
	cfg platformconfig.JWTConfig
}

// NewTokenService constructs a token service from the JWT config.
func NewTokenService(cfg platformconfig.JWTConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// RefreshClaims is what a refresh token carries: the account id and a jti
// that the session allowlist tracks.
type RefreshClaims struct {
	UserID int64
	JTI    string
}

// IssuePair mints an access and a refresh token for the user. The returned
// jti identifies the refresh session for allowlisting.
func (t *TokenService) IssuePair(user *models.User) (*models.TokenPair, string, error) {
	now := time.Now()
	accessExp := now.Add(t.cfg.AccessTTL)
	refreshExp := now.Add(t.cfg.RefreshTTL)

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  accessExp.Unix(),
	})
	accessToken, err := access.SignedString([]byte(t.cfg.AccessSecret))
	if err != nil {
		return nil, "", fmt.Errorf("sign access token: %w", err)
	}

	jti := uuid.Must(uuid.NewV4()).String()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID,
		"jti": jti,
		"iat": now.Unix(),
		"exp": refreshExp.Unix(),
	})
	refreshToken, err := refresh.SignedString([]byte(t.cfg.RefreshSecret))
	if err != nil {
		return nil, "", fmt.Errorf("sign refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp.Unix(),
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp.Unix(),
	}, jti, nil
}

// ParseRefresh validates a refresh token and extracts its claims.
func (t *TokenService) ParseRefresh(tokenString string) (*RefreshClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(t.cfg.RefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, errors.ErrInvalidToken
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return nil, errors.ErrInvalidToken
	}

	return &RefreshClaims{UserID: int64(id), JTI: jti}, nil
}

// RefreshTTL exposes the refresh token lifetime for session allowlisting.
func (t *TokenService) RefreshTTL() time.Duration {
	return t.cfg.RefreshTTL
}
