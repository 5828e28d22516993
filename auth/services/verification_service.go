package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/newspulse/api/auth/errors"
	"github.com/newspulse/api/auth/repository"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	platformemail "github.com/newspulse/api/internal/platform/email"
)

const otpTTL = 10 * time.Minute

// VerificationService runs the forgot-password flow: a 6-digit OTP mailed to
// the account and held briefly in redis.
type VerificationService interface {
	// ForgotPassword issues an OTP. An unknown email succeeds silently so
	// the endpoint cannot be used to probe which accounts exist.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a valid OTP and replaces the password. All
	// refresh sessions are revoked.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// otpStore captures the redis OTP operations.
type otpStore interface {
	SetOTP(ctx context.Context, email, otp string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
}

type verificationService struct {
	repo     repository.Repository
	otps     otpStore
	sessions SessionStore
	sender   platformemail.Sender
	emailCfg platformconfig.EmailConfig
	appName  string
}

// NewVerificationService constructs the forgot-password service.
func NewVerificationService(repo repository.Repository, otps otpStore, sessions SessionStore, sender platformemail.Sender, emailCfg platformconfig.EmailConfig, appName string) VerificationService {
	return &verificationService{repo: repo, otps: otps, sessions: sessions, sender: sender, emailCfg: emailCfg, appName: appName}
}

// generateOTP returns a 6-digit code with leading zeros preserved.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *verificationService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", errors.ErrInvalidRequest)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Do not leak which emails have accounts.
		return nil
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.otps.SetOTP(ctx, email, otp, otpTTL); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	msg := platformemail.Message{
		From:    s.emailCfg.From,
		To:      []string{user.Email},
		Subject: fmt.Sprintf("%s password reset code", s.appName),
		Body: fmt.Sprintf("<p>Hi %s,</p><p>Your password reset code is <b>%s</b>. It expires in %d minutes.</p>",
			user.Name, otp, int(otpTTL.Minutes())),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	return nil
}

func (s *verificationService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || otp == "" {
		return fmt.Errorf("%w: email and otp are required", errors.ErrInvalidRequest)
	}

	stored, err := s.otps.GetOTP(ctx, email)
	if err != nil {
		return errors.ErrInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(otp)) != 1 {
		return errors.ErrInvalidOTP
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return errors.ErrInvalidOTP
	}
	if err := CheckPasswordStrength(newPassword, user.Name, user.Email); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	// A consumed OTP never works twice, and stolen refresh tokens die with
	// the old password.
	if err := s.otps.DeleteOTP(ctx, email); err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}
	if err := s.sessions.RevokeRefreshSessions(ctx, user.ID); err != nil {
		return fmt.Errorf("revoke refresh sessions: %w", err)
	}
	return nil
}
