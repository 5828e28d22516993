package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/auth/errors"
	"github.com/newspulse/api/auth/models"
	"github.com/newspulse/api/auth/services"
	"github.com/newspulse/api/internal/types"
	"github.com/newspulse/api/internal/utils"
)

type AuthHandler struct {
	service      services.Service
	verification services.VerificationService
}

func NewAuthHandler(service services.Service, verification services.VerificationService) *AuthHandler {
	return &AuthHandler{service: service, verification: verification}
}

// Register creates an account and signs it in.
// Endpoint: POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Register(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.Created(c, "Account created successfully", resp)
}

// Login signs in with email and password.
// Endpoint: POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Login(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Signed in successfully", resp)
}

// Refresh exchanges a refresh token for a new pair.
// Endpoint: POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req models.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}
	if req.RefreshToken == "" {
		return errors.HandleValidationError(c, "refreshToken is required")
	}

	pair, err := h.service.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Token refreshed successfully", pair)
}

// Logout revokes the caller's refresh sessions.
// Endpoint: POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleServiceError(c, errors.ErrInvalidToken)
	}

	if err := h.service.Logout(c.Context(), user.UserID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Signed out successfully", nil)
}

// ForgotPassword starts the OTP reset flow.
// Endpoint: POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req models.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	if err := h.verification.ForgotPassword(c.Context(), req.Email); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "If the email exists, a reset code has been sent", nil)
}

// ResetPassword completes the OTP reset flow.
// Endpoint: POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req models.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	if err := h.verification.ResetPassword(c.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Password reset successfully", nil)
}
