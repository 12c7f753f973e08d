package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/riskzero/supplier-registry/internal/api/dto"
	"github.com/riskzero/supplier-registry/internal/service"
	apperrors "github.com/riskzero/supplier-registry/pkg/util"
)

const minPasswordLength = 6

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := validateCredentials(req.Email, req.Password, true); details != nil {
		return apperrors.NewValidationError("invalid registration payload", details)
	}

	user, err := h.auth.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully.",
		"user":    user.Email,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := validateCredentials(req.Email, req.Password, false); details != nil {
		return apperrors.NewValidationError("invalid login payload", details)
	}

	tokens, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func validateCredentials(email, password string, checkStrength bool) map[string]any {
	details := map[string]any{}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		details["email"] = "a valid email is required"
	}
	if password == "" {
		details["password"] = "password is required"
	} else if checkStrength && len(password) < minPasswordLength {
		details["password"] = "password must be at least 6 characters"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
