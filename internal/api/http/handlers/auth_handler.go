package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/service"
	"github.com/spec-kit/billing-admin/internal/session"
)

// AuthHandler exposes the sign-in lifecycle.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Identifier == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "identifier and password required")
	}

	claims, token, ttl, err := h.auth.SignIn(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"operator": fiber.Map{
				"id":        claims.UserID,
				"full_name": claims.FullName,
				"email":     claims.Email,
				"role_name": claims.RoleName,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresInMS: ttl.Milliseconds()},
		},
	})
}

// SignOut handles POST /auth/signout.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.auth.SignOut(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "signed_out"}})
}

// Session handles GET /auth/session. This is a diagnostic probe: unlike the
// route guard it preserves the Expired vs Anonymous distinction.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	status, expiringSoon, profile := h.auth.Session(c.Context())

	resp := dto.SessionResponse{
		Status:       status.Kind.String(),
		ExpiringSoon: expiringSoon,
	}
	if status.Kind == session.StatusAuthenticated {
		resp.Claims = status.Claims
		if len(profile) > 0 {
			var decoded map[string]any
			if err := json.Unmarshal(profile, &decoded); err == nil {
				resp.Profile = decoded
			}
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}
