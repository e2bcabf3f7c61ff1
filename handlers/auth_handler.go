package handlers

import (
	"time"

	"storefront/internal/shop"
	"storefront/models"
	"storefront/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Storefront *shop.Storefront
	Secret     string
	TokenTTL   time.Duration
}

func NewAuthHandler(f *shop.Storefront, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{Storefront: f, Secret: secret, TokenTTL: ttl}
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string              `json:"token"`
	User  *models.SessionUser `json:"user"`
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req shop.Registration
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}

	snap, err := h.Storefront.Register(c.UserContext(), req)
	if err != nil && !shop.IsPersistence(err) {
		return respond(c, "", nil, err)
	}
	return h.issue(c, fiber.StatusCreated, "User registered successfully", snap, err)
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}

	snap, err := h.Storefront.Login(c.UserContext(), req.Email, req.Password)
	if err != nil && !shop.IsPersistence(err) {
		return respond(c, "", nil, err)
	}
	return h.issue(c, fiber.StatusOK, "Logged in", snap, err)
}

// Logout - POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	snap, err := h.Storefront.Logout(c.UserContext())
	return respond(c, "Logged out", snap, err)
}

// issue signs a token for the session the operation just opened. Callers
// only get here after the credentials were checked; warning is a save failure
// of the new session and is passed through.
func (h *AuthHandler) issue(c *fiber.Ctx, status int, message string, snap shop.Snapshot, warning error) error {
	if snap.Session == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not sign in", "No session was opened"))
	}

	token, err := utils.GenerateToken(h.Secret, *snap.Session, h.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not sign in", "Could not create token"))
	}

	c.Status(status)
	return respond(c, message, AuthResponse{Token: token, User: snap.Session}, warning)
}
