package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/cleandrop/internal/config"
	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/session"
	"github.com/example/cleandrop/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	sessions *session.Manager
	cfg      *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates a customer or the admin.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	outcome := <-h.sessions.LoginAsync(req.Email, req.Password, role)
	user, err := outcome.User, outcome.Err
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return h.issue(c, fiber.StatusOK, user)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a customer account and logs it in.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	outcome := <-h.sessions.SignupAsync(req.Name, req.Email, req.Password)
	if outcome.Err != nil {
		return outcome.Err
	}
	user := outcome.User

	return h.issue(c, fiber.StatusCreated, user)
}

// Logout ends the session. It succeeds even when nobody is logged in.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.JSON(fiber.Map{"success": true})
}

// Session reports the current authentication state.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user, ok := h.sessions.CurrentUser()
	resp := fiber.Map{
		"success":       true,
		"authenticated": ok,
		"user":          nil,
	}
	if ok {
		resp["user"] = user
	}
	return c.JSON(resp)
}

func (h *AuthHandler) issue(c *fiber.Ctx, status int, user models.User) error {
	token, err := utils.GenerateToken(h.cfg.JWTSecret, user, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}
