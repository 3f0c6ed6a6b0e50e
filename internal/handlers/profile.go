package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/cleandrop/internal/middleware"
	"github.com/example/cleandrop/internal/session"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	sessions *session.Manager
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

// GetProfile returns authenticated user profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

type updateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// UpdateProfile updates user profile fields.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	update := session.ProfileUpdate{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		update.Name = req.Name
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		update.Email = req.Email
	}
	if req.Avatar != nil {
		update.Avatar = req.Avatar
	}
	if update == (session.ProfileUpdate{}) {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	user, err := h.sessions.UpdateProfile(update)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}
