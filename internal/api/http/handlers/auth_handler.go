package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/dto"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/service"
	"github.com/spec-kit/feedback-service/internal/session"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// AuthHandler exposes the simulated login, signup, and provider flows.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	sess.Login(profile)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"profile": profile,
			"view":    session.ResolveView(sess),
		},
	})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.auth.Signup(c.UserContext(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return err
	}
	sess.Login(profile)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"profile": profile,
			"view":    session.ResolveView(sess),
		},
	})
}

// Social handles POST /auth/social.
func (h *AuthHandler) Social(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}

	profile, err := h.auth.SocialLogin(c.UserContext())
	if err != nil {
		return err
	}
	sess.Login(profile)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"profile": profile,
			"view":    session.ResolveView(sess),
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	sess.Logout()
	return c.JSON(fiber.Map{"data": session.ResolveView(sess)})
}
