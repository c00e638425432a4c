package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/dto"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/session"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// SessionHandler exposes session creation and view-router transitions.
type SessionHandler struct {
	sessions *session.Manager
	tokens   *auth.TokenManager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *session.Manager, tokens *auth.TokenManager) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens}
}

// Create handles POST /session.
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	sess := h.sessions.Create()
	token, exp, err := h.tokens.GenerateToken(sess.ID())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"session": dto.SessionResponse{Token: token, ExpiresAt: exp},
			"view":    session.ResolveView(sess),
		},
	})
}

// View handles GET /session/view.
func (h *SessionHandler) View(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	return c.JSON(fiber.Map{"data": session.ResolveView(sess)})
}

// SwitchView handles POST /session/view (login/signup toggle).
func (h *SessionHandler) SwitchView(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.SwitchViewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var err error
	switch domain.AuthView(req.View) {
	case domain.AuthViewLogin:
		err = sess.SwitchToLogin()
	case domain.AuthViewSignup:
		err = sess.SwitchToSignup()
	default:
		return apperrors.NewValidationError("view must be login or signup", nil)
	}
	if err != nil {
		return apperrors.NewConflict(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"data": session.ResolveView(sess)})
}

// Navigate handles POST /session/navigate.
func (h *SessionHandler) Navigate(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	page := domain.Page(req.Page)
	if !page.Valid() {
		return apperrors.NewValidationError("unknown page", map[string]any{"page": req.Page})
	}
	if err := sess.Navigate(page); err != nil {
		return apperrors.NewUnauthorized(err.Error())
	}
	return c.JSON(fiber.Map{"data": session.ResolveView(sess)})
}

// ExitAdmin handles POST /session/exit-admin.
func (h *SessionHandler) ExitAdmin(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	if err := sess.ExitAdmin(); err != nil {
		return apperrors.NewUnauthorized(err.Error())
	}
	return c.JSON(fiber.Map{"data": session.ResolveView(sess)})
}
