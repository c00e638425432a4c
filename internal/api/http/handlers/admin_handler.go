package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/dto"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/service"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// AdminHandler exposes the admin dashboard: stats, status changes, and the
// response editor. Reachability mirrors the page model: any authenticated
// session may call these endpoints.
type AdminHandler struct {
	feedback  *service.FeedbackService
	responses *service.ResponseService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(feedbackService *service.FeedbackService, responseService *service.ResponseService) *AdminHandler {
	return &AdminHandler{feedback: feedbackService, responses: responseService}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}

	var editor *service.EditorState
	if id, draft, open := sess.Editor(); open {
		editor = &service.EditorState{FeedbackID: id, Draft: draft}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"stats":    h.feedback.ComputeStats(),
			"feedback": h.feedback.List(),
			"editor":   editor,
		},
	})
}

// UpdateStatus handles PUT /admin/feedback/:id/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.feedback.SetStatus(c.UserContext(), sess.ID(), c.Params("id"), domain.FeedbackStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// OpenEditor handles POST /admin/feedback/:id/response/edit.
func (h *AdminHandler) OpenEditor(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	editor, err := h.responses.OpenEditor(sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": editor})
}

// CancelEditor handles POST /admin/feedback/:id/response/cancel.
func (h *AdminHandler) CancelEditor(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	h.responses.CancelEditor(sess)
	return c.JSON(fiber.Map{"data": fiber.Map{"closed": true}})
}

// SaveResponse handles POST /admin/feedback/:id/response/save.
func (h *AdminHandler) SaveResponse(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.SaveResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.responses.SaveResponse(c.UserContext(), sess, c.Params("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// DraftResponse handles POST /admin/feedback/:id/response/draft.
func (h *AdminHandler) DraftResponse(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	editor, err := h.responses.DraftWithAI(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": editor})
}
