package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/dto"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/service"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// FeedbackHandler exposes the submission and tracking flows.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedbackService}
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("description required", nil)
	}

	input := service.SubmitInput{
		Category:       domain.FeedbackCategory(req.Category),
		Title:          req.Title,
		Description:    req.Description,
		SubmitterName:  req.Name,
		SubmitterEmail: req.Email,
	}
	item, err := h.feedback.SubmitFeedback(c.UserContext(), sess.ID(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}

// Track handles GET /feedback.
func (h *FeedbackHandler) Track(c *fiber.Ctx) error {
	filter := c.Query("status", service.TrackFilterAll)
	items, err := h.feedback.Track(filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// Meta handles GET /feedback/meta. It serves the submit form's category
// toggle options and the track view's filter options.
func (h *FeedbackHandler) Meta(c *fiber.Ctx) error {
	filters := []string{service.TrackFilterAll}
	for _, status := range domain.Statuses() {
		filters = append(filters, string(status))
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"categories":      domain.Categories(),
			"defaultCategory": domain.CategorySuggestion,
			"filters":         filters,
		},
	})
}
