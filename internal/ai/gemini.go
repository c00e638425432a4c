package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spec-kit/feedback-service/internal/config"
	"github.com/spec-kit/feedback-service/internal/domain"
)

const systemInstruction = "You are an expert customer success manager at FeedbackPoint, a tech platform. You write helpful, professional responses to user feedback."

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("gemini api key not configured")

// GeminiDrafter drafts official responses via the Gemini generate-content API.
// It is a single request/response call with no retry and no streaming.
type GeminiDrafter struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewGeminiDrafter builds the drafter. A missing API key is not fatal; the
// drafter reports ErrNotConfigured per call so the admin screen keeps working.
func NewGeminiDrafter(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiDrafter, error) {
	d := &GeminiDrafter{model: cfg.Model, temperature: cfg.Temperature, logger: logger}
	if cfg.APIKey == "" {
		logger.Warn("gemini api key not set, response drafting disabled")
		return d, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	d.client = client
	return d, nil
}

// DraftResponse asks the model for a suggested official response and returns
// the text verbatim.
func (d *GeminiDrafter) DraftResponse(ctx context.Context, item domain.FeedbackItem) (string, error) {
	if d.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(buildPrompt(item)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(d.temperature),
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty draft from model")
	}
	return text, nil
}

func buildPrompt(item domain.FeedbackItem) string {
	return fmt.Sprintf(`Draft a professional, empathetic, and concise official response to this customer feedback.
Feedback Category: %s
Feedback Title: %s
Feedback Description: %s

The response should acknowledge their input and state that we value their perspective. Keep it under 200 characters if possible.`,
		item.Category, item.Title, item.Description)
}
