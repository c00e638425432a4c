package events

import (
	"time"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFeedbackSubmitted     EventType = "feedback_submitted"
	EventFeedbackStatusChanged EventType = "feedback_status_changed"
	EventResponsePublished     EventType = "response_published"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	SessionID string  `json:"session_id"`
	Email     *string `json:"email,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	FeedbackID string      `json:"feedback_id"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// FeedbackSubmittedPayload payload.
type FeedbackSubmittedPayload struct {
	Category domain.FeedbackCategory `json:"category"`
	Title    string                  `json:"title"`
}

// FeedbackStatusChangedPayload payload.
type FeedbackStatusChangedPayload struct {
	OldStatus domain.FeedbackStatus `json:"old_status"`
	NewStatus domain.FeedbackStatus `json:"new_status"`
}

// ResponsePublishedPayload payload.
type ResponsePublishedPayload struct {
	ResponsePreview string `json:"response_preview"`
}
