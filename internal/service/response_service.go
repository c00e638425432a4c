package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/events"
	"github.com/spec-kit/feedback-service/internal/session"
	"github.com/spec-kit/feedback-service/internal/store"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// ResponseDrafter produces suggested response text for a feedback item.
type ResponseDrafter interface {
	DraftResponse(ctx context.Context, item domain.FeedbackItem) (string, error)
}

// ResponseService owns the admin response-editor lifecycle: open, draft,
// save, cancel. The draft buffer lives on the caller's session.
type ResponseService struct {
	store      store.FeedbackStore
	drafter    ResponseDrafter
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ResponseDependencies bundles collaborators for the response service.
type ResponseDependencies struct {
	Store      store.FeedbackStore
	Drafter    ResponseDrafter
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// EditorState reports the session's open editor to the admin screen.
type EditorState struct {
	FeedbackID string `json:"feedbackId"`
	Draft      string `json:"draft"`
}

// NewResponseService constructs the service.
func NewResponseService(deps ResponseDependencies) *ResponseService {
	return &ResponseService{
		store:      deps.Store,
		drafter:    deps.Drafter,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// OpenEditor opens the editor for the item, seeding the buffer with any
// existing official response. A previously open editor is replaced.
func (s *ResponseService) OpenEditor(sess *session.Session, feedbackID string) (EditorState, error) {
	item, ok := s.store.GetByID(feedbackID)
	if !ok {
		return EditorState{}, apperrors.NewNotFound("feedback", map[string]any{"id": feedbackID})
	}
	sess.OpenEditor(item)
	return EditorState{FeedbackID: item.ID, Draft: item.OfficialResponse}, nil
}

// CancelEditor discards the buffer without committing.
func (s *ResponseService) CancelEditor(sess *session.Session) {
	sess.CancelEditor()
}

// SaveResponse commits the buffer into the item's official response and
// closes the editor. When text is provided it replaces the buffer first,
// covering manual edits typed before saving.
func (s *ResponseService) SaveResponse(ctx context.Context, sess *session.Session, feedbackID string, text *string) (domain.FeedbackItem, error) {
	editingID, _, open := sess.Editor()
	if !open || editingID != feedbackID {
		return domain.FeedbackItem{}, apperrors.NewConflict("response editor not open for this item", map[string]any{"id": feedbackID})
	}
	if text != nil {
		if err := sess.SetDraft(*text); err != nil {
			return domain.FeedbackItem{}, apperrors.MapError(err)
		}
	}

	draft, err := sess.CloseEditor()
	if err != nil {
		return domain.FeedbackItem{}, apperrors.MapError(err)
	}

	item, ok := s.store.GetByID(feedbackID)
	if !ok {
		return domain.FeedbackItem{}, apperrors.NewNotFound("feedback", map[string]any{"id": feedbackID})
	}
	item.OfficialResponse = draft
	s.store.Update(item)

	s.publishEvent(ctx, events.Event{
		Type:       events.EventResponsePublished,
		FeedbackID: item.ID,
		Actor:      events.Actor{SessionID: sess.ID()},
		Payload: events.ResponsePublishedPayload{
			ResponsePreview: stringPreview(draft, 120),
		},
	})
	return item, nil
}

// DraftWithAI asks the drafter for suggested text and replaces the buffer on
// success. The request is tagged with the feedback id it was issued for; if
// the open editor has moved on by the time the call resolves, the result is
// discarded. Failures are logged and leave the buffer untouched.
func (s *ResponseService) DraftWithAI(ctx context.Context, sess *session.Session, feedbackID string) (EditorState, error) {
	editingID, _, open := sess.Editor()
	if !open || editingID != feedbackID {
		return EditorState{}, apperrors.NewConflict("response editor not open for this item", map[string]any{"id": feedbackID})
	}
	item, ok := s.store.GetByID(feedbackID)
	if !ok {
		return EditorState{}, apperrors.NewNotFound("feedback", map[string]any{"id": feedbackID})
	}

	if s.drafter != nil {
		text, err := s.drafter.DraftResponse(ctx, item)
		switch {
		case err != nil:
			s.logger.Error("ai draft failed", zap.String("feedback_id", feedbackID), zap.Error(err))
		case !sess.ApplyDraft(feedbackID, text):
			s.logger.Warn("discarding stale ai draft", zap.String("feedback_id", feedbackID))
		}
	}

	id, draft, open := sess.Editor()
	if !open {
		return EditorState{}, apperrors.NewConflict("response editor closed", nil)
	}
	return EditorState{FeedbackID: id, Draft: draft}, nil
}

func (s *ResponseService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// stringPreview truncates on rune boundaries so multibyte text survives.
func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
