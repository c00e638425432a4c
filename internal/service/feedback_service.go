package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/events"
	"github.com/spec-kit/feedback-service/internal/store"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// TrackFilterAll selects every item regardless of status.
const TrackFilterAll = "All"

// FeedbackService coordinates the submission, tracking, and admin workflows
// over the in-memory feedback collection.
type FeedbackService struct {
	store      store.FeedbackStore
	dispatcher events.Dispatcher
	now        func() time.Time
}

// FeedbackDependencies bundles collaborators for the feedback service.
type FeedbackDependencies struct {
	Store      store.FeedbackStore
	Dispatcher events.Dispatcher
}

// SubmitInput describes the submission payload. SubmitterName and
// SubmitterEmail are collected by the form but not attached to the item.
type SubmitInput struct {
	Category       domain.FeedbackCategory
	Title          string
	Description    string
	SubmitterName  string
	SubmitterEmail string
}

// Stats aggregates per-status counts over the full collection.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	InReview int `json:"inReview"`
	Resolved int `json:"resolved"`
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	return &FeedbackService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// SubmitFeedback creates a new item and prepends it to the collection. The id
// is display-distinct, not globally unique.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, sessionID string, input SubmitInput) (domain.FeedbackItem, error) {
	category := input.Category
	if category == "" {
		category = domain.CategorySuggestion
	}
	if !category.Valid() {
		return domain.FeedbackItem{}, apperrors.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "No Title Provided"
	}

	item := domain.FeedbackItem{
		ID:          generateFeedbackID(),
		Category:    category,
		Status:      domain.StatusSubmitted,
		Date:        s.now().Format("Jan 2, 2006"),
		Title:       title,
		Description: input.Description,
	}
	s.store.Add(item)

	s.publishEvent(ctx, events.Event{
		Type:       events.EventFeedbackSubmitted,
		FeedbackID: item.ID,
		Actor:      events.Actor{SessionID: sessionID},
		Payload: events.FeedbackSubmittedPayload{
			Category: item.Category,
			Title:    item.Title,
		},
	})
	return item, nil
}

// Track returns the subsequence matching the filter, preserving order.
// The filter is "All" or one status value.
func (s *FeedbackService) Track(filter string) ([]domain.FeedbackItem, error) {
	items := s.store.List()
	if filter == "" || filter == TrackFilterAll {
		return items, nil
	}

	status := domain.FeedbackStatus(filter)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown status filter", map[string]any{"status": filter})
	}

	filtered := make([]domain.FeedbackItem, 0, len(items))
	for _, item := range items {
		if item.Status == status {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// List returns the full collection, newest first.
func (s *FeedbackService) List() []domain.FeedbackItem {
	return s.store.List()
}

// ComputeStats recounts per-status totals from the full collection.
func (s *FeedbackService) ComputeStats() Stats {
	stats := Stats{}
	for _, item := range s.store.List() {
		stats.Total++
		switch item.Status {
		case domain.StatusSubmitted:
			stats.Pending++
		case domain.StatusInReview:
			stats.InReview++
		case domain.StatusResolved:
			stats.Resolved++
		}
	}
	return stats
}

// SetStatus replaces the item's status, leaving every other field unchanged.
// Any of the three statuses may be set directly; there is no ordering
// constraint on transitions.
func (s *FeedbackService) SetStatus(ctx context.Context, sessionID, feedbackID string, newStatus domain.FeedbackStatus) (domain.FeedbackItem, error) {
	if !newStatus.Valid() {
		return domain.FeedbackItem{}, apperrors.NewValidationError("unknown status", map[string]any{"status": newStatus})
	}
	item, ok := s.store.GetByID(feedbackID)
	if !ok {
		return domain.FeedbackItem{}, apperrors.NewNotFound("feedback", map[string]any{"id": feedbackID})
	}

	oldStatus := item.Status
	item.Status = newStatus
	s.store.Update(item)

	s.publishEvent(ctx, events.Event{
		Type:       events.EventFeedbackStatusChanged,
		FeedbackID: item.ID,
		Actor:      events.Actor{SessionID: sessionID},
		Payload: events.FeedbackStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return item, nil
}

// GetByID returns the matching item.
func (s *FeedbackService) GetByID(feedbackID string) (domain.FeedbackItem, error) {
	item, ok := s.store.GetByID(feedbackID)
	if !ok {
		return domain.FeedbackItem{}, apperrors.NewNotFound("feedback", map[string]any{"id": feedbackID})
	}
	return item, nil
}

func (s *FeedbackService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func generateFeedbackID() string {
	return fmt.Sprintf("FB-%04d", 1000+rand.IntN(9000))
}
