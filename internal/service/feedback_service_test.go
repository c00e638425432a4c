package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/store"
)

func newFeedbackService(seed []domain.FeedbackItem) *FeedbackService {
	return NewFeedbackService(FeedbackDependencies{
		Store: store.NewMemoryStore(seed),
	})
}

func TestSubmitFeedbackInvariants(t *testing.T) {
	svc := newFeedbackService(nil)
	svc.now = func() time.Time { return time.Date(2023, time.October, 24, 12, 0, 0, 0, time.UTC) }

	item, err := svc.SubmitFeedback(context.Background(), "sess-1", SubmitInput{
		Category:    domain.CategoryAppreciation,
		Title:       "Dark Mode",
		Description: "please",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != domain.StatusSubmitted {
		t.Fatalf("expected Submitted status, got %s", item.Status)
	}
	if !regexp.MustCompile(`^FB-\d{4}$`).MatchString(item.ID) {
		t.Fatalf("expected FB-#### id, got %s", item.ID)
	}
	if item.Date != "Oct 24, 2023" {
		t.Fatalf("expected display date, got %s", item.Date)
	}

	list := svc.List()
	if len(list) != 1 || list[0].ID != item.ID {
		t.Fatalf("expected submitted item at head of list")
	}
}

func TestSubmitFeedbackDefaults(t *testing.T) {
	svc := newFeedbackService(nil)

	item, err := svc.SubmitFeedback(context.Background(), "sess-1", SubmitInput{
		Title:       "   ",
		Description: "something broke",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Category != domain.CategorySuggestion {
		t.Fatalf("expected default category Suggestion, got %s", item.Category)
	}
	if item.Title != "No Title Provided" {
		t.Fatalf("expected placeholder title, got %q", item.Title)
	}
}

func TestSubmitFeedbackRejectsUnknownCategory(t *testing.T) {
	svc := newFeedbackService(nil)

	if _, err := svc.SubmitFeedback(context.Background(), "sess-1", SubmitInput{
		Category:    "Rant",
		Description: "x",
	}); err == nil {
		t.Fatalf("expected unknown category to error")
	}
}

func TestSubmitterIdentityNotAttached(t *testing.T) {
	svc := newFeedbackService(nil)

	item, err := svc.SubmitFeedback(context.Background(), "sess-1", SubmitInput{
		Description:    "x",
		SubmitterName:  "Jane Doe",
		SubmitterEmail: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Title == "Jane Doe" || item.Description != "x" {
		t.Fatalf("expected submitter identity to be dropped, got %+v", item)
	}
}

func TestTrackFiltering(t *testing.T) {
	seed := []domain.FeedbackItem{
		{ID: "FB-0001", Status: domain.StatusSubmitted},
		{ID: "FB-0002", Status: domain.StatusInReview},
		{ID: "FB-0003", Status: domain.StatusSubmitted},
		{ID: "FB-0004", Status: domain.StatusResolved},
	}
	svc := newFeedbackService(seed)

	cases := map[string][]string{
		TrackFilterAll: {"FB-0001", "FB-0002", "FB-0003", "FB-0004"},
		"Submitted":    {"FB-0001", "FB-0003"},
		"In Review":    {"FB-0002"},
		"Resolved":     {"FB-0004"},
	}
	for filter, want := range cases {
		items, err := svc.Track(filter)
		if err != nil {
			t.Fatalf("filter %q: unexpected error: %v", filter, err)
		}
		if len(items) != len(want) {
			t.Fatalf("filter %q: expected %d items, got %d", filter, len(want), len(items))
		}
		for i, id := range want {
			if items[i].ID != id {
				t.Fatalf("filter %q: expected %s at %d, got %s", filter, id, i, items[i].ID)
			}
		}
	}

	if _, err := svc.Track("Closed"); err == nil {
		t.Fatalf("expected unknown filter to error")
	}
}

func TestComputeStats(t *testing.T) {
	seed := []domain.FeedbackItem{
		{ID: "FB-0001", Status: domain.StatusSubmitted},
		{ID: "FB-0002", Status: domain.StatusInReview},
		{ID: "FB-0003", Status: domain.StatusSubmitted},
		{ID: "FB-0004", Status: domain.StatusResolved},
	}
	svc := newFeedbackService(seed)

	stats := svc.ComputeStats()
	if stats.Total != 4 || stats.Pending != 2 || stats.InReview != 1 || stats.Resolved != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Pending+stats.InReview+stats.Resolved != stats.Total {
		t.Fatalf("expected statuses to partition the total, got %+v", stats)
	}
}

func TestSetStatus(t *testing.T) {
	seed := []domain.FeedbackItem{
		{ID: "FB-0001", Status: domain.StatusSubmitted, Title: "keep me", Description: "detail"},
	}
	svc := newFeedbackService(seed)

	item, err := svc.SetStatus(context.Background(), "sess-1", "FB-0001", domain.StatusResolved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != domain.StatusResolved {
		t.Fatalf("expected Resolved, got %s", item.Status)
	}
	if item.Title != "keep me" || item.Description != "detail" {
		t.Fatalf("expected other fields unchanged, got %+v", item)
	}

	if _, err := svc.SetStatus(context.Background(), "sess-1", "FB-0001", "Archived"); err == nil {
		t.Fatalf("expected unknown status to error")
	}
	if _, err := svc.SetStatus(context.Background(), "sess-1", "FB-0404", domain.StatusResolved); err == nil {
		t.Fatalf("expected unknown id to error")
	}
}
