package service

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/session"
	"github.com/spec-kit/feedback-service/internal/store"
)

type fakeDrafter struct {
	text string
	err  error
	// hook runs before returning, simulating work that resolves late.
	hook func()
}

func (f *fakeDrafter) DraftResponse(_ context.Context, _ domain.FeedbackItem) (string, error) {
	if f.hook != nil {
		f.hook()
	}
	return f.text, f.err
}

func responseFixture(drafter ResponseDrafter) (*ResponseService, store.FeedbackStore, *session.Session) {
	seed := []domain.FeedbackItem{
		{ID: "FB-0001", Status: domain.StatusSubmitted, Title: "first"},
		{ID: "FB-0002", Status: domain.StatusResolved, Title: "second", OfficialResponse: "existing reply"},
	}
	feedbackStore := store.NewMemoryStore(seed)
	svc := NewResponseService(ResponseDependencies{
		Store:   feedbackStore,
		Drafter: drafter,
		Logger:  zap.NewNop(),
	})
	return svc, feedbackStore, session.New("sess-1")
}

func TestOpenEditorSeedsBuffer(t *testing.T) {
	svc, _, sess := responseFixture(nil)

	editor, err := svc.OpenEditor(sess, "FB-0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Draft != "" {
		t.Fatalf("expected empty buffer for item with no response, got %q", editor.Draft)
	}

	editor, err = svc.OpenEditor(sess, "FB-0002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Draft != "existing reply" {
		t.Fatalf("expected buffer seeded with existing response, got %q", editor.Draft)
	}
	if id, _, open := sess.Editor(); !open || id != "FB-0002" {
		t.Fatalf("expected second open to replace the first editor")
	}
}

func TestSaveResponseCommitsAndCloses(t *testing.T) {
	svc, feedbackStore, sess := responseFixture(nil)

	if _, err := svc.OpenEditor(sess, "FB-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "Thanks!"
	item, err := svc.SaveResponse(context.Background(), sess, "FB-0001", &text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.OfficialResponse != "Thanks!" {
		t.Fatalf("expected committed response, got %q", item.OfficialResponse)
	}
	if _, _, open := sess.Editor(); open {
		t.Fatalf("expected editor closed after save")
	}

	stored, _ := feedbackStore.GetByID("FB-0001")
	if stored.OfficialResponse != "Thanks!" {
		t.Fatalf("expected store updated, got %q", stored.OfficialResponse)
	}

	// Reopening seeds the freshly saved response.
	editor, err := svc.OpenEditor(sess, "FB-0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Draft != "Thanks!" {
		t.Fatalf("expected reopened buffer seeded with saved response, got %q", editor.Draft)
	}
}

func TestSaveResponseRequiresMatchingEditor(t *testing.T) {
	svc, _, sess := responseFixture(nil)

	text := "orphan"
	if _, err := svc.SaveResponse(context.Background(), sess, "FB-0001", &text); err == nil {
		t.Fatalf("expected save without open editor to error")
	}

	if _, err := svc.OpenEditor(sess, "FB-0002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SaveResponse(context.Background(), sess, "FB-0001", &text); err == nil {
		t.Fatalf("expected save for a different item to error")
	}
}

func TestCancelEditorDiscardsBuffer(t *testing.T) {
	svc, feedbackStore, sess := responseFixture(nil)

	if _, err := svc.OpenEditor(sess, "FB-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SetDraft("half-typed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.CancelEditor(sess)

	if _, _, open := sess.Editor(); open {
		t.Fatalf("expected editor closed after cancel")
	}
	item, _ := feedbackStore.GetByID("FB-0001")
	if item.OfficialResponse != "" {
		t.Fatalf("expected no commit on cancel, got %q", item.OfficialResponse)
	}
}

func TestDraftWithAIReplacesBuffer(t *testing.T) {
	svc, _, sess := responseFixture(&fakeDrafter{text: "We hear you."})

	if _, err := svc.OpenEditor(sess, "FB-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	editor, err := svc.DraftWithAI(context.Background(), sess, "FB-0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Draft != "We hear you." {
		t.Fatalf("expected drafted text in buffer, got %q", editor.Draft)
	}
}

func TestDraftWithAIFailureLeavesBufferUntouched(t *testing.T) {
	svc, _, sess := responseFixture(&fakeDrafter{err: errors.New("quota exceeded")})

	if _, err := svc.OpenEditor(sess, "FB-0002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	editor, err := svc.DraftWithAI(context.Background(), sess, "FB-0002")
	if err != nil {
		t.Fatalf("expected draft failure to be swallowed, got %v", err)
	}
	if editor.Draft != "existing reply" {
		t.Fatalf("expected buffer untouched on failure, got %q", editor.Draft)
	}
}

func TestDraftWithAIDiscardsStaleResult(t *testing.T) {
	drafter := &fakeDrafter{text: "stale reply"}
	svc, _, sess := responseFixture(drafter)
	// The admin moves to another item while the draft call is in flight.
	drafter.hook = func() {
		if _, err := svc.OpenEditor(sess, "FB-0002"); err != nil {
			panic(err)
		}
	}

	if _, err := svc.OpenEditor(sess, "FB-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	editor, err := svc.DraftWithAI(context.Background(), sess, "FB-0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.FeedbackID != "FB-0002" {
		t.Fatalf("expected editor to follow the admin, got %s", editor.FeedbackID)
	}
	if editor.Draft != "existing reply" {
		t.Fatalf("expected stale draft discarded, got %q", editor.Draft)
	}
}

func TestDraftWithAIRequiresOpenEditor(t *testing.T) {
	svc, _, sess := responseFixture(&fakeDrafter{text: "x"})

	if _, err := svc.DraftWithAI(context.Background(), sess, "FB-0001"); err == nil {
		t.Fatalf("expected draft without open editor to error")
	}
}

func TestStringPreview(t *testing.T) {
	cases := map[string]struct {
		in   string
		max  int
		want string
	}{
		"short":     {"thanks", 10, "thanks"},
		"trimmed":   {"  padded  ", 10, "padded"},
		"exact":     {"12345", 5, "12345"},
		"truncated": {"abcdefghij", 8, "abcde..."},
		"tiny max":  {"abcdef", 2, "ab"},
		"multibyte": {"ééééééé", 5, "éé..."},
	}
	for name, tc := range cases {
		got := stringPreview(tc.in, tc.max)
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", name, tc.want, got)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("%s: preview is not valid utf-8: %q", name, got)
		}
	}
}
