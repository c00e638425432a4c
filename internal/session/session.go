package session

import (
	"errors"
	"sync"

	"github.com/spec-kit/feedback-service/internal/domain"
)

var (
	// ErrNotAuthenticated is returned for transitions that require a profile.
	ErrNotAuthenticated = errors.New("session not authenticated")
	// ErrAlreadyAuthenticated is returned for auth-screen transitions after login.
	ErrAlreadyAuthenticated = errors.New("session already authenticated")
	// ErrNoEditorOpen is returned when an editor operation has no open editor.
	ErrNoEditorOpen = errors.New("no response editor open")
)

// Session owns the view-router state machine for one caller: the auth gate,
// the current page, the profile, and the admin response-editor state. At most
// one editor is open per session.
type Session struct {
	mu sync.Mutex

	id            string
	authenticated bool
	authView      domain.AuthView
	currentPage   domain.Page
	profile       *domain.UserProfile

	editingID string
	draft     string
}

// New creates a session in the initial state: unauthenticated, login sub-view.
func New(id string) *Session {
	return &Session{
		id:          id,
		authView:    domain.AuthViewLogin,
		currentPage: domain.PageHome,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SwitchToSignup toggles the unauthenticated sub-view to signup.
func (s *Session) SwitchToSignup() error {
	return s.switchAuthView(domain.AuthViewSignup)
}

// SwitchToLogin toggles the unauthenticated sub-view to login.
func (s *Session) SwitchToLogin() error {
	return s.switchAuthView(domain.AuthViewLogin)
}

func (s *Session) switchAuthView(view domain.AuthView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticated {
		return ErrAlreadyAuthenticated
	}
	s.authView = view
	return nil
}

// Login moves the session to the authenticated state. Admin profiles land on
// the admin page, everyone else on home.
func (s *Session) Login(profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.profile = &profile
	if profile.IsAdmin {
		s.currentPage = domain.PageAdmin
	} else {
		s.currentPage = domain.PageHome
	}
	s.closeEditorLocked()
}

// Logout clears the profile and returns to the unauthenticated login view.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.profile = nil
	s.authView = domain.AuthViewLogin
	s.currentPage = domain.PageHome
	s.closeEditorLocked()
}

// Navigate sets the current page. Any of the four pages is reachable while
// authenticated; there is deliberately no admin-role guard here.
func (s *Session) Navigate(page domain.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	s.currentPage = page
	return nil
}

// ExitAdmin leaves the admin screen for home.
func (s *Session) ExitAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	s.currentPage = domain.PageHome
	s.closeEditorLocked()
	return nil
}

// Authenticated reports whether a profile is attached.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Profile returns a copy of the attached profile, if any.
func (s *Session) Profile() (domain.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return domain.UserProfile{}, false
	}
	return *s.profile, true
}

// OpenEditor opens the response editor for the item, seeding the draft buffer
// with any existing response. Opening replaces a previously open editor.
func (s *Session) OpenEditor(item domain.FeedbackItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = item.ID
	s.draft = item.OfficialResponse
}

// CancelEditor discards the draft buffer without committing.
func (s *Session) CancelEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeEditorLocked()
}

// SetDraft replaces the draft buffer for the open editor.
func (s *Session) SetDraft(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == "" {
		return ErrNoEditorOpen
	}
	s.draft = text
	return nil
}

// ApplyDraft replaces the draft buffer only if the editor is still open for
// the given feedback id. Stale drafts for a different item are discarded.
func (s *Session) ApplyDraft(feedbackID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID != feedbackID {
		return false
	}
	s.draft = text
	return true
}

// Editor returns the open editor's feedback id and draft buffer.
func (s *Session) Editor() (feedbackID, draft string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == "" {
		return "", "", false
	}
	return s.editingID, s.draft, true
}

// CloseEditor closes the editor and returns the final draft buffer.
func (s *Session) CloseEditor() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == "" {
		return "", ErrNoEditorOpen
	}
	draft := s.draft
	s.closeEditorLocked()
	return draft, nil
}

func (s *Session) closeEditorLocked() {
	s.editingID = ""
	s.draft = ""
}

func (s *Session) snapshot() (authenticated bool, view domain.AuthView, page domain.Page, profile *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		copied := *s.profile
		profile = &copied
	}
	return s.authenticated, s.authView, s.currentPage, profile
}
