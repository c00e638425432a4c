package session

import "github.com/spec-kit/feedback-service/internal/domain"

// Screen names what the client should render for the current session state.
type Screen string

const (
	ScreenLogin  Screen = "login"
	ScreenSignup Screen = "signup"
	ScreenHome   Screen = "home"
	ScreenSubmit Screen = "submit"
	ScreenTrack  Screen = "track"
	ScreenAdmin  Screen = "admin"
)

// Chrome describes the shared page furniture around the active screen.
type Chrome struct {
	Navbar      bool `json:"navbar"`
	Footer      bool `json:"footer"`
	AdminButton bool `json:"adminButton"`
}

// ViewState is the resolved rendering decision for a session.
type ViewState struct {
	Authenticated bool                `json:"authenticated"`
	Screen        Screen              `json:"screen"`
	Page          domain.Page         `json:"page,omitempty"`
	Chrome        Chrome              `json:"chrome"`
	Profile       *domain.UserProfile `json:"profile,omitempty"`
}

// ResolveView applies the rendering rule: unauthenticated sessions see the
// login or signup screen with no chrome, the admin page renders full-page,
// and everything else renders inside the shared chrome. Unrecognized page
// values fall back to home.
func ResolveView(s *Session) ViewState {
	authenticated, authView, page, profile := s.snapshot()

	if !authenticated {
		screen := ScreenLogin
		if authView == domain.AuthViewSignup {
			screen = ScreenSignup
		}
		return ViewState{Screen: screen}
	}

	if page == domain.PageAdmin {
		return ViewState{
			Authenticated: true,
			Screen:        ScreenAdmin,
			Page:          page,
			Profile:       profile,
		}
	}

	if !page.Valid() {
		page = domain.PageHome
	}
	screen := ScreenHome
	switch page {
	case domain.PageSubmit:
		screen = ScreenSubmit
	case domain.PageTrack:
		screen = ScreenTrack
	}

	return ViewState{
		Authenticated: true,
		Screen:        screen,
		Page:          page,
		Chrome: Chrome{
			Navbar:      true,
			Footer:      true,
			AdminButton: profile != nil && profile.IsAdmin,
		},
		Profile: profile,
	}
}
