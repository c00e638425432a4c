package domain

// Page enumerates the main application screens.
type Page string

const (
	PageHome   Page = "home"
	PageSubmit Page = "submit"
	PageTrack  Page = "track"
	PageAdmin  Page = "admin"
)

// Valid reports whether the page is one of the closed set.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageSubmit, PageTrack, PageAdmin:
		return true
	}
	return false
}

// AuthView enumerates the screens shown while unauthenticated.
type AuthView string

const (
	AuthViewLogin  AuthView = "login"
	AuthViewSignup AuthView = "signup"
)
