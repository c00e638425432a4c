package domain

// UserProfile is the authenticated caller's display identity for the current
// session. IsAdmin derives solely from the reserved admin email address.
type UserProfile struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
