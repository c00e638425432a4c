package dto

// SwitchViewRequest payload for toggling the unauthenticated sub-view.
type SwitchViewRequest struct {
	View string `json:"view"`
}

// NavigateRequest payload for page navigation.
type NavigateRequest struct {
	Page string `json:"page"`
}
