package dto

// SubmitFeedbackRequest payload for new feedback. Name and Email are the
// form's optional submitter fields; they are accepted but not stored on the
// created item.
type SubmitFeedbackRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// UpdateStatusRequest payload for an admin status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SaveResponseRequest payload for committing the response editor. Text, when
// present, replaces the draft buffer before the commit.
type SaveResponseRequest struct {
	Text *string `json:"text"`
}
