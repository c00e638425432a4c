package domain

// FeedbackCategory classifies a submitted item.
type FeedbackCategory string

const (
	CategorySuggestion   FeedbackCategory = "Suggestion"
	CategoryComplaint    FeedbackCategory = "Complaint"
	CategoryAppreciation FeedbackCategory = "Appreciation"
)

// Categories lists all categories in display order.
func Categories() []FeedbackCategory {
	return []FeedbackCategory{CategorySuggestion, CategoryComplaint, CategoryAppreciation}
}

// Valid reports whether the category is one of the closed set.
func (c FeedbackCategory) Valid() bool {
	switch c {
	case CategorySuggestion, CategoryComplaint, CategoryAppreciation:
		return true
	}
	return false
}

// FeedbackStatus enumerates lifecycle states for feedback items.
type FeedbackStatus string

const (
	StatusSubmitted FeedbackStatus = "Submitted"
	StatusInReview  FeedbackStatus = "In Review"
	StatusResolved  FeedbackStatus = "Resolved"
)

// Statuses lists all statuses in lifecycle order.
func Statuses() []FeedbackStatus {
	return []FeedbackStatus{StatusSubmitted, StatusInReview, StatusResolved}
}

// Valid reports whether the status is one of the closed set.
func (s FeedbackStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusResolved:
		return true
	}
	return false
}

// FeedbackItem is one user-submitted record. ID is assigned once at creation
// and never changes; Date is a display string captured at submission time.
type FeedbackItem struct {
	ID               string           `json:"id"`
	Category         FeedbackCategory `json:"category"`
	Status           FeedbackStatus   `json:"status"`
	Date             string           `json:"date"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	OfficialResponse string           `json:"officialResponse,omitempty"`
}
