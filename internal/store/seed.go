package store

import "github.com/spec-kit/feedback-service/internal/domain"

// SeedFeedback returns the fixed sample data the store starts with.
func SeedFeedback() []domain.FeedbackItem {
	return []domain.FeedbackItem{
		{
			ID:          "FB-1021",
			Category:    domain.CategorySuggestion,
			Status:      domain.StatusSubmitted,
			Date:        "Oct 24, 2023",
			Title:       "Dark Mode Support",
			Description: "It would be great to have a native dark mode for the dashboard to reduce eye strain at night.",
		},
		{
			ID:          "FB-1022",
			Category:    domain.CategoryComplaint,
			Status:      domain.StatusInReview,
			Date:        "Oct 22, 2023",
			Title:       "Mobile App Lag",
			Description: "The mobile app seems to lag when switching between the feedback tracking and submission screens.",
		},
		{
			ID:               "FB-1023",
			Category:         domain.CategoryAppreciation,
			Status:           domain.StatusResolved,
			Date:             "Oct 15, 2023",
			Title:            "Great UI Update",
			Description:      "Just wanted to say the new dashboard layout is much more intuitive than the previous one!",
			OfficialResponse: "Thank you for the kind words! We are glad you like the new interface. We worked hard on making it cleaner for all users.",
		},
		{
			ID:               "FB-1024",
			Category:         domain.CategorySuggestion,
			Status:           domain.StatusResolved,
			Date:             "Sep 28, 2023",
			Title:            "Bulk Export",
			Description:      "Would love an option to export all my feedback history as a CSV file.",
			OfficialResponse: "We have implemented the export feature! You can now find a \"Download CSV\" button at the bottom of your history page.",
		},
	}
}
