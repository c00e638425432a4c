package store

import (
	"sync"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// FeedbackStore holds the ordered collection of feedback items, newest first.
type FeedbackStore interface {
	// Add prepends the item to the collection. No deduplication is applied.
	Add(item domain.FeedbackItem)
	// Update replaces the element whose ID matches. Unknown IDs are a silent
	// no-op; callers pass a full copy with only the desired fields changed.
	Update(item domain.FeedbackItem)
	// List returns a copy of the collection in order.
	List() []domain.FeedbackItem
	// GetByID returns the matching item, if any.
	GetByID(id string) (domain.FeedbackItem, bool)
}

type memoryStore struct {
	mu    sync.RWMutex
	items []domain.FeedbackItem
}

// NewMemoryStore creates an in-memory store seeded with the given items.
func NewMemoryStore(seed []domain.FeedbackItem) FeedbackStore {
	items := make([]domain.FeedbackItem, len(seed))
	copy(items, seed)
	return &memoryStore{items: items}
}

func (s *memoryStore) Add(item domain.FeedbackItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.FeedbackItem{item}, s.items...)
}

func (s *memoryStore) Update(item domain.FeedbackItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}

func (s *memoryStore) List() []domain.FeedbackItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.FeedbackItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *memoryStore) GetByID(id string) (domain.FeedbackItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			return s.items[i], true
		}
	}
	return domain.FeedbackItem{}, false
}
