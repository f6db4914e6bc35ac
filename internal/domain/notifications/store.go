// Package notifications keeps an in-process notification feed shared across
// the service. Domain services write to it through the small Notifier
// interfaces they declare; handlers read and acknowledge it.
package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	mu    sync.Mutex
	items []Notification

	// Now is swappable for deterministic tests.
	Now func() time.Time
}

func NewStore() *Store {
	store := &Store{Now: time.Now}
	store.items = []Notification{
		{
			ID:        uuid.NewString(),
			Message:   "Welcome to HRX Dashboard!",
			Read:      true,
			CreatedAt: store.Now(),
		},
	}
	return store
}

// Add prepends an unread notification so the feed stays newest first.
func (s *Store) Add(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Notification{{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: s.Now(),
	}}, s.items...)
}

func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Notification, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		if !item.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flips every entry to read. Nothing is removed, and calling it
// again is a no-op.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Read = true
	}
}
