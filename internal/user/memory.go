package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process account store used when no database is
// configured, and by tests. Same contract as PostgresStore.
type MemoryStore struct {
	mu         sync.Mutex
	byID       map[string]User
	byUsername map[string]string // lower(username) -> id
	byGoogleID map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]User),
		byUsername: make(map[string]string),
		byGoogleID: make(map[string]string),
	}
}

func (s *MemoryStore) Create(_ context.Context, u *User) error {
	if u.Username == "" && u.GoogleID == "" {
		return errors.New("user: record has no identity path")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Username)
	if u.Username != "" {
		if _, exists := s.byUsername[key]; exists {
			return ErrDuplicateUsername
		}
	}
	if u.GoogleID != "" {
		if _, exists := s.byGoogleID[u.GoogleID]; exists {
			return ErrDuplicateGoogleID
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	s.byID[u.ID] = *u
	if u.Username != "" {
		s.byUsername[key] = u.ID
	}
	if u.GoogleID != "" {
		s.byGoogleID[u.GoogleID] = u.ID
	}

	return nil
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.byID[id]
	return &u, nil
}

func (s *MemoryStore) FindByGoogleID(_ context.Context, googleID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byGoogleID[googleID]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.byID[id]
	return &u, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
