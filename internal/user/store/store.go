// Package store keeps registered users in process memory, matching the
// single-instance deployment the transaction store assumes.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/user"
)

type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*user.User
}

func New() *Store {
	return &Store{byEmail: make(map[string]*user.User)}
}

func (s *Store) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return user.ErrEmailTaken
	}

	s.byEmail[u.Email] = u

	return nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}

	return u, nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, user.ErrNotFound
}
