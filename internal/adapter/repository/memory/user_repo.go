package memory

import (
	"context"
	"strings"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
)

// SaveUser upserts a user keyed by its normalized username.
func (s *Store) SaveUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Key()] = user
	return nil
}

// GetUser looks a user up case-insensitively. Absent users return (nil, nil).
func (s *Store) GetUser(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[strings.ToLower(username)], nil
}

// UserExists reports whether a user is registered, case-insensitively.
func (s *Store) UserExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[strings.ToLower(username)]
	return ok, nil
}
