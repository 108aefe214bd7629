package memory

import (
	"context"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
)

// SaveCategory upserts a category keyed exactly by its name.
func (s *Store) SaveCategory(_ context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.Name] = category
	return nil
}

// GetCategory returns (nil, nil) when the name does not resolve.
func (s *Store) GetCategory(_ context.Context, name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories[name], nil
}

// AllCategories returns a copy of the full mapping so callers cannot
// mutate the store's own map.
func (s *Store) AllCategories(_ context.Context) (map[string]*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*domain.Category, len(s.categories))
	for name, category := range s.categories {
		out[name] = category
	}
	return out, nil
}
