package memory

import (
	"context"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
)

// SaveListing upserts a listing keyed by its ID.
func (s *Store) SaveListing(_ context.Context, listing *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[listing.ID] = listing
	return nil
}

// GetListing returns (nil, nil) when the ID does not resolve.
func (s *Store) GetListing(_ context.Context, id int64) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listings[id], nil
}

// DeleteListing removes a listing. Deleting an absent ID is a no-op.
func (s *Store) DeleteListing(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listings, id)
	return nil
}

// NextListingID returns the current counter value and advances it.
// The counter never goes backwards and issued IDs are never reused.
func (s *Store) NextListingID(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListingID
	s.nextListingID++
	return id, nil
}
