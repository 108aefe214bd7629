package memory

import (
	"sync"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
)

// DefaultStartingListingID is the first listing ID the store hands out.
const DefaultStartingListingID int64 = 100001

// Store is the exclusive in-memory store for all marketplace entities.
// It implements domain.UserRepository, domain.ListingRepository and
// domain.CategoryRepository behind a single lock, since create/delete flows
// perform multi-map read-modify-write sequences that must not interleave.
type Store struct {
	mu            sync.RWMutex
	users         map[string]*domain.User     // key: lowercased username
	listings      map[int64]*domain.Listing   // key: listing ID
	categories    map[string]*domain.Category // key: exact category name
	nextListingID int64
}

// NewStore creates an empty store. A startingID <= 0 falls back to
// DefaultStartingListingID.
func NewStore(startingID int64) *Store {
	if startingID <= 0 {
		startingID = DefaultStartingListingID
	}
	return &Store{
		users:         make(map[string]*domain.User),
		listings:      make(map[int64]*domain.Listing),
		categories:    make(map[string]*domain.Category),
		nextListingID: startingID,
	}
}
