package domain

import "context"

// The repository interfaces are pure keyed storage plus ID generation.
// No validation lives behind them; usecases own the business rules.
// Methods operate on clean domain entities with no knowledge of how the
// backing store keys or copies them.

// UserRepository stores users keyed by the normalized (lowercased) username.
type UserRepository interface {
	SaveUser(ctx context.Context, user *User) error
	// GetUser looks a user up case-insensitively. Absent users return (nil, nil).
	GetUser(ctx context.Context, username string) (*User, error)
	UserExists(ctx context.Context, username string) (bool, error)
}

// ListingRepository stores listings keyed by listing ID and owns ID generation.
type ListingRepository interface {
	SaveListing(ctx context.Context, listing *Listing) error
	// GetListing returns (nil, nil) when the ID does not resolve.
	GetListing(ctx context.Context, id int64) (*Listing, error)
	// DeleteListing is idempotent; deleting an absent ID is a no-op.
	DeleteListing(ctx context.Context, id int64) error
	// NextListingID returns the current counter value and advances it.
	// Issued IDs are never reused, even after deletion.
	NextListingID(ctx context.Context) (int64, error)
}

// CategoryRepository stores categories keyed exactly by name.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category *Category) error
	// GetCategory returns (nil, nil) when the name does not resolve.
	GetCategory(ctx context.Context, name string) (*Category, error)
	// AllCategories returns a defensive copy of the full name->category mapping.
	AllCategories(ctx context.Context) (map[string]*Category, error)
}
