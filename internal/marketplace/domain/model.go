package domain

import (
	"fmt"
	"strings"
	"time"
)

// --- User Entity ---

// User is the user aggregate. Username keeps the casing supplied at
// registration; lookups are case-insensitive via Key().
type User struct {
	Username   string
	ListingIDs map[int64]struct{}
}

// NewUser creates a user with an empty listing set.
func NewUser(username string) *User {
	return &User{
		Username:   username,
		ListingIDs: make(map[int64]struct{}),
	}
}

// Key returns the normalized username used as the storage key.
func (u *User) Key() string {
	return strings.ToLower(u.Username)
}

// AddListing records a listing created by this user.
func (u *User) AddListing(listingID int64) {
	u.ListingIDs[listingID] = struct{}{}
}

// RemoveListing drops a listing from this user. Removing an absent ID is a no-op.
func (u *User) RemoveListing(listingID int64) {
	delete(u.ListingIDs, listingID)
}

// --- Listing Entity ---

// Listing is a marketplace listing. Username and Category are back-references
// by name, not validated foreign keys; the owning aggregates track the listing
// by ID. ID is assigned once and never reused.
type Listing struct {
	ID          int64
	Username    string
	Title       string
	Description string
	Price       float64
	Category    string
	CreatedAt   time.Time
}

// OwnedBy reports whether the listing belongs to the given user,
// compared case-insensitively.
func (l *Listing) OwnedBy(username string) bool {
	return strings.EqualFold(l.Username, username)
}

// FormatCreatedAt renders the creation timestamp at second precision.
func (l *Listing) FormatCreatedAt() string {
	return l.CreatedAt.Format("2006-01-02 15:04:05")
}

// OutputString renders the listing as a single pipe-delimited line.
// The displayed price is truncated toward zero; the stored price keeps
// full precision.
func (l *Listing) OutputString() string {
	return fmt.Sprintf("%s|%s|%d|%s|%s|%s",
		l.Title, l.Description, int64(l.Price), l.FormatCreatedAt(), l.Category, l.Username)
}

// --- Category Entity ---

// Category is created lazily by the first listing that references its name.
// An emptied category stays in storage but is excluded from queries that
// require listings.
type Category struct {
	Name       string
	ListingIDs map[int64]struct{}
}

// NewCategory creates a category with an empty listing set.
func NewCategory(name string) *Category {
	return &Category{
		Name:       name,
		ListingIDs: make(map[int64]struct{}),
	}
}

// AddListing records a listing under this category.
func (c *Category) AddListing(listingID int64) {
	c.ListingIDs[listingID] = struct{}{}
}

// RemoveListing drops a listing from this category. Removing an absent ID is a no-op.
func (c *Category) RemoveListing(listingID int64) {
	delete(c.ListingIDs, listingID)
}

// ListingCount returns the number of listings currently in this category.
func (c *Category) ListingCount() int {
	return len(c.ListingIDs)
}

// HasListings reports whether this category currently has any listings.
func (c *Category) HasListings() bool {
	return len(c.ListingIDs) > 0
}
