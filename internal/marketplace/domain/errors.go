package domain

import "errors"

// --- Domain Specific Errors ---
//
// Every error a command can surface is a sentinel here; the CLI handler layer
// maps them to the fixed "Error - ..." result strings. None of them are fatal
// to the process.

var (
	// ErrInvalidArguments indicates a command was called with the wrong arity.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrUnknownUser indicates the acting user has never been registered.
	ErrUnknownUser = errors.New("unknown user")
	// ErrUserAlreadyExists indicates a duplicate registration (any casing).
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidPrice indicates a price that is unparsable or negative.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidListingID indicates a listing ID argument that is not an integer.
	ErrInvalidListingID = errors.New("invalid listing ID")
	// ErrListingNotFound indicates the requested listing does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrNotOwner indicates the acting user does not own the listing.
	ErrNotOwner = errors.New("listing owner mismatch")
	// ErrCategoryNotFound indicates the category does not exist or has no listings.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidSortType indicates a sort keyword other than sort_price/sort_time.
	ErrInvalidSortType = errors.New("invalid sort type")
	// ErrInvalidSortOrder indicates an order keyword other than asc/dsc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
	// ErrNoCategoriesFound indicates no category currently has any listings.
	ErrNoCategoriesFound = errors.New("no categories found")
)
