package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdurahmanit/marketplace-cli/internal/adapter/repository/memory"
	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

type categoryFixture struct {
	ctx       context.Context
	store     *memory.Store
	listingUC *ListingUsecase
	uc        *CategoryUsecase
	clock     time.Time
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()
	f := &categoryFixture{
		ctx:   context.Background(),
		store: memory.NewStore(0),
		clock: time.Date(2019, 2, 22, 12, 0, 0, 0, time.Local),
	}
	f.listingUC = NewListingUsecase(f.store, f.store, f.store, logger.NewNop())
	f.uc = NewCategoryUsecase(f.store, f.store, logger.NewNop())
	require.NoError(t, f.store.SaveUser(f.ctx, domain.NewUser("alice")))
	return f
}

// create adds a listing one simulated second after the previous one.
func (f *categoryFixture) create(t *testing.T, title, price, category string) *domain.Listing {
	t.Helper()
	f.clock = f.clock.Add(time.Second)
	at := f.clock
	f.listingUC.now = func() time.Time { return at }
	listing, err := f.listingUC.CreateListing(f.ctx, "alice", title, "desc", price, category)
	require.NoError(t, err)
	return listing
}

func titles(listings []*domain.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Title)
	}
	return out
}

func TestGetCategoryListingsSortByPrice(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "first", "10", "Electronics")
	f.create(t, "second", "30", "Electronics")
	f.create(t, "third", "20", "Electronics")

	asc, err := f.uc.GetCategoryListings(f.ctx, "Electronics", SortByPrice, OrderAscending)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "third", "second"}, titles(asc))

	dsc, err := f.uc.GetCategoryListings(f.ctx, "Electronics", SortByPrice, OrderDescending)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third", "first"}, titles(dsc))
}

func TestGetCategoryListingsSortByTime(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "oldest", "30", "Books")
	f.create(t, "middle", "10", "Books")
	f.create(t, "newest", "20", "Books")

	asc, err := f.uc.GetCategoryListings(f.ctx, "Books", SortByTime, OrderAscending)
	require.NoError(t, err)
	assert.Equal(t, []string{"oldest", "middle", "newest"}, titles(asc))

	dsc, err := f.uc.GetCategoryListings(f.ctx, "Books", SortByTime, OrderDescending)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles(dsc))
}

func TestGetCategoryListingsTiesReverseFully(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "a", "10", "Books")
	f.create(t, "b", "10", "Books")
	f.create(t, "c", "10", "Books")

	// Equal prices: the stable ascending sort keeps creation order, and the
	// descending result is that exact order reversed, not re-sorted.
	asc, err := f.uc.GetCategoryListings(f.ctx, "Books", SortByPrice, OrderAscending)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, titles(asc))

	dsc, err := f.uc.GetCategoryListings(f.ctx, "Books", SortByPrice, OrderDescending)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, titles(dsc))
}

func TestGetCategoryListingsValidation(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "a", "10", "Books")

	_, err := f.uc.GetCategoryListings(f.ctx, "Books", "sort_color", OrderAscending)
	assert.ErrorIs(t, err, domain.ErrInvalidSortType)

	_, err = f.uc.GetCategoryListings(f.ctx, "Books", SortByPrice, "desc")
	assert.ErrorIs(t, err, domain.ErrInvalidSortOrder)

	_, err = f.uc.GetCategoryListings(f.ctx, "Garden", SortByPrice, OrderAscending)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestGetCategoryListingsCategoryNameIsExact(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "a", "10", "Books")

	_, err := f.uc.GetCategoryListings(f.ctx, "books", SortByPrice, OrderAscending)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound, "category keys are case-sensitive")
}

func TestEmptiedCategoryReportsNotFound(t *testing.T) {
	f := newCategoryFixture(t)
	listing := f.create(t, "a", "10", "Books")
	require.NoError(t, f.listingUC.DeleteListing(f.ctx, listing.ID, "alice"))

	// A category whose listings were all deleted collapses into not found.
	_, err := f.uc.GetCategoryListings(f.ctx, "Books", SortByPrice, OrderAscending)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestGetCategoryListingsSkipsStaleReferences(t *testing.T) {
	f := newCategoryFixture(t)
	kept := f.create(t, "kept", "10", "Books")
	stale := f.create(t, "stale", "20", "Books")

	// Remove the listing record directly, leaving the category's reference
	// dangling the way a partially applied delete would.
	require.NoError(t, f.store.DeleteListing(f.ctx, stale.ID))

	listings, err := f.uc.GetCategoryListings(f.ctx, "Books", SortByPrice, OrderAscending)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, kept.ID, listings[0].ID)
}

func TestGetTopCategory(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "a", "1", "Books")
	f.create(t, "b", "1", "Books")
	f.create(t, "c", "1", "Tools")

	top, err := f.uc.GetTopCategory(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Books", top)
}

func TestGetTopCategoryTieBreaksAlphabeticallyLater(t *testing.T) {
	f := newCategoryFixture(t)
	for i := 0; i < 3; i++ {
		f.create(t, "b", "1", "books")
		f.create(t, "t", "1", "tools")
	}

	top, err := f.uc.GetTopCategory(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "tools", top)
}

func TestGetTopCategoryIgnoresEmptiedCategories(t *testing.T) {
	f := newCategoryFixture(t)
	f.create(t, "a", "1", "Books")
	doomed := f.create(t, "x", "1", "Zzz")
	doomed2 := f.create(t, "y", "1", "Zzz")
	require.NoError(t, f.listingUC.DeleteListing(f.ctx, doomed.ID, "alice"))
	require.NoError(t, f.listingUC.DeleteListing(f.ctx, doomed2.ID, "alice"))

	top, err := f.uc.GetTopCategory(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Books", top)
}

func TestGetTopCategoryWithNoListings(t *testing.T) {
	f := newCategoryFixture(t)
	_, err := f.uc.GetTopCategory(f.ctx)
	assert.ErrorIs(t, err, domain.ErrNoCategoriesFound)
}
