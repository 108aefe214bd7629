package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
)

func TestUserLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	require.NoError(t, store.SaveUser(ctx, domain.NewUser("SellerOne")))

	for _, name := range []string{"SellerOne", "sellerone", "SELLERONE"} {
		exists, err := store.UserExists(ctx, name)
		require.NoError(t, err)
		assert.True(t, exists, "lookup %q", name)

		user, err := store.GetUser(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "SellerOne", user.Username)
	}

	missing, err := store.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNextListingIDIsMonotonicAndNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	first, err := store.NextListingID(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultStartingListingID, first)

	second, err := store.NextListingID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)

	// Deleting the most recently issued ID must not rewind the counter.
	require.NoError(t, store.SaveListing(ctx, &domain.Listing{ID: second}))
	require.NoError(t, store.DeleteListing(ctx, second))

	third, err := store.NextListingID(ctx)
	require.NoError(t, err)
	assert.Equal(t, second+1, third)
}

func TestStoreHonorsConfiguredStartingID(t *testing.T) {
	ctx := context.Background()
	store := NewStore(500)

	id, err := store.NextListingID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(500), id)
}

func TestDeleteListingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	require.NoError(t, store.SaveListing(ctx, &domain.Listing{ID: 100001, Title: "Bike"}))
	require.NoError(t, store.DeleteListing(ctx, 100001))
	require.NoError(t, store.DeleteListing(ctx, 100001))

	listing, err := store.GetListing(ctx, 100001)
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestAllCategoriesReturnsDefensiveCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	require.NoError(t, store.SaveCategory(ctx, domain.NewCategory("Electronics")))

	all, err := store.AllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	delete(all, "Electronics")

	again, err := store.AllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1, "mutating the returned map must not touch the store")
}
