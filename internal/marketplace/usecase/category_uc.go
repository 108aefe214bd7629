package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

// Sort keywords accepted by GetCategoryListings.
const (
	SortByPrice = "sort_price"
	SortByTime  = "sort_time"

	OrderAscending  = "asc"
	OrderDescending = "dsc"
)

// CategoryUsecase implements the read-side business logic for categories.
type CategoryUsecase struct {
	listings   domain.ListingRepository
	categories domain.CategoryRepository
	logger     *logger.Logger
}

// NewCategoryUsecase creates a new CategoryUsecase.
func NewCategoryUsecase(listings domain.ListingRepository, categories domain.CategoryRepository, log *logger.Logger) *CategoryUsecase {
	return &CategoryUsecase{
		listings:   listings,
		categories: categories,
		logger:     log.Named("CategoryUsecase"),
	}
}

// GetCategoryListings returns the category's listings sorted by the given
// key and order. A category that does not exist and a category whose listing
// set has emptied out after deletions are both reported as not found.
//
// Sorting is a stable ascending sort over listings resolved in ascending ID
// order; descending output is the ascending result reversed in full, so ties
// keep creation order ascending and show reversed creation order descending.
func (uc *CategoryUsecase) GetCategoryListings(ctx context.Context, name, sortType, order string) ([]*domain.Listing, error) {
	category, err := uc.categories.GetCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	listings, err := uc.resolveListings(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, domain.ErrCategoryNotFound
	}

	switch sortType {
	case SortByPrice:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case SortByTime:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		})
	default:
		return nil, domain.ErrInvalidSortType
	}

	switch order {
	case OrderAscending:
	case OrderDescending:
		for i, j := 0, len(listings)-1; i < j; i, j = i+1, j-1 {
			listings[i], listings[j] = listings[j], listings[i]
		}
	default:
		return nil, domain.ErrInvalidSortOrder
	}

	return listings, nil
}

// resolveListings fetches the category's listings in ascending ID order.
// IDs that no longer resolve are skipped; the category set may briefly hold
// stale references and that is not an error.
func (uc *CategoryUsecase) resolveListings(ctx context.Context, category *domain.Category) ([]*domain.Listing, error) {
	ids := make([]int64, 0, len(category.ListingIDs))
	for id := range category.ListingIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	listings := make([]*domain.Listing, 0, len(ids))
	for _, id := range ids {
		listing, err := uc.listings.GetListing(ctx, id)
		if err != nil {
			return nil, err
		}
		if listing == nil {
			uc.logger.Debug("Skipping stale listing reference",
				zap.String("category", category.Name), zap.Int64("listing_id", id))
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// GetTopCategory returns the name of the category with the most listings.
// Ties break toward the alphabetically later name. Categories whose listing
// sets are empty do not participate.
func (uc *CategoryUsecase) GetTopCategory(ctx context.Context) (string, error) {
	categories, err := uc.categories.AllCategories(ctx)
	if err != nil {
		return "", err
	}

	var (
		topName  string
		topCount int
		found    bool
	)
	for name, category := range categories {
		if !category.HasListings() {
			continue
		}
		count := category.ListingCount()
		if !found || count > topCount || (count == topCount && name > topName) {
			topName = name
			topCount = count
			found = true
		}
	}
	if !found {
		return "", domain.ErrNoCategoriesFound
	}
	return topName, nil
}
