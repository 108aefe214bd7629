package usecase

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

// ListingUsecase implements the business logic for listings. Create and
// delete flows keep the user and category aggregates in step with the
// listing records.
type ListingUsecase struct {
	users      domain.UserRepository
	listings   domain.ListingRepository
	categories domain.CategoryRepository
	logger     *logger.Logger
	now        func() time.Time
}

// NewListingUsecase creates a new ListingUsecase.
func NewListingUsecase(
	users domain.UserRepository,
	listings domain.ListingRepository,
	categories domain.CategoryRepository,
	log *logger.Logger,
) *ListingUsecase {
	return &ListingUsecase{
		users:      users,
		listings:   listings,
		categories: categories,
		logger:     log.Named("ListingUsecase"),
		now:        time.Now,
	}
}

// CreateListing validates the input, allocates an ID, persists the listing
// and updates both owning aggregates. The listing stores the username string
// as supplied to the call, and the price at full precision.
func (uc *ListingUsecase) CreateListing(ctx context.Context, username, title, description, priceInput, categoryName string) (*domain.Listing, error) {
	price, err := strconv.ParseFloat(priceInput, 64)
	if err != nil || price < 0 {
		uc.logger.Debug("Rejected listing with invalid price",
			zap.String("username", username), zap.String("price_input", priceInput))
		return nil, domain.ErrInvalidPrice
	}

	user, err := uc.users.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnknownUser
	}

	id, err := uc.listings.NextListingID(ctx)
	if err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		ID:          id,
		Username:    username,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    categoryName,
		CreatedAt:   uc.now(),
	}
	if err := uc.listings.SaveListing(ctx, listing); err != nil {
		uc.logger.Error("Failed to save listing", zap.Int64("listing_id", id), zap.Error(err))
		return nil, err
	}

	user.AddListing(id)
	if err := uc.users.SaveUser(ctx, user); err != nil {
		uc.logger.Error("Failed to update user aggregate", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	category, err := uc.categories.GetCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		category = domain.NewCategory(categoryName)
	}
	category.AddListing(id)
	if err := uc.categories.SaveCategory(ctx, category); err != nil {
		uc.logger.Error("Failed to update category aggregate", zap.String("category", categoryName), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Listing created",
		zap.Int64("listing_id", id),
		zap.String("username", username),
		zap.String("category", categoryName))
	return listing, nil
}

// GetListing returns a listing by ID.
func (uc *ListingUsecase) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := uc.listings.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	return listing, nil
}

// DeleteListing removes a listing on behalf of username. Only the owner may
// delete; ownership is compared case-insensitively. The listing ID is removed
// from the owning user's and category's sets before the record itself goes,
// so no aggregate is left pointing at a deleted record.
func (uc *ListingUsecase) DeleteListing(ctx context.Context, id int64, username string) error {
	listing, err := uc.listings.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return domain.ErrListingNotFound
	}
	if !listing.OwnedBy(username) {
		uc.logger.Debug("Rejected delete by non-owner",
			zap.Int64("listing_id", id),
			zap.String("owner", listing.Username),
			zap.String("requested_by", username))
		return domain.ErrNotOwner
	}

	user, err := uc.users.GetUser(ctx, listing.Username)
	if err != nil {
		return err
	}
	if user != nil {
		user.RemoveListing(id)
		if err := uc.users.SaveUser(ctx, user); err != nil {
			return err
		}
	}

	category, err := uc.categories.GetCategory(ctx, listing.Category)
	if err != nil {
		return err
	}
	if category != nil {
		category.RemoveListing(id)
		if err := uc.categories.SaveCategory(ctx, category); err != nil {
			return err
		}
	}

	if err := uc.listings.DeleteListing(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Listing deleted", zap.Int64("listing_id", id), zap.String("username", username))
	return nil
}
