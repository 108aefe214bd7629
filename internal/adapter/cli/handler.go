package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/usecase"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

// Fixed result strings of the command surface.
const (
	resultSuccess = "Success"

	errInvalidArguments     = "Error - invalid arguments"
	errUserAlreadyExisting  = "Error - user already existing"
	errUnknownUser          = "Error - unknown user"
	errInvalidPrice         = "Error - invalid price"
	errInvalidListingID     = "Error - invalid listing ID"
	errNotFound             = "Error - not found"
	errListingDoesNotExist  = "Error - listing does not exist"
	errListingOwnerMismatch = "Error - listing owner mismatch"
	errCategoryNotFound     = "Error - category not found"
	errInvalidSortType      = "Error - invalid sort type"
	errInvalidSortOrder     = "Error - invalid sort order"
	errNoCategoriesFound    = "Error - no categories found"
)

// Handler hosts the command handlers. Every handler takes the already
// tokenized argument list and returns exactly one result string, checking
// arity first, then that the acting user exists, then the command-specific
// validation, before delegating to a usecase.
type Handler struct {
	userUC     *usecase.UserUsecase
	listingUC  *usecase.ListingUsecase
	categoryUC *usecase.CategoryUsecase
	logger     *logger.Logger
}

// NewHandler creates a Handler over the given usecases.
func NewHandler(userUC *usecase.UserUsecase, listingUC *usecase.ListingUsecase, categoryUC *usecase.CategoryUsecase, log *logger.Logger) *Handler {
	return &Handler{
		userUC:     userUC,
		listingUC:  listingUC,
		categoryUC: categoryUC,
		logger:     log.Named("Handler"),
	}
}

// requireUser returns the error string for the acting-user check, or "" when
// the user exists. Repository failures are reported as an unknown user rather
// than leaking internals to the terminal.
func (h *Handler) requireUser(ctx context.Context, username string) string {
	exists, err := h.userUC.Exists(ctx, username)
	if err != nil {
		h.logger.Error("User existence check failed", zap.String("username", username), zap.Error(err))
		return errUnknownUser
	}
	if !exists {
		return errUnknownUser
	}
	return ""
}

// Register handles REGISTER <username>.
func (h *Handler) Register(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return errInvalidArguments
	}

	_, err := h.userUC.Register(ctx, args[0])
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return errUserAlreadyExisting
	default:
		return errInvalidArguments
	}
}

// CreateListing handles CREATE_LISTING <username> <title> <description> <price> <category>.
func (h *Handler) CreateListing(ctx context.Context, args []string) string {
	if len(args) != 5 {
		return errInvalidArguments
	}
	username, title, description, price, category := args[0], args[1], args[2], args[3], args[4]

	listing, err := h.listingUC.CreateListing(ctx, username, title, description, price, category)
	switch {
	case err == nil:
		return strconv.FormatInt(listing.ID, 10)
	case errors.Is(err, domain.ErrInvalidPrice):
		return errInvalidPrice
	case errors.Is(err, domain.ErrUnknownUser):
		return errUnknownUser
	default:
		return errInvalidArguments
	}
}

// GetListing handles GET_LISTING <username> <listing_id>.
func (h *Handler) GetListing(ctx context.Context, args []string) string {
	if len(args) != 2 {
		return errInvalidArguments
	}
	username, idArg := args[0], args[1]

	if msg := h.requireUser(ctx, username); msg != "" {
		return msg
	}

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return errInvalidListingID
	}

	listing, err := h.listingUC.GetListing(ctx, id)
	if err != nil {
		return errNotFound
	}
	return listing.OutputString()
}

// DeleteListing handles DELETE_LISTING <username> <listing_id>.
func (h *Handler) DeleteListing(ctx context.Context, args []string) string {
	if len(args) != 2 {
		return errInvalidArguments
	}
	username, idArg := args[0], args[1]

	if msg := h.requireUser(ctx, username); msg != "" {
		return msg
	}

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return errInvalidListingID
	}

	err = h.listingUC.DeleteListing(ctx, id, username)
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrListingNotFound):
		return errListingDoesNotExist
	case errors.Is(err, domain.ErrNotOwner):
		return errListingOwnerMismatch
	default:
		return errInvalidArguments
	}
}

// GetCategory handles GET_CATEGORY <username> <category> <sort_type> <order>.
// The success result is one formatted listing per line.
func (h *Handler) GetCategory(ctx context.Context, args []string) string {
	if len(args) != 4 {
		return errInvalidArguments
	}
	username, category, sortType, order := args[0], args[1], args[2], args[3]

	if msg := h.requireUser(ctx, username); msg != "" {
		return msg
	}

	listings, err := h.categoryUC.GetCategoryListings(ctx, category, sortType, order)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCategoryNotFound):
		return errCategoryNotFound
	case errors.Is(err, domain.ErrInvalidSortType):
		return errInvalidSortType
	case errors.Is(err, domain.ErrInvalidSortOrder):
		return errInvalidSortOrder
	default:
		return errInvalidArguments
	}

	lines := make([]string, 0, len(listings))
	for _, listing := range listings {
		lines = append(lines, listing.OutputString())
	}
	return strings.Join(lines, "\n")
}

// GetTopCategory handles GET_TOP_CATEGORY <username>.
func (h *Handler) GetTopCategory(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return errInvalidArguments
	}

	if msg := h.requireUser(ctx, args[0]); msg != "" {
		return msg
	}

	name, err := h.categoryUC.GetTopCategory(ctx)
	if err != nil {
		return errNoCategoriesFound
	}
	return name
}
