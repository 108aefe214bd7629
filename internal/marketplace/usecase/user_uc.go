package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/domain"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

// UserUsecase implements the business logic for users.
type UserUsecase struct {
	repo   domain.UserRepository
	logger *logger.Logger
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(repo domain.UserRepository, log *logger.Logger) *UserUsecase {
	return &UserUsecase{
		repo:   repo,
		logger: log.Named("UserUsecase"),
	}
}

// Exists reports whether a user is registered, case-insensitively.
func (uc *UserUsecase) Exists(ctx context.Context, username string) (bool, error) {
	return uc.repo.UserExists(ctx, username)
}

// Register creates a new user. The username keeps its original casing but is
// unique under case-insensitive comparison.
func (uc *UserUsecase) Register(ctx context.Context, username string) (*domain.User, error) {
	exists, err := uc.repo.UserExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.logger.Debug("Registration rejected, user already exists", zap.String("username", username))
		return nil, domain.ErrUserAlreadyExists
	}

	user := domain.NewUser(username)
	if err := uc.repo.SaveUser(ctx, user); err != nil {
		uc.logger.Error("Failed to save user", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("User registered", zap.String("username", username))
	return user, nil
}
