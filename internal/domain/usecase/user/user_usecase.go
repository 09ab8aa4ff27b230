package user

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/usecase"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo        persistence.UserRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	defaultPassword string
	hashCost        int
}

// Option customizes a UserUseCase
type Option func(*UserUseCase)

// WithHashCost overrides the bcrypt cost used for stored credentials
func WithHashCost(cost int) Option {
	return func(u *UserUseCase) {
		u.hashCost = cost
	}
}

// NewUserUseCase creates a new user use case instance.
// defaultPassword is the credential given to seeded default users.
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultPassword string,
	opts ...Option,
) usecase.UserUseCase {
	u := &UserUseCase{
		userRepo:        userRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		defaultPassword: defaultPassword,
		hashCost:        bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetFormattedUserBalance retrieves a user's informational balance
func (u *UserUseCase) GetFormattedUserBalance(ctx context.Context, userID uint64) (*usecase.UserBalanceResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	response := &usecase.UserBalanceResponse{
		UserID:     user.ID,
		Name:       user.Name,
		Balance:    user.Balance,
		IsVerified: user.IsVerified,
	}

	u.logger.Info("User balance retrieved", map[string]any{
		"userId":  userID,
		"balance": response.Balance,
	})

	return response, nil
}

// UserExists checks if a user exists with the given ID
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}

	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
