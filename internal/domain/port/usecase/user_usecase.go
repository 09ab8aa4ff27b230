package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// UserBalanceResponse represents the standardized balance response
type UserBalanceResponse struct {
	UserID     uint64 `json:"userId"`
	Name       string `json:"name"`
	Balance    int64  `json:"balance"`
	IsVerified bool   `json:"isVerified"`
}

// UserUseCase defines methods for user reference data
type UserUseCase interface {
	// GetFormattedUserBalance retrieves the informational balance of a user
	// This is the main method used by the GET /api/users/{userId}/balance endpoint
	GetFormattedUserBalance(ctx context.Context, userID uint64) (*UserBalanceResponse, error)

	// CreateUser creates a new user, storing a bcrypt hash of the plain credential
	CreateUser(ctx context.Context, id uint64, name string, password string) (*entity.User, error)

	// CreateDefaultUsers creates predefined users with IDs 1, 2, 3 if they are missing
	CreateDefaultUsers(ctx context.Context) error

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
