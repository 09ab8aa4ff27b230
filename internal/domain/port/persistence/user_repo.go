package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// UserRepository reads and seeds user reference data
type UserRepository interface {
	// GetByID retrieves a user by ID
	// Used for the GET /api/users/{userId}/balance endpoint and seeding checks
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	// Used for initializing default users (1, 2, 3)
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID or name already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
