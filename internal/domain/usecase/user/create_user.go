package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserIDs are the users seeded at start-up
var DefaultUserIDs = []uint64{1, 2, 3}

// DefaultUserName is the display name given to a seeded user
func DefaultUserName(id uint64) string {
	return fmt.Sprintf("user_%d", id)
}

// CreateUser creates a new user, storing a bcrypt hash of password
func (u *UserUseCase) CreateUser(ctx context.Context, id uint64, name string, password string) (*entity.User, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrValidation)
	}

	exists, err := u.UserExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash credential: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewUser(id, name, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": id,
		"name":   user.Name,
	})

	return user, nil
}

// CreateDefaultUsers creates the users in DefaultUserIDs that do not exist yet
func (u *UserUseCase) CreateDefaultUsers(ctx context.Context) error {
	for _, id := range DefaultUserIDs {
		exists, err := u.UserExists(ctx, id)
		if err != nil {
			return err
		}

		if exists {
			u.logger.Debug("Default user already exists", map[string]any{
				"userId": id,
			})
			continue
		}

		// another instance may seed concurrently
		_, err = u.CreateUser(ctx, id, DefaultUserName(id), u.defaultPassword)
		if err != nil && !errors.Is(err, errs.ErrDuplicateUser) {
			return err
		}
	}

	u.logger.Info("Default users created or verified", nil)
	return nil
}
