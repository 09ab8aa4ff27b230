package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) entityToModel(user *entity.User) model.User {
	return model.User{
		ID:                 user.ID,
		Name:               user.Name,
		Password:           user.Password,
		Balance:            user.Balance,
		IsVerified:         user.IsVerified,
		VerificationVector: user.VerificationVector,
		CreatedAt:          user.CreatedAt.UTC(),
		UpdatedAt:          user.UpdatedAt.UTC(),
	}
}

func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:                 userModel.ID,
		Name:               userModel.Name,
		Password:           userModel.Password,
		Balance:            userModel.Balance,
		IsVerified:         userModel.IsVerified,
		VerificationVector: userModel.VerificationVector,
		CreatedAt:          userModel.CreatedAt.UTC(),
		UpdatedAt:          userModel.UpdatedAt.UTC(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	translated := r.errorClassifier.Translate(err, errs.ErrUserNotFound)

	switch {
	case errors.Is(translated, errs.ErrUserNotFound):
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
	case errors.Is(translated, errs.ErrUniqueViolation):
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
		return fmt.Errorf("%w: %s", errs.ErrDuplicateUser, err.Error())
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	return translated
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})

	userModel := r.entityToModel(user)
	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})
	return nil
}
