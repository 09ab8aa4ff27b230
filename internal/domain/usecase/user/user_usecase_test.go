package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-report-service/mocks/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/mocks/port/persistence"
)

func quietLogger() *core.MockLogger {
	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	return mockLogger
}

func TestUserUseCase_GetFormattedUserBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should return balance for existing user", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByID", ctx, uint64(2)).Return(&entity.User{ID: 2, Name: "user_2", Balance: 12345}, nil)
		mockLogger.On("Info", "User balance retrieved", mock.Anything).Return()

		useCase := NewUserUseCase(mockUserRepo, new(core.MockTimeProvider), mockLogger, "pw")
		response, err := useCase.GetFormattedUserBalance(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, uint64(2), response.UserID)
		assert.Equal(t, "user_2", response.Name)
		assert.Equal(t, int64(12345), response.Balance)
		assert.False(t, response.IsVerified)

		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject zero user id", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)

		useCase := NewUserUseCase(mockUserRepo, new(core.MockTimeProvider), quietLogger(), "pw")
		response, err := useCase.GetFormattedUserBalance(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, response)
		mockUserRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("should propagate not found", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockUserRepo.On("GetByID", ctx, uint64(999)).Return(nil, errs.ErrUserNotFound)

		useCase := NewUserUseCase(mockUserRepo, new(core.MockTimeProvider), quietLogger(), "pw")
		response, err := useCase.GetFormattedUserBalance(ctx, 999)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, response)
	})
}

func TestUserUseCase_UserExists(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		repoErr     error
		expected    bool
		expectedErr error
	}{
		{"Existing user", nil, true, nil},
		{"Missing user", errs.ErrUserNotFound, false, nil},
		{"Database failure", errs.ErrDatabaseConnection, false, errs.ErrDatabaseConnection},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUserRepo := new(persistence.MockUserRepository)
			if tc.repoErr != nil {
				mockUserRepo.On("GetByID", ctx, uint64(1)).Return(nil, tc.repoErr)
			} else {
				mockUserRepo.On("GetByID", ctx, uint64(1)).Return(&entity.User{ID: 1}, nil)
			}

			useCase := NewUserUseCase(mockUserRepo, new(core.MockTimeProvider), quietLogger(), "pw")
			exists, err := useCase.UserExists(ctx, 1)

			assert.Equal(t, tc.expected, exists)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should hash the credential", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockUserRepo.On("GetByID", ctx, uint64(5)).Return(nil, errs.ErrUserNotFound)
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		useCase := NewUserUseCase(mockUserRepo, mockTimeProvider, quietLogger(), "pw", WithHashCost(bcrypt.MinCost))
		user, err := useCase.CreateUser(ctx, 5, "user_5", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "user_5", user.Name)
		assert.NotEqual(t, []byte("s3cret"), user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword(user.Password, []byte("s3cret")))
		assert.Equal(t, fixedTime, user.CreatedAt)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should refuse an existing id", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockUserRepo.On("GetByID", ctx, uint64(1)).Return(&entity.User{ID: 1}, nil)

		useCase := NewUserUseCase(mockUserRepo, new(core.MockTimeProvider), quietLogger(), "pw", WithHashCost(bcrypt.MinCost))
		_, err := useCase.CreateUser(ctx, 1, "user_1", "pw")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should require a password", func(t *testing.T) {
		useCase := NewUserUseCase(new(persistence.MockUserRepository), new(core.MockTimeProvider), quietLogger(), "pw")
		_, err := useCase.CreateUser(ctx, 1, "user_1", "")

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestUserUseCase_CreateDefaultUsers(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should create only missing users", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockUserRepo.On("GetByID", ctx, uint64(1)).Return(&entity.User{ID: 1}, nil)
		mockUserRepo.On("GetByID", ctx, uint64(2)).Return(nil, errs.ErrUserNotFound)
		mockUserRepo.On("GetByID", ctx, uint64(3)).Return(nil, errs.ErrUserNotFound)
		mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == DefaultUserName(u.ID)
		})).Return(nil).Twice()

		useCase := NewUserUseCase(mockUserRepo, mockTimeProvider, quietLogger(), "pw", WithHashCost(bcrypt.MinCost))

		require.NoError(t, useCase.CreateDefaultUsers(ctx))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should tolerate a concurrent seeder", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockUserRepo.On("GetByID", ctx, mock.Anything).Return(nil, errs.ErrUserNotFound)
		mockUserRepo.On("Create", ctx, mock.Anything).Return(errs.ErrDuplicateUser)

		useCase := NewUserUseCase(mockUserRepo, mockTimeProvider, quietLogger(), "pw", WithHashCost(bcrypt.MinCost))

		assert.NoError(t, useCase.CreateDefaultUsers(ctx))
	})

	t.Run("should stop on database failure", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		dbErr := errors.Join(errs.ErrDatabaseConnection)
		mockUserRepo.On("GetByID", ctx, uint64(1)).Return(nil, dbErr)

		useCase := NewUserUseCase(mockUserRepo, new(core.MockTimeProvider), quietLogger(), "pw")

		assert.ErrorIs(t, useCase.CreateDefaultUsers(ctx), errs.ErrDatabaseConnection)
	})
}
