package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// MaxUserNameLength bounds the unique display name
const MaxUserNameLength = 100

// User is reference data owning transactions and reports.
// Balance is informational only; nothing in the report flow mutates it.
type User struct {
	ID                 uint64
	Name               string
	Password           []byte // opaque credential, stored as-is
	Balance            int64
	IsVerified         bool
	VerificationVector []float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates an unverified user with a zero balance
func NewUser(id uint64, name string, password []byte, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxUserNameLength {
		return nil, errs.ErrInvalidUserName
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// HasVerificationVector reports whether the optional vector has been captured
func (u *User) HasVerificationVector() bool {
	return len(u.VerificationVector) > 0
}
