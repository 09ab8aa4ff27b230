package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                 uint64    `gorm:"primaryKey"`
	Name               string    `gorm:"size:100;not null;uniqueIndex:idx_users_name"`
	Password           []byte    `gorm:"not null"`
	Balance            int64     `gorm:"not null;default:0"`
	IsVerified         bool      `gorm:"not null;default:false"`
	VerificationVector []float64 `gorm:"serializer:json"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
