package model

import (
	"time"
)

// UserTransaction represents the database model for the transaction ledger
type UserTransaction struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	UserID            uint64    `gorm:"not null;index:idx_user_transactions_user_date,priority:1"`
	Amount            int64     `gorm:"not null"`
	TransactionTypeID uint64    `gorm:"not null;index"`
	Date              time.Time `gorm:"not null;index:idx_user_transactions_user_date,priority:2"`

	// Define relationships
	User            User            `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
	TransactionType TransactionType `gorm:"foreignKey:TransactionTypeID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for UserTransaction
func (UserTransaction) TableName() string {
	return "user_transactions"
}
