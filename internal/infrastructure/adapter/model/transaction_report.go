package model

import (
	"time"
)

// TransactionReport is a materialized report window
type TransactionReport struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	DateStart time.Time `gorm:"not null"`
	DateEnd   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for TransactionReport
func (TransactionReport) TableName() string {
	return "transaction_reports"
}

// ReportTransactionRelation is the join row between a report and one of its transactions
type ReportTransactionRelation struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	ReportID      uint64 `gorm:"not null;index"`
	TransactionID uint64 `gorm:"not null;index"`

	Report      TransactionReport `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE"`
	Transaction UserTransaction   `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for ReportTransactionRelation
func (ReportTransactionRelation) TableName() string {
	return "report_transaction_relations"
}
