package model

// TransactionType maps a unique type name to its id
type TransactionType struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:100;not null;uniqueIndex:idx_transaction_types_name"`
}

// TableName specifies the table name for TransactionType
func (TransactionType) TableName() string {
	return "transaction_types"
}
