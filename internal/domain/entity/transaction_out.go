package entity

import "time"

// TransactionOut is the cache and API representation of a UserTransaction
type TransactionOut struct {
	UserID            uint64    `json:"user_id"`
	Amount            int64     `json:"amount"`
	TransactionTypeID uint64    `json:"transaction_type_id"`
	Date              time.Time `json:"date"`
}

// ToOutSlice projects a result set, never returning nil
func ToOutSlice(transactions []*UserTransaction) []TransactionOut {
	out := make([]TransactionOut, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ToOut())
	}
	return out
}
