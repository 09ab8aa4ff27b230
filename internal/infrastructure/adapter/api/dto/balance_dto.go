package dto

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID     uint64 `json:"userId"`
	Name       string `json:"name"`
	Balance    int64  `json:"balance"`
	IsVerified bool   `json:"isVerified"`
}
