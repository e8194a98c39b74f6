package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"type"`
	CategoryID  string          `json:"category_id"`
	Date        string          `json:"date"`
}

// TransactionView is a transaction enriched with its category's display fields.
type TransactionView struct {
	Transaction
	CategoryName  string `json:"category_name"`
	CategoryIcon  string `json:"category_icon"`
	CategoryColor string `json:"category_color"`
}

type TransactionInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"type"`
	CategoryID  string          `json:"category_id"`
	Date        string          `json:"date"`
}

// TransactionFilter selects one page of a user's transactions, newest first.
// A zero Limit means no limit.
type TransactionFilter struct {
	Kind  Kind
	Skip  int
	Limit int
}
