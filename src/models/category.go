package models

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Kind   Kind   `json:"type"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

type CategoryInput struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
