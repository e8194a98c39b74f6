package models

import "github.com/shopspring/decimal"

// TransactionPatch is a partial update. A nil field was omitted by the
// caller; a non-nil field is applied even when it holds a zero value.
type TransactionPatch struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Kind        *Kind            `json:"type"`
	CategoryID  *string          `json:"category_id"`
	Date        *string          `json:"date"`
}

func (p TransactionPatch) IsEmpty() bool {
	return p.Description == nil && p.Amount == nil && p.Kind == nil && p.CategoryID == nil && p.Date == nil
}

// GoalPatch is a partial update with the same presence rules as TransactionPatch.
type GoalPatch struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *string          `json:"deadline"`
}

func (p GoalPatch) IsEmpty() bool {
	return p.Name == nil && p.TargetAmount == nil && p.CurrentAmount == nil && p.Deadline == nil
}
