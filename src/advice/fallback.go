package advice

import (
	"fintrack-server/src/ledger"
	"fintrack-server/src/models"
)

const (
	FallbackContext = "Tip based on simplified analysis"

	overspendingTip = "Your expenses are higher than your income. Review your spending " +
		"categories, cut back on non-essential purchases and set a monthly limit for each category."
	setGoalsTip = "You don't have any savings goals yet. Set a concrete goal, such as an " +
		"emergency fund worth six months of expenses, and put money aside as soon as you get paid."
	consistencyTip = "Your finances look healthy. Keep recording every transaction and review " +
		"your progress each month to stay on track with your goals."
)

// Fallback picks a canned tip from the user's totals and goal count.
func Fallback(totals ledger.Totals, goalsCount int) models.Tip {
	tip := consistencyTip
	switch {
	case totals.Expenses.GreaterThan(totals.Income):
		tip = overspendingTip
	case goalsCount == 0:
		tip = setGoalsTip
	}
	return models.Tip{Tip: tip, Context: FallbackContext}
}
