package advice

import (
	"fmt"
	"sort"
	"strings"

	"fintrack-server/src/ledger"
	"fintrack-server/src/models"
)

const (
	DefaultQuestion = "Give me a personalized tip to improve my finances."

	SystemPrompt = "You are a personal finance assistant. Give one short, practical and " +
		"encouraging tip based on the user's data. Answer in at most three sentences."
)

// Snapshot is the slice of a user's ledger the advice prompt is built from.
type Snapshot struct {
	Transactions []models.Transaction
	Categories   []models.Category
	Goals        []models.Goal
	GoalsCount   int
}

// BuildContext renders the snapshot as plain text for the language model.
func BuildContext(s Snapshot) string {
	totals := ledger.ComputeTotals(s.Transactions)

	var b strings.Builder
	fmt.Fprintf(&b, "Balance: %s\n", totals.Balance.StringFixed(2))
	fmt.Fprintf(&b, "Total income: %s\n", totals.Income.StringFixed(2))
	fmt.Fprintf(&b, "Total expenses: %s\n", totals.Expenses.StringFixed(2))
	fmt.Fprintf(&b, "Transactions: %d\n", len(s.Transactions))
	fmt.Fprintf(&b, "Goals: %d\n", s.GoalsCount)

	slices := ledger.BreakdownByCategory(s.Transactions, ledger.IndexCategories(s.Categories))
	if len(slices) > 0 {
		b.WriteString("Expenses by category:\n")
		for _, sl := range slices {
			fmt.Fprintf(&b, "- %s: %s\n", sl.Name, sl.Value.StringFixed(2))
		}
	}

	if len(s.Goals) > 0 {
		goals := make([]models.Goal, len(s.Goals))
		copy(goals, s.Goals)
		sort.SliceStable(goals, func(i, j int) bool { return goals[i].Name < goals[j].Name })

		b.WriteString("Goals:\n")
		for _, g := range goals {
			fmt.Fprintf(&b, "- %s: %s of %s (%s%%)\n", g.Name,
				g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2),
				ledger.Progress(g.CurrentAmount, g.TargetAmount).StringFixed(0))
		}
	}
	return b.String()
}

// SuccessContext labels a model-generated tip.
func SuccessContext(transactions int) string {
	return fmt.Sprintf("Analysis based on %d transactions", transactions)
}
