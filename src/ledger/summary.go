package ledger

import (
	"time"

	"fintrack-server/src/models"
)

// Summarize builds the full dashboard bundle for one user.
func Summarize(txs []models.Transaction, cats []models.Category, goalsCount int, now time.Time) models.DashboardStats {
	idx := IndexCategories(cats)
	totals := ComputeTotals(txs)
	return models.DashboardStats{
		TotalBalance:        totals.Balance,
		TotalIncome:         totals.Income,
		TotalExpenses:       totals.Expenses,
		TransactionsCount:   len(txs),
		GoalsCount:          goalsCount,
		CategoriesByExpense: BreakdownByCategory(txs, idx),
		RecentTransactions:  RecentActivity(txs, idx, RecentLimit),
		MonthlyData:         MonthlySeries(txs, now),
	}
}
