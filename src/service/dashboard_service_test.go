package service

import (
	"context"
	"testing"
	"time"

	"fintrack-server/src/ledger"
	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	store := newTestStore(t)
	ana := registerUser(t, store, "ana@example.com")
	bob := registerUser(t, store, "bob@example.com")
	ctx := context.Background()

	txs := NewTransactionService(store)
	food := categoryID(t, store, ana.ID, "Food", models.KindExpense)
	housing := categoryID(t, store, ana.ID, "Housing", models.KindExpense)
	salary := categoryID(t, store, ana.ID, "Salary", models.KindIncome)
	for _, in := range []models.TransactionInput{
		{Description: "Salary", Amount: dec("1000"), Kind: models.KindIncome, CategoryID: salary, Date: "2025-03-01"},
		{Description: "Rent", Amount: dec("300"), Kind: models.KindExpense, CategoryID: housing, Date: "2025-03-02"},
		{Description: "Lunch", Amount: dec("200"), Kind: models.KindExpense, CategoryID: food, Date: "2025-02-10"},
		{Description: "Old", Amount: dec("5"), Kind: models.KindExpense, CategoryID: "gone", Date: "2024-01-10"},
	} {
		_, err := txs.Create(ctx, ana.ID, in)
		require.NoError(t, err)
	}
	_, err := txs.Create(ctx, bob.ID, models.TransactionInput{Description: "Bob", Amount: dec("999"), Kind: models.KindExpense, Date: "2025-03-03"})
	require.NoError(t, err)
	_, err = NewGoalService(store).Create(ctx, ana.ID, models.GoalInput{Name: "Trip", TargetAmount: dec("100")})
	require.NoError(t, err)

	svc := NewDashboardService(store, 100, discard)
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC) }

	stats, err := svc.Stats(ctx, ana.ID)
	require.NoError(t, err)

	assert.True(t, dec("1000").Equal(stats.TotalIncome))
	assert.True(t, dec("505").Equal(stats.TotalExpenses))
	assert.True(t, dec("495").Equal(stats.TotalBalance))
	assert.Equal(t, 4, stats.TransactionsCount)
	assert.Equal(t, 1, stats.GoalsCount)

	require.Len(t, stats.CategoriesByExpense, 3)
	assert.Equal(t, "Housing", stats.CategoriesByExpense[0].Name)
	assert.Equal(t, "Food", stats.CategoriesByExpense[1].Name)
	assert.Equal(t, ledger.OtherCategoryName, stats.CategoriesByExpense[2].Name)

	require.Len(t, stats.RecentTransactions, 4)
	assert.Equal(t, "Rent", stats.RecentTransactions[0].Description)
	assert.Equal(t, "Housing", stats.RecentTransactions[0].CategoryName)

	require.Len(t, stats.MonthlyData, 6)
	assert.Equal(t, "Mar", stats.MonthlyData[5].Month)
	assert.True(t, dec("1000").Equal(stats.MonthlyData[5].Income))
	assert.True(t, dec("300").Equal(stats.MonthlyData[5].Expense))
	assert.True(t, dec("200").Equal(stats.MonthlyData[4].Expense))
}

func TestDashboardStatsEmpty(t *testing.T) {
	store := newTestStore(t)
	ana := registerUser(t, store, "ana@example.com")

	stats, err := NewDashboardService(store, 100, discard).Stats(context.Background(), ana.ID)
	require.NoError(t, err)

	assert.True(t, stats.TotalBalance.IsZero())
	assert.Zero(t, stats.TransactionsCount)
	assert.Empty(t, stats.CategoriesByExpense)
	assert.Empty(t, stats.RecentTransactions)
	assert.Len(t, stats.MonthlyData, 6)
}
