package models

import "github.com/shopspring/decimal"

type CategorySlice struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
}

type MonthBucket struct {
	Month   string          `json:"month"`
	Period  string          `json:"period"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type DashboardStats struct {
	TotalBalance        decimal.Decimal   `json:"total_balance"`
	TotalIncome         decimal.Decimal   `json:"total_income"`
	TotalExpenses       decimal.Decimal   `json:"total_expenses"`
	TransactionsCount   int               `json:"transactions_count"`
	GoalsCount          int               `json:"goals_count"`
	CategoriesByExpense []CategorySlice   `json:"categories_by_expense"`
	RecentTransactions  []TransactionView `json:"recent_transactions"`
	MonthlyData         []MonthBucket     `json:"monthly_data"`
}

type AdviceRequest struct {
	Question string `json:"question"`
}

type Tip struct {
	Tip     string `json:"tip"`
	Context string `json:"context"`
}
