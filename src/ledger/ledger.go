// Package ledger computes a user's dashboard figures from an in-memory batch
// of transactions. Nothing here touches storage; callers fetch the batch and
// the user's categories first.
package ledger

import (
	"fintrack-server/src/models"

	"github.com/shopspring/decimal"
)

// Fallback display fields for transactions whose category no longer exists.
const (
	OtherCategoryID    = "other"
	OtherCategoryName  = "Other"
	OtherCategoryIcon  = "circle"
	OtherCategoryColor = "#6B7280"
)

type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

func ComputeTotals(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Kind {
		case models.KindIncome:
			t.Income = t.Income.Add(tx.Amount)
		case models.KindExpense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expenses)
	return t
}

// CategoryIndex maps category id to category for one user.
type CategoryIndex map[string]models.Category

func IndexCategories(cats []models.Category) CategoryIndex {
	idx := make(CategoryIndex, len(cats))
	for _, c := range cats {
		idx[c.ID] = c
	}
	return idx
}

// Enrich attaches the category's display fields, or the Other fallback when
// the category is missing.
func (idx CategoryIndex) Enrich(tx models.Transaction) models.TransactionView {
	view := models.TransactionView{
		Transaction:   tx,
		CategoryName:  OtherCategoryName,
		CategoryIcon:  OtherCategoryIcon,
		CategoryColor: OtherCategoryColor,
	}
	if c, ok := idx[tx.CategoryID]; ok {
		view.CategoryName = c.Name
		view.CategoryIcon = c.Icon
		view.CategoryColor = c.Color
	}
	return view
}

func (idx CategoryIndex) EnrichAll(txs []models.Transaction) []models.TransactionView {
	views := make([]models.TransactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, idx.Enrich(tx))
	}
	return views
}
