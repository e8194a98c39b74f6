package ledger

import (
	"time"

	"fintrack-server/src/models"
)

const MonthsInSeries = 6

// MonthlySeries buckets income and expense into the six calendar months
// ending with now's month (UTC), oldest first. A transaction belongs to a
// bucket when its date starts with the bucket's YYYY-MM period.
func MonthlySeries(txs []models.Transaction, now time.Time) []models.MonthBucket {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make([]models.MonthBucket, MonthsInSeries)
	index := make(map[string]int, MonthsInSeries)
	for i := range buckets {
		m := first.AddDate(0, i-(MonthsInSeries-1), 0)
		period := m.Format("2006-01")
		buckets[i] = models.MonthBucket{Month: m.Format("Jan"), Period: period}
		index[period] = i
	}

	for _, tx := range txs {
		if len(tx.Date) < 7 {
			continue
		}
		i, ok := index[tx.Date[:7]]
		if !ok {
			continue
		}
		switch tx.Kind {
		case models.KindIncome:
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		case models.KindExpense:
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}
	return buckets
}

