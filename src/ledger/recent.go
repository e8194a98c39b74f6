package ledger

import (
	"sort"

	"fintrack-server/src/models"
)

const RecentLimit = 5

// RecentActivity returns the n latest transactions by date string, enriched.
// Equal dates keep their input order.
func RecentActivity(txs []models.Transaction, idx CategoryIndex, n int) []models.TransactionView {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return idx.EnrichAll(sorted)
}
