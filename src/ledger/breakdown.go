package ledger

import (
	"sort"

	"fintrack-server/src/models"
)

// BreakdownByCategory sums expenses per category. Transactions pointing at a
// missing category share one Other slice. Slices are ordered by value
// descending, then name, then id.
func BreakdownByCategory(txs []models.Transaction, idx CategoryIndex) []models.CategorySlice {
	slices := make(map[string]*models.CategorySlice)
	for _, tx := range txs {
		if tx.Kind != models.KindExpense {
			continue
		}
		key := tx.CategoryID
		c, ok := idx[key]
		if !ok {
			key = OtherCategoryID
		}
		s, seen := slices[key]
		if !seen {
			s = &models.CategorySlice{CategoryID: key, Name: OtherCategoryName, Color: OtherCategoryColor}
			if ok {
				s.Name = c.Name
				s.Color = c.Color
			}
			slices[key] = s
		}
		s.Value = s.Value.Add(tx.Amount)
	}

	out := make([]models.CategorySlice, 0, len(slices))
	for _, s := range slices {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Value.Cmp(out[j].Value); c != 0 {
			return c > 0
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}
