package service

import (
	"fintrack-server/src/models"

	"github.com/google/uuid"
)

var defaultCategories = []models.CategoryInput{
	{Name: "Salary", Kind: models.KindIncome, Icon: "briefcase", Color: "#22C55E"},
	{Name: "Freelance", Kind: models.KindIncome, Icon: "laptop", Color: "#10B981"},
	{Name: "Investments", Kind: models.KindIncome, Icon: "trending-up", Color: "#3B82F6"},
	{Name: "Other", Kind: models.KindIncome, Icon: "plus-circle", Color: "#6366F1"},
	{Name: "Food", Kind: models.KindExpense, Icon: "utensils", Color: "#EF4444"},
	{Name: "Transport", Kind: models.KindExpense, Icon: "car", Color: "#F97316"},
	{Name: "Housing", Kind: models.KindExpense, Icon: "home", Color: "#8B5CF6"},
	{Name: "Health", Kind: models.KindExpense, Icon: "heart", Color: "#EC4899"},
	{Name: "Education", Kind: models.KindExpense, Icon: "book-open", Color: "#14B8A6"},
	{Name: "Leisure", Kind: models.KindExpense, Icon: "gamepad-2", Color: "#F59E0B"},
	{Name: "Shopping", Kind: models.KindExpense, Icon: "shopping-bag", Color: "#A855F7"},
	{Name: "Other", Kind: models.KindExpense, Icon: "more-horizontal", Color: "#6B7280"},
}

// DefaultCategories is the starter set every new account gets.
func DefaultCategories(userID string) []models.Category {
	cats := make([]models.Category, 0, len(defaultCategories))
	for _, d := range defaultCategories {
		cats = append(cats, models.Category{
			ID:     uuid.NewString(),
			UserID: userID,
			Name:   d.Name,
			Kind:   d.Kind,
			Icon:   d.Icon,
			Color:  d.Color,
		})
	}
	return cats
}
