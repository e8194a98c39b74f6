package service

import (
	"context"

	"fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/google/uuid"
)

const (
	defaultCategoryIcon  = "circle"
	defaultCategoryColor = "#22C55E"
)

type CategoryService struct {
	store db.CategoryStore
}

func NewCategoryService(store db.CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	return s.store.ListCategories(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID string, in models.CategoryInput) (*models.Category, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	if err := checkKind(in.Kind); err != nil {
		return nil, err
	}
	c := models.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Kind:   in.Kind,
		Icon:   in.Icon,
		Color:  in.Color,
	}
	if c.Icon == "" {
		c.Icon = defaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = defaultCategoryColor
	}
	if err := s.store.CreateCategories(ctx, []models.Category{c}); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete leaves the category's transactions in place; they fall back to the
// Other display fields.
func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	return s.store.DeleteCategory(ctx, userID, id)
}
