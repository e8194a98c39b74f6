package postgres

import (
	"context"
	"fmt"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateCategories(ctx context.Context, cats []models.Category) error {
	query := `
		INSERT INTO categories (id, user_id, name, kind, icon, color)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	batch := &pgx.Batch{}
	for _, c := range cats {
		batch.Queue(query, c.ID, c.UserID, c.Name, string(c.Kind), c.Icon, c.Color)
	}
	return s.pool.SendBatch(ctx, batch).Close()
}

func (s *Store) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, kind, icon, color
		FROM categories WHERE user_id = $1
		ORDER BY seq
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Kind, &c.Icon, &c.Color); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *Store) DeleteCategory(ctx context.Context, userID, id string) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: category", apperr.ErrNotFound)
	}
	return nil
}
