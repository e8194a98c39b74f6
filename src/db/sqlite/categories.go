package sqlite

import (
	"context"
	"fmt"

	"fintrack-server/src/models"
)

func (s *Store) CreateCategories(ctx context.Context, cats []models.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (id, user_id, name, kind, icon, color)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range cats {
		if _, err := stmt.ExecContext(ctx, c.ID, c.UserID, c.Name, string(c.Kind), c.Icon, c.Color); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

func (s *Store) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, kind, icon, color
		FROM categories WHERE user_id = ?
		ORDER BY rowid
	`, userID)
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
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(res, "category")
}
