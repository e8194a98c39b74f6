package sqlite

import (
	"context"

	"fintrack-server/src/models"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, deadline`

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
	return g, err
}

func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, user_id, name, target_amount, current_amount, deadline)
		VALUES (?, ?, ?, ?, ?, ?)
	`, goal.ID, goal.UserID, goal.Name, goal.TargetAmount.String(), goal.CurrentAmount.String(), goal.Deadline)
	return err
}

func (s *Store) ListGoals(ctx context.Context, userID string, limit int) ([]models.Goal, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = ? ORDER BY rowid LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) UpdateGoal(ctx context.Context, userID, id string, patch models.GoalPatch) (*models.Goal, error) {
	g, err := scanGoal(s.db.QueryRowContext(ctx, `
		UPDATE goals SET
			name = COALESCE(?, name),
			target_amount = COALESCE(?, target_amount),
			current_amount = COALESCE(?, current_amount),
			deadline = COALESCE(?, deadline)
		WHERE id = ? AND user_id = ?
		RETURNING `+goalColumns,
		patch.Name, decimalArg(patch.TargetAmount), decimalArg(patch.CurrentAmount), patch.Deadline, id, userID))
	if err != nil {
		return nil, notFound(err, "goal")
	}
	return &g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(res, "goal")
}

func (s *Store) CountGoals(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}
