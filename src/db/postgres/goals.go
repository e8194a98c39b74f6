package postgres

import (
	"context"
	"fmt"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, deadline`

func scanGoal(row pgx.Row) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
	return g, err
}

func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, name, target_amount, current_amount, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query, goal.ID, goal.UserID, goal.Name,
		goal.TargetAmount.String(), goal.CurrentAmount.String(), goal.Deadline)
	return err
}

func (s *Store) ListGoals(ctx context.Context, userID string, limit int) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY seq`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	rows, err := s.pool.Query(ctx, query, args...)
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
	query := `
		UPDATE goals SET
			name = COALESCE($3, name),
			target_amount = COALESCE($4::numeric, target_amount),
			current_amount = COALESCE($5::numeric, current_amount),
			deadline = COALESCE($6, deadline)
		WHERE id = $1 AND user_id = $2
		RETURNING ` + goalColumns
	g, err := scanGoal(s.pool.QueryRow(ctx, query, id, userID,
		patch.Name, decimalArg(patch.TargetAmount), decimalArg(patch.CurrentAmount), patch.Deadline))
	if err != nil {
		return nil, notFound(err, "goal")
	}
	return &g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID, id string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: goal", apperr.ErrNotFound)
	}
	return nil
}

func (s *Store) CountGoals(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM goals WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
