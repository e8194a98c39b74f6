package postgres

import (
	"context"
	"fmt"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, user_id, description, amount, kind, category_id, date`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Kind, &t.CategoryID, &t.Date)
	return t, err
}

func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, description, amount, kind, category_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.pool.Exec(ctx, query, tx.ID, tx.UserID, tx.Description, tx.Amount.String(), string(tx.Kind), tx.CategoryID, tx.Date)
	return err
}

func (s *Store) ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	query += " ORDER BY date COLLATE \"C\" DESC, seq DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Skip > 0 {
		args = append(args, filter.Skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (s *Store) UpdateTransaction(ctx context.Context, userID, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	query := `
		UPDATE transactions SET
			description = COALESCE($3, description),
			amount = COALESCE($4::numeric, amount),
			kind = COALESCE($5, kind),
			category_id = COALESCE($6, category_id),
			date = COALESCE($7, date)
		WHERE id = $1 AND user_id = $2
		RETURNING ` + transactionColumns
	var kind *string
	if patch.Kind != nil {
		k := string(*patch.Kind)
		kind = &k
	}
	t, err := scanTransaction(s.pool.QueryRow(ctx, query, id, userID,
		patch.Description, decimalArg(patch.Amount), kind, patch.CategoryID, patch.Date))
	if err != nil {
		return nil, notFound(err, "transaction")
	}
	return &t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction", apperr.ErrNotFound)
	}
	return nil
}
