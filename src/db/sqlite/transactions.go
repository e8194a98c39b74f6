package sqlite

import (
	"context"

	"fintrack-server/src/models"
)

const transactionColumns = `id, user_id, description, amount, kind, category_id, date`

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Kind, &t.CategoryID, &t.Date)
	return t, err
}

func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, description, amount, kind, category_id, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, tx.ID, tx.UserID, tx.Description, tx.Amount.String(), string(tx.Kind), tx.CategoryID, tx.Date)
	return err
}

func (s *Store) ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ?`
	args := []any{userID}
	if filter.Kind != "" {
		query += " AND kind = ?"
		args = append(args, string(filter.Kind))
	}
	query += " ORDER BY date DESC, rowid DESC"
	// SQLite only accepts OFFSET after LIMIT; -1 means unbounded.
	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Skip)

	rows, err := s.db.QueryContext(ctx, query, args...)
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
	var kind *string
	if patch.Kind != nil {
		k := string(*patch.Kind)
		kind = &k
	}
	t, err := scanTransaction(s.db.QueryRowContext(ctx, `
		UPDATE transactions SET
			description = COALESCE(?, description),
			amount = COALESCE(?, amount),
			kind = COALESCE(?, kind),
			category_id = COALESCE(?, category_id),
			date = COALESCE(?, date)
		WHERE id = ? AND user_id = ?
		RETURNING `+transactionColumns,
		patch.Description, decimalArg(patch.Amount), kind, patch.CategoryID, patch.Date, id, userID))
	if err != nil {
		return nil, notFound(err, "transaction")
	}
	return &t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(res, "transaction")
}
