package service

import (
	"context"
	"time"

	"fintrack-server/src/db"
	"fintrack-server/src/ledger"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

type TransactionStore interface {
	db.TransactionStore
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
}

type TransactionService struct {
	store TransactionStore
	now   func() time.Time
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store, now: time.Now}
}

func (s *TransactionService) categories(ctx context.Context, userID string) (ledger.CategoryIndex, error) {
	cats, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.IndexCategories(cats), nil
}

// List returns one page of transactions, newest first. A zero Limit means
// DefaultPageSize.
func (s *TransactionService) List(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.TransactionView, error) {
	if filter.Kind != "" {
		if err := checkKind(filter.Kind); err != nil {
			return nil, err
		}
	}
	if filter.Skip < 0 {
		return nil, invalid("skip must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit < 0 || filter.Limit > MaxPageSize {
		return nil, invalid("limit must be between 1 and %d", MaxPageSize)
	}

	txs, err := s.store.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	idx, err := s.categories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return idx.EnrichAll(txs), nil
}

func (s *TransactionService) Create(ctx context.Context, userID string, in models.TransactionInput) (*models.TransactionView, error) {
	description, err := requireText("description", in.Description)
	if err != nil {
		return nil, err
	}
	if err := checkKind(in.Kind); err != nil {
		return nil, err
	}
	if err := checkNonNegative("amount", in.Amount); err != nil {
		return nil, err
	}
	date := in.Date
	if date == "" {
		date = util.FormatDate(s.now())
	} else if err := checkDate("date", date); err != nil {
		return nil, err
	}

	tx := models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Amount:      in.Amount,
		Kind:        in.Kind,
		CategoryID:  in.CategoryID,
		Date:        date,
	}
	if err := s.store.CreateTransaction(ctx, &tx); err != nil {
		return nil, err
	}
	idx, err := s.categories(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := idx.Enrich(tx)
	return &view, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, id string, patch models.TransactionPatch) (*models.TransactionView, error) {
	if patch.IsEmpty() {
		return nil, invalid("no data to update")
	}
	if patch.Description != nil {
		description, err := requireText("description", *patch.Description)
		if err != nil {
			return nil, err
		}
		patch.Description = &description
	}
	if patch.Kind != nil {
		if err := checkKind(*patch.Kind); err != nil {
			return nil, err
		}
	}
	if patch.Amount != nil {
		if err := checkNonNegative("amount", *patch.Amount); err != nil {
			return nil, err
		}
	}
	if patch.Date != nil {
		if err := checkDate("date", *patch.Date); err != nil {
			return nil, err
		}
	}

	tx, err := s.store.UpdateTransaction(ctx, userID, id, patch)
	if err != nil {
		return nil, err
	}
	idx, err := s.categories(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := idx.Enrich(*tx)
	return &view, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	return s.store.DeleteTransaction(ctx, userID, id)
}
