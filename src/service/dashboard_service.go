package service

import (
	"context"
	"log/slog"
	"time"

	"fintrack-server/src/ledger"
	"fintrack-server/src/models"

	"golang.org/x/sync/errgroup"
)

type LedgerStore interface {
	ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error)
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	CountGoals(ctx context.Context, userID string) (int, error)
}

type DashboardService struct {
	store      LedgerStore
	batchLimit int
	logger     *slog.Logger
	now        func() time.Time
}

func NewDashboardService(store LedgerStore, batchLimit int, logger *slog.Logger) *DashboardService {
	return &DashboardService{store: store, batchLimit: batchLimit, logger: logger, now: time.Now}
}

type ledgerBatch struct {
	transactions []models.Transaction
	categories   []models.Category
	goalsCount   int
}

// fetchLedger loads everything the aggregations need for one user, in parallel.
func fetchLedger(ctx context.Context, store LedgerStore, userID string, limit int) (*ledgerBatch, error) {
	var b ledgerBatch
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := store.ListTransactions(ctx, userID, models.TransactionFilter{Limit: limit})
		b.transactions = txs
		return err
	})
	g.Go(func() error {
		cats, err := store.ListCategories(ctx, userID)
		b.categories = cats
		return err
	})
	g.Go(func() error {
		n, err := store.CountGoals(ctx, userID)
		b.goalsCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DashboardService) Stats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	b, err := fetchLedger(ctx, s.store, userID, s.batchLimit)
	if err != nil {
		return nil, err
	}
	if len(b.transactions) == s.batchLimit {
		s.logger.Warn("Ledger batch limit reached, aggregates cover only the newest transactions",
			"user_id", userID, "limit", s.batchLimit)
	}
	stats := ledger.Summarize(b.transactions, b.categories, b.goalsCount, s.now())
	return &stats, nil
}
