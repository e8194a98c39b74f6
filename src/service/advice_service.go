package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fintrack-server/src/advice"
	"fintrack-server/src/ledger"
	"fintrack-server/src/models"
)

// The model sees at most this many of the newest transactions and goals.
const (
	adviceTransactionLimit = 100
	adviceGoalLimit        = 20
)

type AdviceStore interface {
	LedgerStore
	ListGoals(ctx context.Context, userID string, limit int) ([]models.Goal, error)
}

type AdviceRecorder interface {
	AdviceOutcome(outcome string)
}

type AdviceService struct {
	store    AdviceStore
	asker    advice.Asker
	timeout  time.Duration
	recorder AdviceRecorder
	logger   *slog.Logger
}

// NewAdviceService builds the service; a nil asker means no model is
// configured and every request gets the fallback tip.
func NewAdviceService(store AdviceStore, asker advice.Asker, timeout time.Duration, recorder AdviceRecorder, logger *slog.Logger) *AdviceService {
	return &AdviceService{
		store:    store,
		asker:    asker,
		timeout:  timeout,
		recorder: recorder,
		logger:   logger,
	}
}

// Tip asks the model for advice. Model failures of any kind are answered
// with the fallback tip; only storage failures are returned as errors.
func (s *AdviceService) Tip(ctx context.Context, userID, question string) (*models.Tip, error) {
	b, err := fetchLedger(ctx, s.store, userID, adviceTransactionLimit)
	if err != nil {
		return nil, err
	}
	goals, err := s.store.ListGoals(ctx, userID, adviceGoalLimit)
	if err != nil {
		return nil, err
	}

	fallback := advice.Fallback(ledger.ComputeTotals(b.transactions), b.goalsCount)
	if s.asker == nil {
		s.recorder.AdviceOutcome("unconfigured")
		return &fallback, nil
	}

	question = strings.TrimSpace(question)
	if question == "" {
		question = advice.DefaultQuestion
	}
	text := advice.BuildContext(advice.Snapshot{
		Transactions: b.transactions,
		Categories:   b.categories,
		Goals:        goals,
		GoalsCount:   b.goalsCount,
	})

	askCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	answer, err := s.asker.Ask(askCtx, text, question)
	if err == nil && strings.TrimSpace(answer) == "" {
		err = advice.ErrEmptyAnswer
	}
	if err != nil {
		s.logger.Warn("Advice model unavailable, using fallback tip", "user_id", userID, "error", err)
		s.recorder.AdviceOutcome("fallback")
		return &fallback, nil
	}

	s.recorder.AdviceOutcome("model")
	return &models.Tip{Tip: strings.TrimSpace(answer), Context: advice.SuccessContext(len(b.transactions))}, nil
}
