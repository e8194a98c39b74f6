package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fintrack-server/src/advice"
	"fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAsker struct {
	answer   string
	err      error
	block    bool
	question string
	context  string
}

func (s *stubAsker) Ask(ctx context.Context, financialContext, question string) (string, error) {
	s.context = financialContext
	s.question = question
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.answer, s.err
}

type outcomes map[string]int

func (o outcomes) AdviceOutcome(outcome string) { o[outcome]++ }

func adviceFixture(t *testing.T) (*AdviceService, *stubAsker, outcomes, string) {
	t.Helper()
	store := newTestStore(t)
	ana := registerUser(t, store, "ana@example.com")
	_, err := NewTransactionService(store).Create(context.Background(), ana.ID, models.TransactionInput{
		Description: "Rent", Amount: dec("1200"), Kind: models.KindExpense, Date: "2025-03-01",
	})
	require.NoError(t, err)

	asker := &stubAsker{}
	rec := outcomes{}
	svc := NewAdviceService(store, asker, 50*time.Millisecond, rec, discard)
	return svc, asker, rec, ana.ID
}

func TestAdviceFromModel(t *testing.T) {
	svc, asker, rec, userID := adviceFixture(t)
	asker.answer = " Cut your rent. "

	tip, err := svc.Tip(context.Background(), userID, "How can I save?")
	require.NoError(t, err)

	assert.Equal(t, "Cut your rent.", tip.Tip)
	assert.Equal(t, "Analysis based on 1 transactions", tip.Context)
	assert.Equal(t, "How can I save?", asker.question)
	assert.Contains(t, asker.context, "Total expenses: 1200.00")
	assert.Equal(t, 1, rec["model"])
}

func TestAdviceDefaultQuestion(t *testing.T) {
	svc, asker, _, userID := adviceFixture(t)
	asker.answer = "ok"

	_, err := svc.Tip(context.Background(), userID, "   ")
	require.NoError(t, err)
	assert.Equal(t, advice.DefaultQuestion, asker.question)
}

func TestAdviceFallbacks(t *testing.T) {
	cases := map[string]func(*stubAsker){
		"error":   func(a *stubAsker) { a.err = errors.New("rate limited") },
		"empty":   func(a *stubAsker) { a.answer = "  " },
		"timeout": func(a *stubAsker) { a.block = true },
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			svc, asker, rec, userID := adviceFixture(t)
			setup(asker)

			tip, err := svc.Tip(context.Background(), userID, "")
			require.NoError(t, err)

			// Expenses exceed income, so the overspending tip wins.
			want := advice.Fallback(totalsOf("0", "1200"), 0)
			assert.Equal(t, want, *tip)
			assert.Equal(t, advice.FallbackContext, tip.Context)
			assert.Equal(t, 1, rec["fallback"])
		})
	}
}

func TestAdviceUnconfigured(t *testing.T) {
	svc, _, rec, userID := adviceFixture(t)
	svc.asker = nil

	tip, err := svc.Tip(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Equal(t, advice.FallbackContext, tip.Context)
	assert.Equal(t, 1, rec["unconfigured"])
}

func TestAdviceContextCoversNewestTransactionsOnly(t *testing.T) {
	svc, asker, _, userID := adviceFixture(t)
	asker.answer = "Keep going."
	ctx := context.Background()

	// The fixture already holds one expense from March.
	for i := 0; i < adviceTransactionLimit; i++ {
		err := svc.store.(db.Store).CreateTransaction(ctx, &models.Transaction{
			ID:          fmt.Sprintf("tx-%03d", i),
			UserID:      userID,
			Description: "Coffee",
			Amount:      dec("2.50"),
			Kind:        models.KindExpense,
			Date:        fmt.Sprintf("2025-04-01T08:%02d:%02d", i/60, i%60),
		})
		require.NoError(t, err)
	}

	tip, err := svc.Tip(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, "Analysis based on 100 transactions", tip.Context)
	assert.Contains(t, asker.context, "Total expenses: 250.00")
}
