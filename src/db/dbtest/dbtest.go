// Package dbtest holds behavioural tests every db.Store backend must pass.
package dbtest

import (
	"context"
	"testing"
	"time"

	"fintrack-server/src/apperr"
	"fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreSuite runs against a fresh store per test, built by Open.
type StoreSuite struct {
	suite.Suite
	Open  func(t *testing.T) db.Store
	store db.Store
	ctx   context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.Open(s.T())
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func (s *StoreSuite) newUser(email string) *models.User {
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Date(2025, 3, 1, 10, 30, 0, 123000000, time.UTC),
	}
	require.NoError(s.T(), s.store.CreateUser(s.ctx, u))
	return u
}

func (s *StoreSuite) newTransaction(userID string, kind models.Kind, amount, date string) *models.Transaction {
	tx := &models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: "tx " + date,
		Amount:      decimal.RequireFromString(amount),
		Kind:        kind,
		CategoryID:  "cat",
		Date:        date,
	}
	require.NoError(s.T(), s.store.CreateTransaction(s.ctx, tx))
	return tx
}

func (s *StoreSuite) TestUsers() {
	u := s.newUser("ana@example.com")

	byEmail, err := s.store.GetUserByEmail(s.ctx, "ana@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.ID, byEmail.ID)
	assert.Equal(s.T(), u.PasswordHash, byEmail.PasswordHash)
	assert.True(s.T(), u.CreatedAt.Equal(byEmail.CreatedAt))

	byID, err := s.store.GetUserByID(s.ctx, u.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "ana@example.com", byID.Email)

	_, err = s.store.GetUserByEmail(s.ctx, "nobody@example.com")
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)
	_, err = s.store.GetUserByID(s.ctx, uuid.NewString())
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)
}

func (s *StoreSuite) TestDuplicateEmail() {
	s.newUser("ana@example.com")

	err := s.store.CreateUser(s.ctx, &models.User{
		ID: uuid.NewString(), Name: "Other", Email: "ana@example.com", PasswordHash: "x", CreatedAt: time.Now(),
	})
	assert.ErrorIs(s.T(), err, apperr.ErrConflict)
}

func (s *StoreSuite) TestCategories() {
	ana := s.newUser("ana@example.com")
	bob := s.newUser("bob@example.com")

	cats := []models.Category{
		{ID: uuid.NewString(), UserID: ana.ID, Name: "Salary", Kind: models.KindIncome, Icon: "briefcase", Color: "#22C55E"},
		{ID: uuid.NewString(), UserID: ana.ID, Name: "Food", Kind: models.KindExpense, Icon: "utensils", Color: "#EF4444"},
		{ID: uuid.NewString(), UserID: ana.ID, Name: "Housing", Kind: models.KindExpense, Icon: "home", Color: "#8B5CF6"},
	}
	require.NoError(s.T(), s.store.CreateCategories(s.ctx, cats))

	listed, err := s.store.ListCategories(s.ctx, ana.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), cats, listed)

	none, err := s.store.ListCategories(s.ctx, bob.ID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), none)

	assert.ErrorIs(s.T(), s.store.DeleteCategory(s.ctx, bob.ID, cats[0].ID), apperr.ErrNotFound)
	require.NoError(s.T(), s.store.DeleteCategory(s.ctx, ana.ID, cats[0].ID))
	assert.ErrorIs(s.T(), s.store.DeleteCategory(s.ctx, ana.ID, cats[0].ID), apperr.ErrNotFound)

	listed, err = s.store.ListCategories(s.ctx, ana.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), listed, 2)
}

func (s *StoreSuite) TestListTransactionsOrderingAndPaging() {
	ana := s.newUser("ana@example.com")
	bob := s.newUser("bob@example.com")

	s.newTransaction(ana.ID, models.KindExpense, "10", "2025-01-15")
	s.newTransaction(ana.ID, models.KindIncome, "1000", "2025-03-01T09:00:00")
	s.newTransaction(ana.ID, models.KindExpense, "20.55", "2025-02-10")
	s.newTransaction(ana.ID, models.KindExpense, "5", "2025-03-01T18:00:00")
	s.newTransaction(bob.ID, models.KindExpense, "99", "2025-03-05")

	all, err := s.store.ListTransactions(s.ctx, ana.ID, models.TransactionFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 4)
	var dates []string
	for _, t := range all {
		dates = append(dates, t.Date)
		assert.Equal(s.T(), ana.ID, t.UserID)
	}
	assert.Equal(s.T(), []string{"2025-03-01T18:00:00", "2025-03-01T09:00:00", "2025-02-10", "2025-01-15"}, dates)
	assert.True(s.T(), decimal.RequireFromString("20.55").Equal(all[2].Amount))

	page, err := s.store.ListTransactions(s.ctx, ana.ID, models.TransactionFilter{Skip: 1, Limit: 2})
	require.NoError(s.T(), err)
	require.Len(s.T(), page, 2)
	assert.Equal(s.T(), "2025-03-01T09:00:00", page[0].Date)
	assert.Equal(s.T(), "2025-02-10", page[1].Date)

	skipped, err := s.store.ListTransactions(s.ctx, ana.ID, models.TransactionFilter{Skip: 3})
	require.NoError(s.T(), err)
	assert.Len(s.T(), skipped, 1)

	expenses, err := s.store.ListTransactions(s.ctx, ana.ID, models.TransactionFilter{Kind: models.KindExpense})
	require.NoError(s.T(), err)
	assert.Len(s.T(), expenses, 3)
	for _, t := range expenses {
		assert.Equal(s.T(), models.KindExpense, t.Kind)
	}
}

func (s *StoreSuite) TestUpdateTransactionPartial() {
	ana := s.newUser("ana@example.com")
	bob := s.newUser("bob@example.com")
	tx := s.newTransaction(ana.ID, models.KindExpense, "10", "2025-01-15")

	amount := decimal.RequireFromString("12.34")
	empty := ""
	updated, err := s.store.UpdateTransaction(s.ctx, ana.ID, tx.ID, models.TransactionPatch{
		Amount:     &amount,
		CategoryID: &empty,
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), amount.Equal(updated.Amount))
	assert.Equal(s.T(), "", updated.CategoryID)
	assert.Equal(s.T(), tx.Description, updated.Description)
	assert.Equal(s.T(), tx.Date, updated.Date)
	assert.Equal(s.T(), models.KindExpense, updated.Kind)

	kind := models.KindIncome
	_, err = s.store.UpdateTransaction(s.ctx, bob.ID, tx.ID, models.TransactionPatch{Kind: &kind})
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	_, err = s.store.UpdateTransaction(s.ctx, ana.ID, uuid.NewString(), models.TransactionPatch{Kind: &kind})
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	current, err := s.store.ListTransactions(s.ctx, ana.ID, models.TransactionFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), current, 1)
	assert.Equal(s.T(), models.KindExpense, current[0].Kind)
}

func (s *StoreSuite) TestDeleteTransaction() {
	ana := s.newUser("ana@example.com")
	bob := s.newUser("bob@example.com")
	tx := s.newTransaction(ana.ID, models.KindExpense, "10", "2025-01-15")

	assert.ErrorIs(s.T(), s.store.DeleteTransaction(s.ctx, bob.ID, tx.ID), apperr.ErrNotFound)
	require.NoError(s.T(), s.store.DeleteTransaction(s.ctx, ana.ID, tx.ID))
	assert.ErrorIs(s.T(), s.store.DeleteTransaction(s.ctx, ana.ID, tx.ID), apperr.ErrNotFound)
}

func (s *StoreSuite) TestGoals() {
	ana := s.newUser("ana@example.com")
	bob := s.newUser("bob@example.com")

	deadline := "2025-12-31"
	trip := &models.Goal{
		ID: uuid.NewString(), UserID: ana.ID, Name: "Trip",
		TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(250), Deadline: &deadline,
	}
	fund := &models.Goal{
		ID: uuid.NewString(), UserID: ana.ID, Name: "Emergency fund",
		TargetAmount: decimal.RequireFromString("5000.50"),
	}
	require.NoError(s.T(), s.store.CreateGoal(s.ctx, trip))
	require.NoError(s.T(), s.store.CreateGoal(s.ctx, fund))

	goals, err := s.store.ListGoals(s.ctx, ana.ID, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), goals, 2)
	assert.Equal(s.T(), "Trip", goals[0].Name)
	require.NotNil(s.T(), goals[0].Deadline)
	assert.Equal(s.T(), deadline, *goals[0].Deadline)
	assert.Nil(s.T(), goals[1].Deadline)
	assert.True(s.T(), decimal.RequireFromString("5000.50").Equal(goals[1].TargetAmount))
	assert.True(s.T(), goals[1].CurrentAmount.IsZero())

	limited, err := s.store.ListGoals(s.ctx, ana.ID, 1)
	require.NoError(s.T(), err)
	assert.Len(s.T(), limited, 1)

	n, err := s.store.CountGoals(s.ctx, ana.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, n)
	n, err = s.store.CountGoals(s.ctx, bob.ID)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), n)

	current := decimal.NewFromInt(400)
	updated, err := s.store.UpdateGoal(s.ctx, ana.ID, trip.ID, models.GoalPatch{CurrentAmount: &current})
	require.NoError(s.T(), err)
	assert.True(s.T(), current.Equal(updated.CurrentAmount))
	assert.Equal(s.T(), "Trip", updated.Name)
	require.NotNil(s.T(), updated.Deadline)

	_, err = s.store.UpdateGoal(s.ctx, bob.ID, trip.ID, models.GoalPatch{CurrentAmount: &current})
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	assert.ErrorIs(s.T(), s.store.DeleteGoal(s.ctx, bob.ID, trip.ID), apperr.ErrNotFound)
	require.NoError(s.T(), s.store.DeleteGoal(s.ctx, ana.ID, trip.ID))
	n, err = s.store.CountGoals(s.ctx, ana.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, n)
}

func (s *StoreSuite) TestPing() {
	assert.NoError(s.T(), s.store.Ping(s.ctx))
}
