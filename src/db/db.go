// Package db defines the storage contract the services depend on. Every
// method that reads or mutates a category, transaction or goal is scoped by
// the owning user id; a record owned by someone else is reported as
// apperr.ErrNotFound.
package db

import (
	"context"

	"fintrack-server/src/models"
)

type UserStore interface {
	// CreateUser returns apperr.ErrConflict when the email is taken.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type CategoryStore interface {
	CreateCategories(ctx context.Context, cats []models.Category) error
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	DeleteCategory(ctx context.Context, userID, id string) error
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id string, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error
}

type GoalStore interface {
	CreateGoal(ctx context.Context, goal *models.Goal) error
	ListGoals(ctx context.Context, userID string, limit int) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, userID, id string, patch models.GoalPatch) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error
	CountGoals(ctx context.Context, userID string) (int, error)
}

type Store interface {
	UserStore
	CategoryStore
	TransactionStore
	GoalStore
	Ping(ctx context.Context) error
	Close() error
}
