package models

import "github.com/shopspring/decimal"

type Goal struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *string         `json:"deadline"`
}

// GoalView is a goal as returned to clients, with its derived progress.
type GoalView struct {
	Goal
	Progress decimal.Decimal `json:"progress"`
}

type GoalInput struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *string         `json:"deadline"`
}
