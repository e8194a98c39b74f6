package service

import (
	"context"

	"fintrack-server/src/db"
	"fintrack-server/src/ledger"
	"fintrack-server/src/models"

	"github.com/google/uuid"
)

type GoalService struct {
	store db.GoalStore
}

func NewGoalService(store db.GoalStore) *GoalService {
	return &GoalService{store: store}
}

func withProgress(g models.Goal) models.GoalView {
	return models.GoalView{Goal: g, Progress: ledger.Progress(g.CurrentAmount, g.TargetAmount)}
}

func (s *GoalService) List(ctx context.Context, userID string) ([]models.GoalView, error) {
	goals, err := s.store.ListGoals(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	views := make([]models.GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, withProgress(g))
	}
	return views, nil
}

func (s *GoalService) Create(ctx context.Context, userID string, in models.GoalInput) (*models.GoalView, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("current_amount", in.CurrentAmount); err != nil {
		return nil, err
	}
	if in.Deadline != nil {
		if err := checkDate("deadline", *in.Deadline); err != nil {
			return nil, err
		}
	}

	g := models.Goal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
	}
	if err := s.store.CreateGoal(ctx, &g); err != nil {
		return nil, err
	}
	view := withProgress(g)
	return &view, nil
}

func (s *GoalService) Update(ctx context.Context, userID, id string, patch models.GoalPatch) (*models.GoalView, error) {
	if patch.IsEmpty() {
		return nil, invalid("no data to update")
	}
	if patch.Name != nil {
		name, err := requireText("name", *patch.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if patch.CurrentAmount != nil {
		if err := checkNonNegative("current_amount", *patch.CurrentAmount); err != nil {
			return nil, err
		}
	}
	if patch.Deadline != nil {
		if err := checkDate("deadline", *patch.Deadline); err != nil {
			return nil, err
		}
	}

	g, err := s.store.UpdateGoal(ctx, userID, id, patch)
	if err != nil {
		return nil, err
	}
	view := withProgress(*g)
	return &view, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, id string) error {
	return s.store.DeleteGoal(ctx, userID, id)
}
