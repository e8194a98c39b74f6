package handlers

import (
	"log/slog"
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
)

func CreateGoal(svc *service.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.GoalInput
		if !decode(w, r, &req) {
			return
		}
		created, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			fail(w, r, err, "create goal")
			return
		}
		slog.Info("Created goal", "user_id", user.ID, "goal_id", created.ID)
		util.WriteJSON(w, http.StatusCreated, created)
	}
}

func GetGoals(svc *service.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		goals, err := svc.List(r.Context(), user.ID)
		if err != nil {
			fail(w, r, err, "get goals")
			return
		}
		util.WriteJSON(w, http.StatusOK, goals)
	}
}

func UpdateGoal(svc *service.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		goalID := chi.URLParam(r, "goal_id")
		var patch models.GoalPatch
		if !decode(w, r, &patch) {
			return
		}
		updated, err := svc.Update(r.Context(), user.ID, goalID, patch)
		if err != nil {
			fail(w, r, err, "update goal")
			return
		}
		slog.Info("Updated goal", "user_id", user.ID, "goal_id", goalID)
		util.WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteGoal(svc *service.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		goalID := chi.URLParam(r, "goal_id")
		if err := svc.Delete(r.Context(), user.ID, goalID); err != nil {
			fail(w, r, err, "delete goal")
			return
		}
		slog.Info("Deleted goal", "user_id", user.ID, "goal_id", goalID)
		message(w, "Goal deleted")
	}
}
