package handlers

import (
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"
)

func GetDashboardStats(svc *service.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		stats, err := svc.Stats(r.Context(), user.ID)
		if err != nil {
			fail(w, r, err, "get dashboard stats")
			return
		}
		util.WriteJSON(w, http.StatusOK, stats)
	}
}

// GetTip always answers with a tip; an empty body asks the default question.
func GetTip(svc *service.AdviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.AdviceRequest
		if !decodeOptional(w, r, &req) {
			return
		}
		tip, err := svc.Tip(r.Context(), user.ID, req.Question)
		if err != nil {
			fail(w, r, err, "get tip")
			return
		}
		util.WriteJSON(w, http.StatusOK, tip)
	}
}
