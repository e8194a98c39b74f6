package handlers

import (
	"log/slog"
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"
)

func Register(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := svc.Register(r.Context(), req)
		if err != nil {
			fail(w, r, err, "register user")
			return
		}
		slog.Info("Successful registration", "user_id", resp.User.ID)
		util.WriteJSON(w, http.StatusCreated, resp)
	}
}

func Login(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			fail(w, r, err, "log in")
			return
		}
		slog.Info("Successful login", "user_id", resp.User.ID)
		util.WriteJSON(w, http.StatusOK, resp)
	}
}
