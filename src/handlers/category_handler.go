package handlers

import (
	"log/slog"
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
)

func GetCategories(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		cats, err := svc.List(r.Context(), user.ID)
		if err != nil {
			fail(w, r, err, "get categories")
			return
		}
		util.WriteJSON(w, http.StatusOK, cats)
	}
}

func CreateCategory(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.CategoryInput
		if !decode(w, r, &req) {
			return
		}
		created, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			fail(w, r, err, "create category")
			return
		}
		slog.Info("Created category", "user_id", user.ID, "category_id", created.ID)
		util.WriteJSON(w, http.StatusCreated, created)
	}
}

func DeleteCategory(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		categoryID := chi.URLParam(r, "category_id")
		if err := svc.Delete(r.Context(), user.ID, categoryID); err != nil {
			fail(w, r, err, "delete category")
			return
		}
		slog.Info("Deleted category", "user_id", user.ID, "category_id", categoryID)
		message(w, "Category deleted")
	}
}
