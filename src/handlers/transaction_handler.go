package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
)

func parseFilter(r *http.Request) (models.TransactionFilter, bool) {
	q := r.URL.Query()
	filter := models.TransactionFilter{Kind: models.Kind(q.Get("type"))}
	for name, dst := range map[string]*int{"skip": &filter.Skip, "limit": &filter.Limit} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, false
		}
		*dst = n
	}
	return filter, true
}

func GetTransactions(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		filter, ok := parseFilter(r)
		if !ok {
			util.WriteDetail(w, http.StatusBadRequest, "skip and limit must be integers")
			return
		}
		txs, err := svc.List(r.Context(), user.ID, filter)
		if err != nil {
			fail(w, r, err, "get transactions")
			return
		}
		util.WriteJSON(w, http.StatusOK, txs)
	}
}

func CreateTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.TransactionInput
		if !decode(w, r, &req) {
			return
		}
		created, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			fail(w, r, err, "create transaction")
			return
		}
		slog.Info("Created transaction", "user_id", user.ID, "transaction_id", created.ID)
		util.WriteJSON(w, http.StatusCreated, created)
	}
}

func UpdateTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		transactionID := chi.URLParam(r, "transaction_id")
		var patch models.TransactionPatch
		if !decode(w, r, &patch) {
			return
		}
		updated, err := svc.Update(r.Context(), user.ID, transactionID, patch)
		if err != nil {
			fail(w, r, err, "update transaction")
			return
		}
		slog.Info("Updated transaction", "user_id", user.ID, "transaction_id", transactionID)
		util.WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		transactionID := chi.URLParam(r, "transaction_id")
		if err := svc.Delete(r.Context(), user.ID, transactionID); err != nil {
			fail(w, r, err, "delete transaction")
			return
		}
		slog.Info("Deleted transaction", "user_id", user.ID, "transaction_id", transactionID)
		message(w, "Transaction deleted")
	}
}
