package api

import (
	"context"
	"log/slog"
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/metrics"
	"fintrack-server/src/middleware"
	"fintrack-server/src/service"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const apiVersionMessage = "Finance API v1.0"

type Deps struct {
	Resolver     middleware.IdentityResolver
	Auth         *service.AuthService
	Categories   *service.CategoryService
	Transactions *service.TransactionService
	Goals        *service.GoalService
	Dashboard    *service.DashboardService
	Advice       *service.AdviceService
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
	CORSOrigins  []string
	Ping         func(ctx context.Context) error
}

func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Instrument(d.Metrics, d.Logger))
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := d.Ping(r.Context()); err != nil {
			slog.Error("Health check failed", "error", err)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			util.WriteJSON(w, http.StatusOK, map[string]string{"message": apiVersionMessage})
		})
		r.Post("/auth/register", handlers.Register(d.Auth))
		r.Post("/auth/login", handlers.Login(d.Auth))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(d.Resolver)).Group(func(r chi.Router) {
			r.Get("/auth/me", handlers.Me())

			// Categories
			r.Get("/categories", handlers.GetCategories(d.Categories))
			r.Post("/categories", handlers.CreateCategory(d.Categories))
			r.Delete("/categories/{category_id}", handlers.DeleteCategory(d.Categories))

			// Transactions
			r.Get("/transactions", handlers.GetTransactions(d.Transactions))
			r.Post("/transactions", handlers.CreateTransaction(d.Transactions))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(d.Transactions))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(d.Transactions))

			// Goals
			r.Get("/goals", handlers.GetGoals(d.Goals))
			r.Post("/goals", handlers.CreateGoal(d.Goals))
			r.Put("/goals/{goal_id}", handlers.UpdateGoal(d.Goals))
			r.Delete("/goals/{goal_id}", handlers.DeleteGoal(d.Goals))

			// Dashboard
			r.Get("/dashboard/stats", handlers.GetDashboardStats(d.Dashboard))
			r.Post("/ai/tips", handlers.GetTip(d.Advice))
		})
	})

	return r
}
