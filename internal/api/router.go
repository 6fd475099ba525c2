// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"splitledger/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(ledgerHandler *handler.LedgerHandler, balanceHandler *handler.BalanceHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", ledgerHandler.CreateUser)
		r.Get("/", ledgerHandler.ListUsers)
		r.Get("/{userID}", ledgerHandler.GetUser)
		r.Put("/{userID}", ledgerHandler.UpdateUser)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Post("/", ledgerHandler.CreateExpense)
		r.Get("/", ledgerHandler.ListExpenses)
		r.Get("/{expenseID}", ledgerHandler.GetExpense)
		r.Delete("/{expenseID}", ledgerHandler.DeleteExpense)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/", ledgerHandler.CreatePayment)
		r.Get("/", ledgerHandler.ListPayments)
		r.Delete("/{paymentID}", ledgerHandler.DeletePayment)
	})

	// Derived, read-only views over the ledger
	r.Get("/balances", balanceHandler.GetBalances)
	r.Route("/settlements", func(r chi.Router) {
		r.Get("/", balanceHandler.GetSettlements)
		r.Get("/pairwise", balanceHandler.GetPairwiseSettlements)
	})

	return r
}
