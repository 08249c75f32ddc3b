package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/owplatform/wallet/internal/auth"
	"github.com/owplatform/wallet/internal/services/wallet"
)

// NewRouter constructs the router with all wallet endpoints registered.
// Every business endpoint sits behind the authToken check; /healthz does
// not.
func NewRouter(svc WalletService, verifier auth.Verifier) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(requireToken(verifier))

		r.Post("/debit", h.TransactionHandler(wallet.ActionDebit))
		r.Post("/credit", h.TransactionHandler(wallet.ActionCredit))
		r.Post("/cancel", h.TransactionHandler(wallet.ActionCancel))
		r.Post("/payout", h.PayoutHandler)
		r.Post("/balance", h.BalanceHandler)
		r.Post("/checkUser", h.CheckUserHandler)
	})

	return r
}
