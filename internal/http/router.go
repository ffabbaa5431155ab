package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ledgerkit/bankrec/internal/auth"
	"github.com/ledgerkit/bankrec/internal/http/balance"
	"github.com/ledgerkit/bankrec/internal/http/bankaccount"
	"github.com/ledgerkit/bankrec/internal/http/importofx"
	"github.com/ledgerkit/bankrec/internal/http/movement"
	"github.com/ledgerkit/bankrec/internal/http/reconciliation"
)

func New(
	authSecret []byte,
	accountsV1 *bankaccount.Handler,
	importV1 *importofx.Handler,
	movementsV1 *movement.Handler,
	balanceV1 *balance.Handler,
	reconciliationV1 *reconciliation.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/movements", func(r chi.Router) {
			movementsV1.Routes(r)
		})

		r.Route("/balance", func(r chi.Router) {
			balanceV1.Routes(r)
		})

		r.Route("/reconciliations", func(r chi.Router) {
			reconciliationV1.Routes(r)
		})
	})

	return router
}
