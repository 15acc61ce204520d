package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authsvc "github.com/MrJamesThe3rd/khata/internal/auth"
	authHandler "github.com/MrJamesThe3rd/khata/internal/http/auth"
	statementHandler "github.com/MrJamesThe3rd/khata/internal/http/statement"
	txHandler "github.com/MrJamesThe3rd/khata/internal/http/transaction"
)

func New(
	tokens *authsvc.Service,
	authV1 *authHandler.Handler,
	statementV1 *statementHandler.Handler,
	transactionsV1 *txHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(tokens.Middleware)
			transactionsV1.Routes(r)
			statementV1.Routes(r)
		})
	})

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
