/**
 * @description
 * This file sets up the HTTP router for the webhook server.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: HTTP router and standard middleware.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// WebhookRoutes creates the router for the webhook server. The deliverer
// expects an answer within 5 seconds, so the timeout stays below that.
func WebhookRoutes(h *WebhookHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(4 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Get("/{token}", h.CheckURL)
	r.Post("/{token}", h.NewTransaction)

	return r
}
