/**
 * @description
 * This file contains the HTTP handlers for the inbound Monobank webhook. The
 * remote side validates the registered URL with a GET request that must be
 * answered with exactly HTTP 200, then delivers statement events as POST
 * requests with a 5 second timeout, retrying at +60s and +600s and disabling
 * the webhook after three failed deliveries. The handlers therefore always
 * acknowledge quickly and push any further processing behind the response.
 *
 * Key features:
 * - Token path segment check, so only Monobank calls carrying our own token
 *   path are accepted.
 * - Decodes the payload into the typed WebhookEvent model.
 * - Optionally relays StatementItem events to a RabbitMQ exchange.
 */
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/monobank-go/monobank/pkg/monoclient"
)

// EventPublisher relays a received event to an external system. A nil
// publisher disables relaying.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// WebhookHandler processes incoming webhook traffic from Monobank.
type WebhookHandler struct {
	token     string
	publisher EventPublisher
}

// NewWebhookHandler creates a handler bound to the token used as the secret
// path segment.
func NewWebhookHandler(token string, publisher EventPublisher) *WebhookHandler {
	return &WebhookHandler{token: token, publisher: publisher}
}

// CheckURL answers the server's webhook URL validation probe. Registration
// only succeeds when this returns exactly HTTP 200.
func (h *WebhookHandler) CheckURL(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "token") != h.token {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// NewTransaction receives a pushed statement event.
func (h *WebhookHandler) NewTransaction(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	if chi.URLParam(r, "token") != h.token {
		log.Printf("[%s] Webhook call with wrong token path from %s", requestID, r.RemoteAddr)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var event monoclient.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Printf("[%s] Error decoding webhook JSON: %v", requestID, err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if event.Type != "StatementItem" {
		log.Printf("[%s] Unhandled webhook event type: %s", requestID, event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Printf("[%s] New transaction on account %s: %s UAH (%s)",
		requestID, event.Data.AccountID, event.Data.Statement.Amount, event.Data.Statement.Description)

	if h.publisher != nil {
		if err := h.publisher.Publish(r.Context(), "statement.item", event.Data); err != nil {
			// The remote side disables the webhook after repeated
			// non-200 answers, so a relay failure is logged and the
			// delivery is still acknowledged.
			log.Printf("[%s] Failed to relay statement event: %v", requestID, err)
		}
	}

	log.Printf("[%s] Webhook processed in %v", requestID, time.Since(startTime))
	w.WriteHeader(http.StatusOK)
}
