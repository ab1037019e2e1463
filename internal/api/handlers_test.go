package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type capturingPublisher struct {
	routingKey string
	body       any
	err        error
}

func (p *capturingPublisher) Publish(_ context.Context, routingKey string, body any) error {
	p.routingKey = routingKey
	p.body = body
	return p.err
}

const statementEventPayload = `{
  "type": "StatementItem",
  "data": {
    "account": "kKGVoZuHWzqVoZuH",
    "statementItem": {
      "id": "ZuHWzqkKGVo=",
      "time": 1665619714,
      "description": "Покупка щастя",
      "mcc": 7997,
      "originalMcc": 7997,
      "hold": false,
      "amount": -95000,
      "operationAmount": -95000,
      "currencyCode": 980,
      "commissionRate": 0,
      "cashbackAmount": 19000,
      "balance": 10050000
    }
  }
}`

func serve(t *testing.T, h *WebhookHandler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	WebhookRoutes(h).ServeHTTP(rec, req)
	return rec
}

func TestCheckURL(t *testing.T) {
	h := NewWebhookHandler("secret", nil)

	if rec := serve(t, h, http.MethodGet, "/secret", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected exactly 200 on the validation probe, got %d", rec.Code)
	}
	if rec := serve(t, h, http.MethodGet, "/wrong", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a wrong token path, got %d", rec.Code)
	}
}

func TestNewTransactionAcknowledges(t *testing.T) {
	publisher := &capturingPublisher{}
	h := NewWebhookHandler("secret", publisher)

	rec := serve(t, h, http.MethodPost, "/secret", statementEventPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if publisher.routingKey != "statement.item" {
		t.Fatalf("expected the event to be relayed, got routing key %q", publisher.routingKey)
	}
}

func TestNewTransactionWrongToken(t *testing.T) {
	h := NewWebhookHandler("secret", nil)
	if rec := serve(t, h, http.MethodPost, "/other", statementEventPayload); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestNewTransactionBadJSON(t *testing.T) {
	h := NewWebhookHandler("secret", nil)
	if rec := serve(t, h, http.MethodPost, "/secret", "{not json"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNewTransactionIgnoresOtherEventTypes(t *testing.T) {
	publisher := &capturingPublisher{}
	h := NewWebhookHandler("secret", publisher)

	rec := serve(t, h, http.MethodPost, "/secret", `{"type":"SomethingElse","data":{"account":"a","statementItem":{}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown event types, got %d", rec.Code)
	}
	if publisher.routingKey != "" {
		t.Fatalf("unknown event types must not be relayed")
	}
}

func TestNewTransactionRelayFailureStillAcknowledges(t *testing.T) {
	publisher := &capturingPublisher{err: context.DeadlineExceeded}
	h := NewWebhookHandler("secret", publisher)

	// A non-200 would make the deliverer retry and eventually disable the
	// webhook, so relay failures must not leak into the response.
	rec := serve(t, h, http.MethodPost, "/secret", statementEventPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite the relay failure, got %d", rec.Code)
	}
}
