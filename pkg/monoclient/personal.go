/**
 * @description
 * Endpoint methods behind a personal API token from https://api.monobank.ua.
 * PersonalClient embeds the public endpoint set and shares its session, so
 * one client covers the whole API surface.
 *
 * The API rate-limits each personal endpoint to one call per 60 seconds;
 * exceeding that surfaces as a retry-after error with the suggested delay.
 * No retry is performed here, timing is the caller's decision.
 */
package monoclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// statementMaxPeriod is the widest window one statement request may cover.
const statementMaxPeriod = 31*24*time.Hour + time.Hour

// setWebhookRequest is the wire body of POST /personal/webhook.
type setWebhookRequest struct {
	WebHookURL string `json:"webHookUrl"`
}

// PersonalClient exposes the token-protected Monobank endpoints together
// with the embedded public surface.
type PersonalClient struct {
	*PublicClient
	core *core
}

// NewPersonalClient builds a client around a personal API token. The token
// is validated before any network call: whitespace anywhere in it fails with
// a validation error.
func NewPersonalClient(token string, opts ...Option) (*PersonalClient, error) {
	if err := checkToken(token); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := newCore(token, o.server, o.connectionsLimit, o.timeout)
	return &PersonalClient{
		PublicClient: newPublicClient(c, o.now),
		core:         c,
	}, nil
}

// SetWebhook registers the URL statement events are pushed to. The server
// first validates the address with a GET request that must be answered with
// exactly HTTP 200; once validated, events arrive as POST requests. Calling
// this more than once per minute fails with a retry-after error.
func (p *PersonalClient) SetWebhook(ctx context.Context, webhookURL string) error {
	_, err := p.core.Request(ctx, http.MethodPost, "/personal/webhook", setWebhookRequest{WebHookURL: webhookURL})
	return err
}

// GetClientInfo returns the token owner's profile with the accounts and
// jars the token can see. Limited to one call per 60 seconds.
func (p *PersonalClient) GetClientInfo(ctx context.Context) (*ClientInfo, error) {
	raw, err := p.core.Request(ctx, http.MethodGet, "/personal/client-info", nil)
	if err != nil {
		return nil, err
	}

	var info ClientInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, networkError(err, "failed to decode client info: %v", err)
	}
	return &info, nil
}

// GetStatement returns the transactions of one account between from and to,
// newest first. accountID "0" means the default account. Zero from/to fall
// back to now minus the maximum period and now, evaluated at call time. The
// window may not exceed 31 days + 1 hour; a wider one fails with a period
// error, an unknown account with an invalid-account error, and calling more
// than once per 60 seconds with a retry-after error.
func (p *PersonalClient) GetStatement(ctx context.Context, accountID string, from, to time.Time) ([]Statement, error) {
	if accountID == "" {
		accountID = "0"
	}
	if to.IsZero() {
		to = p.now()
	}
	if from.IsZero() {
		from = p.now().Add(-statementMaxPeriod)
	}

	path := fmt.Sprintf("/personal/statement/%s/%d/%d", accountID, from.Unix(), to.Unix())
	raw, err := p.core.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var statements []Statement
	if err := json.Unmarshal(raw, &statements); err != nil {
		return nil, networkError(err, "failed to decode statement: %v", err)
	}
	return statements, nil
}
