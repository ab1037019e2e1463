/**
 * @description
 * Endpoint methods that require no authentication. PublicClient carries the
 * shared request core and the single-entry currency memoization; the
 * authenticated PersonalClient embeds it, so both surfaces share one session.
 */
package monoclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// currencyCacheTTL matches the API's own refresh interval for the public
// exchange-rate data.
const currencyCacheTTL = 5 * time.Minute

// PublicClient exposes the Monobank endpoints that are served without a
// token.
type PublicClient struct {
	core  *core
	now   func() time.Time
	rates *currencyCache
}

// NewPublicClient builds a client for the public API surface.
func NewPublicClient(opts ...Option) *PublicClient {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newPublicClient(newCore("", o.server, o.connectionsLimit, o.timeout), o.now)
}

func newPublicClient(c *core, now func() time.Time) *PublicClient {
	return &PublicClient{
		core:  c,
		now:   now,
		rates: newCurrencyCache(currencyCacheTTL, now),
	}
}

// Close releases the client's pooled connections. Safe to call more than
// once; the client remains usable afterwards.
func (p *PublicClient) Close() {
	p.core.Close()
}

// GetCurrency returns the bank's exchange-rate list from /bank/currency.
// The API refreshes this data at most once every five minutes, so the result
// is memoized for the same window and repeated calls inside it return the
// previous result without a network call.
func (p *PublicClient) GetCurrency(ctx context.Context) ([]Currency, error) {
	if cached, ok := p.rates.get(); ok {
		return cached, nil
	}

	raw, err := p.core.Request(ctx, http.MethodGet, "/bank/currency", nil)
	if err != nil {
		return nil, err
	}

	var currencies []Currency
	if err := json.Unmarshal(raw, &currencies); err != nil {
		return nil, networkError(err, "failed to decode currency list: %v", err)
	}

	p.rates.put(currencies)
	return currencies, nil
}
