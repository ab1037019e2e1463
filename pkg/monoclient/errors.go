/**
 * @description
 * This file defines the closed set of failures the client can surface and the
 * classifier that maps the server's free-text error description onto the most
 * specific failure kind.
 *
 * Key features:
 * - A single *Error type tagged with a Kind, so callers can branch with
 *   errors.Is against the exported sentinels.
 * - Ordered substring rules per status-code group. The matching is heuristic:
 *   it relies on the server's current wording and is scanned in declaration
 *   order, first hit wins.
 */
package monoclient

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies one failure class in the client's error taxonomy.
type Kind string

const (
	// KindValidation is malformed client-side input, detected before any
	// network call is made.
	KindValidation Kind = "validation"
	// KindNetwork is a transport-level failure or a non-JSON response.
	KindNetwork Kind = "network"
	// KindBadRequest is an HTTP 400 with no more specific classification.
	KindBadRequest Kind = "bad_request"
	// KindInvalidAccount is an HTTP 400 naming an unknown account.
	KindInvalidAccount Kind = "invalid_account"
	// KindPeriod is an HTTP 400 for a statement window over 31 days + 1 hour.
	KindPeriod Kind = "period"
	// KindUnauthorized is an HTTP 401/403 with no more specific classification.
	KindUnauthorized Kind = "unauthorized"
	// KindInvalidToken is an HTTP 401/403 for an unknown or revoked token.
	KindInvalidToken Kind = "invalid_token"
	// KindRetryAfter is an HTTP 429; the error carries the suggested delay.
	KindRetryAfter Kind = "retry_after"
	// KindWebhookURL is the server reporting a webhook URL timeout.
	KindWebhookURL Kind = "webhook_url"
	// KindAPI is any other non-2xx response.
	KindAPI Kind = "api"
)

// Error is the failure type for every error produced by this package.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	// RetryAfter is the suggested wait before retrying. Only set for
	// KindRetryAfter; no retry is ever performed by the client itself.
	RetryAfter time.Duration

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is a monoclient error of the same kind, which
// makes errors.Is(err, ErrInvalidToken) and friends work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Kind sentinels for use with errors.Is.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrNetwork        = &Error{Kind: KindNetwork}
	ErrBadRequest     = &Error{Kind: KindBadRequest}
	ErrInvalidAccount = &Error{Kind: KindInvalidAccount}
	ErrPeriod         = &Error{Kind: KindPeriod}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized}
	ErrInvalidToken   = &Error{Kind: KindInvalidToken}
	ErrRetryAfter     = &Error{Kind: KindRetryAfter}
	ErrWebhookURL     = &Error{Kind: KindWebhookURL}
	ErrAPI            = &Error{Kind: KindAPI}
)

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func networkError(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindNetwork, Message: fmt.Sprintf(format, args...), cause: cause}
}

const defaultRetryAfter = 60 * time.Second

func retryAfterError(delay time.Duration) *Error {
	if delay <= 0 {
		delay = defaultRetryAfter
	}
	return &Error{
		Kind:       KindRetryAfter,
		Message:    fmt.Sprintf("Flood control exceeded. Retry in %d seconds.", int(delay.Seconds())),
		StatusCode: 429,
		RetryAfter: delay,
	}
}

// matchRule binds a lower-case substring of the server's error description to
// the failure kind it indicates. Text, when set, replaces the raw description
// with a canonical message.
type matchRule struct {
	substr string
	kind   Kind
	text   string
}

// Specializations of the HTTP 400 group, scanned in declaration order.
var badRequestRules = []matchRule{
	{substr: "invalid account", kind: KindInvalidAccount, text: "Invalid account"},
	{substr: "period must be no more than 31 days", kind: KindPeriod},
}

// Specializations of the HTTP 401/403 group, scanned in declaration order.
var unauthorizedRules = []matchRule{
	{
		substr: "unknown 'x-token'",
		kind:   KindInvalidToken,
		text:   "Invalid token or it has been revoked. Get a new token on the page https://api.monobank.ua",
	},
}

// detect classifies a server error description against a group's rules. The
// first rule whose substring occurs in the lower-cased description wins; when
// none match the group's own generic kind carries the raw description.
func detect(rules []matchRule, generic Kind, description string, statusCode int) *Error {
	lowered := strings.ToLower(description)
	for _, rule := range rules {
		if strings.Contains(lowered, rule.substr) {
			message := rule.text
			if message == "" {
				message = description
			}
			return &Error{Kind: rule.kind, Message: message, StatusCode: statusCode}
		}
	}
	return &Error{Kind: generic, Message: description, StatusCode: statusCode}
}
