/**
 * @description
 * This file contains the request executor: the single place where an HTTP
 * result (status, content type, body) is interpreted into parsed JSON or a
 * classified failure. The surrounding transport call lives in client.go;
 * transport errors never reach callers raw, they are rewrapped as network
 * errors before this layer is done with them.
 */
package monoclient

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "monoclient").Logger()

// webhookTimeoutDescription is matched literally against the server's error
// description. The server reports a webhook URL timeout through this message
// rather than a dedicated status code, so the classification is best-effort.
const webhookTimeoutDescription = "webHookUrl timeout"

// checkResult interprets one API response. A 200 yields the body as raw
// JSON; anything else yields the most specific failure the status code and
// error description allow.
func checkResult(path string, statusCode int, contentType, body string) (json.RawMessage, error) {
	logger.Debug().
		Str("path", path).
		Int("status", statusCode).
		Str("body", body).
		Msg("api response")

	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || mediaType != "application/json" {
		return nil, networkError(nil, "invalid response with content type %s: %q", contentType, body)
	}

	// Some error responses carry an empty or truncated body; a parse
	// failure degrades to an empty object instead of propagating.
	result := json.RawMessage(body)
	if !json.Valid(result) {
		result = json.RawMessage("{}")
	}

	if statusCode == http.StatusOK {
		return result, nil
	}

	var parsed struct {
		ErrorDescription string `json:"errorDescription"`
	}
	_ = json.Unmarshal(result, &parsed)
	description := parsed.ErrorDescription
	if description == "" {
		description = body
	}

	var classified *Error
	switch statusCode {
	case http.StatusBadRequest:
		classified = detect(badRequestRules, KindBadRequest, description, statusCode)
	case http.StatusUnauthorized, http.StatusForbidden:
		classified = detect(unauthorizedRules, KindUnauthorized, description, statusCode)
	case http.StatusTooManyRequests:
		classified = retryAfterError(defaultRetryAfter)
	default:
		// Most likely arrives with status 408, but the server does not
		// document that, so the description is the only reliable signal.
		if description == webhookTimeoutDescription {
			classified = &Error{Kind: KindWebhookURL, Message: description, StatusCode: statusCode}
		} else {
			classified = &Error{
				Kind:       KindAPI,
				Message:    fmt.Sprintf("%s [%d]", description, statusCode),
				StatusCode: statusCode,
			}
		}
	}

	logger.Warn().
		Str("path", path).
		Int("status", statusCode).
		Str("kind", string(classified.Kind)).
		Msg("api request failed")
	return nil, classified
}
