package monoclient

import (
	"errors"
	"testing"
	"time"
)

func TestDetectBadRequestGroup(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "invalid account specialization",
			description: "Invalid account number",
			wantKind:    KindInvalidAccount,
			wantMessage: "Invalid account",
		},
		{
			name:        "period specialization",
			description: "Period must be no more than 31 days",
			wantKind:    KindPeriod,
			wantMessage: "Period must be no more than 31 days",
		},
		{
			name:        "matching is case insensitive",
			description: "INVALID ACCOUNT",
			wantKind:    KindInvalidAccount,
			wantMessage: "Invalid account",
		},
		{
			name:        "no specialization falls back to the group",
			description: "something else went wrong",
			wantKind:    KindBadRequest,
			wantMessage: "something else went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := detect(badRequestRules, KindBadRequest, tt.description, 400)
			if err.Kind != tt.wantKind {
				t.Fatalf("expected kind %q, got %q", tt.wantKind, err.Kind)
			}
			if err.Message != tt.wantMessage {
				t.Fatalf("expected message %q, got %q", tt.wantMessage, err.Message)
			}
			if err.StatusCode != 400 {
				t.Fatalf("expected status 400, got %d", err.StatusCode)
			}
		})
	}
}

func TestDetectUnauthorizedGroup(t *testing.T) {
	err := detect(unauthorizedRules, KindUnauthorized, "Unknown 'X-Token'", 401)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if err.Message == "Unknown 'X-Token'" {
		t.Fatalf("expected the canonical message, got the raw description")
	}

	generic := detect(unauthorizedRules, KindUnauthorized, "access restricted", 403)
	if !errors.Is(generic, ErrUnauthorized) {
		t.Fatalf("expected generic unauthorized error, got %v", generic)
	}
	if generic.Message != "access restricted" {
		t.Fatalf("expected raw description, got %q", generic.Message)
	}
}

func TestDetectFirstRuleWins(t *testing.T) {
	// Declaration order breaks ties when several substrings occur.
	description := "invalid account: period must be no more than 31 days"
	err := detect(badRequestRules, KindBadRequest, description, 400)
	if err.Kind != KindInvalidAccount {
		t.Fatalf("expected the first declared rule to win, got %q", err.Kind)
	}
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := retryAfterError(0)
	if !errors.Is(err, ErrRetryAfter) {
		t.Fatalf("expected errors.Is to match by kind")
	}
	if errors.Is(err, ErrNetwork) {
		t.Fatalf("kinds must not cross-match")
	}
	if err.RetryAfter != 60*time.Second {
		t.Fatalf("expected default 60s delay, got %v", err.RetryAfter)
	}
}
