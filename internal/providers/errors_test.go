package providers

import (
	"fmt"
	"strings"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}

	if _, ok := AsRateLimitError(ErrProviderUnavailable); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "nbastats", StatusCode: 500, Body: "boom"}
	if got := err.Error(); !strings.Contains(got, "500") || !strings.Contains(got, "boom") {
		t.Fatalf("unexpected error string %q", got)
	}
	bare := &StatusError{Provider: "nbastats", StatusCode: 502}
	if got := bare.Error(); got != "nbastats: unexpected status 502" {
		t.Fatalf("unexpected error string %q", got)
	}
}
