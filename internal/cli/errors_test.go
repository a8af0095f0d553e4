package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlb-lineups/internal/providers"
)

func TestUserMessage(t *testing.T) {
	if UserMessage(nil) != "" {
		t.Fatal("expected empty message for nil")
	}

	unavailable := fmt.Errorf("lookup: %w", &providers.ProviderUnavailableError{Op: "list games", Err: errors.New("timeout")})
	msg := UserMessage(unavailable)
	if !strings.HasPrefix(msg, "sports data provider unavailable during list games: timeout") || !strings.HasSuffix(msg, "please try again later") {
		t.Fatalf("unexpected message %q", msg)
	}

	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Fatalf("unexpected message %q", got)
	}
}
