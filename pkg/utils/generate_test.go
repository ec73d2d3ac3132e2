package utils

import (
	"regexp"
	"testing"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BOOK-\d{8}-\d{6}-[0-9a-f]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateOrderID()
		if !pattern.MatchString(id) {
			t.Fatalf("order id %q does not match the expected format", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("order ids should vary")
	}
}

func TestGenerateResetToken(t *testing.T) {
	a := GenerateResetToken()
	b := GenerateResetToken()
	if len(a) != 48 {
		t.Errorf("token length = %d, want 48 hex chars", len(a))
	}
	if a == b {
		t.Error("tokens should be random")
	}
}
