package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad input"), KindValidation},
		{"not found", NotFound("missing"), KindNotFound},
		{"conflict", Conflict("already done"), KindConflict},
		{"inventory", Inventory("sold out"), KindInventory},
		{"usage exceeded", UsageExceeded("limit hit"), KindUsageExceeded},
		{"internal", Internal("boom", errors.New("cause")), KindInternal},
		{"untagged", errors.New("plain"), KindInternal},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("inner")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("pg: connection refused")
	err := Internal("failed to find user", cause)

	if !errors.Is(err, cause) {
		t.Error("cause should be reachable via errors.Is")
	}
	if err.Error() != "failed to find user: pg: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormattedMessage(t *testing.T) {
	err := Validation("field %s is %d chars too long", "name", 12)
	if err.Error() != "field name is 12 chars too long" {
		t.Errorf("Error() = %q", err.Error())
	}
}
