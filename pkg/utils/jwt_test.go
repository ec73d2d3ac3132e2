package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "business", "test-secret", 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("user id = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "business" {
		t.Errorf("role = %q, want business", claims.Role)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "user", "right-secret", 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := VerifyToken(token, "wrong-secret"); err == nil {
		t.Error("expected verification to fail with the wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "user", "test-secret", -1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := VerifyToken(token, "test-secret"); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}
