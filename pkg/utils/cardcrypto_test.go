package utils

import (
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecryptCardNumber(t *testing.T) {
	numbers := []string{
		"4111111111111111",
		"5500-0000-0000-0004",
		"340000000000009",
	}

	for _, number := range numbers {
		encrypted, err := EncryptCardNumber(number, testKey)
		if err != nil {
			t.Fatalf("EncryptCardNumber(%q): %v", number, err)
		}
		if strings.Contains(encrypted, number) {
			t.Errorf("ciphertext leaks the card number")
		}

		decrypted, err := DecryptCardNumber(encrypted, testKey)
		if err != nil {
			t.Fatalf("DecryptCardNumber: %v", err)
		}
		if decrypted != number {
			t.Errorf("round trip = %q, want %q", decrypted, number)
		}
	}
}

func TestEncryptCardNumberRandomIV(t *testing.T) {
	a, err := EncryptCardNumber("4111111111111111", testKey)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncryptCardNumber("4111111111111111", testKey)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same number should differ")
	}
}

func TestEncryptCardNumberRejectsBadKey(t *testing.T) {
	if _, err := EncryptCardNumber("4111111111111111", "short"); err == nil {
		t.Error("expected error for short key")
	}
	if _, err := DecryptCardNumber("00:00", "short"); err == nil {
		t.Error("expected error for short key")
	}
}

func TestDecryptCardNumberRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "no-separator", "zz:zz", "00:zz"} {
		if _, err := DecryptCardNumber(input, testKey); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4111111111111111", "****-****-****-1111"},
		{"5500-0000-0000-0004", "****-****-****-0004"},
		{"", "****-****-****-****"},
		{"12", "****-****-****-****"},
	}

	for _, tt := range tests {
		if got := MaskCardNumber(tt.in); got != tt.want {
			t.Errorf("MaskCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
