package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== ORDER ID ====================

// GenerateOrderID creates a unique order ID with timestamp.
// Format: BOOK-YYYYMMDD-HHMMSS-RANDOM
func GenerateOrderID() string {
	now := time.Now()
	datePart := now.Format("20060102")
	timePart := now.Format("150405")

	b := make([]byte, 2)
	rand.Read(b)

	return fmt.Sprintf("BOOK-%s-%s-%s", datePart, timePart, hex.EncodeToString(b))
}

// ==================== RESET TOKEN ====================

// GenerateResetToken creates a random token for password resets.
func GenerateResetToken() string {
	b := make([]byte, 24)
	rand.Read(b)
	return hex.EncodeToString(b)
}
