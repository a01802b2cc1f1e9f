package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

// ==================== DIGEST ====================

// HashPhone returns a hex blake2b-256 digest so audit records never carry the
// raw phone number.
func HashPhone(phone string) string {
	sum := blake2b.Sum256([]byte(phone))
	return hex.EncodeToString(sum[:])
}
