package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// PasswordService hashes and verifies passwords. The stored format is an
// unsalted sha256 hex digest, matching the records already in the user
// collection. All hashing goes through this type so a salted scheme can
// replace it without touching the handlers.
type PasswordService struct{}

func NewPasswordService() *PasswordService {
	return &PasswordService{}
}

// Hash returns the 64-character hex digest stored in user.password_hash.
func (s *PasswordService) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password hashes to the stored digest.
func (s *PasswordService) Verify(password, digest string) bool {
	return s.Hash(password) == digest
}
