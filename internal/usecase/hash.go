package usecase

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
)

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext.
// It is deterministic and unsalted so login can compare digests for
// equality against the stored hash. A production rewrite should move to
// a salted, slow KDF (bcrypt/argon2); doing so changes the stored hash
// format and is a data migration, not a drop-in swap.
func HashPassword(plaintext string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(plaintext)))
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Normalized form is the unique lookup key; the transform is idempotent.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
