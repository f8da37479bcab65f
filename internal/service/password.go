package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tkexclusiv/catalog_api/internal/utils"
)

const (
	HashSHA256 = "sha256"
	HashBcrypt = "bcrypt"
)

// PasswordHasher produces and checks stored password hashes. Existing
// accounts hold unsalted sha256 hex digests; bcrypt can be enabled for new
// hashes and both formats verify.
type PasswordHasher struct {
	algorithm string
}

func NewPasswordHasher(algorithm string) *PasswordHasher {
	if algorithm != HashBcrypt {
		algorithm = HashSHA256
	}
	return &PasswordHasher{algorithm: algorithm}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.algorithm == HashBcrypt {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return sha256Hex(password), nil
}

// Verify reports whether password matches stored, whichever format stored is in.
func (h *PasswordHasher) Verify(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return utils.SecureCompare(stored, sha256Hex(password))
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
