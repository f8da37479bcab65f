package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionToken returns 32 random bytes encoded as unpadded URL-safe base64.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateObjectName returns a random 32-char hex name for stored files.
func GenerateObjectName() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// SecureCompare reports whether a and b are equal in constant time.
func SecureCompare(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
