// Package password derives and verifies salted password hashes using
// PBKDF2-SHA512. Each call to Hash generates a fresh random salt, so two
// hashes of the same plaintext never match.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	iterations = 10000
	keyLen     = 64
)

// Hash derives a hex-encoded hash of plaintext under a fresh random salt.
// Both return values must be stored together; the hash is useless without
// its salt.
func Hash(plaintext string) (salt, hash string, err error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	return salt, derive(plaintext, salt), nil
}

// Verify reports whether plaintext matches the stored salt/hash pair.
// A missing salt fails closed: an absent salt must never verify against
// anything.
func Verify(plaintext, salt, hash string) bool {
	if salt == "" || hash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derive(plaintext, salt)), []byte(hash)) == 1
}

func derive(plaintext, salt string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, keyLen, sha512.New)
	return hex.EncodeToString(key)
}
