package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const fingerprintWordCount = 5

// fingerprintPhrase derives the five-word comparison phrase for a public
// key. The account email is mixed in as HKDF salt so the same key material
// renders differently for different accounts.
//
// Both sides of a login-with-device exchange compute this independently:
// the requester from its fresh key pair, the approver from the public key
// it received via the server. A mismatch means the server (or someone in
// between) substituted the key.
func fingerprintPhrase(email, publicKeyB64 string) (string, error) {
	der, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return "", fmt.Errorf("decode public key: %w", err)
	}

	keyDigest := sha256.Sum256(der)

	r := hkdf.New(sha256.New, keyDigest[:], []byte(normalizeEmail(email)), []byte("fingerprint"))
	material := make([]byte, fingerprintWordCount)
	if _, err := io.ReadFull(r, material); err != nil {
		return "", fmt.Errorf("hkdf fingerprint: %w", err)
	}

	words := make([]string, fingerprintWordCount)
	for i, b := range material {
		words[i] = fingerprintWords[b]
	}

	return strings.Join(words, "-"), nil
}
