package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 digest over data with the given key and
// returns it hex-encoded. Used for at-rest rehashing of client authorization
// hashes and for access-code storage, so a database dump alone is not enough
// to replay either value.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

// VerifyHashString reports whether data hashes to expected under hashKey
// using a constant-time comparison.
func VerifyHashString(data, expected, hashKey string) bool {
	return hmac.Equal([]byte(HashString(data, hashKey)), []byte(expected))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
