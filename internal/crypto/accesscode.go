package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	accessCodeLen     = 12
	accessCodeCharset = "0123456789"
)

// newAccessCode generates the numeric code that authenticates status polls
// for an auth request. Rejection sampling keeps the digit distribution
// uniform.
func newAccessCode() (string, error) {
	code := make([]byte, 0, accessCodeLen)
	buf := make([]byte, 1)

	// Largest multiple of charset size below 256; bytes above it are
	// rejected to avoid modulo bias.
	limit := byte(256 - (256 % len(accessCodeCharset)))

	for len(code) < accessCodeLen {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return "", fmt.Errorf("read random byte: %w", err)
		}
		if buf[0] >= limit {
			continue
		}
		code = append(code, accessCodeCharset[int(buf[0])%len(accessCodeCharset)])
	}

	return string(code), nil
}
