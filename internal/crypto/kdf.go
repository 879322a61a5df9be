// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/nstepanov/lockbox/models"
)

const masterKeyLen = 32

// normalizeEmail lowercases and trims the email so the KDF salt is stable
// across devices regardless of how the address was typed.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// deriveMasterKey stretches password into the 256-bit master key.
//
// Argon2id uses SHA-256(email) as the salt to guarantee the 16-byte minimum;
// PBKDF2-SHA256 salts with the normalized email directly. Both variants
// honor the per-account tuning in kdf.
func deriveMasterKey(email, password string, kdf models.KdfConfig) ([]byte, error) {
	if err := kdf.Validate(); err != nil {
		return nil, fmt.Errorf("kdf config: %w", err)
	}

	salt := normalizeEmail(email)

	switch kdf.Type {
	case models.KdfArgon2id:
		saltHash := sha256.Sum256([]byte(salt))
		key := argon2.IDKey(
			[]byte(password),
			saltHash[:],
			kdf.Iterations,
			kdf.MemoryMiB*1024,
			kdf.Parallelism,
			masterKeyLen,
		)
		return key, nil
	case models.KdfPBKDF2:
		return pbkdf2.Key([]byte(password), []byte(salt), int(kdf.Iterations), masterKeyLen, sha256.New), nil
	default:
		return nil, models.ErrUnknownKdfType
	}
}

// stretchMasterKey expands the master key into the 256-bit wrapping key for
// the user key. HKDF-SHA256 with a fixed "enc" info string domain-separates
// the wrapping key from the master key itself.
func stretchMasterKey(masterKey []byte) ([]byte, error) {
	r := hkdf.Expand(sha256.New, masterKey, []byte("enc"))
	stretched := make([]byte, masterKeyLen)
	if _, err := io.ReadFull(r, stretched); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return stretched, nil
}

// hashPassword reduces the master key to an authorization hash by one more
// PBKDF2 round with the password as salt. The round count separates the two
// purposes: the local hash can never be replayed against the server.
func hashPassword(masterKey []byte, password string, purpose models.HashPurpose) (string, error) {
	var rounds int
	switch purpose {
	case models.PurposeServerAuthorization:
		rounds = 1
	case models.PurposeLocalAuthorization:
		rounds = 2
	default:
		return "", models.ErrUnknownHashPurpose
	}

	hash := pbkdf2.Key(masterKey, []byte(password), rounds, masterKeyLen, sha256.New)

	return base64.StdEncoding.EncodeToString(hash), nil
}
