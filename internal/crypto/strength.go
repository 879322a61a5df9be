package crypto

import (
	"strings"
	"unicode"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/nstepanov/lockbox/models"
)

// passwordStrength scores password 0..4 with zxcvbn. The email local-part
// and its dot/underscore fragments join extraInputs as penalized user
// inputs, so "alice2024!" scores low for alice@example.com.
func passwordStrength(password, email string, extraInputs []string) int {
	inputs := make([]string, 0, len(extraInputs)+4)
	inputs = append(inputs, extraInputs...)

	if at := strings.IndexByte(email, '@'); at > 0 {
		local := strings.ToLower(email[:at])
		inputs = append(inputs, local)
		for _, part := range strings.FieldsFunc(local, func(r rune) bool {
			return r == '.' || r == '_' || r == '-' || r == '+'
		}) {
			if len(part) >= 3 {
				inputs = append(inputs, part)
			}
		}
	}

	return zxcvbn.PasswordStrength(password, inputs).Score
}

const specialChars = "!@#$%^&*"

// satisfiesPolicy checks password (with its precomputed strength score)
// against every requirement of the policy. A zero policy accepts anything.
func satisfiesPolicy(password string, strength int, policy models.MasterPasswordPolicy) bool {
	if policy.Zero() {
		return true
	}

	if policy.MinComplexity > 0 && strength < policy.MinComplexity {
		return false
	}
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return false
	}
	if policy.RequireLower && !hasLower {
		return false
	}
	if policy.RequireNumbers && !hasDigit {
		return false
	}
	if policy.RequireSpecial && !hasSpecial {
		return false
	}

	return true
}
