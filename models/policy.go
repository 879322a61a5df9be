package models

// MasterPasswordPolicy is the organization-level constraint set applied to
// master passwords. Zero values mean "no requirement", so the empty policy
// accepts everything.
type MasterPasswordPolicy struct {
	// MinComplexity is the minimum zxcvbn score (0-4).
	MinComplexity int `json:"min_complexity,omitempty"`

	// MinLength is the minimum password length in runes.
	MinLength int `json:"min_length,omitempty"`

	// RequireUpper demands at least one upper-case letter.
	RequireUpper bool `json:"require_upper,omitempty"`

	// RequireLower demands at least one lower-case letter.
	RequireLower bool `json:"require_lower,omitempty"`

	// RequireNumbers demands at least one digit.
	RequireNumbers bool `json:"require_numbers,omitempty"`

	// RequireSpecial demands at least one of !@#$%^&*.
	RequireSpecial bool `json:"require_special,omitempty"`

	// EnforceOnLogin makes the server re-check the policy at every login,
	// not only at registration and password change.
	EnforceOnLogin bool `json:"enforce_on_login,omitempty"`
}

// Zero reports whether the policy imposes no constraints at all.
func (p MasterPasswordPolicy) Zero() bool {
	return p == MasterPasswordPolicy{}
}
