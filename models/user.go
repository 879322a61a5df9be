package models

import "time"

// User is the server-side account record. The server never stores anything
// derived from the master password that could be reversed into key material:
// MasterPasswordHash is re-hashed once more on arrival, and the key blobs are
// encrypted on the client.
type User struct {
	// UserID is the internal identifier assigned by the database.
	// Not exposed via JSON; transport layers carry it inside the JWT.
	UserID int64 `json:"-"`

	// Email is the unique account identifier used at login.
	Email string `json:"email"`

	// Name is the optional display name.
	Name string `json:"name,omitempty"`

	// Kdf holds the key-derivation parameters the account was created
	// with. Served openly via prelogin.
	Kdf KdfConfig `json:"kdf"`

	// MasterPasswordHash is the client-supplied authorization hash.
	// At rest it is stored HMAC-rehashed, never as received.
	MasterPasswordHash string `json:"master_password_hash,omitempty"`

	// WrappedUserKey is the user key encrypted with the stretched master
	// key (base64). Opaque to the server.
	WrappedUserKey string `json:"wrapped_user_key,omitempty"`

	// Keys is the account key pair (public + wrapped private).
	Keys AccountKeys `json:"keys,omitempty"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table backing the User model.
func (u User) TableName() string {
	return "users"
}
