package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `user_id, email, name, kdf_type, kdf_iterations, kdf_memory_mib, kdf_parallelism,
		master_password_hash, wrapped_user_key, public_key, wrapped_private_key, created_at`

	createUser = `INSERT INTO users (email, name, kdf_type, kdf_iterations, kdf_memory_mib, kdf_parallelism,
		master_password_hash, wrapped_user_key, public_key, wrapped_private_key)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	getUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE user_id = $1;`

	deviceColumns = `id, user_id, name, identifier, protected_user_key,
		protected_device_private_key, protected_device_public_key, trusted_at, created_at`

	saveDevice = `INSERT INTO devices (id, user_id, name, identifier, protected_user_key,
		protected_device_private_key, protected_device_public_key, trusted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (user_id, identifier) DO UPDATE SET
		name = EXCLUDED.name,
		protected_user_key = EXCLUDED.protected_user_key,
		protected_device_private_key = EXCLUDED.protected_device_private_key,
		protected_device_public_key = EXCLUDED.protected_device_public_key,
		trusted_at = EXCLUDED.trusted_at
	RETURNING ` + deviceColumns + `;`

	findDevice = `SELECT ` + deviceColumns + `
	FROM devices
	WHERE user_id = $1 AND identifier = $2;`

	listDevices = `SELECT ` + deviceColumns + `
	FROM devices
	WHERE user_id = $1
	ORDER BY created_at;`

	authRequestColumns = `id, user_id, email, public_key, access_code_hash, fingerprint, device_name,
		state, wrapped_user_key, master_password_hash, created_at, expires_at, responded_at`

	createAuthRequest = `INSERT INTO auth_requests (id, user_id, email, public_key, access_code_hash,
		fingerprint, device_name, state, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + authRequestColumns + `;`

	getAuthRequest = `SELECT ` + authRequestColumns + `
	FROM auth_requests
	WHERE id = $1;`

	updateAuthRequest = `UPDATE auth_requests
	SET state = $2, wrapped_user_key = $3, master_password_hash = $4, responded_at = $5
	WHERE id = $1 AND state = $6
	RETURNING ` + authRequestColumns + `;`

	expirePendingAuthRequests = `UPDATE auth_requests
	SET state = $1, responded_at = $2
	WHERE state = $3 AND expires_at <= $2;`
)

// buildListAuthRequestsQuery assembles the filtered listing query. Filter
// fields left at their zero value produce no WHERE clause.
func buildListAuthRequestsQuery(filter AuthRequestFilter) (string, []any, error) {
	builder := sq.
		Select("id", "user_id", "email", "public_key", "access_code_hash", "fingerprint", "device_name",
			"state", "wrapped_user_key", "master_password_hash", "created_at", "expires_at", "responded_at").
		From("auth_requests").
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at DESC")

	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if len(filter.States) > 0 {
		states := make([]int, 0, len(filter.States))
		for _, s := range filter.States {
			states = append(states, int(s))
		}
		builder = builder.Where(sq.Eq{"state": states})
	}
	if !filter.CreatedAfter.IsZero() {
		builder = builder.Where(sq.Gt{"created_at": filter.CreatedAfter})
	}

	return builder.ToSql()
}
