// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nstepanov/lockbox/internal/config"
	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/models"
)

// ErrLocalSessionNotFound is returned when no session row is cached.
var ErrLocalSessionNotFound = errors.New("local session not found")

// ErrLocalDeviceNotFound is returned when this installation has never been
// enrolled as a trusted device.
var ErrLocalDeviceNotFound = errors.New("local device not found")

// Both tables hold at most one row keyed by id=1: one cache file belongs to
// one installation.
const clientSchema = `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	user_id INTEGER NOT NULL,
	email TEXT NOT NULL,
	token TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS local_device (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	identifier TEXT NOT NULL,
	name TEXT NOT NULL,
	device_key TEXT NOT NULL DEFAULT '',
	protected_device_private_key TEXT NOT NULL DEFAULT '',
	protected_user_key TEXT NOT NULL DEFAULT ''
);`

const (
	saveLocalSession = `INSERT INTO session (id, user_id, email, token, created_at)
	VALUES (1, $1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE SET
		user_id = EXCLUDED.user_id,
		email = EXCLUDED.email,
		token = EXCLUDED.token,
		created_at = EXCLUDED.created_at;`

	getLocalSession = `SELECT user_id, email, token, created_at FROM session WHERE id = 1;`

	deleteLocalSession = `DELETE FROM session WHERE id = 1;`

	saveLocalDevice = `INSERT INTO local_device (id, identifier, name, device_key,
		protected_device_private_key, protected_user_key)
	VALUES (1, $1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		identifier = EXCLUDED.identifier,
		name = EXCLUDED.name,
		device_key = EXCLUDED.device_key,
		protected_device_private_key = EXCLUDED.protected_device_private_key,
		protected_user_key = EXCLUDED.protected_user_key;`

	getLocalDevice = `SELECT identifier, name, device_key,
		protected_device_private_key, protected_user_key
	FROM local_device WHERE id = 1;`
)

// localStore is the SQLite-backed implementation of [LocalStore].
type localStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStore opens (creating if needed) the client cache file described
// by cfg and applies the schema. Pass ":memory:" for an ephemeral cache.
func NewLocalStore(ctx context.Context, cfg config.Cache, log *logger.Logger) (LocalStore, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewLocalStore").Msg("error creating cache file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error opening cache")
		return nil, fmt.Errorf("error opening connection to local cache: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error connecting cache (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, clientSchema); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error applying cache schema")
		return nil, fmt.Errorf("error applying local cache schema: %w", err)
	}
	log.Debug().Str("func", "NewLocalStore").Msg("local cache ready")

	return &localStore{
		db:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating cache dir: %w", err)
			}
		}
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating cache file: %w", err)
		}
		f.Close()
	}

	return nil
}

// SaveSession replaces the cached session.
func (s *localStore) SaveSession(ctx context.Context, session models.Session) error {
	_, err := s.db.ExecContext(ctx, saveLocalSession,
		session.UserID, session.Email, session.Token, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// GetSession returns the cached session, or [ErrLocalSessionNotFound].
func (s *localStore) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.db.QueryRowContext(ctx, getLocalSession).
		Scan(&session.UserID, &session.Email, &session.Token, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		return models.Session{}, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

// DeleteSession forgets the cached session. Deleting an absent session is
// not an error.
func (s *localStore) DeleteSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalSession); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// SaveLocalDevice replaces this installation's trusted-device material.
func (s *localStore) SaveLocalDevice(ctx context.Context, device models.LocalDevice) error {
	_, err := s.db.ExecContext(ctx, saveLocalDevice,
		device.Identifier, device.Name, device.DeviceKey,
		device.ProtectedDevicePrivateKey, device.ProtectedUserKey)
	if err != nil {
		return fmt.Errorf("save local device: %w", err)
	}

	return nil
}

// GetLocalDevice returns the enrollment record, or [ErrLocalDeviceNotFound].
func (s *localStore) GetLocalDevice(ctx context.Context) (models.LocalDevice, error) {
	var device models.LocalDevice
	err := s.db.QueryRowContext(ctx, getLocalDevice).
		Scan(&device.Identifier, &device.Name, &device.DeviceKey,
			&device.ProtectedDevicePrivateKey, &device.ProtectedUserKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalDevice{}, ErrLocalDeviceNotFound
		}
		return models.LocalDevice{}, fmt.Errorf("get local device: %w", err)
	}

	return device, nil
}

// Close releases the underlying connection.
func (s *localStore) Close() error {
	return s.db.Close()
}
