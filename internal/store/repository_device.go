// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository] against the "devices" table.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// SaveDevice inserts the device or, when the (user_id, identifier) pair
// already exists, refreshes its name and trust key material. Re-trusting a
// device therefore replaces the previous wrapped keys.
func (r *deviceRepository) SaveDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	if device.ID == uuid.Nil {
		device.ID = utils.NewID()
	}

	row := r.db.QueryRowContext(ctx, saveDevice,
		device.ID, device.UserID, device.Name, device.Identifier,
		device.ProtectedUserKey, device.ProtectedDevicePrivateKey, device.ProtectedDevicePublicKey,
		device.TrustedAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.SaveDevice").Msg("error: upsert failed")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanDevice(row)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.SaveDevice").Msg("error: scanning error")
		return models.Device{}, err
	}

	return saved, nil
}

// FindDevice retrieves the device enrolled for (userID, identifier).
//
// [sql.ErrNoRows] maps to [ErrDeviceNotFound].
func (r *deviceRepository) FindDevice(ctx context.Context, userID int64, identifier string) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findDevice, userID, identifier)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindDevice").Msg("error: query failed")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}
		log.Err(err).Str("func", "*deviceRepository.FindDevice").Msg("error: scanning error")
		return models.Device{}, err
	}

	return device, nil
}

// ListDevices returns every device enrolled for the account, oldest first.
func (r *deviceRepository) ListDevices(ctx context.Context, userID int64) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDevices, userID)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.ListDevices").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		var device models.Device
		if err = rows.Scan(
			&device.ID, &device.UserID, &device.Name, &device.Identifier,
			&device.ProtectedUserKey, &device.ProtectedDevicePrivateKey, &device.ProtectedDevicePublicKey,
			&device.TrustedAt, &device.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*deviceRepository.ListDevices").Msg("error: scanning error")
			return nil, err
		}
		devices = append(devices, device)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

func scanDevice(row *sql.Row) (models.Device, error) {
	var device models.Device
	err := row.Scan(
		&device.ID, &device.UserID, &device.Name, &device.Identifier,
		&device.ProtectedUserKey, &device.ProtectedDevicePrivateKey, &device.ProtectedDevicePublicKey,
		&device.TrustedAt, &device.CreatedAt,
	)

	return device, err
}
