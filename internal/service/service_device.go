// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/models"
)

// deviceService is the concrete implementation of DeviceService. All key
// material arrives already wrapped; the service only validates shape and
// stamps the trust time.
type deviceService struct {
	deviceRepository store.DeviceRepository
	logger           *logger.Logger
}

// NewDeviceService constructs a DeviceService backed by the given repository.
func NewDeviceService(devices store.DeviceRepository, logger *logger.Logger) DeviceService {
	return &deviceService{
		deviceRepository: devices,
		logger:           logger,
	}
}

// TrustDevice enrolls (or re-enrolls) the device for passwordless unlock.
// A repeated call for the same (user, identifier) replaces the previous
// wrapped keys.
//
// Returns the persisted device or:
//   - ErrInvalidDataProvided if the identifier or any protected blob is
//     missing.
//   - A wrapped storage error if persistence fails.
func (s *deviceService) TrustDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	if device.Identifier == "" || device.ProtectedUserKey == "" ||
		device.ProtectedDevicePrivateKey == "" || device.ProtectedDevicePublicKey == "" {
		log.Error().Int64("user_id", device.UserID).Msg("invalid device trust data provided")
		return models.Device{}, ErrInvalidDataProvided
	}

	now := time.Now()
	device.TrustedAt = &now

	saved, err := s.deviceRepository.SaveDevice(ctx, device)
	if err != nil {
		log.Err(err).Int64("user_id", device.UserID).Msg("device trust ended with error")
		return models.Device{}, fmt.Errorf("device trust ended with error: %w", err)
	}

	return saved, nil
}

// GetDevice returns the enrollment record for (userID, identifier).
func (s *deviceService) GetDevice(ctx context.Context, userID int64, identifier string) (models.Device, error) {
	log := logger.FromContext(ctx)

	if identifier == "" {
		return models.Device{}, ErrInvalidDataProvided
	}

	device, err := s.deviceRepository.FindDevice(ctx, userID, identifier)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("identifier", identifier).Msg("device lookup failed")
		return models.Device{}, fmt.Errorf("device lookup failed: %w", err)
	}

	return device, nil
}

// ListDevices returns every device enrolled for the account.
func (s *deviceService) ListDevices(ctx context.Context, userID int64) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	devices, err := s.deviceRepository.ListDevices(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("device listing failed")
		return nil, fmt.Errorf("device listing failed: %w", err)
	}

	return devices, nil
}
