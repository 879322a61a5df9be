package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

func newTestDeviceRepo(t *testing.T) (*deviceRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &deviceRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func deviceRows(device models.Device, createdAt time.Time) *sqlmock.Rows {
	var trustedAt any
	if device.TrustedAt != nil {
		trustedAt = *device.TrustedAt
	}
	return sqlmock.
		NewRows([]string{
			"id", "user_id", "name", "identifier", "protected_user_key",
			"protected_device_private_key", "protected_device_public_key", "trusted_at", "created_at",
		}).
		AddRow(device.ID, device.UserID, device.Name, device.Identifier,
			device.ProtectedUserKey, device.ProtectedDevicePrivateKey, device.ProtectedDevicePublicKey,
			trustedAt, createdAt)
}

func TestSaveDevice_Success(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	device := models.Device{
		ID:                        utils.NewID(),
		UserID:                    42,
		Name:                      "work laptop",
		Identifier:                "machine-fingerprint",
		ProtectedUserKey:          "wrapped-user-key",
		ProtectedDevicePrivateKey: "wrapped-private-key",
		ProtectedDevicePublicKey:  "public-key",
		TrustedAt:                 &now,
	}

	mock.ExpectQuery("INSERT INTO devices").
		WillReturnRows(deviceRows(device, time.Now()))

	saved, err := repo.SaveDevice(context.Background(), device)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != device.ID {
		t.Errorf("expected ID %s, got %s", device.ID, saved.ID)
	}
	if saved.Identifier != device.Identifier {
		t.Errorf("expected identifier %s, got %s", device.Identifier, saved.Identifier)
	}
}

func TestSaveDevice_GeneratesID(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	device := models.Device{UserID: 42, Name: "phone", Identifier: "phone-fp"}
	stored := device
	stored.ID = utils.NewID()

	mock.ExpectQuery("INSERT INTO devices").
		WillReturnRows(deviceRows(stored, time.Now()))

	saved, err := repo.SaveDevice(context.Background(), device)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Error("expected a generated device ID")
	}
}

func TestSaveDevice_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO devices").
		WillReturnError(errors.New("db network error"))

	_, err := repo.SaveDevice(context.Background(), models.Device{UserID: 42})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindDevice_Success(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	device := models.Device{
		ID:         utils.NewID(),
		UserID:     42,
		Name:       "work laptop",
		Identifier: "machine-fingerprint",
	}

	mock.ExpectQuery("SELECT (.+) FROM devices").
		WithArgs(int64(42), "machine-fingerprint").
		WillReturnRows(deviceRows(device, time.Now()))

	found, err := repo.FindDevice(context.Background(), 42, "machine-fingerprint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != device.ID {
		t.Errorf("expected ID %s, got %s", device.ID, found.ID)
	}
}

func TestFindDevice_NotFound(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	empty := sqlmock.NewRows([]string{
		"id", "user_id", "name", "identifier", "protected_user_key",
		"protected_device_private_key", "protected_device_public_key", "trusted_at", "created_at",
	})
	mock.ExpectQuery("SELECT (.+) FROM devices").
		WithArgs(int64(42), "unknown-fp").
		WillReturnRows(empty)

	_, err := repo.FindDevice(context.Background(), 42, "unknown-fp")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}

func TestListDevices_Success(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "identifier", "protected_user_key",
		"protected_device_private_key", "protected_device_public_key", "trusted_at", "created_at",
	}).
		AddRow(utils.NewID(), int64(42), "laptop", "fp-1", "puk-1", "pdpk-1", "pub-1", time.Now(), time.Now()).
		AddRow(utils.NewID(), int64(42), "phone", "fp-2", "puk-2", "pdpk-2", "pub-2", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM devices").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	devices, err := repo.ListDevices(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devices))
	}
	if devices[0].Name != "laptop" || devices[1].Name != "phone" {
		t.Errorf("unexpected device order: %q, %q", devices[0].Name, devices[1].Name)
	}
}

func TestListDevices_QueryError(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM devices").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListDevices(context.Background(), 42)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
