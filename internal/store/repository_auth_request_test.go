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
	"github.com/nstepanov/lockbox/models"
)

var authRequestColumnNames = []string{
	"id", "user_id", "email", "public_key", "access_code_hash", "fingerprint", "device_name",
	"state", "wrapped_user_key", "master_password_hash", "created_at", "expires_at", "responded_at",
}

func newTestAuthRequestRepo(t *testing.T) (*authRequestRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &authRequestRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func authRequestRows(request models.AuthRequest) *sqlmock.Rows {
	return sqlmock.
		NewRows(authRequestColumnNames).
		AddRow(request.ID, request.UserID, request.Email, request.PublicKey, request.AccessCodeHash,
			request.Fingerprint, request.DeviceName, int(request.State),
			request.WrappedUserKey, request.MasterPasswordHash,
			request.CreatedAt, request.ExpiresAt, request.RespondedAt)
}

func TestCreateAuthRequest_AssignsID(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	now := time.Now()
	request := models.AuthRequest{
		UserID:      1,
		Email:       "john@example.com",
		PublicKey:   "pubkey",
		Fingerprint: "alpha-bravo-charlie-delta-echo",
		State:       models.AuthRequestPending,
		ExpiresAt:   now.Add(15 * time.Minute),
	}

	stored := request
	stored.ID = uuid.New()
	stored.CreatedAt = now

	mock.ExpectQuery("INSERT INTO auth_requests").
		WillReturnRows(authRequestRows(stored))

	created, err := repo.CreateAuthRequest(context.Background(), request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected server-assigned id")
	}
	if created.State != models.AuthRequestPending {
		t.Errorf("expected pending state, got %v", created.State)
	}
}

func TestGetAuthRequest_NotFound(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM auth_requests").
		WillReturnRows(sqlmock.NewRows(authRequestColumnNames))

	_, err := repo.GetAuthRequest(context.Background(), uuid.New())
	if !errors.Is(err, ErrAuthRequestNotFound) {
		t.Fatalf("expected ErrAuthRequestNotFound, got %v", err)
	}
}

func TestUpdateAuthRequest_Approved(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	now := time.Now()
	request := models.AuthRequest{
		ID:                 uuid.New(),
		UserID:             1,
		Email:              "john@example.com",
		State:              models.AuthRequestApproved,
		WrappedUserKey:     "wrapped-to-requester",
		MasterPasswordHash: "forwarded",
		RespondedAt:        &now,
		CreatedAt:          now.Add(-time.Minute),
		ExpiresAt:          now.Add(14 * time.Minute),
	}

	mock.ExpectQuery("UPDATE auth_requests").
		WithArgs(request.ID, int(request.State), request.WrappedUserKey, request.MasterPasswordHash, request.RespondedAt,
			int(models.AuthRequestPending)).
		WillReturnRows(authRequestRows(request))

	updated, err := repo.UpdateAuthRequest(context.Background(), request, models.AuthRequestPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.State != models.AuthRequestApproved {
		t.Errorf("expected approved state, got %v", updated.State)
	}
	if updated.WrappedUserKey != request.WrappedUserKey {
		t.Error("expected wrapped user key to round-trip")
	}
}

func TestUpdateAuthRequest_StateGuardMiss(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	now := time.Now()
	request := models.AuthRequest{
		ID:          uuid.New(),
		State:       models.AuthRequestConsumed,
		RespondedAt: &now,
	}

	// The row already left the guarded state, so the conditional UPDATE
	// matches nothing.
	mock.ExpectQuery("UPDATE auth_requests").
		WillReturnRows(sqlmock.NewRows(authRequestColumnNames))

	_, err := repo.UpdateAuthRequest(context.Background(), request, models.AuthRequestApproved)
	if !errors.Is(err, ErrAuthRequestNotFound) {
		t.Fatalf("expected ErrAuthRequestNotFound on guard miss, got %v", err)
	}
}

func TestListAuthRequests_FilterByUserAndState(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	now := time.Now()
	pending := models.AuthRequest{
		ID:        uuid.New(),
		UserID:    1,
		Email:     "john@example.com",
		State:     models.AuthRequestPending,
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}

	mock.ExpectQuery("SELECT (.+) FROM auth_requests WHERE user_id = (.+) AND state IN").
		WillReturnRows(authRequestRows(pending))

	got, err := repo.ListAuthRequests(context.Background(), AuthRequestFilter{
		UserID: 1,
		States: []models.AuthRequestState{models.AuthRequestPending},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 request, got %d", len(got))
	}
	if got[0].ID != pending.ID {
		t.Error("expected the pending request back")
	}
}

func TestExpirePending(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE auth_requests").
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.ExpirePending(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 3 {
		t.Errorf("expected 3 expired rows, got %d", affected)
	}
}

func TestExpirePending_DBError(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE auth_requests").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ExpirePending(context.Background(), time.Now())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
