// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

// authRequestRepository is the PostgreSQL-backed implementation of
// [AuthRequestRepository] against the "auth_requests" table.
type authRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthRequestRepository constructs an [AuthRequestRepository] backed by
// the provided database connection and logger.
func NewAuthRequestRepository(db *DB, logger *logger.Logger) AuthRequestRepository {
	logger.Debug().Msg("creating auth request repository")
	return &authRequestRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAuthRequest persists a new pending request and returns it with the
// server-assigned CreatedAt. The id is generated here when the caller left
// it zero.
func (r *authRequestRepository) CreateAuthRequest(ctx context.Context, request models.AuthRequest) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	if request.ID == uuid.Nil {
		request.ID = utils.NewID()
	}

	row := r.db.QueryRowContext(ctx, createAuthRequest,
		request.ID, request.UserID, request.Email, request.PublicKey, request.AccessCodeHash,
		request.Fingerprint, request.DeviceName, request.State, request.ExpiresAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*authRequestRepository.CreateAuthRequest").Msg("error: insert failed")
		return models.AuthRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanAuthRequest(row.Scan)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.CreateAuthRequest").Msg("error: scanning error")
		return models.AuthRequest{}, err
	}

	return created, nil
}

// GetAuthRequest retrieves a request by id.
//
// [sql.ErrNoRows] maps to [ErrAuthRequestNotFound].
func (r *authRequestRepository) GetAuthRequest(ctx context.Context, id uuid.UUID) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getAuthRequest, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*authRequestRepository.GetAuthRequest").Msg("error: query failed")
		return models.AuthRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	request, err := scanAuthRequest(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthRequest{}, ErrAuthRequestNotFound
		}
		log.Err(err).Str("func", "*authRequestRepository.GetAuthRequest").Msg("error: scanning error")
		return models.AuthRequest{}, err
	}

	return request, nil
}

// ListAuthRequests returns the requests matching the filter, newest first.
func (r *authRequestRepository) ListAuthRequests(ctx context.Context, filter AuthRequestFilter) ([]models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuthRequestsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.ListAuthRequests").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.ListAuthRequests").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var requests []models.AuthRequest
	for rows.Next() {
		request, err := scanAuthRequest(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*authRequestRepository.ListAuthRequests").Msg("error: scanning error")
			return nil, err
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateAuthRequest stores the answer fields (state, wrapped user key,
// forwarded hash, responded_at) for the given request id and returns the
// updated record. The row is changed only while it is still in the from
// state, so concurrent state transitions have exactly one winner.
//
// [sql.ErrNoRows] maps to [ErrAuthRequestNotFound]: the id is unknown or the
// row already left the from state.
func (r *authRequestRepository) UpdateAuthRequest(ctx context.Context, request models.AuthRequest, from models.AuthRequestState) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateAuthRequest,
		request.ID, request.State, request.WrappedUserKey, request.MasterPasswordHash, request.RespondedAt,
		from,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*authRequestRepository.UpdateAuthRequest").Msg("error: update failed")
		return models.AuthRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanAuthRequest(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthRequest{}, ErrAuthRequestNotFound
		}
		log.Err(err).Str("func", "*authRequestRepository.UpdateAuthRequest").Msg("error: scanning error")
		return models.AuthRequest{}, err
	}

	return updated, nil
}

// ExpirePending flips every pending request whose deadline passed to the
// expired state and returns how many rows changed.
func (r *authRequestRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, expirePendingAuthRequests,
		models.AuthRequestExpired, now, models.AuthRequestPending,
	)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.ExpirePending").Msg("error: update failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func scanAuthRequest(scan func(dest ...any) error) (models.AuthRequest, error) {
	var request models.AuthRequest
	err := scan(
		&request.ID, &request.UserID, &request.Email, &request.PublicKey, &request.AccessCodeHash,
		&request.Fingerprint, &request.DeviceName, &request.State,
		&request.WrappedUserKey, &request.MasterPasswordHash,
		&request.CreatedAt, &request.ExpiresAt, &request.RespondedAt,
	)

	return request, err
}
