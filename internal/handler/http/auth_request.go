package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

// authRequestView projects the persistence record onto the API shape. The
// encrypted answer payload is attached only when includeAnswer is set, i.e.
// for the authorized poll of an approved request.
func authRequestView(request models.AuthRequest, includeAnswer bool) models.AuthRequestView {
	view := models.AuthRequestView{
		ID:          request.ID,
		Email:       request.Email,
		Fingerprint: request.Fingerprint,
		DeviceName:  request.DeviceName,
		State:       request.State.String(),
		PublicKey:   request.PublicKey,
		CreatedAt:   request.CreatedAt,
		ExpiresAt:   request.ExpiresAt,
	}

	if includeAnswer {
		view.WrappedUserKey = request.WrappedUserKey
		view.MasterPasswordHash = request.MasterPasswordHash
	}

	return view
}

func (h *Handler) createAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateAuthRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AuthRequestService.Create(ctx, models.AuthRequest{
		Email:       request.Email,
		PublicKey:   request.PublicKey,
		Fingerprint: request.Fingerprint,
		DeviceName:  request.DeviceName,
	}, request.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("auth request for unknown account")
			http.Error(w, "unknown account", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during auth request creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, authRequestView(created, false), http.StatusCreated)
}

func (h *Handler) pollAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid auth request id")
		http.Error(w, "invalid auth request id", http.StatusBadRequest)
		return
	}

	var request models.PollAuthRequestRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	polled, err := h.services.AuthRequestService.Poll(ctx, id, request.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongAccessCode):
			log.Err(err).Msg("wrong access code")
			http.Error(w, "wrong access code", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrAuthRequestExpired) || errors.Is(err, service.ErrAuthRequestConsumed):
			log.Err(err).Msg("auth request no longer answerable")
			http.Error(w, "auth request no longer answerable", http.StatusGone)
			return
		case errors.Is(err, store.ErrAuthRequestNotFound):
			log.Err(err).Msg("auth request not found")
			http.Error(w, "auth request not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during auth request poll")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, authRequestView(polled, polled.State == models.AuthRequestApproved), http.StatusOK)
}

func (h *Handler) listAuthRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	requests, err := h.services.AuthRequestService.ListPending(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during auth request listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	views := make([]models.AuthRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, authRequestView(request, false))
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) answerAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid auth request id")
		http.Error(w, "invalid auth request id", http.StatusBadRequest)
		return
	}

	var answer models.AnswerAuthRequestRequest
	if err = json.NewDecoder(r.Body).Decode(&answer); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	answered, err := h.services.AuthRequestService.Answer(ctx, userID, id, answer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrAuthRequestNotFound):
			log.Err(err).Msg("auth request not found")
			http.Error(w, "auth request not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrAuthRequestAnswered):
			log.Err(err).Msg("auth request already answered")
			http.Error(w, "auth request already answered", http.StatusConflict)
			return
		case errors.Is(err, service.ErrAuthRequestExpired):
			log.Err(err).Msg("auth request expired")
			http.Error(w, "auth request expired", http.StatusGone)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during auth request answer")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, authRequestView(answered, false), http.StatusOK)
}
