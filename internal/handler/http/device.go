package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

func (h *Handler) trustDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.TrustDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	device, err := h.services.DeviceService.TrustDevice(ctx, models.Device{
		UserID:                    userID,
		Name:                      request.Name,
		Identifier:                request.Identifier,
		ProtectedUserKey:          request.ProtectedUserKey,
		ProtectedDevicePrivateKey: request.ProtectedDevicePrivateKey,
		ProtectedDevicePublicKey:  request.ProtectedDevicePublicKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device trust")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, device, http.StatusOK)
}

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	devices, err := h.services.DeviceService.ListDevices(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during device listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	views := make([]models.Device, 0, len(devices))
	for _, device := range devices {
		// Trust blobs are client secrets wrapped for one installation; the
		// listing is metadata only.
		device.ProtectedUserKey = ""
		device.ProtectedDevicePrivateKey = ""
		device.ProtectedDevicePublicKey = ""
		views = append(views, device)
	}

	utils.WriteJSON(w, views, http.StatusOK)
}
