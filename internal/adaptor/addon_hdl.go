package adaptor

import (
	"encoding/json"
	"net/http"

	"garage-booking/internal/dto/request"
	"garage-booking/internal/usecase"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AddonHandler struct {
	service usecase.AddonService
	log     *zap.Logger
}

func NewAddonHandler(service usecase.AddonService, log *zap.Logger) *AddonHandler {
	return &AddonHandler{
		service: service,
		log:     log.With(zap.String("handler", "addon")),
	}
}

// CreateAddon handles POST /api/admin/bookings/{id}/addons (admin only)
func (h *AddonHandler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.CreateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	addon, err := h.service.CreateAddon(r.Context(), bookingID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create addon")
		return
	}

	utils.ResponseCreated(w, "success", addon)
}

// GetAddonsByBooking handles GET /api/admin/bookings/{id}/addons (admin only)
func (h *AddonHandler) GetAddonsByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	addons, err := h.service.GetAddonsByBooking(r.Context(), bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "list addons")
		return
	}

	utils.ResponseSuccess(w, "success", addons)
}

// UpdateAddonStatus handles PATCH /api/admin/addons/{id}/status (admin only)
func (h *AddonHandler) UpdateAddonStatus(w http.ResponseWriter, r *http.Request) {
	addonID := chi.URLParam(r, "id")
	if addonID == "" {
		utils.ResponseBadRequest(w, "Addon ID is required", nil)
		return
	}

	var req request.UpdateAddonStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	addon, err := h.service.UpdateStatus(r.Context(), addonID, req.Status)
	if err != nil {
		writeServiceError(w, h.log, err, "update addon status")
		return
	}

	utils.ResponseSuccess(w, "success", addon)
}
