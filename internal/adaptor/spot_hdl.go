package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/dto/request"
	"garage-booking/internal/dto/response"
	"garage-booking/internal/usecase"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SpotHandler struct {
	service usecase.SpotService
	log     *zap.Logger
}

func NewSpotHandler(service usecase.SpotService, log *zap.Logger) *SpotHandler {
	return &SpotHandler{
		service: service,
		log:     log.With(zap.String("handler", "spot")),
	}
}

// ListSpots handles GET /api/spots (public)
func (h *SpotHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	spots, err := h.service.ListSpots(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list spots")
		return
	}

	utils.ResponseSuccess(w, "success", spots)
}

// FindAvailableSpots handles GET /api/spots/available?check_in&check_out&type (public)
func (h *SpotHandler) FindAvailableSpots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.SpotAvailabilityRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
		Type:     query.Get("type"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	checkIn, err := utils.ParseTimestamp(req.CheckIn)
	if err != nil {
		utils.ResponseUnprocessable(w, "Validation failed",
			map[string]string{"check_in": "must be an ISO-8601 timestamp"})
		return
	}
	checkOut, err := utils.ParseTimestamp(req.CheckOut)
	if err != nil {
		utils.ResponseUnprocessable(w, "Validation failed",
			map[string]string{"check_out": "must be an ISO-8601 timestamp"})
		return
	}

	var spotType *entity.SpotType
	if req.Type != "" {
		t := entity.SpotType(req.Type)
		spotType = &t
	}

	spots, err := h.service.FindAvailableSpots(r.Context(), checkIn, checkOut, spotType)
	if err != nil {
		writeServiceError(w, h.log, err, "find available spots")
		return
	}

	utils.ResponseSuccess(w, "success", response.SpotsToResponse(spots))
}

// ==================== ADMIN METHODS ====================

// CreateSpot handles POST /api/admin/spots (admin only)
func (h *SpotHandler) CreateSpot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	spot, err := h.service.CreateSpot(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create spot")
		return
	}

	utils.ResponseCreated(w, "success", spot)
}

// UpdateSpotAvailability handles PATCH /api/admin/spots/{id}/availability (admin only)
func (h *SpotHandler) UpdateSpotAvailability(w http.ResponseWriter, r *http.Request) {
	spotID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Spot ID must be an integer", nil)
		return
	}

	var req request.UpdateSpotAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SetAvailability(r.Context(), spotID, *req.IsAvailable); err != nil {
		writeServiceError(w, h.log, err, "update spot availability")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
