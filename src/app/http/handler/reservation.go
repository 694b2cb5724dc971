package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/domain"
	"restaurant/src/core/usecase"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	reservationService *usecase.ReservationService
	log                *slog.Logger
}

func NewReservationHandler(reservationService *usecase.ReservationService, log *slog.Logger) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService, log: log}
}

// GET /api/reservations
func (h *ReservationHandler) List(c *gin.Context) {
	rs, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, rs)
}

// POST /api/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.reservationService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, dto.CreatedResponse{ID: id})
}

// PATCH /api/reservations/:id/status
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	status := domain.ReservationStatus(req.Status)
	if err := h.reservationService.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}
