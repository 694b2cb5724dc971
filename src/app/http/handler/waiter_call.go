package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/domain"
	"restaurant/src/core/usecase"
)

// WaiterCallHandler handles waiter call endpoints.
type WaiterCallHandler struct {
	callService *usecase.WaiterCallService
	log         *slog.Logger
}

func NewWaiterCallHandler(callService *usecase.WaiterCallService, log *slog.Logger) *WaiterCallHandler {
	return &WaiterCallHandler{callService: callService, log: log}
}

// GET /api/waiter-calls
func (h *WaiterCallHandler) List(c *gin.Context) {
	calls, err := h.callService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, calls)
}

// POST /api/waiter-calls
func (h *WaiterCallHandler) Create(c *gin.Context) {
	var req dto.CreateWaiterCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.callService.Call(c.Request.Context(), req.TableID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, dto.CreatedResponse{ID: id})
}

// PATCH /api/waiter-calls/:id/status
func (h *WaiterCallHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	status := domain.WaiterCallStatus(req.Status)
	if err := h.callService.UpdateStatus(c.Request.Context(), c.Param("id"), status, req.WaiterID); err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}
