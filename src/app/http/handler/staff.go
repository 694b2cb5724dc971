package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/usecase"
)

// StaffHandler handles staff endpoints.
type StaffHandler struct {
	staffService *usecase.StaffService
	log          *slog.Logger
}

func NewStaffHandler(staffService *usecase.StaffService, log *slog.Logger) *StaffHandler {
	return &StaffHandler{staffService: staffService, log: log}
}

// GET /api/staff
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.staffService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, staff)
}

// POST /api/staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.staffService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, dto.CreatedResponse{ID: id})
}
