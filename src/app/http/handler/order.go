package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/domain"
	"restaurant/src/core/usecase"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService *usecase.OrderService
	log          *slog.Logger
}

func NewOrderHandler(orderService *usecase.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, log: log}
}

// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, orders)
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.orderService.Place(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, dto.CreatedResponse{ID: id})
}

// PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status)); err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}
