package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/usecase"
)

// MenuHandler handles menu endpoints.
type MenuHandler struct {
	menuService *usecase.MenuService
	log         *slog.Logger
}

func NewMenuHandler(menuService *usecase.MenuService, log *slog.Logger) *MenuHandler {
	return &MenuHandler{menuService: menuService, log: log}
}

// List returns the available menu.
// GET /api/menu
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.Available(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, items)
}

// Create adds a menu item.
// POST /api/menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.menuService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, dto.CreatedResponse{ID: id})
}
