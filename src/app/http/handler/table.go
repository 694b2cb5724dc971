package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/usecase"
)

// TableHandler handles dining table endpoints.
type TableHandler struct {
	tableService *usecase.TableService
	log          *slog.Logger
}

func NewTableHandler(tableService *usecase.TableService, log *slog.Logger) *TableHandler {
	return &TableHandler{tableService: tableService, log: log}
}

// GET /api/tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, tables)
}

// POST /api/tables
func (h *TableHandler) Create(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.tableService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, dto.CreatedResponse{ID: id})
}
