package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/dto"
	"restaurant/src/app/http/response"
	"restaurant/src/core/usecase"
)

// AuthHandler handles login.
type AuthHandler struct {
	authService *usecase.AuthService
	log         *slog.Logger
}

func NewAuthHandler(authService *usecase.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Login returns the caller's identity and role.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	identity, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, identity)
}
