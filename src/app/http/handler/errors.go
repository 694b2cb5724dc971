package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/response"
	"restaurant/src/app/middleware"
	"restaurant/src/core/domain"
)

// fail writes the error response for err. Errors without a domain meaning
// become a 500 and are logged.
func fail(c *gin.Context, log *slog.Logger, err error) {
	requestID := middleware.GetRequestID(c)

	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		log.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err,
		)
	}
	response.FromDomainError(c, err, requestID)
}

func badRequest(c *gin.Context, err error) {
	response.BadRequest(c, "invalid request body: "+err.Error(), middleware.GetRequestID(c))
}
