package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// redactedPrefix marks routes whose request bodies carry credentials.
	redactedPrefix = "/api/auth/"

	// maxLoggedBody truncates logged bodies; list endpoints return whole tables.
	maxLoggedBody = 2048
)

// Logging writes one line per request with status, duration and both bodies.
// Request bodies under /api/auth/ are replaced with a placeholder. The level
// follows the status: 5xx at Error, 4xx at Warn, the rest at Info.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		redact := strings.HasPrefix(path, redactedPrefix)

		var reqBody []byte
		if c.Request.Body != nil && !redact {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		if query := c.Request.URL.RawQuery; query != "" {
			path += "?" + query
		}
		loggedReq := truncate(string(reqBody))
		if redact {
			loggedReq = "[redacted]"
		}

		status := c.Writer.Status()
		log.LogAttrs(c.Request.Context(), levelFor(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request", loggedReq),
			slog.String("response", truncate(rec.body.String())),
		)
	}
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "...(truncated)"
}
