// Package handler provides the HTTP handlers for the ledger endpoints.
// Handlers bind and validate the request body, then delegate to the
// mutation engine; every outcome is rendered as the response envelope.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeping_backend/internal/api"
	jwtmw "bookkeeping_backend/internal/platform/jwt"
)

// currentUserID returns the acting user id placed in the context by the
// session middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(jwtmw.ContextUserID)
}

// invalidRequest reports a binding/validation failure without invoking the
// mutation engine.
func invalidRequest(c *gin.Context, operation string, err error) {
	slog.Warn("request validation failed", "operation", operation, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, api.Response{Success: false, Message: "invalid request"})
}
