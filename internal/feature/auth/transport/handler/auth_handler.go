// Package handler provides the HTTP handlers for the auth endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/auth/transport/http/dto"
	jwtmw "bookkeeping_backend/internal/platform/jwt"
)

// AuthUsecase defines the sign-in operations consumed by the handler.
// Following Go convention the interface is defined by the consumer.
type AuthUsecase interface {
	// Login verifies a Google ID token and signs the user in.
	Login(ctx context.Context, rawToken string) *api.Response
	// Renew re-issues a session token for an authenticated user.
	Renew(ctx context.Context, uid string) *api.Response
}

// AuthHandler handles the /api/login endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Response{Success: false, Message: "invalid request"})
		return
	}
	c.JSON(http.StatusOK, h.auth.Login(c.Request.Context(), req.Token))
}

// Renew handles GET /api/login/renew behind the session middleware.
func (h *AuthHandler) Renew(c *gin.Context) {
	uid := c.GetString(jwtmw.ContextUserID)
	c.JSON(http.StatusOK, h.auth.Renew(c.Request.Context(), uid))
}
