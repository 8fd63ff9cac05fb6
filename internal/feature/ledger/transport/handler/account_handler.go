package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/transport/http/dto"
)

// AccountUsecase defines the account operations consumed by the handler.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, uid, bookID, name string, balance decimal.Decimal) *api.Response
	ReadAccounts(ctx context.Context, uid, bookID string) *api.Response
	UpdateAccount(ctx context.Context, uid, bookID, accountID, name string, balance decimal.Decimal) *api.Response
	DeleteAccount(ctx context.Context, uid, bookID, accountID string) *api.Response
}

// AccountHandler handles the /api/accounts endpoints.
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler creates an AccountHandler with the injected usecase.
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create handles POST /api/accounts/create.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "account create", err)
		return
	}
	c.JSON(http.StatusOK, h.accounts.CreateAccount(c.Request.Context(), currentUserID(c), req.BookID, req.Nombre, *req.Saldo))
}

// Read handles GET /api/accounts.
func (h *AccountHandler) Read(c *gin.Context) {
	var req dto.ReadAccountsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "account read", err)
		return
	}
	c.JSON(http.StatusOK, h.accounts.ReadAccounts(c.Request.Context(), currentUserID(c), req.BookID))
}

// Update handles POST /api/accounts/update.
func (h *AccountHandler) Update(c *gin.Context) {
	var req dto.UpdateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "account update", err)
		return
	}
	c.JSON(http.StatusOK, h.accounts.UpdateAccount(c.Request.Context(), currentUserID(c), req.BookID, req.AccountID, req.Nombre, *req.Saldo))
}

// Destroy handles POST /api/accounts/destroy.
func (h *AccountHandler) Destroy(c *gin.Context) {
	var req dto.DestroyAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "account destroy", err)
		return
	}
	c.JSON(http.StatusOK, h.accounts.DeleteAccount(c.Request.Context(), currentUserID(c), req.BookID, req.AccountID))
}
