package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/transport/http/dto"
	"bookkeeping_backend/internal/feature/ledger/usecase"
)

// LoanUsecase defines the loan operations consumed by the handler.
type LoanUsecase interface {
	CreateLoan(ctx context.Context, uid, bookID string, in usecase.LoanInput) *api.Response
	ReadLoans(ctx context.Context, uid, bookID string) *api.Response
	UpdateLoan(ctx context.Context, uid, bookID, loanID string, in usecase.LoanInput) *api.Response
	DeleteLoan(ctx context.Context, uid, bookID, loanID string) *api.Response
}

// LoanHandler handles the /api/loans endpoints.
type LoanHandler struct {
	loans LoanUsecase
}

// NewLoanHandler creates a LoanHandler with the injected usecase.
func NewLoanHandler(loans LoanUsecase) *LoanHandler {
	return &LoanHandler{loans: loans}
}

// Create handles POST /api/loans/create.
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.CreateLoanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "loan create", err)
		return
	}
	in := usecase.LoanInput{
		Name:      req.Nombre,
		Amount:    *req.Cantidad,
		AccountID: req.CuentaID,
		StartDate: req.FechaInicio,
		EndDate:   req.FechaFin,
		TypeID:    req.TipoMovimientoID,
	}
	c.JSON(http.StatusOK, h.loans.CreateLoan(c.Request.Context(), currentUserID(c), req.BookID, in))
}

// Read handles GET /api/loans.
func (h *LoanHandler) Read(c *gin.Context) {
	var req dto.ReadLoansReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "loan read", err)
		return
	}
	c.JSON(http.StatusOK, h.loans.ReadLoans(c.Request.Context(), currentUserID(c), req.BookID))
}

// Update handles POST /api/loans/update.
func (h *LoanHandler) Update(c *gin.Context) {
	var req dto.UpdateLoanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "loan update", err)
		return
	}
	in := usecase.LoanInput{
		Name:      req.Nombre,
		Amount:    *req.Cantidad,
		AccountID: req.CuentaID,
		StartDate: req.FechaInicio,
		EndDate:   req.FechaFin,
		TypeID:    req.TipoMovimientoID,
	}
	c.JSON(http.StatusOK, h.loans.UpdateLoan(c.Request.Context(), currentUserID(c), req.BookID, req.LoanID, in))
}

// Destroy handles POST /api/loans/destroy.
func (h *LoanHandler) Destroy(c *gin.Context) {
	var req dto.DestroyLoanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "loan destroy", err)
		return
	}
	c.JSON(http.StatusOK, h.loans.DeleteLoan(c.Request.Context(), currentUserID(c), req.BookID, req.LoanID))
}
