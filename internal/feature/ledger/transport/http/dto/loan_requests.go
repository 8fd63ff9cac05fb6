package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLoanReq is the body of POST /api/loans/create. CuentaID is the weak
// account reference and may be omitted.
type CreateLoanReq struct {
	BookID           string           `json:"bookId" binding:"required"`
	Nombre           string           `json:"nombre" binding:"required"`
	Cantidad         *decimal.Decimal `json:"cantidad" binding:"required"`
	CuentaID         string           `json:"cuentaId"`
	FechaInicio      time.Time        `json:"fechaInicio" binding:"required"`
	FechaFin         time.Time        `json:"fechaFin" binding:"required"`
	TipoMovimientoID string           `json:"tipoMovimientoId" binding:"required"`
}

// ReadLoansReq is the body of GET /api/loans.
type ReadLoansReq struct {
	BookID string `json:"bookId" binding:"required"`
}

// UpdateLoanReq is the body of POST /api/loans/update.
type UpdateLoanReq struct {
	BookID           string           `json:"bookId" binding:"required"`
	LoanID           string           `json:"loanId" binding:"required"`
	Nombre           string           `json:"nombre" binding:"required"`
	Cantidad         *decimal.Decimal `json:"cantidad" binding:"required"`
	CuentaID         string           `json:"cuentaId"`
	FechaInicio      time.Time        `json:"fechaInicio" binding:"required"`
	FechaFin         time.Time        `json:"fechaFin" binding:"required"`
	TipoMovimientoID string           `json:"tipoMovimientoId" binding:"required"`
}

// DestroyLoanReq is the body of POST /api/loans/destroy.
type DestroyLoanReq struct {
	BookID string `json:"bookId" binding:"required"`
	LoanID string `json:"loanId" binding:"required"`
}
