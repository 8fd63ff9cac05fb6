package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Move create addresses its parent account through cuentaId; update and
// destroy address it through accountId. Original wire quirk, kept for
// client compatibility.

// CreateMoveReq is the body of POST /api/moves/create.
type CreateMoveReq struct {
	BookID           string           `json:"bookId" binding:"required"`
	CuentaID         string           `json:"cuentaId" binding:"required"`
	Nombre           string           `json:"nombre" binding:"required"`
	Cantidad         *decimal.Decimal `json:"cantidad" binding:"required"`
	CategoriaID      string           `json:"categoriaId" binding:"required"`
	ConceptoID       string           `json:"conceptoId" binding:"required"`
	Fecha            time.Time        `json:"fecha" binding:"required"`
	TipoMovimientoID string           `json:"tipoMovimientoId" binding:"required"`
}

// ReadMovesReq is the body of GET /api/moves. CuentaID is optional; when
// absent the moves of every account of the book are returned.
type ReadMovesReq struct {
	BookID   string `json:"bookId" binding:"required"`
	CuentaID string `json:"cuentaId"`
}

// UpdateMoveReq is the body of POST /api/moves/update.
type UpdateMoveReq struct {
	BookID           string           `json:"bookId" binding:"required"`
	AccountID        string           `json:"accountId" binding:"required"`
	MoveID           string           `json:"moveId" binding:"required"`
	Nombre           string           `json:"nombre" binding:"required"`
	Cantidad         *decimal.Decimal `json:"cantidad" binding:"required"`
	CategoriaID      string           `json:"categoriaId" binding:"required"`
	ConceptoID       string           `json:"conceptoId" binding:"required"`
	Fecha            time.Time        `json:"fecha" binding:"required"`
	TipoMovimientoID string           `json:"tipoMovimientoId" binding:"required"`
}

// DestroyMoveReq is the body of POST /api/moves/destroy.
type DestroyMoveReq struct {
	BookID    string `json:"bookId" binding:"required"`
	AccountID string `json:"accountId" binding:"required"`
	MoveID    string `json:"moveId" binding:"required"`
}
