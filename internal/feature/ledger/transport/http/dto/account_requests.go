package dto

import "github.com/shopspring/decimal"

// Saldo is a pointer so a zero balance still passes the required check.

// CreateAccountReq is the body of POST /api/accounts/create.
type CreateAccountReq struct {
	BookID string           `json:"bookId" binding:"required"`
	Nombre string           `json:"nombre" binding:"required"`
	Saldo  *decimal.Decimal `json:"saldo" binding:"required"`
}

// ReadAccountsReq is the body of GET /api/accounts.
type ReadAccountsReq struct {
	BookID string `json:"bookId" binding:"required"`
}

// UpdateAccountReq is the body of POST /api/accounts/update.
type UpdateAccountReq struct {
	BookID    string           `json:"bookId" binding:"required"`
	AccountID string           `json:"accountId" binding:"required"`
	Nombre    string           `json:"nombre" binding:"required"`
	Saldo     *decimal.Decimal `json:"saldo" binding:"required"`
}

// DestroyAccountReq is the body of POST /api/accounts/destroy.
type DestroyAccountReq struct {
	BookID    string `json:"bookId" binding:"required"`
	AccountID string `json:"accountId" binding:"required"`
}
