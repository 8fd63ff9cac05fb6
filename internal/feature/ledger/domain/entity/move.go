package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Move is a dated financial transaction inside an account. Category,
// concept and type ids reference client-side catalogs and are opaque here.
type Move struct {
	ID         string          `json:"id"`
	Name       string          `json:"nombre"`
	Amount     decimal.Decimal `json:"cantidad"`
	CategoryID string          `json:"categoriaId"`
	ConceptID  string          `json:"conceptoId"`
	TypeID     string          `json:"tipoMovimientoId"`
	Date       time.Time       `json:"fecha"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  *time.Time      `json:"deleted_at"`
}

// NewMove builds a move with a fresh id and creation timestamps.
func NewMove(name string, amount decimal.Decimal, categoryID, conceptID, typeID string, date, now time.Time) Move {
	return Move{
		ID:         uuid.New().String(),
		Name:       name,
		Amount:     amount,
		CategoryID: categoryID,
		ConceptID:  conceptID,
		TypeID:     typeID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SoftDelete marks the move as deleted, re-stamping on repeat calls.
func (m *Move) SoftDelete(now time.Time) {
	t := now
	m.DeletedAt = &t
}

// Deleted reports whether the move carries a deletion stamp.
func (m *Move) Deleted() bool {
	return m.DeletedAt != nil
}

// MoveView is the externally visible shape of a move, annotated with its
// owning book and account ids.
type MoveView struct {
	UID        string          `json:"uid"`
	Name       string          `json:"nombre"`
	Amount     decimal.Decimal `json:"cantidad"`
	CategoryID string          `json:"categoriaId"`
	ConceptID  string          `json:"conceptoId"`
	TypeID     string          `json:"tipoMovimientoId"`
	Date       time.Time       `json:"fecha"`
	BookID     string          `json:"bookId"`
	AccountID  string          `json:"cuentaId"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// View projects the move for a response under the given book and account.
func (m *Move) View(bookID, accountID string) MoveView {
	return MoveView{
		UID:        m.ID,
		Name:       m.Name,
		Amount:     m.Amount,
		CategoryID: m.CategoryID,
		ConceptID:  m.ConceptID,
		TypeID:     m.TypeID,
		Date:       m.Date,
		BookID:     bookID,
		AccountID:  accountID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
