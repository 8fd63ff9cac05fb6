package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan is a scheduled obligation inside a book, distinct from a
// point-in-time move. AccountID is a weak reference: it relates the loan to
// an account without owning it and may dangle after that account is
// soft-deleted.
type Loan struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Amount    decimal.Decimal `json:"cantidad"`
	AccountID string          `json:"cuentaId"`
	StartDate time.Time       `json:"fechaInicio"`
	EndDate   time.Time       `json:"fechaFin"`
	TypeID    string          `json:"tipoMovimientoId"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
}

// NewLoan builds a loan with a fresh id and creation timestamps.
func NewLoan(name string, amount decimal.Decimal, accountID string, start, end time.Time, typeID string, now time.Time) Loan {
	return Loan{
		ID:        uuid.New().String(),
		Name:      name,
		Amount:    amount,
		AccountID: accountID,
		StartDate: start,
		EndDate:   end,
		TypeID:    typeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SoftDelete marks the loan as deleted, re-stamping on repeat calls.
// It stamps the current time like every other entity.
func (l *Loan) SoftDelete(now time.Time) {
	t := now
	l.DeletedAt = &t
}

// Deleted reports whether the loan carries a deletion stamp.
func (l *Loan) Deleted() bool {
	return l.DeletedAt != nil
}

// LoanView is the externally visible shape of a loan, annotated with its
// owning book id.
type LoanView struct {
	UID       string          `json:"uid"`
	Name      string          `json:"nombre"`
	Amount    decimal.Decimal `json:"cantidad"`
	AccountID string          `json:"cuentaId"`
	StartDate time.Time       `json:"fechaInicio"`
	EndDate   time.Time       `json:"fechaFin"`
	TypeID    string          `json:"tipoMovimientoId"`
	BookID    string          `json:"bookId"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// View projects the loan for a response under the given book.
func (l *Loan) View(bookID string) LoanView {
	return LoanView{
		UID:       l.ID,
		Name:      l.Name,
		Amount:    l.Amount,
		AccountID: l.AccountID,
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		TypeID:    l.TypeID,
		BookID:    bookID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
