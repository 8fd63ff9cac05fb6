package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a money account inside a book. Balance is decimal; float
// arithmetic is never used for money.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Balance   decimal.Decimal `json:"saldo"`
	Moves     []Move          `json:"moves"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
}

// NewAccount builds an account with a fresh id and creation timestamps.
func NewAccount(name string, balance decimal.Decimal, now time.Time) Account {
	return Account{
		ID:        uuid.New().String(),
		Name:      name,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Move returns the move with the given id, or nil. The pointer aliases the
// account's collection so mutations persist through the aggregate.
func (a *Account) Move(id string) *Move {
	for i := range a.Moves {
		if a.Moves[i].ID == id {
			return &a.Moves[i]
		}
	}
	return nil
}

// SoftDelete marks the account as deleted, re-stamping on repeat calls.
func (a *Account) SoftDelete(now time.Time) {
	t := now
	a.DeletedAt = &t
}

// Deleted reports whether the account carries a deletion stamp.
func (a *Account) Deleted() bool {
	return a.DeletedAt != nil
}

// AccountView is the externally visible shape of an account, annotated with
// its owning book id.
type AccountView struct {
	UID       string          `json:"uid"`
	Name      string          `json:"nombre"`
	Balance   decimal.Decimal `json:"saldo"`
	BookID    string          `json:"bookId"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// View projects the account for a response under the given book.
func (a *Account) View(bookID string) AccountView {
	return AccountView{
		UID:       a.ID,
		Name:      a.Name,
		Balance:   a.Balance,
		BookID:    bookID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
