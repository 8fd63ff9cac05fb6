package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a ledger owned by exactly one user. It embeds its accounts and
// loans; both collections keep soft-deleted entries.
type Book struct {
	ID        string     `json:"id"`
	Name      string     `json:"nombre"`
	Accounts  []Account  `json:"accounts"`
	Loans     []Loan     `json:"loans"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// NewBook builds a book with a fresh id and creation timestamps.
func NewBook(name string, now time.Time) Book {
	return Book{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Account returns the account with the given id, or nil. The pointer aliases
// the book's collection so mutations persist through the aggregate.
func (b *Book) Account(id string) *Account {
	for i := range b.Accounts {
		if b.Accounts[i].ID == id {
			return &b.Accounts[i]
		}
	}
	return nil
}

// Loan returns the loan with the given id, or nil.
func (b *Book) Loan(id string) *Loan {
	for i := range b.Loans {
		if b.Loans[i].ID == id {
			return &b.Loans[i]
		}
	}
	return nil
}

// SoftDelete marks the book as deleted, re-stamping on repeat calls.
func (b *Book) SoftDelete(now time.Time) {
	t := now
	b.DeletedAt = &t
}

// Deleted reports whether the book carries a deletion stamp.
func (b *Book) Deleted() bool {
	return b.DeletedAt != nil
}

// BookView is the externally visible shape of a book: the internal id is
// exposed as "uid" and embedded children are omitted (they are served by
// their own read operations, already filtered).
type BookView struct {
	UID       string    `json:"uid"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View projects the book for a response.
func (b *Book) View() BookView {
	return BookView{
		UID:       b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
