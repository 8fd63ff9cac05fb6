// Package entity defines the soft-deletable records that make up a user's
// bookkeeping aggregate: User → Book → {Account → Move, Loan}.
//
// The User is the aggregate root and the only independently persisted
// entity. Children are embedded, addressed by an id that is unique within
// their immediate parent's collection, and never removed physically: a
// soft delete stamps DeletedAt and the record stays in storage.
package entity

import "time"

// User is the aggregate root. Email is the identity key and is unique
// across all users.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Books     []Book     `json:"libros"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// Book returns the book with the given id, or nil when no such book exists.
// The returned pointer aliases the user's collection so mutations persist
// through the aggregate. Soft-deleted books are still addressable; only the
// read projections filter them out.
func (u *User) Book(id string) *Book {
	for i := range u.Books {
		if u.Books[i].ID == id {
			return &u.Books[i]
		}
	}
	return nil
}

// SoftDelete marks the user as deleted. Calling it again just re-stamps the
// deletion time.
func (u *User) SoftDelete(now time.Time) {
	t := now
	u.DeletedAt = &t
}

// Deleted reports whether the user carries a deletion stamp.
func (u *User) Deleted() bool {
	return u.DeletedAt != nil
}

// Touch stamps the last-update timestamp of the user and of every embedded
// entity. Stores call it on every persistence of the aggregate, mirroring a
// per-record pre-save hook: saving the root re-stamps the whole tree.
func (u *User) Touch(now time.Time) {
	u.UpdatedAt = now
	for i := range u.Books {
		b := &u.Books[i]
		b.UpdatedAt = now
		for j := range b.Accounts {
			a := &b.Accounts[j]
			a.UpdatedAt = now
			for k := range a.Moves {
				a.Moves[k].UpdatedAt = now
			}
		}
		for j := range b.Loans {
			b.Loans[j].UpdatedAt = now
		}
	}
}
