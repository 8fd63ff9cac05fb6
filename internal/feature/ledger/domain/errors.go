// Package domain defines domain-level errors for the ledger feature.
package domain

import "errors"

// Not-found errors, one per level of the containment hierarchy. Callers
// report them as distinct user-facing messages, so a wrong book id and a
// wrong account id under a valid book must stay distinguishable.
var (
	// ErrUserNotFound indicates the acting user's aggregate does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookNotFound indicates the book id does not resolve inside the user.
	ErrBookNotFound = errors.New("book not found")

	// ErrAccountNotFound indicates the account id does not resolve inside the book.
	ErrAccountNotFound = errors.New("account not found")

	// ErrLoanNotFound indicates the loan id does not resolve inside the book.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrMoveNotFound indicates the move id does not resolve inside the account.
	ErrMoveNotFound = errors.New("move not found")
)
