// Package usecase implements the transactional mutation engine for the
// ledger feature: every create/update/delete resolves the acting user's
// aggregate, walks the containment hierarchy to the target level, applies
// the mutation and persists the whole aggregate inside one transaction.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// UserStore abstracts the aggregate store. Following Go convention the
// interface is defined by the consumer (usecase), not the provider.
type UserStore interface {
	// FindByID loads the full user aggregate without persisting anything,
	// so the touch-on-persist side effect does not fire for pure reads.
	// Returns domain.ErrUserNotFound when the aggregate does not exist.
	FindByID(ctx context.Context, uid string) (*entity.User, error)

	// Mutate loads the aggregate identified by uid, applies fn and persists
	// the whole aggregate, all inside a single transaction. When fn returns
	// an error the transaction is rolled back and the error is returned
	// unchanged. Implementations stamp the update timestamps of the whole
	// tree (entity.User.Touch) before persisting.
	Mutate(ctx context.Context, uid string, fn func(u *entity.User) error) error
}

// TokenIssuer mints the refreshed session token bundled into every
// successful response.
type TokenIssuer interface {
	Issue(uid string) (string, error)
}

// EventPublisher sends best-effort audit events to an external system.
// Publishing never affects the outcome of an operation.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Generic failure messages, one per operation family. Transactional and
// infrastructure faults surface as these, distinct from the per-level
// not-found messages.
const (
	msgCreateFailed = "Create failed"
	msgReadFailed   = "Read failed"
	msgUpdateFailed = "Update failed"
	msgDeleteFailed = "Delete failed"
)

type ledgerUsecase struct {
	store  UserStore
	tokens TokenIssuer
	events EventPublisher
	now    func() time.Time
}

// NewLedgerUsecase wires the mutation engine with its store, token issuer
// and event publisher.
func NewLedgerUsecase(store UserStore, tokens TokenIssuer, events EventPublisher) *ledgerUsecase {
	return &ledgerUsecase{
		store:  store,
		tokens: tokens,
		events: events,
		now:    time.Now,
	}
}

// failure builds a semantic failure envelope. No token is issued for
// failures.
func failure(message string) *api.Response {
	return &api.Response{Success: false, Message: message}
}

// failureFrom maps a unit-of-work error to its user-facing envelope. The
// per-level not-found errors keep their distinct messages; anything else is
// an infrastructure fault, logged and reported with the generic message.
func failureFrom(err error, generic string) *api.Response {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return failure("The user doesn't exist")
	case errors.Is(err, domain.ErrBookNotFound):
		return failure("Book not found")
	case errors.Is(err, domain.ErrAccountNotFound):
		return failure("Account not found")
	case errors.Is(err, domain.ErrLoanNotFound):
		return failure("Loan not found")
	case errors.Is(err, domain.ErrMoveNotFound):
		return failure("Move not found")
	default:
		slog.Error("ledger transaction failed", "error", err)
		return failure(generic)
	}
}

// success bundles the filtered view with a refreshed session token. A
// token-issuance fault degrades to the operation's generic failure.
func (lu *ledgerUsecase) success(uid, message, generic string, data any) *api.Response {
	token, err := lu.tokens.Issue(uid)
	if err != nil {
		slog.Error("session token issuance failed", "error", err, "uid", uid)
		return failure(generic)
	}
	return &api.Response{Success: true, Message: message, Data: data, Token: token}
}

// publish emits an audit event, logging and swallowing any broker fault.
func (lu *ledgerUsecase) publish(ctx context.Context, event any) {
	if lu.events == nil {
		return
	}
	if err := lu.events.Publish(ctx, event); err != nil {
		slog.Warn("audit event publish failed", "error", err)
	}
}
