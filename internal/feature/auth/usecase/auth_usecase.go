// Package usecase implements the sign-in flow: verify the Google ID token,
// upsert the user aggregate by email, guarantee the default book, and mint
// a session token.
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

// DefaultBookName is the name of the book created on first sign-in.
const DefaultBookName = "My first book"

// IdentityVerifier validates an external identity-provider token and
// resolves the identity it asserts. Consumer-defined, satisfied by the
// googleauth platform package.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (email, name, picture string, err error)
}

// UserStore abstracts the aggregate store for the sign-in flow.
type UserStore interface {
	// Upsert loads the aggregate by email, creating it when absent, applies
	// fn and persists inside one transaction.
	Upsert(ctx context.Context, email string, fn func(u *entity.User) error) error

	// FindByID loads the aggregate without persisting anything.
	FindByID(ctx context.Context, uid string) (*entity.User, error)
}

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Issue(uid string) (string, error)
}

// Throttle caps the rate of outbound identity-provider calls.
type Throttle interface {
	WaitIfNeeded()
}

// LoginData is the payload of a successful sign-in.
type LoginData struct {
	Email string            `json:"email"`
	Name  string            `json:"name"`
	UID   string            `json:"uid"`
	Books []entity.BookView `json:"libros"`
}

// RenewData is the payload of a successful token renewal.
type RenewData struct {
	Email string            `json:"email"`
	Books []entity.BookView `json:"libros"`
}

type authUsecase struct {
	store    UserStore
	verifier IdentityVerifier
	tokens   TokenIssuer
	throttle Throttle
	now      func() time.Time
}

// NewAuthUsecase wires the sign-in flow with its dependencies.
func NewAuthUsecase(store UserStore, verifier IdentityVerifier, tokens TokenIssuer, throttle Throttle) *authUsecase {
	return &authUsecase{
		store:    store,
		verifier: verifier,
		tokens:   tokens,
		throttle: throttle,
		now:      time.Now,
	}
}

// Login verifies the Google ID token and signs the user in, creating the
// aggregate and the default book as needed. A user always leaves this flow
// with at least one non-deleted book.
func (au *authUsecase) Login(ctx context.Context, rawToken string) *api.Response {
	if au.throttle != nil {
		au.throttle.WaitIfNeeded()
	}

	email, name, _, err := au.verifier.Verify(ctx, rawToken)
	if err != nil {
		slog.Warn("google id token rejected", "error", err)
		return &api.Response{Success: false, Message: "The user hasn't a valid google account"}
	}

	var data LoginData
	err = au.store.Upsert(ctx, email, func(u *entity.User) error {
		if len(activeBooks(u)) == 0 {
			u.Books = append(u.Books, entity.NewBook(DefaultBookName, au.now()))
		}
		data = LoginData{Email: u.Email, Name: name, UID: u.ID, Books: activeBooks(u)}
		return nil
	})
	if err != nil {
		slog.Error("login transaction failed", "error", err, "email", email)
		return &api.Response{Success: false, Message: "Login unsuccessful"}
	}

	token, err := au.tokens.Issue(data.UID)
	if err != nil {
		slog.Error("session token issuance failed", "error", err, "uid", data.UID)
		return &api.Response{Success: false, Message: "Login unsuccessful"}
	}

	slog.Info("user login successful", "email", email, "uid", data.UID)
	return &api.Response{Success: true, Message: "Login successful", Data: data, Token: token}
}

// Renew re-issues a session token for an already authenticated user and
// returns the current filtered book list. Renewal never persists.
func (au *authUsecase) Renew(ctx context.Context, uid string) *api.Response {
	u, err := au.store.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &api.Response{Success: false, Message: "User not found"}
		}
		slog.Error("token renewal failed", "error", err, "uid", uid)
		return &api.Response{Success: false, Message: "Token renewal failed"}
	}

	token, err := au.tokens.Issue(uid)
	if err != nil {
		slog.Error("session token issuance failed", "error", err, "uid", uid)
		return &api.Response{Success: false, Message: "Token renewal failed"}
	}

	data := RenewData{Email: u.Email, Books: activeBooks(u)}
	return &api.Response{Success: true, Message: "Token renewed", Data: data, Token: token}
}

// activeBooks projects the user's non-deleted books.
func activeBooks(u *entity.User) []entity.BookView {
	views := []entity.BookView{}
	for i := range u.Books {
		if u.Books[i].Deleted() {
			continue
		}
		views = append(views, u.Books[i].View())
	}
	return views
}
