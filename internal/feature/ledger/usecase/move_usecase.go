package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// MoveInput carries the mutable fields of a move. Validation of required
// fields happens at the transport boundary before the engine is invoked.
type MoveInput struct {
	Name       string
	Amount     decimal.Decimal
	CategoryID string
	ConceptID  string
	TypeID     string
	Date       time.Time
}

// MoveEvent is the audit event emitted after a committed move mutation.
type MoveEvent struct {
	Action    string          `json:"action"`
	UserID    string          `json:"userId"`
	BookID    string          `json:"bookId"`
	AccountID string          `json:"cuentaId"`
	MoveID    string          `json:"moveId"`
	Amount    decimal.Decimal `json:"cantidad"`
	Date      time.Time       `json:"fecha"`
}

// CreateMove appends a new move to the account identified by the
// book/account id chain and returns the account's visible moves.
func (lu *ledgerUsecase) CreateMove(ctx context.Context, uid, bookID, accountID string, in MoveInput) *api.Response {
	var (
		data   []entity.MoveView
		moveID string
	)
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		account := book.Account(accountID)
		if account == nil {
			return domain.ErrAccountNotFound
		}
		move := entity.NewMove(in.Name, in.Amount, in.CategoryID, in.ConceptID, in.TypeID, in.Date, lu.now())
		account.Moves = append(account.Moves, move)
		moveID = move.ID
		data = lu.moveViews(book, account)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgCreateFailed)
	}
	lu.publish(ctx, MoveEvent{Action: "created", UserID: uid, BookID: bookID, AccountID: accountID, MoveID: moveID, Amount: in.Amount, Date: in.Date})
	return lu.success(uid, "Move created", msgCreateFailed, data)
}

// ReadMoves returns the visible moves of one account, or of every account
// of the book when accountID is empty (each move annotated with its own
// account id).
func (lu *ledgerUsecase) ReadMoves(ctx context.Context, uid, bookID, accountID string) *api.Response {
	u, err := lu.store.FindByID(ctx, uid)
	if err != nil {
		return failureFrom(err, msgReadFailed)
	}
	book := u.Book(bookID)
	if book == nil {
		return failureFrom(domain.ErrBookNotFound, msgReadFailed)
	}

	var data []entity.MoveView
	if accountID == "" {
		data = lu.bookMoveViews(book)
	} else {
		account := book.Account(accountID)
		if account == nil {
			return failureFrom(domain.ErrAccountNotFound, msgReadFailed)
		}
		data = lu.moveViews(book, account)
	}
	return lu.success(uid, "Moves retrieved successfully", msgReadFailed, data)
}

// UpdateMove overwrites the mutable fields of the move identified by the
// book/account/move id chain.
func (lu *ledgerUsecase) UpdateMove(ctx context.Context, uid, bookID, accountID, moveID string, in MoveInput) *api.Response {
	var data []entity.MoveView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		account := book.Account(accountID)
		if account == nil {
			return domain.ErrAccountNotFound
		}
		move := account.Move(moveID)
		if move == nil {
			return domain.ErrMoveNotFound
		}
		move.Name = in.Name
		move.Amount = in.Amount
		move.CategoryID = in.CategoryID
		move.ConceptID = in.ConceptID
		move.TypeID = in.TypeID
		move.Date = in.Date
		data = lu.moveViews(book, account)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgUpdateFailed)
	}
	lu.publish(ctx, MoveEvent{Action: "updated", UserID: uid, BookID: bookID, AccountID: accountID, MoveID: moveID, Amount: in.Amount, Date: in.Date})
	return lu.success(uid, "Move updated successfully", msgUpdateFailed, data)
}

// DeleteMove soft-deletes the move identified by the id chain.
func (lu *ledgerUsecase) DeleteMove(ctx context.Context, uid, bookID, accountID, moveID string) *api.Response {
	var data []entity.MoveView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		account := book.Account(accountID)
		if account == nil {
			return domain.ErrAccountNotFound
		}
		move := account.Move(moveID)
		if move == nil {
			return domain.ErrMoveNotFound
		}
		move.SoftDelete(lu.now())
		data = lu.moveViews(book, account)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgDeleteFailed)
	}
	lu.publish(ctx, MoveEvent{Action: "deleted", UserID: uid, BookID: bookID, AccountID: accountID, MoveID: moveID})
	return lu.success(uid, "Move deleted successfully", msgDeleteFailed, data)
}
