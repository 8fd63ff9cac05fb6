package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// CreateAccount appends a new account to the given book and returns the
// book's filtered account list.
func (lu *ledgerUsecase) CreateAccount(ctx context.Context, uid, bookID, name string, balance decimal.Decimal) *api.Response {
	var data []entity.AccountView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		book.Accounts = append(book.Accounts, entity.NewAccount(name, balance, lu.now()))
		data = lu.accountViews(book)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgCreateFailed)
	}
	return lu.success(uid, "Account created", msgCreateFailed, data)
}

// ReadAccounts returns the non-deleted accounts of the given book.
func (lu *ledgerUsecase) ReadAccounts(ctx context.Context, uid, bookID string) *api.Response {
	u, err := lu.store.FindByID(ctx, uid)
	if err != nil {
		return failureFrom(err, msgReadFailed)
	}
	book := u.Book(bookID)
	if book == nil {
		return failureFrom(domain.ErrBookNotFound, msgReadFailed)
	}
	return lu.success(uid, "Accounts retrieved successfully", msgReadFailed, lu.accountViews(book))
}

// UpdateAccount overwrites the mutable fields of the account identified by
// the book/account id chain. A wrong account id under a valid book reports
// "Account not found" and leaves the collection untouched.
func (lu *ledgerUsecase) UpdateAccount(ctx context.Context, uid, bookID, accountID, name string, balance decimal.Decimal) *api.Response {
	var data []entity.AccountView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		account := book.Account(accountID)
		if account == nil {
			return domain.ErrAccountNotFound
		}
		account.Name = name
		account.Balance = balance
		data = lu.accountViews(book)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgUpdateFailed)
	}
	return lu.success(uid, "Account updated successfully", msgUpdateFailed, data)
}

// DeleteAccount soft-deletes the account identified by the id chain.
func (lu *ledgerUsecase) DeleteAccount(ctx context.Context, uid, bookID, accountID string) *api.Response {
	var data []entity.AccountView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		account := book.Account(accountID)
		if account == nil {
			return domain.ErrAccountNotFound
		}
		account.SoftDelete(lu.now())
		data = lu.accountViews(book)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgDeleteFailed)
	}
	return lu.success(uid, "Account deleted successfully", msgDeleteFailed, data)
}
