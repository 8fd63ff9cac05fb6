package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// LoanInput carries the mutable fields of a loan. AccountID is the weak
// account reference and may be empty.
type LoanInput struct {
	Name      string
	Amount    decimal.Decimal
	AccountID string
	StartDate time.Time
	EndDate   time.Time
	TypeID    string
}

// CreateLoan appends a new loan to the given book and returns the book's
// visible loans.
func (lu *ledgerUsecase) CreateLoan(ctx context.Context, uid, bookID string, in LoanInput) *api.Response {
	var data []entity.LoanView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		book.Loans = append(book.Loans, entity.NewLoan(in.Name, in.Amount, in.AccountID, in.StartDate, in.EndDate, in.TypeID, lu.now()))
		data = lu.loanViews(book)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgCreateFailed)
	}
	return lu.success(uid, "Loan created", msgCreateFailed, data)
}

// ReadLoans returns the visible loans of the given book.
func (lu *ledgerUsecase) ReadLoans(ctx context.Context, uid, bookID string) *api.Response {
	u, err := lu.store.FindByID(ctx, uid)
	if err != nil {
		return failureFrom(err, msgReadFailed)
	}
	book := u.Book(bookID)
	if book == nil {
		return failureFrom(domain.ErrBookNotFound, msgReadFailed)
	}
	return lu.success(uid, "Loans retrieved successfully", msgReadFailed, lu.loanViews(book))
}

// UpdateLoan overwrites the mutable fields of the loan identified by the
// book/loan id chain.
func (lu *ledgerUsecase) UpdateLoan(ctx context.Context, uid, bookID, loanID string, in LoanInput) *api.Response {
	var data []entity.LoanView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		loan := book.Loan(loanID)
		if loan == nil {
			return domain.ErrLoanNotFound
		}
		loan.Name = in.Name
		loan.Amount = in.Amount
		loan.AccountID = in.AccountID
		loan.StartDate = in.StartDate
		loan.EndDate = in.EndDate
		loan.TypeID = in.TypeID
		data = lu.loanViews(book)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgUpdateFailed)
	}
	return lu.success(uid, "Loan updated successfully", msgUpdateFailed, data)
}

// DeleteLoan soft-deletes the loan identified by the id chain, stamping the
// current time.
func (lu *ledgerUsecase) DeleteLoan(ctx context.Context, uid, bookID, loanID string) *api.Response {
	var data []entity.LoanView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		loan := book.Loan(loanID)
		if loan == nil {
			return domain.ErrLoanNotFound
		}
		loan.SoftDelete(lu.now())
		data = lu.loanViews(book)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgDeleteFailed)
	}
	return lu.success(uid, "Loan deleted successfully", msgDeleteFailed, data)
}
