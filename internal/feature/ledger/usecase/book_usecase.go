package usecase

import (
	"context"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// CreateBook appends a new book to the user's collection and returns the
// filtered book list.
func (lu *ledgerUsecase) CreateBook(ctx context.Context, uid, name string) *api.Response {
	var data []entity.BookView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		u.Books = append(u.Books, entity.NewBook(name, lu.now()))
		data = lu.bookViews(u)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgCreateFailed)
	}
	return lu.success(uid, "Book created", msgCreateFailed, data)
}

// ReadBooks returns the user's non-deleted books. Reads never persist.
func (lu *ledgerUsecase) ReadBooks(ctx context.Context, uid string) *api.Response {
	u, err := lu.store.FindByID(ctx, uid)
	if err != nil {
		return failureFrom(err, msgReadFailed)
	}
	return lu.success(uid, "Books retrieved successfully", msgReadFailed, lu.bookViews(u))
}

// UpdateBook renames the book identified by bookID.
func (lu *ledgerUsecase) UpdateBook(ctx context.Context, uid, bookID, name string) *api.Response {
	var data []entity.BookView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		book.Name = name
		data = lu.bookViews(u)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgUpdateFailed)
	}
	return lu.success(uid, "Book updated successfully", msgUpdateFailed, data)
}

// DeleteBook soft-deletes the book identified by bookID. The book stays in
// storage with a deletion stamp; deleting again re-stamps it.
func (lu *ledgerUsecase) DeleteBook(ctx context.Context, uid, bookID string) *api.Response {
	var data []entity.BookView
	err := lu.store.Mutate(ctx, uid, func(u *entity.User) error {
		book := u.Book(bookID)
		if book == nil {
			return domain.ErrBookNotFound
		}
		book.SoftDelete(lu.now())
		data = lu.bookViews(u)
		return nil
	})
	if err != nil {
		return failureFrom(err, msgDeleteFailed)
	}
	return lu.success(uid, "Book deleted successfully", msgDeleteFailed, data)
}
