package usecase

import (
	"time"

	"bookkeeping_backend/internal/feature/ledger/domain/entity"
)

// Visibility filtering for response projections. Two predicates compose:
// not-deleted (every entity) and a current-period window (moves and loans
// only), evaluated against the clock at response-construction time.
//
// The window semantics differ on purpose: a move is visible iff its date
// falls in the current month AND year (exact match), while a loan is
// visible iff its end date's month >= current month and year >= current
// year, compared component-wise. The asymmetry reproduces the observed
// product behavior; do not unify without product sign-off.

// inCurrentMonth reports whether d falls in the same calendar month and
// year as now. A date in the same month number of another year fails.
func inCurrentMonth(d, now time.Time) bool {
	return d.Month() == now.Month() && d.Year() == now.Year()
}

// stillRunning reports whether a loan ending at end is visible at now.
// Month and year are compared independently, not as a combined date.
func stillRunning(end, now time.Time) bool {
	return end.Month() >= now.Month() && end.Year() >= now.Year()
}

func (lu *ledgerUsecase) bookViews(u *entity.User) []entity.BookView {
	views := []entity.BookView{}
	for i := range u.Books {
		if u.Books[i].Deleted() {
			continue
		}
		views = append(views, u.Books[i].View())
	}
	return views
}

func (lu *ledgerUsecase) accountViews(b *entity.Book) []entity.AccountView {
	views := []entity.AccountView{}
	for i := range b.Accounts {
		if b.Accounts[i].Deleted() {
			continue
		}
		views = append(views, b.Accounts[i].View(b.ID))
	}
	return views
}

func (lu *ledgerUsecase) moveViews(b *entity.Book, a *entity.Account) []entity.MoveView {
	now := lu.now()
	views := []entity.MoveView{}
	for i := range a.Moves {
		m := &a.Moves[i]
		if m.Deleted() || !inCurrentMonth(m.Date, now) {
			continue
		}
		views = append(views, m.View(b.ID, a.ID))
	}
	return views
}

// bookMoveViews flattens the visible moves of every account of the book,
// each annotated with its own account id.
func (lu *ledgerUsecase) bookMoveViews(b *entity.Book) []entity.MoveView {
	views := []entity.MoveView{}
	for i := range b.Accounts {
		views = append(views, lu.moveViews(b, &b.Accounts[i])...)
	}
	return views
}

func (lu *ledgerUsecase) loanViews(b *entity.Book) []entity.LoanView {
	now := lu.now()
	views := []entity.LoanView{}
	for i := range b.Loans {
		l := &b.Loans[i]
		if l.Deleted() || !stillRunning(l.EndDate, now) {
			continue
		}
		views = append(views, l.View(b.ID))
	}
	return views
}
