package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// TestUser_Book_FindsSoftDeleted verifies lookups address soft-deleted books
// too; only the read projections hide them.
func TestUser_Book_FindsSoftDeleted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	u := &User{ID: "u1", Email: "u@example.com"}
	u.Books = append(u.Books, NewBook("groceries", now))
	bookID := u.Books[0].ID
	u.Books[0].SoftDelete(now)

	got := u.Book(bookID)
	if got == nil {
		t.Fatal("expected soft-deleted book to be addressable")
	}
	if !got.Deleted() {
		t.Error("expected book to carry its deletion stamp")
	}
}

// TestUser_Book_ReturnsAliasingPointer verifies mutations through the looked
// up pointer persist in the aggregate.
func TestUser_Book_ReturnsAliasingPointer(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	u := &User{ID: "u1"}
	u.Books = append(u.Books, NewBook("old name", now))

	u.Book(u.Books[0].ID).Name = "new name"

	if u.Books[0].Name != "new name" {
		t.Errorf("expected rename to persist through the aggregate, got %q", u.Books[0].Name)
	}
}

// TestUser_Book_Missing verifies nil is returned for an unknown id.
func TestUser_Book_Missing(t *testing.T) {
	t.Parallel()

	u := &User{ID: "u1"}
	if u.Book("nope") != nil {
		t.Error("expected nil for unknown book id")
	}
}

// TestSoftDelete_Restamps verifies a repeat soft delete updates the deletion
// time instead of failing or keeping the first stamp.
func TestSoftDelete_Restamps(t *testing.T) {
	t.Parallel()

	first := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	b := NewBook("twice deleted", first)
	b.SoftDelete(first)
	if b.DeletedAt == nil || !b.DeletedAt.Equal(first) {
		t.Fatalf("expected first deletion stamp %v, got %v", first, b.DeletedAt)
	}

	b.SoftDelete(second)
	if b.DeletedAt == nil || !b.DeletedAt.Equal(second) {
		t.Errorf("expected re-stamped deletion time %v, got %v", second, b.DeletedAt)
	}
}

// TestUser_Touch_CascadesOverTree verifies Touch stamps every embedded
// entity, matching the save-the-root-restamps-everything persistence model.
func TestUser_Touch_CascadesOverTree(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	touched := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)

	book := NewBook("b", created)
	account := NewAccount("a", decimal.NewFromInt(100), created)
	account.Moves = append(account.Moves, NewMove("m", decimal.NewFromInt(5), "c1", "co1", "t1", created, created))
	book.Accounts = append(book.Accounts, account)
	book.Loans = append(book.Loans, NewLoan("l", decimal.NewFromInt(900), "", created, created.AddDate(1, 0, 0), "t1", created))

	u := &User{ID: "u1", Books: []Book{book}, CreatedAt: created, UpdatedAt: created}
	u.Touch(touched)

	if !u.UpdatedAt.Equal(touched) {
		t.Errorf("user UpdatedAt = %v, want %v", u.UpdatedAt, touched)
	}
	if !u.Books[0].UpdatedAt.Equal(touched) {
		t.Errorf("book UpdatedAt = %v, want %v", u.Books[0].UpdatedAt, touched)
	}
	if !u.Books[0].Accounts[0].UpdatedAt.Equal(touched) {
		t.Errorf("account UpdatedAt = %v, want %v", u.Books[0].Accounts[0].UpdatedAt, touched)
	}
	if !u.Books[0].Accounts[0].Moves[0].UpdatedAt.Equal(touched) {
		t.Errorf("move UpdatedAt = %v, want %v", u.Books[0].Accounts[0].Moves[0].UpdatedAt, touched)
	}
	if !u.Books[0].Loans[0].UpdatedAt.Equal(touched) {
		t.Errorf("loan UpdatedAt = %v, want %v", u.Books[0].Loans[0].UpdatedAt, touched)
	}
	// Creation timestamps stay put
	if !u.Books[0].CreatedAt.Equal(created) {
		t.Errorf("book CreatedAt changed to %v", u.Books[0].CreatedAt)
	}
}

// TestBook_View_OmitsChildren verifies the book projection carries no
// embedded accounts or loans and exposes the id as uid.
func TestBook_View_OmitsChildren(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	b := NewBook("travel", now)
	b.Accounts = append(b.Accounts, NewAccount("cash", decimal.NewFromInt(50), now))

	v := b.View()
	if v.UID != b.ID {
		t.Errorf("expected uid %q, got %q", b.ID, v.UID)
	}
	if v.Name != "travel" {
		t.Errorf("expected name %q, got %q", "travel", v.Name)
	}
}

// TestAccount_View_AnnotatesBookID verifies the account projection carries
// the owning book id.
func TestAccount_View_AnnotatesBookID(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := NewAccount("savings", decimal.NewFromInt(100), now)

	v := a.View("book-9")
	if v.BookID != "book-9" {
		t.Errorf("expected bookId %q, got %q", "book-9", v.BookID)
	}
	if !v.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance 100, got %s", v.Balance)
	}
}
