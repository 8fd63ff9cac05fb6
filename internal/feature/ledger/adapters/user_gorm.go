// Package adapters provides the aggregate-store implementations for the
// ledger feature.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
	"bookkeeping_backend/internal/feature/ledger/usecase"
)

// UserModel is the persisted shape of a user aggregate: identity columns
// for lookup plus the whole embedded book tree as one JSON document. The
// nested entities are never stored outside their root.
type UserModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Document  []byte `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// TableName maps the model to the users table.
func (UserModel) TableName() string { return "users" }

// userGorm stores one row per user and runs every mutation as a
// load-modify-save cycle inside a single gorm transaction.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm satisfies the usecase contract.
var _ usecase.UserStore = (*userGorm)(nil)

// NewUserGorm creates a userGorm backed by the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// FindByID loads the full aggregate without writing anything back.
func (r *userGorm) FindByID(ctx context.Context, uid string) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", uid).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return decodeUser(&m)
}

// Mutate runs fn against the loaded aggregate and persists it, all inside
// one transaction. An error from fn rolls the transaction back and is
// returned unchanged, so per-level not-found errors survive to the caller.
func (r *userGorm) Mutate(ctx context.Context, uid string, fn func(u *entity.User) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m UserModel
		if err := tx.Where("id = ?", uid).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		u, err := decodeUser(&m)
		if err != nil {
			return err
		}
		if err := fn(u); err != nil {
			return err
		}
		return saveUser(tx, &m, u)
	})
}

// Upsert loads the aggregate by email, creating it first when absent, then
// applies fn and persists, all inside one transaction.
func (r *userGorm) Upsert(ctx context.Context, email string, fn func(u *entity.User) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m UserModel
		err := tx.Where("email = ?", email).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			now := time.Now()
			m = UserModel{
				ID:        uuid.New().String(),
				Email:     email,
				Document:  []byte("[]"),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}
		u, err := decodeUser(&m)
		if err != nil {
			return err
		}
		if err := fn(u); err != nil {
			return err
		}
		return saveUser(tx, &m, u)
	})
}

// decodeUser rebuilds the aggregate from its identity columns and JSON
// document.
func decodeUser(m *UserModel) (*entity.User, error) {
	u := &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
	if len(m.Document) > 0 {
		if err := json.Unmarshal(m.Document, &u.Books); err != nil {
			return nil, fmt.Errorf("decode user document %s: %w", m.ID, err)
		}
	}
	return u, nil
}

// saveUser stamps the update timestamps across the whole tree and writes
// the aggregate back as one row.
func saveUser(tx *gorm.DB, m *UserModel, u *entity.User) error {
	u.Touch(time.Now())
	doc, err := json.Marshal(u.Books)
	if err != nil {
		return fmt.Errorf("encode user document %s: %w", u.ID, err)
	}
	m.Document = doc
	m.UpdatedAt = u.UpdatedAt
	return tx.Save(m).Error
}
