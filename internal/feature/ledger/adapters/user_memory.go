package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookkeeping_backend/internal/feature/ledger/domain"
	"bookkeeping_backend/internal/feature/ledger/domain/entity"
	"bookkeeping_backend/internal/feature/ledger/usecase"
)

// userMemory is an in-memory aggregate store. It backs tests and brokers the
// same contract as the gorm store: the unit of work runs against a deep
// copy, so a failing unit of work never leaks a partial mutation.
type userMemory struct {
	mu      sync.Mutex
	byID    map[string]*entity.User
	byEmail map[string]string
}

var _ usecase.UserStore = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory store.
func NewUserMemory() *userMemory {
	return &userMemory{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

// FindByID returns a copy of the aggregate; callers cannot mutate the
// stored state through it.
func (s *userMemory) FindByID(ctx context.Context, uid string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[uid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u)
}

// Mutate applies fn to a deep copy of the aggregate and swaps the copy in
// only when fn succeeds.
func (s *userMemory) Mutate(ctx context.Context, uid string, fn func(u *entity.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[uid]
	if !ok {
		return domain.ErrUserNotFound
	}
	work, err := cloneUser(stored)
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}
	work.Touch(time.Now())
	s.byID[uid] = work
	return nil
}

// Upsert creates the aggregate for email when absent, then applies fn and
// commits like Mutate.
func (s *userMemory) Upsert(ctx context.Context, email string, fn func(u *entity.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid, ok := s.byEmail[email]
	var stored *entity.User
	if ok {
		stored = s.byID[uid]
	} else {
		now := time.Now()
		stored = &entity.User{
			ID:        uuid.New().String(),
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	work, err := cloneUser(stored)
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}
	work.Touch(time.Now())
	s.byID[work.ID] = work
	s.byEmail[email] = work.ID
	return nil
}

// cloneUser deep-copies the aggregate through its JSON form.
func cloneUser(u *entity.User) (*entity.User, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("clone user %s: %w", u.ID, err)
	}
	var out entity.User
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("clone user %s: %w", u.ID, err)
	}
	return &out, nil
}
