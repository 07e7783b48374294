package test

import (
	"context"
	"time"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	ByCode  map[string]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		ByCode:  make(map[string]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is taken or the stub has an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.Role, loyaltyCode *string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           s.Next,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		LoyaltyCode:  loyaltyCode,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	if loyaltyCode != nil {
		if _, exists := s.ByCode[*loyaltyCode]; exists {
			return nil, domainErrors.ErrAlreadyExists
		}
		s.ByCode[*loyaltyCode] = user
	}
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddPoints applies the delta to the user holding the loyalty code and returns
// the updated row, mirroring the storage layer's atomic update.
func (s *UserRepositoryStub) AddPoints(ctx context.Context, loyaltyCode string, delta int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByCode[loyaltyCode]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Points += delta
	return user, nil
}
