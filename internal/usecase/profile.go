package usecase

import (
	"context"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/repository"
)

// ProfileUseCase exposes the read-only projection of a user's own profile.
type ProfileUseCase struct {
	users repository.UserRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Get fetches the caller's own row. The identity middleware guarantees the id
// belongs to the authenticated caller; no other profile is reachable here.
func (u *ProfileUseCase) Get(ctx context.Context, callerID int64) (*model.User, error) {
	return u.users.GetByID(ctx, callerID)
}
