package repository

import (
	"context"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.Role, loyaltyCode *string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// AddPoints applies the delta as a single atomic statement keyed by the
	// loyalty code and returns the row as it stands after the update.
	AddPoints(ctx context.Context, loyaltyCode string, delta int64) (*model.User, error)
}
