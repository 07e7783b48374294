package usecase

import (
	"context"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/repository"
)

// LedgerUseCase credits loyalty points. It is the only mutation point for the
// points balance in the whole system.
type LedgerUseCase struct {
	users repository.UserRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(users repository.UserRepository) *LedgerUseCase {
	return &LedgerUseCase{users: users}
}

// AddPoints credits points to the customer identified by the loyalty code and
// returns the row as it stands after the credit. Only merchants may call this;
// non-positive deltas are rejected so the balance can never decrease.
func (u *LedgerUseCase) AddPoints(ctx context.Context, callerRole model.Role, loyaltyCode string, points int64) (*model.User, error) {
	if callerRole != model.RoleMerchant {
		return nil, domainErrors.ErrMerchantOnly
	}
	if points <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if loyaltyCode == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.users.AddPoints(ctx, loyaltyCode, points)
}
