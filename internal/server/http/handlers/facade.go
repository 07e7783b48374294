package handlers

import (
	"context"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	pkgAuth "github.com/richicicero94/tessera-fedelt-ifonelab/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, email, password, role string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// ProfileFacade exposes the caller's own profile and loyalty card.
type ProfileFacade interface {
	Profile(ctx context.Context, callerID int64) (*model.User, error)
	LoyaltyCard(ctx context.Context, callerID int64) ([]byte, error)
}

// LedgerFacade credits loyalty points.
type LedgerFacade interface {
	AddPoints(ctx context.Context, callerRole model.Role, loyaltyCode string, points int64) (*model.User, error)
}

// HealthFacade reports storage connectivity.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// LoyaltyFacade aggregates the full set of operations used across handlers.
type LoyaltyFacade interface {
	AuthFacade
	ProfileFacade
	LedgerFacade
}
