package test

import (
	"context"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
)

// ProfileFacadeStub provides controllable behaviour for profile endpoints.
type ProfileFacadeStub struct {
	ProfileFn func(context.Context, int64) (*model.User, error)
	CardFn    func(context.Context, int64) ([]byte, error)
}

// Profile delegates to the provided function or returns a default customer.
func (s ProfileFacadeStub) Profile(ctx context.Context, callerID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, callerID)
	}
	code := "stub-code"
	return &model.User{ID: callerID, Email: "stub@x.com", Role: model.RoleCustomer, LoyaltyCode: &code}, nil
}

// LoyaltyCard returns configured PNG bytes.
func (s ProfileFacadeStub) LoyaltyCard(ctx context.Context, callerID int64) ([]byte, error) {
	if s.CardFn != nil {
		return s.CardFn(ctx, callerID)
	}
	return []byte("png"), nil
}

// LedgerFacadeStub simulates point crediting.
type LedgerFacadeStub struct {
	AddPointsFn func(context.Context, model.Role, string, int64) (*model.User, error)
}

// AddPoints executes the configured handler or credits a default customer.
func (s LedgerFacadeStub) AddPoints(ctx context.Context, callerRole model.Role, loyaltyCode string, points int64) (*model.User, error) {
	if s.AddPointsFn != nil {
		return s.AddPointsFn(ctx, callerRole, loyaltyCode, points)
	}
	return &model.User{ID: 2, Email: "customer@x.com", Role: model.RoleCustomer, LoyaltyCode: &loyaltyCode, Points: points}, nil
}

// HealthFacadeStub reports configured storage health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// LoyaltyFacadeStub aggregates facade dependencies for HTTP layer tests.
type LoyaltyFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	LedgerFacadeStub
}

// CardRendererStub renders deterministic card images.
type CardRendererStub struct {
	RenderFn func(string) ([]byte, error)
}

// Render returns configured bytes or a marker payload.
func (s CardRendererStub) Render(content string) ([]byte, error) {
	if s.RenderFn != nil {
		return s.RenderFn(content)
	}
	return []byte("png:" + content), nil
}
