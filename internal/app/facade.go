package app

import (
	"context"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	pkgAuth "github.com/richicicero94/tessera-fedelt-ifonelab/internal/pkg/auth"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/usecase"
)

// CardRenderer turns a loyalty code into a scannable image.
type CardRenderer interface {
	Render(content string) ([]byte, error)
}

// LoyaltyFacade aggregates the use cases behind a single surface the HTTP
// layer depends on.
type LoyaltyFacade struct {
	auth    *usecase.AuthUseCase
	profile *usecase.ProfileUseCase
	ledger  *usecase.LedgerUseCase
	cards   CardRenderer
}

func NewLoyaltyFacade(auth *usecase.AuthUseCase, profile *usecase.ProfileUseCase, ledger *usecase.LedgerUseCase, cards CardRenderer) *LoyaltyFacade {
	return &LoyaltyFacade{auth: auth, profile: profile, ledger: ledger, cards: cards}
}

func (f *LoyaltyFacade) Signup(ctx context.Context, email, password, role string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, role)
}

func (f *LoyaltyFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *LoyaltyFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *LoyaltyFacade) Profile(ctx context.Context, callerID int64) (*model.User, error) {
	return f.profile.Get(ctx, callerID)
}

// LoyaltyCard renders the caller's loyalty code as a PNG. Merchants hold no
// code, so for them the card does not exist.
func (f *LoyaltyFacade) LoyaltyCard(ctx context.Context, callerID int64) ([]byte, error) {
	usr, err := f.profile.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if usr.LoyaltyCode == nil {
		return nil, domainErrors.ErrNotFound
	}
	return f.cards.Render(*usr.LoyaltyCode)
}

func (f *LoyaltyFacade) AddPoints(ctx context.Context, callerRole model.Role, loyaltyCode string, points int64) (*model.User, error) {
	return f.ledger.AddPoints(ctx, callerRole, loyaltyCode, points)
}
