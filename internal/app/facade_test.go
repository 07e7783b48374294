package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	pkgAuth "github.com/richicicero94/tessera-fedelt-ifonelab/internal/pkg/auth"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/test"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/usecase"
)

func newFacadeForTest(repo *test.UserRepositoryStub, cards CardRenderer) *LoyaltyFacade {
	auth := usecase.NewAuthUseCase(repo, test.HasherStub{}, test.StrategyStub{})
	profile := usecase.NewProfileUseCase(repo)
	ledger := usecase.NewLedgerUseCase(repo)
	return NewLoyaltyFacade(auth, profile, ledger, cards)
}

func TestLoyaltyFacade_SignupLoginProfile(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	facade := newFacadeForTest(repo, test.CardRendererStub{})
	ctx := context.Background()

	created, token, err := facade.Signup(ctx, "a@b.com", "secret", "")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token from signup")
	}

	_, token, err = facade.Login(ctx, "a@b.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token from login")
	}

	got, err := facade.Profile(ctx, created.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got.Email != "a@b.com" {
		t.Fatalf("wrong profile: %+v", got)
	}
}

func TestLoyaltyFacade_ParseToken(t *testing.T) {
	auth := usecase.NewAuthUseCase(test.NewUserRepositoryStub(), test.HasherStub{}, test.StrategyStub{
		ParseFn: func(token string) (*pkgAuth.Claims, error) {
			if token != "good" {
				return nil, pkgAuth.ErrInvalidToken
			}
			return &pkgAuth.Claims{UserID: 3}, nil
		},
	})
	facade := NewLoyaltyFacade(auth, nil, nil, nil)

	claims, err := facade.ParseToken("good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 3 {
		t.Fatalf("wrong claims: %+v", claims)
	}
	if _, err := facade.ParseToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLoyaltyFacade_LoyaltyCard(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	facade := newFacadeForTest(repo, test.CardRendererStub{})
	ctx := context.Background()

	customer, _, err := facade.Signup(ctx, "a@b.com", "secret", "customer")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	png, err := facade.LoyaltyCard(ctx, customer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte("png:" + *customer.LoyaltyCode)
	if !bytes.Equal(png, want) {
		t.Fatalf("card rendered with wrong content: %q", png)
	}
}

func TestLoyaltyFacade_LoyaltyCard_MerchantHasNone(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	facade := newFacadeForTest(repo, test.CardRendererStub{})
	ctx := context.Background()

	merchant, _, err := facade.Signup(ctx, "m@b.com", "secret", "merchant")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err = facade.LoyaltyCard(ctx, merchant.ID)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoyaltyFacade_LoyaltyCard_UnknownUser(t *testing.T) {
	facade := newFacadeForTest(test.NewUserRepositoryStub(), test.CardRendererStub{})

	_, err := facade.LoyaltyCard(context.Background(), 99)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoyaltyFacade_AddPoints(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	facade := newFacadeForTest(repo, test.CardRendererStub{})
	ctx := context.Background()

	customer, _, err := facade.Signup(ctx, "a@b.com", "secret", "customer")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	got, err := facade.AddPoints(ctx, model.RoleMerchant, *customer.LoyaltyCode, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Points != 50 {
		t.Fatalf("expected balance 50, got %d", got.Points)
	}

	if _, err := facade.AddPoints(ctx, model.RoleCustomer, *customer.LoyaltyCode, 50); !errors.Is(err, domainErrors.ErrMerchantOnly) {
		t.Fatalf("expected ErrMerchantOnly, got %v", err)
	}
}
