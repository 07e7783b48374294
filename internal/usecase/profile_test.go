package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/test"
)

func TestProfileUseCase_Get(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	code := "code-1"
	usr, err := repo.Create(context.Background(), "a@b.com", "hash", model.RoleCustomer, &code)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	uc := NewProfileUseCase(repo)
	got, err := uc.Get(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "a@b.com" || got.LoyaltyCode == nil || *got.LoyaltyCode != "code-1" {
		t.Fatalf("wrong profile: %+v", got)
	}
}

func TestProfileUseCase_Get_NotFound(t *testing.T) {
	uc := NewProfileUseCase(test.NewUserRepositoryStub())

	_, err := uc.Get(context.Background(), 42)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
