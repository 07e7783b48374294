package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/repository"
	pkgAuth "github.com/richicicero94/tessera-fedelt-ifonelab/internal/pkg/auth"
)

// AuthUseCase handles user signup, login and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// newLoyaltyCode returns a fresh opaque customer identifier. Generated once at
// signup and never regenerated.
var newLoyaltyCode = uuid.NewString

// Register creates a new user and returns it together with a session token.
// Customers get a unique loyalty code; merchants never hold one.
func (u *AuthUseCase) Register(ctx context.Context, email, password, rawRole string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrMissingCredentials
	}

	role, err := model.ParseRole(rawRole)
	if err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	var loyaltyCode *string
	if role == model.RoleCustomer {
		code := newLoyaltyCode()
		loyaltyCode = &code
	}

	usr, err := u.users.Create(ctx, email, hash, role, loyaltyCode)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the user with a fresh token.
// Unknown email and wrong password yield the same error on purpose.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken verifies the token and returns its decoded claims.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func (u *AuthUseCase) issueToken(usr *model.User) (string, error) {
	return u.tokens.IssueToken(pkgAuth.Claims{
		UserID: usr.ID,
		Email:  usr.Email,
		Role:   string(usr.Role),
	})
}
