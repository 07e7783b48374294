package model

import domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"

// Role is a closed enumeration fixed at signup.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
)

// ParseRole resolves the signup role input. Empty input defaults to customer;
// anything outside the enumeration is rejected.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case "":
		return RoleCustomer, nil
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleMerchant:
		return RoleMerchant, nil
	default:
		return "", domainErrors.ErrInvalidRole
	}
}
