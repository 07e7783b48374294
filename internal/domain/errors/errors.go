package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("email and password required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidAmount      = errors.New("points must be a positive amount")
	ErrMerchantOnly       = errors.New("only merchants can add points")
)
