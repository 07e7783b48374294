package auth

import "time"

// Claims is the identity a session token proves: who the caller is and which
// role they act under.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

// Strategy issues and verifies self-contained session tokens.
type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
