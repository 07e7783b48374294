package model

import "time"

// User represents a participant of the loyalty program. Customers carry a
// loyalty code and accrue points; merchants credit points to customers.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	LoyaltyCode  *string
	Points       int64
	CreatedAt    time.Time
}
