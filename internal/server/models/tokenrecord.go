package models

import "time"

// Reasons recorded when a token record is revoked.
const (
	RevokeReasonLogout      = "logout"
	RevokeReasonUserDeleted = "user_deleted"
)

// TokenRecord is the durable audit record of one issued token. Subject is
// the owner's username, kept as a plain reference so records outlive the
// account. Revoked only ever moves from false to true.
type TokenRecord struct {
	ID           int64
	Token        string
	TokenID      string
	Subject      string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	RetainUntil  time.Time
	Revoked      bool
	RevokedAt    *time.Time
	RevokeReason string
}

// Active reports whether the record still governs a usable token at now.
func (r *TokenRecord) Active(now time.Time) bool {
	return !r.Revoked && now.Before(r.ExpiresAt)
}
