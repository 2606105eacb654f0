// Package tokens declares the token record store contract: the durable
// audit and trust table of every issued session token.
package tokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Repository persists TokenRecords. Records are never deleted; the only
// mutation is the one-way revoked flag.
type Repository interface {
	// Create stores rec and fills its ID.
	Create(ctx context.Context, rec *models.TokenRecord) error

	// FindByToken returns common.ErrorNotFound when no record holds token.
	FindByToken(ctx context.Context, token string) (*models.TokenRecord, error)

	// Revoke marks the record holding token as revoked. It reports whether
	// a not-yet-revoked record was updated.
	Revoke(ctx context.Context, token string, reason string, at time.Time) (bool, error)

	// RevokeBySubject revokes every unrevoked, unexpired record of subject
	// and returns the token and expiry of each one it changed.
	RevokeBySubject(ctx context.Context, subject string, reason string, at time.Time) ([]models.TokenRecord, error)

	// ListRevokedActive returns token and expiry of revoked records whose
	// signed expiry is still after now.
	ListRevokedActive(ctx context.Context, now time.Time) ([]models.TokenRecord, error)
}
