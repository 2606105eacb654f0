// Package services contains server-side business logic. TokenService owns
// the session token lifecycle: issuing, validating, revoking and rebuilding
// the revocation registry from the durable token record store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/revocation"
)

type TokenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	signer      *auth.Signer
	registry    *revocation.Registry
	validity    time.Duration
	retention   time.Duration
	now         func() time.Time
	logger      logging.Logger
	metrics     *metrics.Metrics
}

// NewTokenService wires a TokenService. m may be nil.
func NewTokenService(db *sql.DB, rm repomanager.RepositoryManager, signer *auth.Signer,
	registry *revocation.Registry, cfg *config.Config, l logging.Logger, m *metrics.Metrics) *TokenService {
	return &TokenService{
		db:          db,
		repomanager: rm,
		signer:      signer,
		registry:    registry,
		validity:    cfg.AccessTokenValidityDuration,
		retention:   cfg.TokenRecordRetention,
		now:         time.Now,
		logger:      l.With("module", "token_service"),
		metrics:     m,
	}
}

// WithClock sets the time source for issuance and for the signer's expiry check.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	s.signer.WithClock(now)
	return s
}

// Issue signs a token for user and persists its TokenRecord. The token is
// only returned once the record is stored; a store failure yields
// common.ErrStoreUnavailable.
func (s *TokenService) Issue(ctx context.Context, user *models.User) (string, error) {
	now := s.now()
	token, claims, err := s.signer.Sign(user.UserName, user.Role, now, now.Add(s.validity))
	if err != nil {
		s.logger.Error(ctx, "signing token failed", "error", err)
		return "", common.ErrorInternal
	}

	rec := &models.TokenRecord{
		Token:       token,
		TokenID:     claims.ID,
		Subject:     user.UserName,
		IssuedAt:    claims.IssuedAt.Time,
		ExpiresAt:   claims.ExpiresAt.Time,
		RetainUntil: now.Add(s.retention),
	}
	if err := s.repomanager.Tokens(s.db).Create(ctx, rec); err != nil {
		s.logger.Error(ctx, "persisting token record failed", "subject", user.UserName, "error", err)
		return "", common.ErrStoreUnavailable
	}

	s.metrics.TokenIssued()
	s.logger.Info(ctx, "token issued", "subject", user.UserName, "jti", claims.ID)
	return token, nil
}

// Validate checks signature and expiry, then the revocation registry.
// It never mutates state.
func (s *TokenService) Validate(token string) (*auth.Claims, error) {
	claims, outcome, err := s.validate(token)
	s.metrics.Validation(outcome)
	return claims, err
}

// ValidateFor is Validate plus an exact, case-sensitive subject match.
func (s *TokenService) ValidateFor(token, expectedSubject string) error {
	claims, outcome, err := s.validate(token)
	if err == nil && claims.Subject != expectedSubject {
		outcome, err = metrics.OutcomeMismatch, common.ErrSubjectMismatch
	}
	s.metrics.Validation(outcome)
	return err
}

// validate returns the claims and the outcome label without recording it,
// so each call is counted once.
func (s *TokenService) validate(token string) (*auth.Claims, string, error) {
	claims, err := s.signer.Parse(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, metrics.OutcomeExpired, err
		}
		return nil, metrics.OutcomeInvalid, err
	}

	if s.registry.IsRevoked(token) {
		return nil, metrics.OutcomeRevoked, common.ErrTokenRevoked
	}

	return claims, metrics.OutcomeOK, nil
}

// IsBlacklisted reports whether token has been revoked in this process.
func (s *TokenService) IsBlacklisted(token string) bool {
	return s.registry.IsRevoked(token)
}

// Logout revokes the token carried by an authorization header value, given
// either as "Bearer <token>" or as the bare token. The durable record is
// marked revoked first; the registry is only touched once that succeeded.
// A token with no record is still added when its signature verifies,
// expired or not. Strings that neither verify nor match a record never
// reach the registry.
func (s *TokenService) Logout(ctx context.Context, header string) error {
	token, err := ExtractBearer(header)
	if err != nil {
		return err
	}

	now := s.now()
	updated, err := s.repomanager.Tokens(s.db).Revoke(ctx, token, models.RevokeReasonLogout, now)
	if err != nil {
		s.logger.Error(ctx, "revoking token record failed", "error", err)
		return common.ErrStoreUnavailable
	}

	exp, verified := s.signer.Expiry(token)
	if !verified && !updated {
		s.logger.Debug(ctx, "logout of unverifiable token ignored")
		return nil
	}

	s.registry.Revoke(token, s.registryExpiry(exp, verified, now))
	s.metrics.Revoked(models.RevokeReasonLogout, 1)
	s.logger.Info(ctx, "token revoked", "reason", models.RevokeReasonLogout, "known", updated)
	return nil
}

// Blacklist adds already-revoked records to the registry.
func (s *TokenService) Blacklist(ctx context.Context, recs []models.TokenRecord, reason string) {
	for _, r := range recs {
		s.registry.Revoke(r.Token, r.ExpiresAt)
	}
	s.metrics.Revoked(reason, len(recs))
	if len(recs) > 0 {
		s.logger.Info(ctx, "tokens revoked", "reason", reason, "count", len(recs))
	}
}

// Restore loads every revoked, unexpired record into the registry and
// returns how many were loaded. It runs once before serving.
func (s *TokenService) Restore(ctx context.Context) (int, error) {
	recs, err := s.repomanager.Tokens(s.db).ListRevokedActive(ctx, s.now())
	if err != nil {
		return 0, err
	}
	for _, r := range recs {
		s.registry.Revoke(r.Token, r.ExpiresAt)
	}
	s.logger.Info(ctx, "revocation registry restored", "entries", len(recs))
	return len(recs), nil
}

// registryExpiry bounds how long an entry is kept. A token issued now
// never outlives now+validity, so a larger or unknown exp is clamped to it.
func (s *TokenService) registryExpiry(exp time.Time, ok bool, now time.Time) time.Time {
	limit := now.Add(s.validity)
	if !ok || exp.After(limit) {
		return limit
	}
	return exp
}

// ExtractBearer returns the token from an authorization header value. The
// "Bearer" scheme is optional and matched case-insensitively; a blank value
// yields common.ErrMalformedHeader.
func ExtractBearer(header string) (string, error) {
	v := strings.TrimSpace(header)
	if strings.EqualFold(v, strings.TrimSpace(common.BearerPrefix)) {
		return "", common.ErrMalformedHeader
	}
	if len(v) >= len(common.BearerPrefix) && strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
		v = strings.TrimSpace(v[len(common.BearerPrefix):])
	}
	if v == "" || strings.ContainsAny(v, " \t") {
		return "", common.ErrMalformedHeader
	}
	return v, nil
}
