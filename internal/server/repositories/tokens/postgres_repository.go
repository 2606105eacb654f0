package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.TokenRecord) error {
	query := `
		INSERT INTO token_records (token, token_id, subject, issued_at, expires_at, retain_until, revoked)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		rec.Token, rec.TokenID, rec.Subject, rec.IssuedAt, rec.ExpiresAt, rec.RetainUntil).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (*models.TokenRecord, error) {
	query := `
		SELECT id, token, token_id, subject, issued_at, expires_at, retain_until, revoked, revoked_at, revoke_reason
		FROM token_records
		WHERE token = $1
	`
	rec := &models.TokenRecord{}
	var revokedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&rec.ID, &rec.Token, &rec.TokenID, &rec.Subject,
		&rec.IssuedAt, &rec.ExpiresAt, &rec.RetainUntil,
		&rec.Revoked, &revokedAt, &rec.RevokeReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if revokedAt.Valid {
		rec.RevokedAt = &revokedAt.Time
	}
	return rec, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, token string, reason string, at time.Time) (bool, error) {
	query := `
		UPDATE token_records
		SET revoked = TRUE, revoked_at = $2, revoke_reason = $3
		WHERE token = $1 AND NOT revoked
	`
	res, err := r.db.ExecContext(ctx, query, token, at, reason)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) RevokeBySubject(ctx context.Context, subject string, reason string, at time.Time) ([]models.TokenRecord, error) {
	query := `
		UPDATE token_records
		SET revoked = TRUE, revoked_at = $2, revoke_reason = $3
		WHERE subject = $1 AND NOT revoked AND expires_at > $2
		RETURNING token, expires_at
	`
	rows, err := r.db.QueryContext(ctx, query, subject, at, reason)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanTokenExpiry(rows)
}

func (r *PostgresRepository) ListRevokedActive(ctx context.Context, now time.Time) ([]models.TokenRecord, error) {
	query := `
		SELECT token, expires_at
		FROM token_records
		WHERE revoked AND expires_at > $1
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanTokenExpiry(rows)
}

func scanTokenExpiry(rows *sql.Rows) ([]models.TokenRecord, error) {
	defer rows.Close()

	var out []models.TokenRecord
	for rows.Next() {
		var rec models.TokenRecord
		if err := rows.Scan(&rec.Token, &rec.ExpiresAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rec.Revoked = true
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
