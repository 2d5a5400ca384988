package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// OTPRepository handles one-time passcode database operations
type OTPRepository struct {
	db *pgxpool.Pool
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{
		db: db,
	}
}

// Upsert replaces any previous code for the email and purpose with a fresh
// one. Only the most recent code is ever valid.
func (r *OTPRepository) Upsert(ctx context.Context, otp *models.OTPCode) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM otp_codes
		WHERE email = $1 AND purpose = $2`,
		otp.Email, otp.Purpose)
	if err != nil {
		return fmt.Errorf("error clearing previous codes: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO otp_codes (email, code_hash, purpose, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		otp.Email, otp.CodeHash, otp.Purpose, otp.ExpiresAt).Scan(&otp.ID)
	if err != nil {
		return fmt.Errorf("error storing code: %w", err)
	}

	return tx.Commit(ctx)
}

// GetLatest retrieves the current unconsumed code for an email and purpose
func (r *OTPRepository) GetLatest(ctx context.Context, email string, purpose models.OTPPurpose) (*models.OTPCode, error) {
	otp := &models.OTPCode{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, code_hash, purpose, expires_at, consumed_at, created_at
		FROM otp_codes
		WHERE email = $1 AND purpose = $2 AND consumed_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`,
		email, purpose).Scan(
		&otp.ID, &otp.Email, &otp.CodeHash, &otp.Purpose,
		&otp.ExpiresAt, &otp.ConsumedAt, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOTPNotFound
		}
		return nil, fmt.Errorf("error fetching code: %w", err)
	}
	return otp, nil
}

// MarkConsumed retires a code after a successful verification
func (r *OTPRepository) MarkConsumed(ctx context.Context, id int64, consumedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE otp_codes
		SET consumed_at = $1
		WHERE id = $2 AND consumed_at IS NULL`,
		consumedAt, id)
	if err != nil {
		return fmt.Errorf("error consuming code: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrOTPNotFound
	}

	return nil
}
