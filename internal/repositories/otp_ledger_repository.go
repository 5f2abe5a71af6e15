// internal/repositories/otp_ledger_repository.go
package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/Sandeshj458/JobPortal/internal/models"
)

// OtpLedgerRepository persists the per-(email, purpose) OTP slots. A
// "ledger entry" for an email is the group of its slot rows; the entry
// exists as soon as any purpose has been requested once.
type OtpLedgerRepository interface {
	GetSlot(ctx context.Context, email string, purpose models.OtpPurpose) (*models.OtpSlot, error)
	// UpsertSlot writes the full slot state (code, issuance time, counters).
	// Last writer wins under concurrency.
	UpsertSlot(ctx context.Context, slot *models.OtpSlot) error
	// ClearCode nulls the code/issued_at pair, leaving the request counters
	// and the other purposes' slots untouched.
	ClearCode(ctx context.Context, email string, purpose models.OtpPurpose) error
	HasEntry(ctx context.Context, email string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
	// CleanupStale removes slot rows idle longer than maxIdle.
	CleanupStale(ctx context.Context, maxIdle time.Duration) (int64, error)
}

type otpLedgerRepo struct {
	db DB
}

func NewOtpLedgerRepository(db DB) OtpLedgerRepository {
	return &otpLedgerRepo{db: db}
}

func (r *otpLedgerRepo) GetSlot(ctx context.Context, email string, purpose models.OtpPurpose) (*models.OtpSlot, error) {
	q := `
        SELECT email, purpose, code, issued_at, request_count, last_request_at
        FROM otp_slots
        WHERE email = $1 AND purpose = $2
    `
	row := r.db.QueryRow(ctx, q, email, purpose)
	var s models.OtpSlot
	err := row.Scan(
		&s.Email,
		&s.Purpose,
		&s.Code,
		&s.IssuedAt,
		&s.RequestCount,
		&s.LastRequestAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *otpLedgerRepo) UpsertSlot(ctx context.Context, slot *models.OtpSlot) error {
	q := `
        INSERT INTO otp_slots (email, purpose, code, issued_at, request_count, last_request_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (email, purpose) DO UPDATE
        SET code            = EXCLUDED.code,
            issued_at       = EXCLUDED.issued_at,
            request_count   = EXCLUDED.request_count,
            last_request_at = EXCLUDED.last_request_at
    `
	_, err := r.db.Exec(ctx, q,
		slot.Email, slot.Purpose, slot.Code, slot.IssuedAt,
		slot.RequestCount, slot.LastRequestAt,
	)
	return err
}

func (r *otpLedgerRepo) ClearCode(ctx context.Context, email string, purpose models.OtpPurpose) error {
	q := `
        UPDATE otp_slots
        SET code = NULL, issued_at = NULL
        WHERE email = $1 AND purpose = $2
    `
	_, err := r.db.Exec(ctx, q, email, purpose)
	return err
}

func (r *otpLedgerRepo) HasEntry(ctx context.Context, email string) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT 1 FROM otp_slots WHERE email = $1 LIMIT 1`, email)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *otpLedgerRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otp_slots WHERE email = $1`, email)
	return err
}

func (r *otpLedgerRepo) CleanupStale(ctx context.Context, maxIdle time.Duration) (int64, error) {
	q := `DELETE FROM otp_slots WHERE last_request_at < NOW() - $1::interval`
	tag, err := r.db.Exec(ctx, q, maxIdle)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
