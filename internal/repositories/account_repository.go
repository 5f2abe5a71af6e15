// internal/repositories/account_repository.go
package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Sandeshj458/JobPortal/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type accountRepo struct {
	db DB
}

func NewAccountRepository(db DB) AccountRepository {
	return &accountRepo{db: db}
}

func baseSelectAccount() string {
	return `
        SELECT id, full_name, email, phone_number, password_hash, role, access,
               created_at, updated_at
        FROM accounts
    `
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PhoneNumber,
		&a.PasswordHash,
		&a.Role,
		&a.Access,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO accounts (
            id, full_name, email, phone_number, password_hash, role, access
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `,
		a.ID, a.FullName, a.Email, a.PhoneNumber, a.PasswordHash, a.Role, a.Access,
	)
	return err
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE email=$1", email)
	return scanAccount(row)
}

func (r *accountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE id=$1", id)
	return scanAccount(row)
}

func (r *accountRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
        UPDATE accounts SET password_hash=$2, updated_at=NOW() WHERE id=$1
    `, id, passwordHash)
	return err
}

func (r *accountRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	return err
}
