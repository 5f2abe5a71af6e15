// internal/repositories/company_repository.go
package repositories

import (
	"context"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type companyRepo struct {
	db DB
}

func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
