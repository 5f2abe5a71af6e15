// internal/repositories/application_repository.go
package repositories

import (
	"context"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	// DeleteByJobIDs removes every application submitted to the given jobs.
	DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error)
	// DeleteByApplicant removes an account's own applications; the jobs
	// they pointed at are left alone.
	DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error)
}

type applicationRepo struct {
	db DB
}

func NewApplicationRepository(db DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE job_id = ANY($1)`, jobIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *applicationRepo) DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE applicant_id = $1`, applicantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
