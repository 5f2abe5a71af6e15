// internal/repositories/job_repository.go
package repositories

import (
	"context"

	"github.com/google/uuid"
)

// JobRepository covers the slice of the jobs table this service owns:
// cascade targets during account deletion. Posting and search belong to
// the jobs service.
type JobRepository interface {
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type jobRepo struct {
	db DB
}

func NewJobRepository(db DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM jobs WHERE created_by = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *jobRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE created_by = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
