// internal/repositories/deletion_log_repository.go
package repositories

import (
	"context"
	"encoding/json"

	"github.com/Sandeshj458/JobPortal/internal/models"
)

// DeletionLogRepository appends audit rows for completed account
// deletions. There is deliberately no update or delete.
type DeletionLogRepository interface {
	Create(ctx context.Context, logEntry *models.DeletionLog) error
}

type deletionLogRepo struct {
	db DB
}

func NewDeletionLogRepository(db DB) DeletionLogRepository {
	return &deletionLogRepo{db: db}
}

func (r *deletionLogRepo) Create(ctx context.Context, logEntry *models.DeletionLog) error {
	details, err := json.Marshal(logEntry.Details)
	if err != nil {
		return err
	}
	q := `
        INSERT INTO deletion_logs (id, email, role, details, deleted_at)
        VALUES ($1, $2, $3, $4, NOW())
    `
	_, err = r.db.Exec(ctx, q,
		logEntry.ID,
		logEntry.Email,
		logEntry.Role,
		details,
	)
	return err
}
