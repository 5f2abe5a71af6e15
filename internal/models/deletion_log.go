package models

import (
	"time"

	"github.com/google/uuid"
)

// DeletionCounts records how many rows of each kind a cascade removed.
type DeletionCounts struct {
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	Companies    int `json:"companies"`
}

// DeletionLog is the append-only audit record written once per successful
// account deletion. Rows are never updated or removed.
type DeletionLog struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Role      Role           `json:"role"`
	Details   DeletionCounts `json:"details"`
	DeletedAt time.Time      `json:"deleted_at"`
}
