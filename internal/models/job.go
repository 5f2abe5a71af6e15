package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting owned by a recruiter account. Only the fields the
// auth service touches during cascade deletion are modeled here; listing
// and search live in the jobs service.
type Job struct {
	ID        uuid.UUID
	Title     string
	CreatedBy uuid.UUID
	CompanyID *uuid.UUID
	CreatedAt time.Time
}
