package models

import (
	"time"

	"github.com/google/uuid"
)

// Application links a jobseeker to a job they applied for.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      string
	CreatedAt   time.Time
}
