package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is a recruiter-owned record; deleted with its owner.
type Company struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
}
