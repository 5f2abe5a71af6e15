package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

// Valid reports whether r is one of the two roles accounts can hold.
// There is no role-switch operation; the role is fixed at registration.
func (r Role) Valid() bool {
	return r == RoleJobseeker || r == RoleRecruiter
}

// Account is the identity + credential entity. Access starts false for
// recruiters until an admin approves them; jobseekers start true.
type Account struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Access       bool      `json:"access"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
