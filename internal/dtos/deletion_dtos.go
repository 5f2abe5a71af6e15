package dtos

import "github.com/Sandeshj458/JobPortal/internal/models"

type DeleteAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6,numeric"`
}

type DeleteAccountResponse struct {
	Message string                `json:"message"`
	Details models.DeletionCounts `json:"details"`
}
