package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/services"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

type DeletionController struct {
	deletionService services.DeletionService
	cfg             *config.Config
}

func NewDeletionController(deletionService services.DeletionService, cfg *config.Config) *DeletionController {
	return &DeletionController{deletionService: deletionService, cfg: cfg}
}

// DeleteAccount redeems a delete-account code and runs the cascade. The
// session cookie is cleared on success since the account no longer exists.
func (c *DeletionController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req dtos.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed fields", nil, err)
		return
	}

	counts, err := c.deletionService.DeleteAccount(r.Context(), req.Email, req.Otp)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrOtpNotFound), errors.Is(err, utils.ErrAccountNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No deletion was requested for this email", nil)
		case errors.Is(err, utils.ErrInvalidOtp):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidOtp, "Invalid verification code", nil)
		case errors.Is(err, utils.ErrOtpExpired):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeOtpExpired, "Your code has expired. Please request a new one.", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete account", nil, err)
		}
		return
	}

	utils.ClearSessionCookie(w, c.cfg.SecureCookies)
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteAccountResponse{
		Message: "Account and associated data deleted",
		Details: *counts,
	})
}
