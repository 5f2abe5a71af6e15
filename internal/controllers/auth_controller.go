package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/services"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

type AuthController struct {
	otpService     services.OtpService
	accountService services.AccountService
	cfg            *config.Config
}

func NewAuthController(
	otpService services.OtpService,
	accountService services.AccountService,
	cfg *config.Config,
) *AuthController {
	return &AuthController{
		otpService:     otpService,
		accountService: accountService,
		cfg:            cfg,
	}
}

var validate = validator.New()

func accountToResponse(a *models.Account) dtos.AccountResponse {
	return dtos.AccountResponse{
		ID:          a.ID.String(),
		FullName:    a.FullName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Role:        string(a.Role),
	}
}

// ---------------------------------------------------------------------
// SendOtp
// ---------------------------------------------------------------------
func (c *AuthController) SendOtp(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err)
		return
	}
	if req.Purpose == "" {
		req.Purpose = string(models.PurposeLogin)
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed fields", nil, err)
		return
	}

	if err := c.otpService.IssueOtp(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, utils.ErrAccountNotFound):
			// Unknown emails on the login path answer exactly like a wrong
			// password, so account existence is not enumerable here.
			if req.Purpose == string(models.PurposeLogin) {
				utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
				return
			}
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No account found with this email", nil)
		case errors.Is(err, utils.ErrInvalidCredentials):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
		case errors.Is(err, utils.ErrRoleMismatch):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeRoleMismatch, "Account does not match the selected role", nil)
		case errors.Is(err, utils.ErrApprovalPending):
			utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeApprovalPending, fmt.Sprintf("Your recruiter account is awaiting approval. Contact %s if you believe this is taking too long.", c.cfg.SupportEmail), nil)
		case errors.Is(err, utils.ErrRateLimitExceeded):
			utils.RespondErrorWithCode(w, http.StatusTooManyRequests, utils.ErrCodeRateLimitExceeded, "Too many requests. Please try again after 15 minutes.", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to send verification code", nil, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Verification code sent to your email",
		"success": true,
	})
}

// ---------------------------------------------------------------------
// VerifyOtp
// ---------------------------------------------------------------------
func (c *AuthController) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err)
		return
	}
	if req.Purpose == "" {
		req.Purpose = string(models.PurposeLogin)
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed fields", nil, err)
		return
	}

	result, err := c.otpService.VerifyOtp(r.Context(), req, r.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrOtpNotFound), errors.Is(err, utils.ErrAccountNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No verification code was requested for this email", nil)
		case errors.Is(err, utils.ErrInvalidOtp):
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidOtp, "Invalid verification code", nil)
		case errors.Is(err, utils.ErrOtpExpired):
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeOtpExpired, "Your code has expired. Please request a new one.", nil)
		case errors.Is(err, utils.ErrInvalidCredentials):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
		case errors.Is(err, utils.ErrRoleMismatch):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeRoleMismatch, "Account does not match the selected role", nil)
		case errors.Is(err, utils.ErrApprovalPending):
			utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeApprovalPending, fmt.Sprintf("Your recruiter account is awaiting approval. Contact %s if you believe this is taking too long.", c.cfg.SupportEmail), nil)
		case errors.Is(err, utils.ErrWeakPassword):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "A new password is required", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to verify code", nil, err)
		}
		return
	}

	switch models.OtpPurpose(req.Purpose) {
	case models.PurposeLogin:
		utils.SetSessionCookie(w, result.SessionToken, c.cfg.SessionTokenExpiry, c.cfg.SecureCookies)
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"success": true,
			"user":    accountToResponse(result.Account),
		})
	case models.PurposeResetPassword:
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"message": "Password reset successful",
			"success": true,
		})
	default:
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"message": "Verification successful. You may now delete your account.",
			"success": true,
		})
	}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed fields", nil, err)
		return
	}

	account, err := c.accountService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "An account with this email already exists", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create account", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created",
		"success": true,
		"user":    accountToResponse(account),
	})
}

// ---------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w, c.cfg.SecureCookies)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Logged out",
		"success": true,
	})
}
