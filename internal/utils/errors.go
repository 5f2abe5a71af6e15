// internal/utils/errors.go
package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrAccountNotFound    = errors.New("account_not_found")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrRoleMismatch       = errors.New("role_mismatch")
	ErrApprovalPending    = errors.New("approval_pending")
	ErrWeakPassword       = errors.New("weak_password")

	// OTP ledger
	ErrOtpNotFound = errors.New("otp_not_found")
	ErrInvalidOtp  = errors.New("invalid_otp")
	ErrOtpExpired  = errors.New("otp_expired")

	// For rate limiting
	ErrRateLimitExceeded = errors.New("rate_limit_exceeded")
)
