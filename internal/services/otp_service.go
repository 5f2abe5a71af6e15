package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/mileusna/useragent"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/metrics"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/repositories"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

// Verification outcomes recorded on the metrics collector.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeExpired  = "expired"
	OutcomeNotFound = "not_found"
)

// VerifyOtpResult carries the verified account and, for the login
// purpose, a freshly minted session token.
type VerifyOtpResult struct {
	Account      *models.Account
	SessionToken string
}

// ---------------------------------------------------------------------
// OtpService interface
// ---------------------------------------------------------------------

type OtpService interface {
	// IssueOtp checks the purpose preconditions and the per-slot rate
	// limit, then stores and emails a fresh one-time code.
	IssueOtp(ctx context.Context, req dtos.SendOtpRequest) error

	// VerifyOtp redeems a one-time code and performs the side effects
	// of the given purpose (session mint, password reset, or deletion
	// authorization).
	VerifyOtp(ctx context.Context, req dtos.VerifyOtpRequest, userAgent string) (*VerifyOtpResult, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type otpService struct {
	accountRepo repositories.AccountRepository
	ledgerRepo  repositories.OtpLedgerRepository
	sessions    SessionService
	notifier    Notifier
	collector   metrics.MetricsCollector

	cfg *config.Config
	now func() time.Time
}

func NewOtpService(
	accountRepo repositories.AccountRepository,
	ledgerRepo repositories.OtpLedgerRepository,
	sessions SessionService,
	notifier Notifier,
	collector metrics.MetricsCollector,
	cfg *config.Config,
) OtpService {
	return &otpService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		sessions:    sessions,
		notifier:    notifier,
		collector:   collector,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *otpService) otpExpiry() time.Duration {
	if s.cfg.LDFlag_ShortOtpExpiry {
		return config.TestShortOtpExpiry
	}
	return s.cfg.OtpExpiry
}

// ---------------------------------------------------------------------
// IssueOtp
// ---------------------------------------------------------------------

func (s *otpService) IssueOtp(ctx context.Context, req dtos.SendOtpRequest) error {
	purpose := models.OtpPurpose(req.Purpose)

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err == pgx.ErrNoRows {
		return utils.ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up account for otp issuance: %w", err)
	}

	// The login purpose authenticates up front. Password resets and
	// deletion requests only need proof of inbox possession, which the
	// code itself provides.
	if purpose == models.PurposeLogin {
		if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
			return utils.ErrInvalidCredentials
		}
		if account.Role != models.Role(req.Role) {
			return utils.ErrRoleMismatch
		}
		if account.Role == models.RoleRecruiter && !account.Access {
			return utils.ErrApprovalPending
		}
	}

	slot, err := s.ledgerRepo.GetSlot(ctx, req.Email, purpose)
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("failed to load otp slot: %w", err)
	}

	now := s.now()
	count := 0
	if slot != nil {
		elapsed := now.Sub(slot.LastRequestAt)
		if elapsed < s.cfg.RateLimitWindow && slot.RequestCount >= s.cfg.MaxOtpPerWindow {
			s.collector.RecordOtpThrottled(string(purpose))
			return utils.ErrRateLimitExceeded
		}
		if elapsed <= s.cfg.RateLimitWindow {
			count = slot.RequestCount
		}
	}

	var code string
	if s.cfg.LDFlag_AcceptFakeEmails && utils.TestEmailRegex.MatchString(req.Email) {
		code = TestOtpCode
	} else {
		code, err = generateOtpCode()
		if err != nil {
			return fmt.Errorf("failed to generate otp code: %w", err)
		}
	}

	next := &models.OtpSlot{
		Email:         req.Email,
		Purpose:       purpose,
		Code:          &code,
		IssuedAt:      &now,
		RequestCount:  count + 1,
		LastRequestAt: now,
	}
	if err := s.ledgerRepo.UpsertSlot(ctx, next); err != nil {
		return fmt.Errorf("failed to store otp slot: %w", err)
	}

	s.collector.RecordOtpIssued(string(purpose))
	s.notifier.Enqueue(s.buildOtpEmail(req.Email, purpose, code))
	return nil
}

func (s *otpService) buildOtpEmail(email string, purpose models.OtpPurpose, code string) Email {
	var subject, heading, intro string
	expiry := int(s.otpExpiry().Seconds())

	switch purpose {
	case models.PurposeLogin:
		subject = s.cfg.OrganizationName + " - Login Code"
		heading = "Login Code"
		intro = fmt.Sprintf("Use the following code to sign in to your account. It expires in %d seconds.", expiry)
	case models.PurposeResetPassword:
		subject = s.cfg.OrganizationName + " - Password Reset Code"
		heading = "Password Reset Code"
		intro = fmt.Sprintf("Use the following code to reset your password. It expires in %d seconds.", expiry)
	case models.PurposeDeleteAccount:
		subject = s.cfg.OrganizationName + " - Account Deletion Code"
		heading = "Account Deletion Code"
		intro = fmt.Sprintf("Use the following code to confirm deletion of your account. It expires in %d seconds.", expiry)
	}

	return Email{
		To:        email,
		Subject:   subject,
		PlainText: fmt.Sprintf("Your verification code is %s", code),
		HTML:      fmt.Sprintf(otpEmailHTML, heading, intro, code, s.now().Year()),
	}
}

// ---------------------------------------------------------------------
// VerifyOtp
// ---------------------------------------------------------------------

func (s *otpService) VerifyOtp(ctx context.Context, req dtos.VerifyOtpRequest, userAgent string) (*VerifyOtpResult, error) {
	purpose := models.OtpPurpose(req.Purpose)

	slot, err := s.ledgerRepo.GetSlot(ctx, req.Email, purpose)
	if err == pgx.ErrNoRows {
		has, hErr := s.ledgerRepo.HasEntry(ctx, req.Email)
		if hErr != nil {
			return nil, fmt.Errorf("failed to check otp ledger: %w", hErr)
		}
		if !has {
			s.collector.RecordOtpVerified(string(purpose), OutcomeNotFound)
			return nil, utils.ErrOtpNotFound
		}
		s.collector.RecordOtpVerified(string(purpose), OutcomeInvalid)
		return nil, utils.ErrInvalidOtp
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load otp slot: %w", err)
	}

	if !slot.Armed() || *slot.Code != req.Otp {
		s.collector.RecordOtpVerified(string(purpose), OutcomeInvalid)
		return nil, utils.ErrInvalidOtp
	}

	if s.now().Sub(*slot.IssuedAt) > s.otpExpiry() {
		if clearErr := s.ledgerRepo.ClearCode(ctx, req.Email, purpose); clearErr != nil {
			utils.Logger.WithError(clearErr).Errorf("Failed to clear stale otp for %s/%s", req.Email, purpose)
		}
		s.collector.RecordOtpVerified(string(purpose), OutcomeExpired)
		return nil, utils.ErrOtpExpired
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err == pgx.ErrNoRows {
		return nil, utils.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account for otp verification: %w", err)
	}

	switch purpose {
	case models.PurposeLogin:
		return s.completeLogin(ctx, req, account, userAgent)
	case models.PurposeResetPassword:
		return s.completePasswordReset(ctx, req, account)
	default:
		// Deletion codes stay armed until the deletion endpoint redeems
		// them, so the slot is left untouched here.
		s.collector.RecordOtpVerified(string(purpose), OutcomeSuccess)
		return &VerifyOtpResult{Account: account}, nil
	}
}

// completeLogin re-runs the credential checks so that a password change
// or access revocation between issuance and redemption still blocks the
// login.
func (s *otpService) completeLogin(ctx context.Context, req dtos.VerifyOtpRequest, account *models.Account, userAgent string) (*VerifyOtpResult, error) {
	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}
	if account.Role != models.Role(req.Role) {
		return nil, utils.ErrRoleMismatch
	}
	if account.Role == models.RoleRecruiter && !account.Access {
		return nil, utils.ErrApprovalPending
	}

	token, err := s.sessions.GenerateToken(account)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to generate session token on login")
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.ledgerRepo.ClearCode(ctx, req.Email, models.PurposeLogin); err != nil {
		return nil, fmt.Errorf("failed to clear redeemed login otp: %w", err)
	}

	s.collector.RecordOtpVerified(string(models.PurposeLogin), OutcomeSuccess)
	s.notifier.Enqueue(s.buildLoginAlertEmail(account, userAgent))
	return &VerifyOtpResult{Account: account, SessionToken: token}, nil
}

func (s *otpService) completePasswordReset(ctx context.Context, req dtos.VerifyOtpRequest, account *models.Account) (*VerifyOtpResult, error) {
	if req.NewPassword == "" {
		return nil, utils.ErrWeakPassword
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.accountRepo.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to update password hash: %w", err)
	}

	if err := s.ledgerRepo.ClearCode(ctx, req.Email, models.PurposeResetPassword); err != nil {
		return nil, fmt.Errorf("failed to clear redeemed reset otp: %w", err)
	}

	s.collector.RecordOtpVerified(string(models.PurposeResetPassword), OutcomeSuccess)
	s.notifier.Enqueue(Email{
		To:        account.Email,
		Subject:   s.cfg.OrganizationName + " - Password Changed",
		PlainText: "Your account password was just changed. If this was not you, contact support immediately.",
		HTML: fmt.Sprintf(plainNotificationEmailHTML, "Password Changed",
			"<p>Your account password was just changed. If this was not you, contact support immediately.</p>",
			s.now().Year()),
	})
	return &VerifyOtpResult{Account: account}, nil
}

func (s *otpService) buildLoginAlertEmail(account *models.Account, userAgent string) Email {
	device := "an unrecognized device"
	if ua := useragent.Parse(userAgent); ua.Name != "" {
		device = ua.Name
		if ua.OS != "" {
			device += " on " + ua.OS
		}
	}

	ts := s.now().UTC().Format(time.RFC1123)
	body := fmt.Sprintf("<p>Your account was just signed in to from %s at %s.</p><p>If this was not you, reset your password immediately.</p>", device, ts)
	return Email{
		To:        account.Email,
		Subject:   s.cfg.OrganizationName + " - New Login",
		PlainText: fmt.Sprintf("Your account was just signed in to from %s at %s.", device, ts),
		HTML:      fmt.Sprintf(plainNotificationEmailHTML, "New Login", body, s.now().Year()),
	}
}
