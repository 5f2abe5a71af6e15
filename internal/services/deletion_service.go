package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/metrics"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/repositories"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

// DeletionStores bundles the repositories the cascade runs against.
// In production they are all bound to one transaction.
type DeletionStores struct {
	Jobs         repositories.JobRepository
	Applications repositories.ApplicationRepository
	Companies    repositories.CompanyRepository
	Ledger       repositories.OtpLedgerRepository
	Accounts     repositories.AccountRepository
	Logs         repositories.DeletionLogRepository
}

// ---------------------------------------------------------------------
// DeletionService interface
// ---------------------------------------------------------------------

type DeletionService interface {
	// DeleteAccount redeems a delete-account code and removes the
	// account together with its role-dependent data in one transaction.
	DeleteAccount(ctx context.Context, email, code string) (*models.DeletionCounts, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type deletionService struct {
	db          repositories.DB
	accountRepo repositories.AccountRepository
	ledgerRepo  repositories.OtpLedgerRepository
	notifier    Notifier
	collector   metrics.MetricsCollector

	cfg  *config.Config
	now  func() time.Time
	inTx func(ctx context.Context, fn func(DeletionStores) error) error
}

func NewDeletionService(
	db repositories.DB,
	accountRepo repositories.AccountRepository,
	ledgerRepo repositories.OtpLedgerRepository,
	notifier Notifier,
	collector metrics.MetricsCollector,
	cfg *config.Config,
) DeletionService {
	s := &deletionService{
		db:          db,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		notifier:    notifier,
		collector:   collector,
		cfg:         cfg,
		now:         time.Now,
	}
	s.inTx = s.runInTx
	return s
}

func (s *deletionService) runInTx(ctx context.Context, fn func(DeletionStores) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin deletion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stores := DeletionStores{
		Jobs:         repositories.NewJobRepository(tx),
		Applications: repositories.NewApplicationRepository(tx),
		Companies:    repositories.NewCompanyRepository(tx),
		Ledger:       repositories.NewOtpLedgerRepository(tx),
		Accounts:     repositories.NewAccountRepository(tx),
		Logs:         repositories.NewDeletionLogRepository(tx),
	}
	if err := fn(stores); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *deletionService) otpExpiry() time.Duration {
	if s.cfg.LDFlag_ShortOtpExpiry {
		return config.TestShortOtpExpiry
	}
	return s.cfg.OtpExpiry
}

// checkDeletionCode validates the delete-account slot the same way the
// verification endpoint does, without clearing it on success. The row
// is removed with the rest of the ledger inside the cascade.
func (s *deletionService) checkDeletionCode(ctx context.Context, email, code string) error {
	slot, err := s.ledgerRepo.GetSlot(ctx, email, models.PurposeDeleteAccount)
	if err == pgx.ErrNoRows {
		has, hErr := s.ledgerRepo.HasEntry(ctx, email)
		if hErr != nil {
			return fmt.Errorf("failed to check otp ledger: %w", hErr)
		}
		if !has {
			return utils.ErrOtpNotFound
		}
		return utils.ErrInvalidOtp
	}
	if err != nil {
		return fmt.Errorf("failed to load otp slot: %w", err)
	}

	if !slot.Armed() || *slot.Code != code {
		return utils.ErrInvalidOtp
	}
	if s.now().Sub(*slot.IssuedAt) > s.otpExpiry() {
		if clearErr := s.ledgerRepo.ClearCode(ctx, email, models.PurposeDeleteAccount); clearErr != nil {
			utils.Logger.WithError(clearErr).Errorf("Failed to clear stale deletion otp for %s", email)
		}
		return utils.ErrOtpExpired
	}
	return nil
}

func (s *deletionService) DeleteAccount(ctx context.Context, email, code string) (*models.DeletionCounts, error) {
	if err := s.checkDeletionCode(ctx, email, code); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return nil, utils.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account for deletion: %w", err)
	}

	var counts models.DeletionCounts
	err = s.inTx(ctx, func(stores DeletionStores) error {
		switch account.Role {
		case models.RoleRecruiter:
			jobIDs, err := stores.Jobs.ListIDsByOwner(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("failed to list recruiter jobs: %w", err)
			}

			apps, err := stores.Applications.DeleteByJobIDs(ctx, jobIDs)
			if err != nil {
				return fmt.Errorf("failed to delete applications to recruiter jobs: %w", err)
			}
			counts.Applications = int(apps)

			jobs, err := stores.Jobs.DeleteByOwner(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("failed to delete recruiter jobs: %w", err)
			}
			counts.Jobs = int(jobs)

			companies, err := stores.Companies.DeleteByOwner(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("failed to delete recruiter companies: %w", err)
			}
			counts.Companies = int(companies)

		case models.RoleJobseeker:
			apps, err := stores.Applications.DeleteByApplicant(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("failed to delete jobseeker applications: %w", err)
			}
			counts.Applications = int(apps)
		}

		if err := stores.Ledger.DeleteByEmail(ctx, account.Email); err != nil {
			return fmt.Errorf("failed to delete otp ledger entry: %w", err)
		}
		if err := stores.Accounts.DeleteByID(ctx, account.ID); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		return stores.Logs.Create(ctx, &models.DeletionLog{
			ID:      uuid.New(),
			Email:   account.Email,
			Role:    account.Role,
			Details: counts,
		})
	})
	if err != nil {
		return nil, err
	}

	s.collector.RecordAccountDeleted(string(account.Role))
	utils.Logger.Infof("Deleted %s account %s (jobs=%d, applications=%d, companies=%d)",
		account.Role, account.Email, counts.Jobs, counts.Applications, counts.Companies)

	s.notifier.Enqueue(s.buildDeletionNoticeEmail(account))
	s.notifier.Enqueue(s.buildAdminDeletionEmail(account, counts))
	return &counts, nil
}

func (s *deletionService) buildDeletionNoticeEmail(account *models.Account) Email {
	body := "<p>Your account and its associated data have been permanently deleted. We are sorry to see you go.</p>"
	return Email{
		To:        account.Email,
		Subject:   s.cfg.OrganizationName + " - Account Deleted",
		PlainText: "Your account and its associated data have been permanently deleted.",
		HTML:      fmt.Sprintf(plainNotificationEmailHTML, "Account Deleted", body, s.now().Year()),
	}
}

func (s *deletionService) buildAdminDeletionEmail(account *models.Account, counts models.DeletionCounts) Email {
	ts := s.now().UTC().Format(time.RFC1123)
	body := fmt.Sprintf(
		"<p>An account deletion cascade completed.</p><ul><li><strong>Email:</strong> %s</li><li><strong>Role:</strong> %s</li><li><strong>Jobs removed:</strong> %d</li><li><strong>Applications removed:</strong> %d</li><li><strong>Companies removed:</strong> %d</li><li><strong>Timestamp (UTC):</strong> %s</li></ul>",
		account.Email, account.Role, counts.Jobs, counts.Applications, counts.Companies, ts)
	return Email{
		To:        s.cfg.AdminEmail,
		Subject:   fmt.Sprintf("Account deletion completed for %s", account.Email),
		PlainText: fmt.Sprintf("Account %s (%s) deleted at %s: jobs=%d applications=%d companies=%d", account.Email, account.Role, ts, counts.Jobs, counts.Applications, counts.Companies),
		HTML:      fmt.Sprintf(internalNotificationEmailHTML, "Account Deletion Completed", body, s.now().Year()),
	}
}
