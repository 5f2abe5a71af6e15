package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/repositories"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

// ---------------------------------------------------------------------
// AccountService interface
// ---------------------------------------------------------------------

type AccountService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.Account, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type accountService struct {
	accountRepo repositories.AccountRepository
	notifier    Notifier
	cfg         *config.Config
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	notifier Notifier,
	cfg *config.Config,
) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		notifier:    notifier,
		cfg:         cfg,
	}
}

func (s *accountService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.Account, error) {
	existing, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, utils.ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		Role:         models.Role(req.Role),
		// Recruiters stay locked out until an operator approves them.
		Access: models.Role(req.Role) == models.RoleJobseeker,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.notifier.Enqueue(s.buildWelcomeEmail(account))
	return account, nil
}

func (s *accountService) buildWelcomeEmail(account *models.Account) Email {
	body := "<p>Your account has been created. You can now request a login code with your email and password.</p>"
	if account.Role == models.RoleRecruiter {
		body = "<p>Your recruiter account has been created and is awaiting approval. We will notify you once it has been reviewed.</p>"
	}
	return Email{
		To:        account.Email,
		Subject:   "Welcome to " + s.cfg.OrganizationName,
		PlainText: "Your account has been created.",
		HTML:      fmt.Sprintf(plainNotificationEmailHTML, "Welcome, "+account.FullName, body, time.Now().Year()),
	}
}
