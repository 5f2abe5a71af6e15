package services

import (
	"context"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/repositories"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

// LedgerCleanupService purges otp slots whose last request is older
// than the retention period. Stale codes are already rejected lazily at
// verification time, so this only keeps the table from growing.
type LedgerCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type ledgerCleanupService struct {
	ledgerRepo repositories.OtpLedgerRepository
	cfg        *config.Config
}

func NewLedgerCleanupService(ledgerRepo repositories.OtpLedgerRepository, cfg *config.Config) LedgerCleanupService {
	return &ledgerCleanupService{ledgerRepo: ledgerRepo, cfg: cfg}
}

func (s *ledgerCleanupService) CleanupDaily(ctx context.Context) error {
	removed, err := s.ledgerRepo.CleanupStale(ctx, s.cfg.StaleSlotRetention)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup stale otp slots")
		return err
	}

	utils.Logger.Infof("Daily otp ledger cleanup completed, removed %d stale slots.", removed)
	return nil
}
