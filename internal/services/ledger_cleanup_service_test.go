package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeshj458/JobPortal/internal/models"
)

func TestLedgerCleanupRemovesOnlyStaleSlots(t *testing.T) {
	ledger := newFakeLedgerRepo()
	ctx := context.Background()

	stale := models.OtpSlot{
		Email:         "old@example.com",
		Purpose:       models.PurposeLogin,
		RequestCount:  3,
		LastRequestAt: time.Now().Add(-48 * time.Hour),
	}
	fresh := models.OtpSlot{
		Email:         "new@example.com",
		Purpose:       models.PurposeLogin,
		RequestCount:  1,
		LastRequestAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, ledger.UpsertSlot(ctx, &stale))
	require.NoError(t, ledger.UpsertSlot(ctx, &fresh))

	cfg := testConfig()
	cfg.StaleSlotRetention = 24 * time.Hour
	svc := NewLedgerCleanupService(ledger, cfg)

	require.NoError(t, svc.CleanupDaily(ctx))

	_, err := ledger.GetSlot(ctx, "old@example.com", models.PurposeLogin)
	assert.Error(t, err)
	_, err = ledger.GetSlot(ctx, "new@example.com", models.PurposeLogin)
	assert.NoError(t, err)
}
