package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

type deletionFixture struct {
	svc       *deletionService
	otp       *otpService
	accounts  *fakeAccountRepo
	ledger    *fakeLedgerRepo
	jobs      *fakeJobRepo
	apps      *fakeApplicationRepo
	companies *fakeCompanyRepo
	logs      *fakeDeletionLogRepo
	notifier  *fakeNotifier
	collector *fakeCollector
	now       time.Time
}

func newDeletionFixture(t *testing.T, accounts ...models.Account) *deletionFixture {
	t.Helper()
	f := &deletionFixture{
		accounts:  newFakeAccountRepo(accounts...),
		ledger:    newFakeLedgerRepo(),
		jobs:      newFakeJobRepo(),
		apps:      newFakeApplicationRepo(),
		companies: newFakeCompanyRepo(),
		logs:      &fakeDeletionLogRepo{},
		notifier:  &fakeNotifier{},
		collector: newFakeCollector(),
		now:       time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
	cfg := testConfig()
	cfg.AdminEmail = "ops@jobportal.test"

	f.svc = NewDeletionService(nil, f.accounts, f.ledger, f.notifier, f.collector, cfg).(*deletionService)
	f.svc.now = func() time.Time { return f.now }
	f.svc.inTx = func(ctx context.Context, fn func(DeletionStores) error) error {
		return fn(DeletionStores{
			Jobs:         f.jobs,
			Applications: f.apps,
			Companies:    f.companies,
			Ledger:       f.ledger,
			Accounts:     f.accounts,
			Logs:         f.logs,
		})
	}

	f.otp = NewOtpService(f.accounts, f.ledger, NewSessionService(cfg), f.notifier, f.collector, cfg).(*otpService)
	f.otp.now = func() time.Time { return f.now }
	return f
}

// requestDeletionCode runs the real issuance path for the delete-account
// purpose and returns the emailed code.
func (f *deletionFixture) requestDeletionCode(t *testing.T, email string) string {
	t.Helper()
	require.NoError(t, f.otp.IssueOtp(context.Background(), dtos.SendOtpRequest{
		Email: email, Purpose: "delete-account",
	}))
	slot, err := f.ledger.GetSlot(context.Background(), email, models.PurposeDeleteAccount)
	require.NoError(t, err)
	require.True(t, slot.Armed())
	return *slot.Code
}

func TestDeleteAccountRecruiterCascade(t *testing.T) {
	recruiter := testAccount(t, models.RoleRecruiter, true)
	f := newDeletionFixture(t, recruiter)
	ctx := context.Background()

	jobA := models.Job{ID: uuid.New(), Title: "Backend Engineer", CreatedBy: recruiter.ID}
	jobB := models.Job{ID: uuid.New(), Title: "Data Analyst", CreatedBy: recruiter.ID}
	otherJob := models.Job{ID: uuid.New(), Title: "Designer", CreatedBy: uuid.New()}
	f.jobs = newFakeJobRepo(jobA, jobB, otherJob)

	f.apps = newFakeApplicationRepo(
		models.Application{ID: uuid.New(), JobID: jobA.ID, ApplicantID: uuid.New()},
		models.Application{ID: uuid.New(), JobID: jobA.ID, ApplicantID: uuid.New()},
		models.Application{ID: uuid.New(), JobID: jobA.ID, ApplicantID: uuid.New()},
		models.Application{ID: uuid.New(), JobID: jobB.ID, ApplicantID: uuid.New()},
		models.Application{ID: uuid.New(), JobID: jobB.ID, ApplicantID: uuid.New()},
		models.Application{ID: uuid.New(), JobID: otherJob.ID, ApplicantID: uuid.New()},
	)
	f.companies = newFakeCompanyRepo(
		models.Company{ID: uuid.New(), Name: "Acme Hiring", OwnerID: recruiter.ID},
	)

	code := f.requestDeletionCode(t, recruiter.Email)
	counts, err := f.svc.DeleteAccount(ctx, recruiter.Email, code)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Jobs)
	assert.Equal(t, 5, counts.Applications)
	assert.Equal(t, 1, counts.Companies)

	// The account and its ledger rows are gone, unrelated data survives.
	_, err = f.accounts.GetByEmail(ctx, recruiter.Email)
	assert.Error(t, err)
	assert.Empty(t, f.ledger.slots)
	assert.Len(t, f.jobs.jobs, 1)
	assert.Len(t, f.apps.apps, 1)

	// Exactly one audit row with the same counts.
	require.Len(t, f.logs.entries, 1)
	assert.Equal(t, recruiter.Email, f.logs.entries[0].Email)
	assert.Equal(t, models.RoleRecruiter, f.logs.entries[0].Role)
	assert.Equal(t, *counts, f.logs.entries[0].Details)

	assert.Equal(t, 1, f.collector.counts["deleted/recruiter"])

	// Code email, user notice, admin notice.
	require.Len(t, f.notifier.sent, 3)
	assert.Equal(t, recruiter.Email, f.notifier.sent[1].To)
	assert.Equal(t, "ops@jobportal.test", f.notifier.sent[2].To)
}

func TestDeleteAccountJobseekerLeavesJobs(t *testing.T) {
	jobseeker := testAccount(t, models.RoleJobseeker, true)
	f := newDeletionFixture(t, jobseeker)
	ctx := context.Background()

	job := models.Job{ID: uuid.New(), Title: "Backend Engineer", CreatedBy: uuid.New()}
	f.jobs = newFakeJobRepo(job)
	f.apps = newFakeApplicationRepo(
		models.Application{ID: uuid.New(), JobID: job.ID, ApplicantID: jobseeker.ID},
		models.Application{ID: uuid.New(), JobID: job.ID, ApplicantID: jobseeker.ID},
		models.Application{ID: uuid.New(), JobID: job.ID, ApplicantID: uuid.New()},
	)

	code := f.requestDeletionCode(t, jobseeker.Email)
	counts, err := f.svc.DeleteAccount(ctx, jobseeker.Email, code)
	require.NoError(t, err)

	assert.Equal(t, 0, counts.Jobs)
	assert.Equal(t, 2, counts.Applications)
	assert.Equal(t, 0, counts.Companies)

	// The job and the other applicant's application are untouched.
	assert.Len(t, f.jobs.jobs, 1)
	assert.Len(t, f.apps.apps, 1)
	assert.Equal(t, 1, f.collector.counts["deleted/jobseeker"])
}

func TestDeleteAccountRejectsBadCodes(t *testing.T) {
	account := testAccount(t, models.RoleJobseeker, true)
	f := newDeletionFixture(t, account)
	ctx := context.Background()

	// No code requested at all.
	_, err := f.svc.DeleteAccount(ctx, account.Email, "123456")
	assert.ErrorIs(t, err, utils.ErrOtpNotFound)

	// Wrong code.
	code := f.requestDeletionCode(t, account.Email)
	wrong := "123456"
	if wrong == code {
		wrong = "654321"
	}
	_, err = f.svc.DeleteAccount(ctx, account.Email, wrong)
	assert.ErrorIs(t, err, utils.ErrInvalidOtp)

	// Stale code is rejected and cleared.
	f.now = f.now.Add(2 * time.Minute)
	_, err = f.svc.DeleteAccount(ctx, account.Email, code)
	assert.ErrorIs(t, err, utils.ErrOtpExpired)
	slot, err := f.ledger.GetSlot(ctx, account.Email, models.PurposeDeleteAccount)
	require.NoError(t, err)
	assert.False(t, slot.Armed())

	// Nothing was deleted along the way.
	_, err = f.accounts.GetByEmail(ctx, account.Email)
	assert.NoError(t, err)
	assert.Empty(t, f.logs.entries)
}

func TestDeleteAccountMidCascadeFailureKeepsAccount(t *testing.T) {
	recruiter := testAccount(t, models.RoleRecruiter, true)
	f := newDeletionFixture(t, recruiter)
	ctx := context.Background()

	job := models.Job{ID: uuid.New(), Title: "Backend Engineer", CreatedBy: recruiter.ID}
	f.jobs = newFakeJobRepo(job)
	f.apps = newFakeApplicationRepo(
		models.Application{ID: uuid.New(), JobID: job.ID, ApplicantID: uuid.New()},
	)

	code := f.requestDeletionCode(t, recruiter.Email)
	f.apps.deleteErr = errors.New("deadlock detected")

	counts, err := f.svc.DeleteAccount(ctx, recruiter.Email, code)
	require.Error(t, err)
	assert.Nil(t, counts)

	// Dependent-entity cleanup failed before the account row was touched,
	// so the account and its armed ledger slot survive for a retry.
	_, err = f.accounts.GetByEmail(ctx, recruiter.Email)
	require.NoError(t, err)
	slot, err := f.ledger.GetSlot(ctx, recruiter.Email, models.PurposeDeleteAccount)
	require.NoError(t, err)
	assert.True(t, slot.Armed())
	assert.Len(t, f.jobs.jobs, 1)
	assert.Empty(t, f.logs.entries)
	assert.Zero(t, f.collector.counts["deleted/recruiter"])

	// Retrying with the same still-fresh code succeeds.
	f.apps.deleteErr = nil
	counts, err = f.svc.DeleteAccount(ctx, recruiter.Email, code)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Applications)
	assert.Equal(t, 1, counts.Jobs)
}
