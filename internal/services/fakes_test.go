package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Sandeshj458/JobPortal/internal/models"
)

// In-memory repository fakes shared by the service tests.

func slotKey(email string, purpose models.OtpPurpose) string {
	return email + "|" + string(purpose)
}

type fakeLedgerRepo struct {
	slots map[string]models.OtpSlot
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{slots: make(map[string]models.OtpSlot)}
}

func (f *fakeLedgerRepo) GetSlot(ctx context.Context, email string, purpose models.OtpPurpose) (*models.OtpSlot, error) {
	s, ok := f.slots[slotKey(email, purpose)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := s
	return &copied, nil
}

func (f *fakeLedgerRepo) UpsertSlot(ctx context.Context, slot *models.OtpSlot) error {
	f.slots[slotKey(slot.Email, slot.Purpose)] = *slot
	return nil
}

func (f *fakeLedgerRepo) ClearCode(ctx context.Context, email string, purpose models.OtpPurpose) error {
	if s, ok := f.slots[slotKey(email, purpose)]; ok {
		s.Code = nil
		s.IssuedAt = nil
		f.slots[slotKey(email, purpose)] = s
	}
	return nil
}

func (f *fakeLedgerRepo) HasEntry(ctx context.Context, email string) (bool, error) {
	for _, s := range f.slots {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedgerRepo) DeleteByEmail(ctx context.Context, email string) error {
	for k, s := range f.slots {
		if s.Email == email {
			delete(f.slots, k)
		}
	}
	return nil
}

func (f *fakeLedgerRepo) CleanupStale(ctx context.Context, maxIdle time.Duration) (int64, error) {
	var removed int64
	for k, s := range f.slots {
		if time.Since(s.LastRequestAt) > maxIdle {
			delete(f.slots, k)
			removed++
		}
	}
	return removed, nil
}

type fakeAccountRepo struct {
	accounts map[string]models.Account
}

func newFakeAccountRepo(accounts ...models.Account) *fakeAccountRepo {
	f := &fakeAccountRepo{accounts: make(map[string]models.Account)}
	for _, a := range accounts {
		f.accounts[a.Email] = a
	}
	return f
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	f.accounts[account.Email] = *account
	return nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	a, ok := f.accounts[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := a
	return &copied, nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAccountRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	for k, a := range f.accounts {
		if a.ID == id {
			a.PasswordHash = passwordHash
			f.accounts[k] = a
		}
	}
	return nil
}

func (f *fakeAccountRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	for k, a := range f.accounts {
		if a.ID == id {
			delete(f.accounts, k)
		}
	}
	return nil
}

type fakeNotifier struct {
	sent []Email
}

func (f *fakeNotifier) Enqueue(e Email) { f.sent = append(f.sent, e) }
func (f *fakeNotifier) Close()          {}

type fakeCollector struct {
	counts map[string]int
}

func newFakeCollector() *fakeCollector {
	return &fakeCollector{counts: make(map[string]int)}
}

func (f *fakeCollector) RecordOtpIssued(purpose string)    { f.counts["issued/"+purpose]++ }
func (f *fakeCollector) RecordOtpThrottled(purpose string) { f.counts["throttled/"+purpose]++ }
func (f *fakeCollector) RecordOtpVerified(purpose string, outcome string) {
	f.counts["verified/"+purpose+"/"+outcome]++
}
func (f *fakeCollector) RecordAccountDeleted(role string) { f.counts["deleted/"+role]++ }

type fakeJobRepo struct {
	jobs map[uuid.UUID]models.Job
}

func newFakeJobRepo(jobs ...models.Job) *fakeJobRepo {
	f := &fakeJobRepo{jobs: make(map[uuid.UUID]models.Job)}
	for _, j := range jobs {
		f.jobs[j.ID] = j
	}
	return f
}

func (f *fakeJobRepo) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, j := range f.jobs {
		if j.CreatedBy == ownerID {
			ids = append(ids, j.ID)
		}
	}
	return ids, nil
}

func (f *fakeJobRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var removed int64
	for id, j := range f.jobs {
		if j.CreatedBy == ownerID {
			delete(f.jobs, id)
			removed++
		}
	}
	return removed, nil
}

type fakeApplicationRepo struct {
	apps      map[uuid.UUID]models.Application
	deleteErr error
}

func newFakeApplicationRepo(apps ...models.Application) *fakeApplicationRepo {
	f := &fakeApplicationRepo{apps: make(map[uuid.UUID]models.Application)}
	for _, a := range apps {
		f.apps[a.ID] = a
	}
	return f
}

func (f *fakeApplicationRepo) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var removed int64
	for id, a := range f.apps {
		for _, jobID := range jobIDs {
			if a.JobID == jobID {
				delete(f.apps, id)
				removed++
				break
			}
		}
	}
	return removed, nil
}

func (f *fakeApplicationRepo) DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var removed int64
	for id, a := range f.apps {
		if a.ApplicantID == applicantID {
			delete(f.apps, id)
			removed++
		}
	}
	return removed, nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]models.Company
}

func newFakeCompanyRepo(companies ...models.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{companies: make(map[uuid.UUID]models.Company)}
	for _, c := range companies {
		f.companies[c.ID] = c
	}
	return f
}

func (f *fakeCompanyRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var removed int64
	for id, c := range f.companies {
		if c.OwnerID == ownerID {
			delete(f.companies, id)
			removed++
		}
	}
	return removed, nil
}

type fakeDeletionLogRepo struct {
	entries []models.DeletionLog
}

func (f *fakeDeletionLogRepo) Create(ctx context.Context, logEntry *models.DeletionLog) error {
	f.entries = append(f.entries, *logEntry)
	return nil
}
