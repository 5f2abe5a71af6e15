package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

func TestRegisterJobseekerHasImmediateAccess(t *testing.T) {
	accounts := newFakeAccountRepo()
	notifier := &fakeNotifier{}
	svc := NewAccountService(accounts, notifier, testConfig())

	account, err := svc.Register(context.Background(), dtos.RegisterRequest{
		FullName:    "Sam Rivera",
		Email:       "sam@example.com",
		PhoneNumber: "5550002222",
		Password:    "hunter2!",
		Role:        "jobseeker",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleJobseeker, account.Role)
	assert.True(t, account.Access)
	assert.True(t, utils.CheckPasswordHash("hunter2!", account.PasswordHash))
	assert.NotEqual(t, "hunter2!", account.PasswordHash)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "sam@example.com", notifier.sent[0].To)
}

func TestRegisterRecruiterAwaitsApproval(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewAccountService(accounts, &fakeNotifier{}, testConfig())

	account, err := svc.Register(context.Background(), dtos.RegisterRequest{
		FullName:    "Sam Rivera",
		Email:       "sam@example.com",
		PhoneNumber: "5550002222",
		Password:    "hunter2!",
		Role:        "recruiter",
	})
	require.NoError(t, err)
	assert.False(t, account.Access)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := testAccount(t, models.RoleJobseeker, true)
	svc := NewAccountService(newFakeAccountRepo(existing), &fakeNotifier{}, testConfig())

	_, err := svc.Register(context.Background(), dtos.RegisterRequest{
		FullName:    "Someone Else",
		Email:       existing.Email,
		PhoneNumber: "5550003333",
		Password:    "hunter2!",
		Role:        "jobseeker",
	})
	assert.ErrorIs(t, err, utils.ErrEmailExists)
}
