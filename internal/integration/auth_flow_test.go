//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeshj458/JobPortal/internal/dtos"
	"github.com/Sandeshj458/JobPortal/internal/models"
	"github.com/Sandeshj458/JobPortal/internal/routes"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

func TestLoginOtpFlow(t *testing.T) {
	email := uniqueEmail("login")
	registerAccount(t, email, "hunter2!", "jobseeker")

	resp := postJSON(t, routes.SendOtp, dtos.SendOtpRequest{
		Email: email, Purpose: "login", Password: "hunter2!", Role: "jobseeker",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	code := issuedCode(t, email, models.PurposeLogin)

	resp = postJSON(t, routes.VerifyOtp, dtos.VerifyOtpRequest{
		Email: email, Otp: code, Purpose: "login", Password: "hunter2!", Role: "jobseeker",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessionCookie string
	for _, c := range resp.Cookies() {
		if c.Name == utils.SessionCookieName {
			sessionCookie = c.Value
			assert.True(t, c.HttpOnly)
		}
	}
	assert.NotEmpty(t, sessionCookie)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, email, user["email"])

	// The code is single use.
	resp = postJSON(t, routes.VerifyOtp, dtos.VerifyOtpRequest{
		Email: email, Otp: code, Purpose: "login", Password: "hunter2!", Role: "jobseeker",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestPasswordResetFlow(t *testing.T) {
	email := uniqueEmail("reset")
	registerAccount(t, email, "old-password", "jobseeker")

	resp := postJSON(t, routes.SendOtp, dtos.SendOtpRequest{Email: email, Purpose: "reset-password"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	code := issuedCode(t, email, models.PurposeResetPassword)

	resp = postJSON(t, routes.VerifyOtp, dtos.VerifyOtpRequest{
		Email: email, Otp: code, Purpose: "reset-password", NewPassword: "new-password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The old password no longer issues login codes, the new one does.
	resp = postJSON(t, routes.SendOtp, dtos.SendOtpRequest{
		Email: email, Purpose: "login", Password: "old-password", Role: "jobseeker",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, routes.SendOtp, dtos.SendOtpRequest{
		Email: email, Purpose: "login", Password: "new-password", Role: "jobseeker",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestUnapprovedRecruiterGetsActionable403(t *testing.T) {
	email := uniqueEmail("recruiter")
	resp := postJSON(t, routes.Register, dtos.RegisterRequest{
		FullName:    "Integration Test",
		Email:       email,
		PhoneNumber: "5550009999",
		Password:    "hunter2!",
		Role:        "recruiter",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, routes.SendOtp, dtos.SendOtpRequest{
		Email: email, Purpose: "login", Password: "hunter2!", Role: "recruiter",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, utils.ErrCodeApprovalPending, body["code"])
}

func TestRateLimitPerSlot(t *testing.T) {
	email := uniqueEmail("ratelimit")
	registerAccount(t, email, "hunter2!", "jobseeker")

	for i := 0; i < 5; i++ {
		resp := postJSON(t, routes.SendOtp, dtos.SendOtpRequest{Email: email, Purpose: "reset-password"})
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d should be within the window", i+1)
		resp.Body.Close()
	}

	resp := postJSON(t, routes.SendOtp, dtos.SendOtpRequest{Email: email, Purpose: "reset-password"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp.Body.Close()

	// The login slot carries its own counter and is still open.
	resp = postJSON(t, routes.SendOtp, dtos.SendOtpRequest{
		Email: email, Purpose: "login", Password: "hunter2!", Role: "jobseeker",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
