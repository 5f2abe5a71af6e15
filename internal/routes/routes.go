// Package routes holds the path constants for the auth service.
package routes

const (
	APIPrefix = "/auth/v1"

	SendOtp       = "/send-otp"
	VerifyOtp     = "/verify-otp"
	DeleteAccount = "/delete-account"
	Register      = "/register"
	Logout        = "/logout"

	Health  = "/health"
	Metrics = "/metrics"
)
