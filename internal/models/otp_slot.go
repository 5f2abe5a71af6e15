package models

import "time"

// OtpPurpose selects one of the three independent code channels an email
// address can hold at the same time.
type OtpPurpose string

const (
	PurposeLogin         OtpPurpose = "login"
	PurposeResetPassword OtpPurpose = "reset-password"
	PurposeDeleteAccount OtpPurpose = "delete-account"
)

func (p OtpPurpose) Valid() bool {
	switch p {
	case PurposeLogin, PurposeResetPassword, PurposeDeleteAccount:
		return true
	}
	return false
}

// AllPurposes in a stable order, for cleanup and tests.
var AllPurposes = []OtpPurpose{PurposeLogin, PurposeResetPassword, PurposeDeleteAccount}

// OtpSlot is one (email, purpose) row of the ledger. Code and IssuedAt are
// both set while a code is active and both nil once the slot is cleared;
// the request counters survive clearing so the sliding window keeps its
// history across issuances.
type OtpSlot struct {
	Email         string
	Purpose       OtpPurpose
	Code          *string
	IssuedAt      *time.Time
	RequestCount  int
	LastRequestAt time.Time
}

// Armed reports whether the slot currently holds an active code.
func (s *OtpSlot) Armed() bool {
	return s.Code != nil && s.IssuedAt != nil
}
