package services

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Static code issued for whitelisted test inboxes when the
// accept_fake_emails flag is enabled.
const TestOtpCode = "000000"

// Helper function for generating one-time codes. Codes are always six
// digits and never carry a leading zero.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(100000+n.Int64(), 10), nil
}
