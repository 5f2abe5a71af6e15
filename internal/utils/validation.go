package utils

import "regexp"

// TestEmailRegex matches whitelisted test inboxes that receive a static
// code when the accept_fake_emails flag is enabled.
var TestEmailRegex = regexp.MustCompile(`^fake\+[a-z0-9._%-]+@jobportal\.test$`)
