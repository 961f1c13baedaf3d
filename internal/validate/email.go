// Package validate provides syntax checks for user-supplied email addresses.
package validate

import (
	"net/mail"
	"strings"
)

var invalidUsers = map[string]bool{
	"postmaster": true,
	"abuse":      true,
}

// Dotless domains (localhost, test, invalid) are already rejected by the
// dot check below.
var invalidDomains = map[string]bool{
	"example.com": true,
	"example.org": true,
	"example.net": true,
}

// IsSyntacticallyValid reports whether email looks like a plausible bare
// address. It checks syntax only; no DNS or mailbox verification happens
// here.
func IsSyntacticallyValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display names and surrounding angle brackets; the caller must
	// supply a bare address.
	if addr.Address != strings.TrimSpace(email) {
		return false
	}
	i := strings.LastIndexByte(addr.Address, '@')
	user, domain := addr.Address[:i], addr.Address[i+1:]
	if user == "" || domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if invalidUsers[strings.ToLower(user)] || invalidDomains[strings.ToLower(domain)] {
		return false
	}
	return true
}
