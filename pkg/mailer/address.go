package mailer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSender is returned for a sender address that is not
// of the form user@domain.
var ErrInvalidSender = errors.New("invalid email address")

const pdfExt = ".pdf"

// Recipient returns the email address encoded in a solution
// filename. The address is everything after the last '-' and
// before the ".pdf" extension, so "hw1-alice@example.com.pdf"
// gives "alice@example.com". The address itself is not validated.
func Recipient(filename string) (string, error) {
	name := filepath.Base(filename)
	if !strings.HasSuffix(name, pdfExt) {
		return "", fmt.Errorf("%s is not a %s file", name, pdfExt)
	}
	stem := strings.TrimSuffix(name, pdfExt)
	addr := stem[strings.LastIndex(stem, "-")+1:]
	if addr == "" {
		return "", fmt.Errorf("no email address in %s", name)
	}
	return addr, nil
}

// ParseSender splits a sender address into its user and domain parts.
func ParseSender(addr string) (user, domain string, err error) {
	parts := strings.Split(strings.TrimSpace(addr), "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.WithMessagef(ErrInvalidSender, "%q", addr)
	}
	return parts[0], parts[1], nil
}
