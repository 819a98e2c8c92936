package model

import (
	"net/url"
	"strings"
)

// Field-level validation predicates for the contact block. Every field is
// optional, so the empty string is always valid. Validation is advisory:
// a failing field is annotated in the form but never blocks saving or
// exporting the document.

const (
	emailErrMsg = "Please enter a valid email address"
	phoneErrMsg = "Please enter a valid phone number"
	urlErrMsg   = "Please enter a valid URL"
)

// IsValidEmail accepts the empty string, otherwise requires a
// local@domain.tld shape: one @ with a non-empty local part, a dot after the
// @ with characters on both sides, and no whitespace anywhere.
func IsValidEmail(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// IsValidPhone accepts the empty string, otherwise requires only
// digits/space/dash/parentheses/plus and at least 7 digits overall.
func IsValidPhone(s string) bool {
	if s == "" {
		return true
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
		default:
			return false
		}
	}
	return digits >= 7
}

// IsValidURL accepts the empty string, otherwise coerces a missing scheme to
// https:// and requires the result to parse with a host.
func IsValidURL(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	return err == nil && u.Host != ""
}

// The *Error helpers pair each predicate with its fixed user-facing message.
// They return "" when the value is valid; the form layer shows the message at
// blur time.

func EmailError(s string) string {
	if IsValidEmail(s) {
		return ""
	}
	return emailErrMsg
}

func PhoneError(s string) string {
	if IsValidPhone(s) {
		return ""
	}
	return phoneErrMsg
}

func URLError(s string) string {
	if IsValidURL(s) {
		return ""
	}
	return urlErrMsg
}
