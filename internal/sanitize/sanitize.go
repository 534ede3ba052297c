// Package sanitize cleans raw form input before validation.
//
// Every function is total: bad input comes back as an empty string, never as
// an error or a panic. Callers treat empty as "missing or invalid".
package sanitize

import (
	"regexp"
	"strings"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

var (
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	emailRe       = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	phoneCharRe   = regexp.MustCompile(`[^0-9+ ]`)
	digitRe       = regexp.MustCompile(`[0-9]`)
	alphanumRe    = regexp.MustCompile(`[^A-Z0-9]`)
	multiSpacesRe = regexp.MustCompile(`\s+`)
)

// deniedURLSchemes schemes that must never survive sanitization
var deniedURLSchemes = []string{"javascript:", "data:", "vbscript:", "file:"}

// Text strips HTML tags, collapses whitespace and caps the value at
// MaxTextLength
func Text(raw string) string {
	return boundedText(raw, domain.MaxTextLength)
}

// Message is Text with the higher free-text cap used for message bodies
// and booking notes
func Message(raw string) string {
	return boundedText(raw, domain.MaxMessageLength)
}

func boundedText(raw string, maxLen int) string {
	clean := htmlTagRe.ReplaceAllString(raw, "")
	clean = strings.ReplaceAll(clean, "<", "")
	clean = strings.ReplaceAll(clean, ">", "")
	clean = multiSpacesRe.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	if len(clean) > maxLen {
		clean = clean[:maxLen]
	}
	return clean
}

// Email lowercases and validates the address.
// Returns "" when the value is not a plausible email.
func Email(raw string) string {
	clean := strings.TrimSpace(strings.ToLower(raw))
	clean = strings.Trim(clean, "<>")

	if len(clean) > domain.MaxTextLength || !emailRe.MatchString(clean) {
		return ""
	}
	return clean
}

// Phone keeps digits, "+" and spaces only.
// Returns "" when the digit count is outside the 7-15 range.
func Phone(raw string) string {
	clean := phoneCharRe.ReplaceAllString(raw, "")
	clean = multiSpacesRe.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	digits := len(digitRe.FindAllString(clean, -1))
	if digits < domain.MinPhoneDigits || digits > domain.MaxPhoneDigits {
		return ""
	}
	return clean
}

// Postcode keeps alphanumerics, uppercases, caps at 8 characters and
// re-inserts the space before the inward code ("ba160hw" -> "BA16 0HW")
func Postcode(raw string) string {
	clean := alphanumRe.ReplaceAllString(strings.ToUpper(raw), "")
	if len(clean) > domain.MaxPostcodeLength {
		clean = clean[:domain.MaxPostcodeLength]
	}
	if len(clean) <= 3 {
		return clean
	}
	return clean[:len(clean)-3] + " " + clean[len(clean)-3:]
}

// URL blocks executable and local schemes outright and prefixes bare
// domains with https://. Returns "" for denied schemes.
func URL(raw string) string {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return ""
	}

	lower := strings.ToLower(multiSpacesRe.ReplaceAllString(clean, ""))
	for _, scheme := range deniedURLSchemes {
		if strings.HasPrefix(lower, scheme) {
			return ""
		}
	}

	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		clean = "https://" + clean
	}
	return clean
}

// HoneypotTripped reports whether any decoy field carries a value.
// Real users never see these fields; any content means a bot filled the form.
func HoneypotTripped(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
