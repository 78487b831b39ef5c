package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Council names are words separated by spaces, e.g. "Na h-Eileanan Siar", "Perth and Kinross"
	validCouncilPattern = regexp.MustCompile(`^[\p{L}0-9][\p{L}0-9 .,'&()-]*$`)

	// Rank columns are plain CSV headers such as SIMD2020_Health_Domain_Rank
	validDomainPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateCouncilName validates that a council name is safe and within reasonable limits
func ValidateCouncilName(name string) error {
	if name == "" {
		return errors.New("council cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("council too long (max 100 characters)")
	}

	if !validCouncilPattern.MatchString(name) {
		return errors.New("council contains invalid characters")
	}

	return nil
}

// ValidateDomain checks the shape of a domain rank column name. Whether the column exists is
// decided by the loaded table.
func ValidateDomain(domain string) error {
	if len(domain) > 64 {
		return errors.New("domain too long (max 64 characters)")
	}

	if !validDomainPattern.MatchString(domain) {
		return errors.New("domain contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeCouncil strips markup from a path parameter before validating it.
func ValidateAndSanitizeCouncil(name string) (string, error) {
	sanitized := SanitizeInput(name)
	if sanitized != name {
		return "", errors.New("council contains invalid characters")
	}
	if err := ValidateCouncilName(sanitized); err != nil {
		return "", err
	}
	return sanitized, nil
}
