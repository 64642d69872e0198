package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMetaDescriptionLen is the longest meta description search engines will
// display in full.
const MaxMetaDescriptionLen = 160

// MaxMetaKeywordsLen bounds the meta keywords column.
const MaxMetaKeywordsLen = 255

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlug checks that a slug is non-empty, lowercase, URL-safe and uses
// single hyphens as separators ("spring-wellness-retreat").
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "is required"}
	}
	if len(slug) > 255 {
		return &ValidationError{Field: "slug", Message: "is too long (max 255 characters)"}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{Field: "slug", Message: "must contain only lowercase letters, digits and hyphens"}
	}
	return nil
}

// ValidateEmail performs a light-weight structural check on an email address.
// Full verification belongs to the identity provider; this only rejects
// obviously malformed values before they reach the allow-list.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.IndexByte(email[at+1:], '.') < 1 {
		return &ValidationError{Field: "email", Message: "is not a valid email address"}
	}
	if len(email) > 320 {
		return &ValidationError{Field: "email", Message: "is too long (max 320 characters)"}
	}
	return nil
}

// ValidateMetaDescription caps the meta description length for SEO.
func ValidateMetaDescription(desc string) error {
	if utf8.RuneCountInString(desc) > MaxMetaDescriptionLen {
		return &ValidationError{Field: "metaDescription", Message: "is too long (max 160 characters)"}
	}
	return nil
}

// ValidateMetaKeywords caps the meta keywords length.
func ValidateMetaKeywords(kw string) error {
	if utf8.RuneCountInString(kw) > MaxMetaKeywordsLen {
		return &ValidationError{Field: "metaKeywords", Message: "is too long (max 255 characters)"}
	}
	return nil
}
