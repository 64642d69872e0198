// Package author provides use cases for managing the allow-list of article
// authors. Every entry grants its email the right to manage articles; the
// role field distinguishes plain authors from admins.
package author

import "errors"

// Sentinel errors for allow-list use case operations.
var (
	// ErrDuplicateEmail indicates the email is already on the allow-list.
	ErrDuplicateEmail = errors.New("email already exists in the allowed list")

	// ErrInvalidAuthorID indicates a non-positive allow-list entry ID.
	ErrInvalidAuthorID = errors.New("invalid author ID")
)
