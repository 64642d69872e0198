package respond

import (
	"regexp"
)

var (
	// Bearer tokens and signed JWTs must never reach the logs verbatim.
	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Database passwords embedded in a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = jwtPattern.ReplaceAllString(msg, "eyJ****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
