package web

import "strings"

// GetErrorHint returns a helpful hint for common errors.
// Returns empty string if no hint is available.
func GetErrorHint(err string) string {
	errLower := strings.ToLower(err)

	switch {
	case strings.Contains(errLower, "table full"):
		return "The table holds its maximum of 1400 rows; this build has no delete."
	case strings.Contains(errLower, "field too long"):
		return "username is limited to 32 bytes and email to 255 bytes."
	case strings.Contains(errLower, "syntax error"):
		return "Statements are 'insert <id> <username> <email>' or 'select'."
	case strings.Contains(errLower, "unrecognized statement"):
		return "Only insert and select are supported."
	default:
		return ""
	}
}
