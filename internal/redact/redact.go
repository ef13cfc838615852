// Package redact scrubs sensitive values from text before it is logged or
// forwarded to the dead-letter queue. Error reports embed the triggering
// request body verbatim, so credentials a client happened to send must be
// masked on the way out.
package redact

import "regexp"

// Redaction placeholders.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	KeyPlaceholder        = "[REDACTED_KEY]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	JWTPlaceholder        = "[REDACTED_JWT]"
)

var (
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)(['"]?\s*[=:]\s*['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(`(?i)(api[_-]?key|token|secret|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
	awsKeyRegex   = regexp.MustCompile(`(AKIA|AccessKey(Id)?)([^a-zA-Z0-9])?[A-Z0-9]{8,}`)
	jwtRegex      = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	placeholders = []struct {
		pattern     *regexp.Regexp
		replacement string
	}{
		{passwordRegex, CredentialPlaceholder},
		{apiKeyRegex, KeyPlaceholder},
		{awsKeyRegex, KeyPlaceholder},
		{jwtRegex, JWTPlaceholder},
		{emailRegex, EmailPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range placeholders {
		result = p.pattern.ReplaceAllString(result, p.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
