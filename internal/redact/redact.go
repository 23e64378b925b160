// Package redact scrubs credentials and connection secrets out of strings
// before they are logged. Store clients embed endpoints, signed request
// fragments and connection strings in their errors; those errors are logged
// verbatim by the repository, so they pass through here first.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedSignaturePlaceholder  = "[REDACTED_SIGNATURE]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; earlier rules may consume text later rules would match.
var rules = []rule{
	// user:password@ in postgres:// and similar URLs
	{
		pattern:     regexp.MustCompile(`(?i)\b((?:postgres(?:ql)?|mysql|mongodb|sqlite|file)://)[^@/\s]+@`),
		replacement: "${1}" + RedactedCredentialPlaceholder + "@",
	},
	// password=... in DSNs and query strings
	{
		pattern:     regexp.MustCompile(`(?i)\b(password|passwd|pwd)=[^\s&]+`),
		replacement: "${1}=" + RedactedCredentialPlaceholder,
	},
	// SigV4 signature and credential scope
	{
		pattern:     regexp.MustCompile(`(Signature=)[0-9a-f]{16,}`),
		replacement: "${1}" + RedactedSignaturePlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(Credential=)[^,\s]+`),
		replacement: "${1}" + RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(X-Amz-Security-Token[=:]\s*)[^\s&,]+`),
		replacement: "${1}" + RedactedCredentialPlaceholder,
	},
	// AWS access key ids (long-term AKIA, temporary ASIA)
	{
		pattern:     regexp.MustCompile(`\b(?:AKIA|ASIA)[A-Z0-9]{16}\b`),
		replacement: RedactedKeyPlaceholder,
	},
	// secret_access_key=..., "SecretAccessKey": "..."
	{
		pattern:     regexp.MustCompile(`(?i)(secret_?access_?key"?\s*[=:]\s*"?)[A-Za-z0-9/+=]{16,}`),
		replacement: "${1}" + RedactedKeyPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
