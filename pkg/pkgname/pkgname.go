// pkg/pkgname/pkgname.go
package pkgname

import (
	"regexp"
	"strings"
)

// pattern is the allow-list for package name tokens. Names are later passed
// as literal arguments to package-manager processes, so anything outside
// this set (shell metacharacters, whitespace, quotes) is rejected outright.
var pattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

// IsValid reports whether candidate is a safe package name token.
// Surrounding whitespace is ignored; an empty or all-whitespace candidate
// is invalid.
func IsValid(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return false
	}
	return pattern.MatchString(trimmed)
}

// Clean returns the canonical form of a name: the token with surrounding
// whitespace removed. It is the form that gets probed and reported.
func Clean(candidate string) string {
	return strings.TrimSpace(candidate)
}

// Partition splits candidates into valid (cleaned) and invalid (verbatim)
// names. Input order is preserved in both halves and duplicates are kept;
// a name listed twice is checked twice.
func Partition(candidates []string) (valid, invalid []string) {
	valid = []string{}
	invalid = []string{}
	for _, c := range candidates {
		if IsValid(c) {
			valid = append(valid, Clean(c))
		} else {
			invalid = append(invalid, c)
		}
	}
	return valid, invalid
}
