// Filename: barestrings/whitelist.go
package barestrings

import (
	"regexp"
	"strings"
)

// DefaultWhitelist is the set of punctuation and symbol characters that are
// never translatable on their own. A string made up entirely of whitelist
// entries and whitespace is not reported.
var DefaultWhitelist = []string{
	"(", ")", ",", ".", "&", "+", "-", "=", "*", "/", "#", "%", "!", "?",
	":", "[", "]", "{", "}", "<", ">", "·", "•", "‐",
	"–", "—", "−", "|",
}

// matcher recognizes whitelist entries anywhere in a string. The compiled
// pattern is immutable and safe for concurrent use.
type matcher struct {
	re *regexp.Regexp
}

// newMatcher joins the entries into a single alternation. Entries are
// treated as literal strings, so pattern metacharacters in user-supplied
// whitelists ('.', '(', '?') match themselves. Matching operates on code
// points, which keeps multi-byte entries like the bullet characters intact.
func newMatcher(entries []string) matcher {
	if len(entries) == 0 {
		return matcher{}
	}
	quoted := make([]string, len(entries))
	for i, e := range entries {
		quoted[i] = regexp.QuoteMeta(e)
	}
	return matcher{re: regexp.MustCompile(strings.Join(quoted, "|"))}
}

// strip trims the string, removes every whitelist occurrence, and trims the
// remainder.
func (m matcher) strip(s string) string {
	s = strings.TrimSpace(s)
	if m.re != nil {
		s = m.re.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// bare reports whether anything non-whitelisted survives stripping. Empty
// and all-whitespace strings are never bare.
func (m matcher) bare(s string) bool {
	return m.strip(s) != ""
}
