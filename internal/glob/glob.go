// Package glob turns wildcard name patterns into anchored regular expressions.
//
// Only two wildcards are understood: '*' matches any run of characters
// (including none) and '?' matches exactly one character. Everything else is
// a literal, including characters that would be glob syntax elsewhere such as
// '[', '{' or '+'.
package glob

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// matchAll is the alternative used when no patterns are given.
const matchAll = ".*"

// Matcher reports whether a name matches any of the patterns it was built from.
// The whole name must match; a pattern never matches a substring.
type Matcher struct {
	patterns []string
	re       *regexp2.Regexp
}

// Translate converts a single wildcard pattern into an unanchored regular
// expression fragment.
func Translate(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern) * 2)

	for _, ch := range pattern {
		switch ch {
		case '.':
			sb.WriteString(`\.`)
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteByte('.')
		case '^', '$', '+', '(', ')', '[', '{', '\\', '|':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}

	return sb.String()
}

// Expression builds the anchored expression for a list of patterns:
// "^(p1|p2|...)$". An empty list yields "^(.*)$".
func Expression(patterns []string) string {
	var sb strings.Builder
	sb.WriteString("^(")
	if len(patterns) == 0 {
		sb.WriteString(matchAll)
	}
	for i, p := range patterns {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(Translate(p))
	}
	sb.WriteString(")$")
	return sb.String()
}

// Compile builds a Matcher for the given patterns. An empty list produces a
// matcher that accepts every name.
func Compile(patterns []string) (*Matcher, error) {
	expr := Expression(patterns)
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		// Translate only emits escaped literals and the two wildcard forms,
		// so reaching this means the engine rejected something unexpected.
		return nil, fmt.Errorf("glob: failed to compile %q: %w", expr, err)
	}

	return &Matcher{
		patterns: append([]string(nil), patterns...),
		re:       re,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(patterns ...string) *Matcher {
	m, err := Compile(patterns)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether name matches one of the patterns in full.
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	ok, err := m.re.MatchString(name)
	if err != nil {
		// Only a match timeout produces an error and none is configured.
		return false
	}
	return ok
}

// Empty reports whether the matcher was built from an empty pattern list.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.patterns) == 0
}

// String returns the anchored regular expression.
func (m *Matcher) String() string {
	return m.re.String()
}
