package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher pre-compiles glob patterns for reuse across many paths.
//
// Pattern syntax follows fnmatch(3) without FNM_PATHNAME:
//   - * matches any characters including /
//   - ? matches exactly one character including /
//   - [...] matches one character from the set, [!...] negates
//   - \ escapes the next character
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles the given patterns into a reusable matcher.
func NewMatcher(patterns []string) (*Matcher, error) {
	matcher := &Matcher{patterns: make([]*regexp.Regexp, len(patterns))}

	for idx, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		matcher.patterns[idx] = re
	}

	return matcher, nil
}

// MatchAny reports whether path matches any of the compiled patterns.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// compile converts one glob pattern to a compiled regexp.
func compile(pattern string) (*regexp.Regexp, error) {
	var buf strings.Builder

	buf.WriteString("^")

	pos := 0
	for pos < len(pattern) {
		switch pattern[pos] {
		case '*':
			buf.WriteString(".*")
			pos++

		case '?':
			buf.WriteString(".")
			pos++

		case '[':
			end := strings.IndexByte(pattern[pos+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated character class in %q", pattern)
			}

			class := pattern[pos : pos+end+2]
			// [!...] negates, which regexp spells [^...]
			if len(class) > 2 && class[1] == '!' {
				class = "[^" + class[2:]
			}

			buf.WriteString(class)

			pos += end + 2

		case '\\':
			if pos+1 >= len(pattern) {
				return nil, fmt.Errorf("trailing escape in %q", pattern)
			}

			buf.WriteString(regexp.QuoteMeta(string(pattern[pos+1])))

			pos += 2

		default:
			buf.WriteString(regexp.QuoteMeta(string(pattern[pos])))
			pos++
		}
	}

	buf.WriteString("$")

	re, err := regexp.Compile(buf.String())
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	return re, nil
}
