package logger

import (
	"sort"
	"strings"
	"unicode"
)

// Heredoc removes blank lines surrounding the text and the indentation
// common to all of its non-blank lines, so that messages can be written as
// indented raw string literals.
func Heredoc(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	var (
		margin string
		first  = true
	)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := l[:len(l)-len(strings.TrimLeftFunc(l, unicode.IsSpace))]
		if first {
			margin, first = indent, false
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(strings.TrimPrefix(l, margin), unicode.IsSpace)
	}
	return strings.Join(lines, "\n")
}

// commonPrefix returns the longest common prefix of a and b not splitting
// runes.
func commonPrefix(a, b string) string {
	for i, r := range a {
		if i >= len(b) || !strings.HasPrefix(b[i:], string(r)) {
			return a[:i]
		}
	}
	return a
}

// newAliasReplacer creates a replacer substituting raw names with aliases.
// Longer names are replaced first so that a name that is a prefix of another
// doesn't break it.
func newAliasReplacer(aliases map[string]string) *strings.Replacer {
	if len(aliases) == 0 {
		return nil
	}
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, name, aliases[name])
	}
	return strings.NewReplacer(pairs...)
}
