// Package strutil holds the small pure string helpers used across the
// library.
package strutil

import (
	"strings"
	"unicode"
)

// StripExtension returns the text before the first dot in name. A name
// with multiple dots ("a.b.c.txt") therefore yields "a". Names without a
// dot are returned unchanged.
func StripExtension(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// FirstExtension returns the segment between the first and second dot of
// name, without the leading dot. For "a.b.c.txt" this is "b", not
// "c.txt": only the first suffix component is taken. Empty when name has
// no dot.
func FirstExtension(name string) string {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return ""
	}
	rest := name[i+1:]
	if j := strings.IndexByte(rest, '.'); j >= 0 {
		return rest[:j]
	}
	return rest
}

// WordCount counts whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Capitalize upper-cases the first rune of s and leaves the rest alone.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// TrimWhitespace removes leading and trailing whitespace.
func TrimWhitespace(s string) string {
	return strings.TrimSpace(s)
}
