package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProperName upper-cases the first character of name and keeps the rest as is,
// so "fooView" becomes "FooView" and "x" becomes "X".
func ProperName(name string) string {
	if name == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(first)) + name[size:]
}

// SectionLabel turns a camelCase identifier into a human readable label:
// "centeringContainer" becomes "Centering Container".
func SectionLabel(name string) string {
	var sb strings.Builder

	for i, r := range name {
		switch {
		case i == 0:
			sb.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z':
			sb.WriteByte(' ')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
