// Package text provides capitalization helpers.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Initials returns the upper-cased first letter of the first word and, when v has more
// than one word, of the last word. Words are separated by single spaces.
//
//	Initials("John Smith") // "JS"
//	Initials("John")       // "J"
func Initials(v string) string {
	names := strings.Split(v, " ")
	initials := toUpper(firstRune(names[0]))
	if len(names) > 1 {
		initials += toUpper(firstRune(names[len(names)-1]))
	}
	return initials
}

// Capitalize upper-cases the first character of s and leaves the rest untouched.
func Capitalize(s string) string {
	first := firstRune(s)
	return toUpper(first) + s[len(first):]
}

// toUpper applies full Unicode upper-casing, so "ß" becomes "SS".
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
