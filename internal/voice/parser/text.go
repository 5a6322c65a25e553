package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wholeWords compiles one \b-bounded, case-insensitive pattern per phrase.
func wholeWords(phrases ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return res
}

// removeFirst drops the first occurrence of each phrase, in order.
// Matching is plain substring, so "hi" also eats the start of "high".
func removeFirst(s string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			s = strings.TrimSpace(strings.Replace(s, p, "", 1))
		}
	}
	return s
}

// removeAll drops every match of each pattern, in order.
func removeAll(s string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		s = strings.TrimSpace(re.ReplaceAllString(s, ""))
	}
	return s
}

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// tidy collapses whitespace runs and trims , . : ! - from both ends.
func tidy(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",.:!-", r)
	})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func capitalizeEach(parts []string) []string {
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return parts
}
