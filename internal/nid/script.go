package nid

import "strings"

// Bengali Unicode block.
const (
	bengaliFirst = '\u0980'
	bengaliLast  = '\u09ff'
)

// headerKeywords are matched case-insensitively.
var headerKeywords = []string{"government", "republic", "national id"}

// headerLiterals are matched as-is. "জাতীয়" appears both with য + nukta and
// with the precomposed য় depending on the OCR engine.
var headerLiterals = []string{
	"\u099c\u09be\u09a4\u09c0\u09af\u09bc", // জাতীয় with nukta
	"\u099c\u09be\u09a4\u09c0\u09df",       // জাতীয় precomposed
	"গণপ্রজাতন্ত্রী",
}

// HasBengali reports whether s contains any rune from the Bengali block.
func HasBengali(s string) bool {
	for _, r := range s {
		if r >= bengaliFirst && r <= bengaliLast {
			return true
		}
	}
	return false
}

// IsHeaderLine reports whether s looks like card boilerplate (issuer name,
// "National ID" banner) rather than personal data.
func IsHeaderLine(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, lit := range headerLiterals {
		if strings.Contains(s, lit) {
			return true
		}
	}
	return false
}
