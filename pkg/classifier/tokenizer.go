package classifier

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"as": {}, "at": {}, "be": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "for": {}, "from": {}, "get": {}, "got": {}, "had": {},
	"has": {}, "have": {}, "he": {}, "her": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "me": {}, "my": {}, "now": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "to": {}, "too": {}, "up": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "which": {}, "while": {}, "who": {}, "will": {},
	"with": {}, "would": {}, "you": {}, "your": {},
}

// Tokenize lower-cases text, splits it on anything that is not a letter or digit,
// drops stop words and stems what is left.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, english.Stem(f, false))
	}
	return tokens
}
