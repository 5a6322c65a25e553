package parser

import "strings"

// shouldAutoCreate is deliberately loose: a phrase counts when it ends the
// text or touches a space on either side anywhere in it.
func shouldAutoCreate(text string) bool {
	for _, phrase := range autoCreatePhrases {
		if strings.HasSuffix(text, phrase) ||
			strings.Contains(text, " "+phrase) ||
			strings.Contains(text, phrase+" ") {
			return true
		}
	}
	return false
}
