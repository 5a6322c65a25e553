package parser

import "strings"

// extractDescription returns whatever is left once the title and every known
// control phrase are gone, or "" if that residue is meaningless.
func extractDescription(text, title string) string {
	description := strings.ToLower(text)
	titleLower := strings.ToLower(title)

	if strings.Contains(description, titleLower) {
		description = strings.TrimSpace(strings.Replace(description, titleLower, "", 1))
	}

	description = removeFirst(description, descriptionTaskPhrases)
	description = removeFirst(description, descriptionCommands)
	description = removeAll(description, descriptionNoiseWords)

	description = tidy(description)
	if description == "" || isFiller(description) || strings.EqualFold(description, title) {
		return ""
	}

	return strings.Join(capitalizeEach(strings.Split(description, ". ")), ". ")
}

func isFiller(text string) bool {
	for _, f := range fillerPhrases {
		if text == f || strings.HasPrefix(text, f+" ") {
			return true
		}
	}
	return false
}
