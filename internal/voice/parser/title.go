package parser

import "strings"

// extractTitle isolates the subject of the task. Each step works on the
// output of the previous one.
func extractTitle(text string) string {
	title := strings.ToLower(text)

	title = removeFirst(title, titleCommandPhrases)
	title = removeAll(title, titleStatusWords)
	title = removeAll(title, titlePriorityWords)

	for _, cmd := range titleTrailingCommands {
		if strings.HasSuffix(title, cmd) {
			title = strings.TrimSpace(strings.TrimSuffix(title, cmd))
		}
	}

	title = removeAll(title, titleDatePhrases)
	title = removeAll(title, titleTimePhrases)

	title = tidy(title)
	if title == "" {
		return DefaultTitle
	}

	return strings.Join(capitalizeEach(strings.Split(title, " ")), " ")
}
