package parser

import (
	"strings"

	"voice-task-tracker/internal/voice"
)

var (
	doneSuffixes      = []string{" done", " completed", " finished"}
	donePhrases       = []string{"mark as done", "mark done", "is done", "already done", "task done"}
	inProgressPhrases = []string{"in progress", "working on", "currently doing", "started", "working"}
	todoPhrases       = []string{"todo", "to do", "need to", "have to", "should"}
)

func extractStatus(text string) voice.Status {
	for _, suffix := range doneSuffixes {
		if strings.HasSuffix(text, suffix) {
			return voice.StatusDone
		}
	}
	if containsAny(text, donePhrases...) {
		return voice.StatusDone
	}
	if containsAny(text, inProgressPhrases...) {
		return voice.StatusInProgress
	}
	if containsAny(text, todoPhrases...) {
		return voice.StatusTodo
	}
	return voice.StatusTodo
}
