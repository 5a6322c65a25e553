package parser

import "voice-task-tracker/internal/voice"

type priorityRule struct {
	phrases  []string
	priority voice.Priority
}

// First match wins. Phrase rules run before the bare keyword rules, but
// "urgent" in the first rule still beats "not urgent" further down.
var priorityRules = []priorityRule{
	{[]string{"critical", "urgent", "asap"}, voice.PriorityCritical},
	{[]string{"high priority", "high-priority", "priority high", "important"}, voice.PriorityHigh},
	{[]string{"low priority", "low-priority", "priority low", "not urgent", "whenever", "not important"}, voice.PriorityLow},
	{[]string{"medium priority", "normal priority", "priority medium", "regular priority"}, voice.PriorityMedium},
	{[]string{"high"}, voice.PriorityHigh},
	{[]string{"low"}, voice.PriorityLow},
	{[]string{"medium"}, voice.PriorityMedium},
}

func (p *Parser) extractPriority(text string) voice.Priority {
	for _, rule := range priorityRules {
		if containsAny(text, rule.phrases...) {
			return rule.priority
		}
	}

	if p.classifier == nil {
		return voice.PriorityMedium
	}
	label, ok := p.classifier.Classify(text)
	if !ok || !voice.Priority(label).IsValid() {
		return voice.PriorityMedium
	}
	return voice.Priority(label)
}
