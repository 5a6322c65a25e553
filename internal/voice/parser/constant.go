package parser

import "voice-task-tracker/pkg/classifier"

// DefaultTitle is returned when every token of a transcript was stripped.
const DefaultTitle = "New Task"

// Default clock times for resolved due dates.
const (
	defaultDueHour  = 18
	endOfDayHour    = 23
	endOfDayMinute  = 59
	morningHour     = 9
	afternoonHour   = 14
	eveningHour     = 18
	nightHour       = 21
	defaultTimezone = "UTC"
)

// Command and politeness phrases stripped from the title, first occurrence only.
var titleCommandPhrases = []string{
	"create a",
	"add a",
	"make a",
	"remind me to",
	"i need to",
	"please",
	"can you",
	"hey",
	"hi",
	"hello",
	"create this",
	"add this",
	"save this",
	"make this",
	"task to",
	"task for",
	"reminder to",
	"reminder for",
}

var titleStatusWords = wholeWords(
	"done", "completed", "finished", "todo", "in progress", "working on",
)

var titlePriorityWords = wholeWords(
	"urgent", "critical", "important", "high", "low", "medium", "priority",
)

// Only stripped from the title when they end it.
var titleTrailingCommands = []string{
	"create this",
	"add this",
	"save this",
	"make this",
	"done",
	"complete",
}

var titleDatePhrases = wholeWords(
	"tomorrow",
	"today",
	"next week",
	"next month",
	"this week",
	"this month",
	"by friday",
	"by monday",
	"by tuesday",
	"by wednesday",
	"by thursday",
	"by saturday",
	"by sunday",
	"due by",
	"due on",
	"by tomorrow",
	"by today",
	"in 2 days",
	"in 3 days",
	"in a week",
	"in one week",
	"in two weeks",
	"in three weeks",
	"end of day",
	"end of week",
	"eod",
	"eow",
)

var titleTimePhrases = wholeWords(
	"morning", "afternoon", "evening", "night", "noon", "midnight", "today", "tomorrow",
)

// Intent phrases stripped from the description, first occurrence only.
var descriptionTaskPhrases = []string{
	"create a",
	"add a",
	"make a",
	"remind me to",
	"please",
	"can you",
	"i need to",
	"i have to",
	"i should",
	"we need to",
	"we have to",
}

var descriptionCommands = []string{
	"create this",
	"add this",
	"save this",
	"make this",
}

var descriptionNoiseWords = wholeWords(
	"urgent", "critical", "important", "asap",
	"high", "low", "medium",
	"priority", "priorities",
	"tomorrow", "today", "next week", "next month",
	"this week", "this month",
	"by", "due", "on", "at",
	"morning", "afternoon", "evening", "night",
	"done", "completed", "finished",
	"todo", "to do", "in progress",
)

// Filler words that never make a useful description on their own.
var fillerPhrases = []string{
	"task",
	"reminder",
	"thing",
	"item",
	"work",
	"job",
	"project",
}

var autoCreatePhrases = []string{
	"create this",
	"add this",
	"save this",
	"make this",
	"done",
	"complete this",
	"finish this",
	"add now",
	"create now",
	"save now",
}

// PriorityTrainingData is the fixed corpus for the statistical priority fallback.
var PriorityTrainingData = []classifier.Example{
	{Text: "urgent task", Label: "high"},
	{Text: "high priority", Label: "high"},
	{Text: "critical issue", Label: "critical"},
	{Text: "urgent matter", Label: "high"},
	{Text: "important", Label: "high"},
	{Text: "low priority", Label: "low"},
	{Text: "not urgent", Label: "low"},
	{Text: "whenever you have time", Label: "low"},
	{Text: "medium priority", Label: "medium"},
	{Text: "normal priority", Label: "medium"},
	{Text: "priority high", Label: "high"},
	{Text: "priority low", Label: "low"},
	{Text: "priority medium", Label: "medium"},
	{Text: "critical bug", Label: "critical"},
	{Text: "urgent fix", Label: "high"},
}

// SampleTranscripts is the regression batch served by the test endpoint.
var SampleTranscripts = []string{
	"Create a high priority task to review the pull request for the authentication module by tomorrow evening",
	"Remind me to send the project proposal to the client by next Wednesday, it's high priority",
	"Fix login page bug critical urgent",
	"Update documentation low priority whenever",
	"Meeting with team tomorrow morning create this",
	"Submit report by Friday done",
	"Code review for PR #123 medium priority in progress",
	"Prepare presentation for next week important",
	"Debug payment gateway issue high priority today create this",
	"Email client about project updates",
}
