package voice

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid reports whether p is one of the four known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Status is the board column a task belongs to.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// --- Domain Model ---

// ParsedCommand is the structured result of interpreting one transcript.
// It is a value object: built once per call and owned by the caller.
type ParsedCommand struct {
	Transcript  string     // verbatim input
	Title       string     // never empty, "New Task" when nothing is left
	Description string     // may be empty, never equal to Title
	DueDate     *time.Time // nil unless a temporal phrase matched
	Priority    Priority
	Status      Status
	AutoCreate  bool // caller should persist without confirmation
}

// Sample pairs a fixed transcript with its parsed result.
type Sample struct {
	Input  string
	Parsed ParsedCommand
}

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Command ParsedCommand
}

type TestSamplesOutput struct {
	Samples []Sample
}
