package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	UUID        uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Description string    `json:"description"`
	DueDate     Date      `json:"due_date"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type Priority string

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

// Priorities lists the levels in the order the form offers them.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority normalises free input; anything unknown becomes medium.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

func (p *Priority) UnmarshalText(b []byte) error {
	*p = ParsePriority(string(b))
	return nil
}

// Clone returns a detached copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Draft holds the editable fields of a task while it is being created or edited.
type Draft struct {
	Title       string   `json:"title"`
	Client      string   `json:"client"`
	Description string   `json:"description"`
	DueDate     Date     `json:"due_date"`
	Priority    Priority `json:"priority"`
}

func NewDraft() Draft {
	return Draft{Priority: PriorityMedium}
}

// DraftOf copies the editable fields of t.
func DraftOf(t *Task) Draft {
	return Draft{
		Title:       t.Title,
		Client:      t.Client,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
	}
}

// Valid reports whether the draft can be committed.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Title) != ""
}

// Options turns the draft into the full set of field overwrites.
func (d Draft) Options() []TaskOption {
	return []TaskOption{
		WithTitle(d.Title),
		WithClient(d.Client),
		WithDescription(d.Description),
		WithDueDate(d.DueDate),
		WithPriority(d.Priority),
	}
}
