package service

import (
	"time"

	"clientTaskTracker/internal/models/task"
)

// Pending keeps store order.
func Pending(tasks []*task.Task) []*task.Task {
	res := []*task.Task{}
	for _, t := range tasks {
		if !t.Completed {
			res = append(res, t)
		}
	}
	return res
}

func Completed(tasks []*task.Task) []*task.Task {
	res := []*task.Task{}
	for _, t := range tasks {
		if t.Completed {
			res = append(res, t)
		}
	}
	return res
}

// IsOverdue is true for a pending task whose due day began before now.
// The due day is read as midnight UTC, so the flag depends on the clock only.
func IsOverdue(t *task.Task, now time.Time) bool {
	if t.Completed || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Time().Before(now)
}

type Stats struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Row is a task ready for rendering.
type Row struct {
	Task     *task.Task
	Overdue  bool
	Editable bool
}

// Snapshot is the derived view of the store at one instant. It is rebuilt on
// every render and never stored.
type Snapshot struct {
	// Tasks keeps store order.
	Tasks     []*task.Task
	Pending   []Row
	Completed []Row
	Stats     Stats
	At        time.Time
}

func NewSnapshot(tasks []*task.Task, now time.Time) Snapshot {
	pending := Pending(tasks)
	completed := Completed(tasks)

	snap := Snapshot{
		Tasks:     tasks,
		Pending:   make([]Row, 0, len(pending)),
		Completed: make([]Row, 0, len(completed)),
		Stats: Stats{
			Pending:   len(pending),
			Completed: len(completed),
			Total:     len(tasks),
		},
		At: now,
	}
	for _, t := range pending {
		snap.Pending = append(snap.Pending, Row{Task: t, Overdue: IsOverdue(t, now), Editable: true})
	}
	for _, t := range completed {
		snap.Completed = append(snap.Completed, Row{Task: t})
	}
	return snap
}

func (s Snapshot) Empty() bool {
	return s.Stats.Total == 0
}

// Rows lists pending rows first, then completed ones, the order both front-ends display.
func (s Snapshot) Rows() []Row {
	rows := make([]Row, 0, len(s.Pending)+len(s.Completed))
	rows = append(rows, s.Pending...)
	return append(rows, s.Completed...)
}
