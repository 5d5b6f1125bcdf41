package dto

import (
	"time"

	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/service"

	"github.com/google/uuid"
)

// TaskRequest carries the editable fields for both create and edit.
type TaskRequest struct {
	Title       string        `json:"title"`
	Client      string        `json:"client"`
	Description string        `json:"description"`
	DueDate     task.Date     `json:"due_date"`
	Priority    task.Priority `json:"priority"`
}

func (r TaskRequest) Draft() task.Draft {
	priority := r.Priority
	if priority == "" {
		priority = task.PriorityMedium
	}
	return task.Draft{
		Title:       r.Title,
		Client:      r.Client,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    priority,
	}
}

type TaskResponse struct {
	UUID        uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Client      string    `json:"client,omitempty"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	IsOverdue   bool      `json:"is_overdue"`
}

func FromTask(t *task.Task, now time.Time) TaskResponse {
	return TaskResponse{
		UUID:        t.UUID,
		Title:       t.Title,
		Client:      t.Client,
		Description: t.Description,
		DueDate:     t.DueDate.String(),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		IsOverdue:   service.IsOverdue(t, now),
	}
}

func FromRows(rows []service.Row, now time.Time) []TaskResponse {
	result := make([]TaskResponse, len(rows))
	for i, row := range rows {
		result[i] = FromTask(row.Task, now)
	}
	return result
}

type BoardResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	Pending   []TaskResponse `json:"pending"`
	Completed []TaskResponse `json:"completed"`
	Stats     service.Stats  `json:"stats"`
}

func FromTasks(tasks []*task.Task, now time.Time) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t, now)
	}
	return result
}

// FromSnapshot lists all tasks in store order next to the two partitions.
func FromSnapshot(s service.Snapshot) BoardResponse {
	return BoardResponse{
		Tasks:     FromTasks(s.Tasks, s.At),
		Pending:   FromRows(s.Pending, s.At),
		Completed: FromRows(s.Completed, s.At),
		Stats:     s.Stats,
	}
}
