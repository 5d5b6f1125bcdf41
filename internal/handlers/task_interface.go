package handlers

import (
	"context"
	"time"

	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/service"

	"github.com/google/uuid"
)

type Service interface {
	HealthCheck(context.Context) error
	AddTask(context.Context, task.Draft) (*task.Task, error)
	GetTask(context.Context, uuid.UUID) (*task.Task, error)
	ToggleComplete(context.Context, uuid.UUID) (*task.Task, error)
	CommitEdit(context.Context, uuid.UUID, task.Draft) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
	Snapshot(context.Context) (service.Snapshot, error)
	Now() time.Time
}
