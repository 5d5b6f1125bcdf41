package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clientTaskTracker/internal/logger"
	"clientTaskTracker/internal/models/task"
	rep "clientTaskTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const resourceTask = "task"

// TaskService owns every mutation of the task store. An operation that is
// rejected leaves the store exactly as it was; the returned BusinessError only
// tells the caller why nothing happened.
type TaskService struct {
	repo  TaskRepository
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

type Option func(*TaskService)

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() (uuid.UUID, error)) Option {
	return func(s *TaskService) {
		s.newID = newID
	}
}

func NewTaskService(repo TaskRepository, options ...Option) *TaskService {
	s := &TaskService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewV7,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Now is the clock every derived view is evaluated against.
func (s *TaskService) Now() time.Time {
	return s.now()
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("service health check: %w", err)
	}
	return nil
}

func (s *TaskService) AddTask(ctx context.Context, draft task.Draft) (*task.Task, error) {
	if !draft.Valid() {
		logger.Info("Service: empty title, task not added")
		return nil, NewValidationError("title", "must not be empty")
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate task id: %w", err)
	}

	newTask := &task.Task{
		UUID:      id,
		Completed: false,
		CreatedAt: s.now(),
	}
	task.Apply(newTask, draft.Options()...)

	if err := s.repo.Create(ctx, newTask); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	logger.Info("Service: task added",
		zap.String("task_id", id.String()),
		zap.String("priority", string(newTask.Priority)))
	return newTask, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return found, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*task.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) ToggleComplete(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	toggled, err := s.repo.Modify(ctx, id, func(t *task.Task) {
		t.Completed = !t.Completed
	})
	if err != nil {
		return nil, s.lookupError(id, err)
	}

	logger.Info("Service: completion toggled",
		zap.String("task_id", id.String()),
		zap.Bool("completed", toggled.Completed))
	return toggled, nil
}

// CommitEdit overwrites the editable fields; id, completion and creation date stay.
func (s *TaskService) CommitEdit(ctx context.Context, id uuid.UUID, draft task.Draft) (*task.Task, error) {
	if !draft.Valid() {
		logger.Info("Service: empty title, edit not saved", zap.String("task_id", id.String()))
		return nil, NewValidationError("title", "must not be empty")
	}

	edited, err := s.repo.Modify(ctx, id, func(t *task.Task) {
		task.Apply(t, draft.Options()...)
	})
	if err != nil {
		return nil, s.lookupError(id, err)
	}

	logger.Info("Service: edit committed", zap.String("task_id", id.String()))
	return edited, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.lookupError(id, err)
	}

	logger.Info("Service: task deleted", zap.String("task_id", id.String()))
	return nil
}

func (s *TaskService) Snapshot(ctx context.Context) (Snapshot, error) {
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return NewSnapshot(tasks, s.now()), nil
}

func (s *TaskService) lookupError(id uuid.UUID, err error) error {
	if errors.Is(err, rep.ErrNotFound) {
		logger.Info("Service: task not found", zap.String("target_id", id.String()))
		return NewNotFound(resourceTask, id.String(), err)
	}
	return fmt.Errorf("task %s: %w", id.String(), err)
}
