package worker

import (
	"context"
	"fmt"
	"time"

	"clientTaskTracker/internal/logger"
	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskLister interface {
	ListTasks(context.Context) ([]*task.Task, error)
	Now() time.Time
}

// OverdueWorker watches the store and logs each task once when it turns overdue.
// Overdue is derived, so the worker never writes to the store.
type OverdueWorker struct {
	tasks    TaskLister
	interval time.Duration
	reported map[uuid.UUID]struct{}
}

func NewOverdueWorker(tasks TaskLister, interval *time.Duration) *OverdueWorker {
	var intervalToSet time.Duration
	if interval == nil || *interval <= 0 {
		intervalToSet = time.Minute
	} else {
		intervalToSet = *interval
	}

	return &OverdueWorker{
		tasks:    tasks,
		interval: intervalToSet,
		reported: make(map[uuid.UUID]struct{}),
	}
}

func (w *OverdueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Worker: overdue watcher started", zap.Duration("interval", w.interval))
	w.Check(ctx)

	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: overdue watcher stopping")
			return
		}
	}
}

// Check returns how many tasks became overdue since the previous call.
func (w *OverdueWorker) Check(ctx context.Context) int {
	start := time.Now()

	tasks, err := w.listTasks(ctx)
	if err != nil {
		logger.Warn("Worker: cannot list tasks", zap.Error(err))
		return 0
	}

	now := w.tasks.Now()
	current := make(map[uuid.UUID]struct{})
	newlyOverdue := 0

	for _, t := range tasks {
		if !service.IsOverdue(t, now) {
			continue
		}
		current[t.UUID] = struct{}{}
		if _, seen := w.reported[t.UUID]; seen {
			continue
		}

		newlyOverdue++
		logger.Warn("Worker: task is overdue",
			zap.String("task_id", t.UUID.String()),
			zap.String("title", t.Title),
			zap.String("client", t.Client),
			zap.String("due_date", t.DueDate.String()))
	}

	// forget tasks that were completed, deleted or rescheduled
	w.reported = current

	logger.Info("Worker: overdue check finished",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", len(tasks)),
		zap.Int("overdue", len(current)),
		zap.Int("newly_overdue", newlyOverdue))

	return newlyOverdue
}

func (w *OverdueWorker) listTasks(ctx context.Context) ([]*task.Task, error) {
	tasks, err := w.tasks.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}
