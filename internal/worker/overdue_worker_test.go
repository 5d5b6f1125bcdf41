package worker_test

import (
	"context"
	"testing"
	"time"

	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/repository/task/inmemory"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func TestOverdueWorker_Check(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewTaskService(inmemory.NewTaskStorage(), service.WithClock(c.Now))
	w := worker.NewOverdueWorker(svc, nil)

	late, err := svc.AddTask(ctx, task.Draft{Title: "late", DueDate: task.Date{Year: 2024, Month: time.March, Day: 1}})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, task.Draft{Title: "tomorrow", DueDate: task.Date{Year: 2024, Month: time.March, Day: 11}})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, task.Draft{Title: "no date"})
	require.NoError(t, err)

	assert.Equal(t, 1, w.Check(ctx))
	assert.Equal(t, 0, w.Check(ctx), "already reported")

	c.now = time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 1, w.Check(ctx), "tomorrow's task turned overdue")

	// completing and reopening reports the task again
	_, err = svc.ToggleComplete(ctx, late.UUID)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Check(ctx))
	_, err = svc.ToggleComplete(ctx, late.UUID)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Check(ctx))
}

func TestOverdueWorker_StartStopsWithContext(t *testing.T) {
	svc := service.NewTaskService(inmemory.NewTaskStorage())
	interval := 10 * time.Millisecond
	w := worker.NewOverdueWorker(svc, &interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
