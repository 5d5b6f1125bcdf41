// Package session holds the per-session draft form that sits in front of the task store.
package session

import (
	"context"
	"sync"

	"clientTaskTracker/internal/logger"
	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskStore interface {
	AddTask(context.Context, task.Draft) (*task.Task, error)
	CommitEdit(context.Context, uuid.UUID, task.Draft) (*task.Task, error)
	GetTask(context.Context, uuid.UUID) (*task.Task, error)
}

// Session is the draft form of one user session. The draft is a private copy
// and reaches the store only through Confirm.
type Session struct {
	store TaskStore
	mtx   sync.Mutex
	mode  Mode
	draft task.Draft
}

func New(store TaskStore) *Session {
	return &Session{
		store: store,
		mode:  Idle{},
		draft: task.NewDraft(),
	}
}

func (s *Session) Mode() Mode {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.mode
}

func (s *Session) Draft() task.Draft {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.draft
}

// AddVisible reports whether the add control is offered.
func (s *Session) AddVisible() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	_, idle := s.mode.(Idle)
	return idle
}

// EditingID returns the task under edit, if any.
func (s *Session) EditingID() (uuid.UUID, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	editing, ok := s.mode.(Editing)
	return editing.TaskID, ok
}

func (s *Session) StartCreate() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, idle := s.mode.(Idle); !idle {
		return false
	}
	s.mode = Creating{}
	s.draft = task.NewDraft()
	return true
}

// StartEdit copies the task's editable fields into the draft. Completed tasks
// have no edit control, so they are refused.
func (s *Session) StartEdit(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, idle := s.mode.(Idle); !idle {
		return false, nil
	}

	target, err := s.store.GetTask(ctx, id)
	if err != nil {
		return false, err
	}
	if target.Completed {
		return false, nil
	}

	s.mode = Editing{TaskID: id}
	s.draft = task.DraftOf(target)
	return true, nil
}

// SetDraft replaces the in-progress values; ignored while idle.
func (s *Session) SetDraft(d task.Draft) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, idle := s.mode.(Idle); idle {
		return false
	}
	if d.Priority == "" {
		d.Priority = task.PriorityMedium
	}
	s.draft = d
	return true
}

func (s *Session) CanConfirm() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, idle := s.mode.(Idle); idle {
		return false
	}
	return s.draft.Valid()
}

// Confirm commits the draft. With an empty title nothing happens and the form
// stays open. If the edited task vanished meanwhile the form is closed.
func (s *Session) Confirm(ctx context.Context) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, idle := s.mode.(Idle); idle {
		return nil, nil
	}
	if !s.draft.Valid() {
		return nil, service.NewValidationError("title", "must not be empty")
	}

	var (
		committed *task.Task
		err       error
	)
	switch mode := s.mode.(type) {
	case Creating:
		committed, err = s.store.AddTask(ctx, s.draft)
	case Editing:
		committed, err = s.store.CommitEdit(ctx, mode.TaskID, s.draft)
		if service.HasCode(err, service.CodeNotFound) {
			logger.Warn("Session: edited task is gone, closing form", zap.String("task_id", mode.TaskID.String()))
			s.reset()
		}
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.reset()
	return committed, nil
}

// ConfirmLabel is the label key of the confirm control; empty while idle.
func (s *Session) ConfirmLabel() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.confirmLabel()
}

// FormView is the whole form state read at one instant.
type FormView struct {
	Mode         Mode
	Draft        task.Draft
	EditingID    uuid.UUID
	Editing      bool
	AddVisible   bool
	CanConfirm   bool
	ConfirmLabel string
}

// View reads every form field under a single lock, so a render never mixes
// the state before and after a concurrent transition.
func (s *Session) View() FormView {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	_, idle := s.mode.(Idle)
	editing, isEditing := s.mode.(Editing)
	return FormView{
		Mode:         s.mode,
		Draft:        s.draft,
		EditingID:    editing.TaskID,
		Editing:      isEditing,
		AddVisible:   idle,
		CanConfirm:   !idle && s.draft.Valid(),
		ConfirmLabel: s.confirmLabel(),
	}
}

func (s *Session) confirmLabel() string {
	switch s.mode.(type) {
	case Creating:
		return "Add task"
	case Editing:
		return "Save changes"
	default:
		return ""
	}
}

// Cancel drops the draft without touching the store.
func (s *Session) Cancel() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.reset()
}

func (s *Session) reset() {
	s.mode = Idle{}
	s.draft = task.NewDraft()
}
