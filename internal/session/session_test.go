package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/repository/task/inmemory"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionSuite struct {
	suite.Suite
	ctx     context.Context
	storage *inmemory.TaskStorage
	svc     *service.TaskService
	sess    *session.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = inmemory.NewTaskStorage()
	s.svc = service.NewTaskService(s.storage)
	s.sess = session.New(s.svc)
}

func (s *SessionSuite) addTask(title string) *task.Task {
	created, err := s.svc.AddTask(s.ctx, task.Draft{Title: title, Priority: task.PriorityHigh})
	s.Require().NoError(err)
	return created
}

func (s *SessionSuite) TestStartsIdle() {
	s.Equal(session.Idle{}, s.sess.Mode())
	s.True(s.sess.AddVisible())
	s.False(s.sess.CanConfirm())
	s.Equal(task.NewDraft(), s.sess.Draft())
}

func (s *SessionSuite) TestCreateFlow() {
	s.Require().True(s.sess.StartCreate())
	s.Equal(session.Creating{}, s.sess.Mode())
	s.False(s.sess.AddVisible())
	s.False(s.sess.CanConfirm())

	draft := task.Draft{Title: "Website redesign", Client: "Acme", Priority: task.PriorityLow}
	s.True(s.sess.SetDraft(draft))
	s.True(s.sess.CanConfirm())

	created, err := s.sess.Confirm(s.ctx)
	s.Require().NoError(err)
	s.Equal(draft, task.DraftOf(created))
	s.False(created.Completed)

	s.Equal(session.Idle{}, s.sess.Mode())
	s.Equal(task.NewDraft(), s.sess.Draft())
	s.Equal(1, s.storage.Len())
}

func (s *SessionSuite) TestStartCreateResetsDraft() {
	s.Require().True(s.sess.StartCreate())
	s.sess.SetDraft(task.Draft{Title: "half typed"})
	s.sess.Cancel()

	s.Require().True(s.sess.StartCreate())
	s.Equal(task.NewDraft(), s.sess.Draft())
}

func (s *SessionSuite) TestOnlyOneModeAtATime() {
	existing := s.addTask("a")

	s.Require().True(s.sess.StartCreate())
	ok, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.NoError(err)
	s.False(ok)
	s.Equal(session.Creating{}, s.sess.Mode())

	s.sess.Cancel()
	ok, err = s.sess.StartEdit(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.False(s.sess.StartCreate())
	s.Equal(session.Editing{TaskID: existing.UUID}, s.sess.Mode())
}

func (s *SessionSuite) TestBlankTitleKeepsFormOpen() {
	s.Require().True(s.sess.StartCreate())
	s.sess.SetDraft(task.Draft{Title: "  ", Client: "Acme"})
	s.False(s.sess.CanConfirm())

	created, err := s.sess.Confirm(s.ctx)
	s.Nil(created)
	s.True(service.HasCode(err, service.CodeValidation))

	s.Equal(session.Creating{}, s.sess.Mode())
	s.Equal("Acme", s.sess.Draft().Client)
	s.Equal(0, s.storage.Len())
}

func (s *SessionSuite) TestEditFlow() {
	existing := s.addTask("Logo design")

	ok, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(task.DraftOf(existing), s.sess.Draft())
	id, editing := s.sess.EditingID()
	s.True(editing)
	s.Equal(existing.UUID, id)

	draft := s.sess.Draft()
	draft.Title = "Logo design v2"
	s.sess.SetDraft(draft)

	// the store does not see the draft before Confirm
	stored, err := s.svc.GetTask(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.Equal("Logo design", stored.Title)

	edited, err := s.sess.Confirm(s.ctx)
	s.Require().NoError(err)
	s.Equal("Logo design v2", edited.Title)
	s.Equal(existing.CreatedAt, edited.CreatedAt)
	s.Equal(session.Idle{}, s.sess.Mode())
}

func (s *SessionSuite) TestCancelDiscardsEdit() {
	existing := s.addTask("Logo design")

	_, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.sess.SetDraft(task.Draft{Title: "never saved"})
	s.sess.Cancel()

	stored, err := s.svc.GetTask(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.Equal(existing, stored)
	s.Equal(session.Idle{}, s.sess.Mode())
	s.Equal(task.NewDraft(), s.sess.Draft())
}

func (s *SessionSuite) TestEditRefusesCompletedTask() {
	existing := s.addTask("Report")
	_, err := s.svc.ToggleComplete(s.ctx, existing.UUID)
	s.Require().NoError(err)

	ok, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.NoError(err)
	s.False(ok)
	s.Equal(session.Idle{}, s.sess.Mode())
}

func (s *SessionSuite) TestEditUnknownTask() {
	ok, err := s.sess.StartEdit(s.ctx, uuid.New())
	s.False(ok)
	s.True(service.HasCode(err, service.CodeNotFound))
	s.Equal(session.Idle{}, s.sess.Mode())
}

func (s *SessionSuite) TestEditedTaskDeletedMeanwhile() {
	existing := s.addTask("Report")
	_, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteTask(s.ctx, existing.UUID))

	_, err = s.sess.Confirm(s.ctx)
	s.True(service.HasCode(err, service.CodeNotFound))
	s.Equal(session.Idle{}, s.sess.Mode())
	s.Equal(0, s.storage.Len())
}

func (s *SessionSuite) TestIdleIgnoresDraftAndConfirm() {
	s.False(s.sess.SetDraft(task.Draft{Title: "x"}))
	s.Equal(task.NewDraft(), s.sess.Draft())

	created, err := s.sess.Confirm(s.ctx)
	s.NoError(err)
	s.Nil(created)
	s.Equal(0, s.storage.Len())
}

func (s *SessionSuite) TestConfirmLabelFollowsMode() {
	s.Equal("", s.sess.ConfirmLabel())

	s.Require().True(s.sess.StartCreate())
	s.Equal("Add task", s.sess.ConfirmLabel())
	s.sess.Cancel()

	existing := s.addTask("a")
	_, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.Equal("Save changes", s.sess.ConfirmLabel())
}

func (s *SessionSuite) TestViewFollowsMode() {
	idle := s.sess.View()
	s.Equal(session.Idle{}, idle.Mode)
	s.True(idle.AddVisible)
	s.False(idle.Editing)
	s.False(idle.CanConfirm)
	s.Empty(idle.ConfirmLabel)
	s.Equal(task.NewDraft(), idle.Draft)

	s.Require().True(s.sess.StartCreate())
	s.sess.SetDraft(task.Draft{Title: "Logo"})
	creating := s.sess.View()
	s.False(creating.AddVisible)
	s.False(creating.Editing)
	s.True(creating.CanConfirm)
	s.Equal("Add task", creating.ConfirmLabel)
	s.Equal("Logo", creating.Draft.Title)
	s.sess.Cancel()

	existing := s.addTask("Brochure")
	_, err := s.sess.StartEdit(s.ctx, existing.UUID)
	s.Require().NoError(err)
	editing := s.sess.View()
	s.Equal(session.Editing{TaskID: existing.UUID}, editing.Mode)
	s.True(editing.Editing)
	s.Equal(existing.UUID, editing.EditingID)
	s.Equal("Save changes", editing.ConfirmLabel)
	s.Equal(task.DraftOf(existing), editing.Draft)
}

func TestSession_ViewNeverMixesStates(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(inmemory.NewTaskStorage())
	existing, err := svc.AddTask(ctx, task.Draft{Title: "Brochure", Priority: task.PriorityHigh})
	require.NoError(t, err)
	sess := session.New(svc)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_, err := sess.StartEdit(ctx, existing.UUID)
			assert.NoError(t, err)
			sess.Cancel()
		}
	}()

	for i := 0; i < 2000; i++ {
		view := sess.View()
		if view.Editing {
			assert.Equal(t, "Save changes", view.ConfirmLabel)
			assert.Equal(t, existing.UUID, view.EditingID)
			assert.Equal(t, "Brochure", view.Draft.Title)
			assert.True(t, view.CanConfirm)
			assert.False(t, view.AddVisible)
		} else {
			assert.Equal(t, session.Idle{}, view.Mode)
			assert.Empty(t, view.ConfirmLabel)
			assert.Equal(t, task.NewDraft(), view.Draft)
			assert.False(t, view.CanConfirm)
			assert.True(t, view.AddVisible)
		}
	}
	close(done)
	wg.Wait()
}

func TestSession_SetDraftDefaultsPriority(t *testing.T) {
	sess := session.New(service.NewTaskService(inmemory.NewTaskStorage()))
	require.True(t, sess.StartCreate())

	sess.SetDraft(task.Draft{Title: "x", DueDate: task.Date{Year: 2024, Month: time.May, Day: 1}})
	assert.Equal(t, task.PriorityMedium, sess.Draft().Priority)
}
