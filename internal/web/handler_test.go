package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/render"
	"clientTaskTracker/internal/repository/task/inmemory"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/session"
	"clientTaskTracker/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

type PageSuite struct {
	suite.Suite
	ctx    context.Context
	svc    *service.TaskService
	sess   *session.Session
	router http.Handler
}

func TestPageSuite(t *testing.T) {
	suite.Run(t, new(PageSuite))
}

func (s *PageSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = service.NewTaskService(inmemory.NewTaskStorage(), service.WithClock(func() time.Time { return fixedNow }))
	s.sess = session.New(s.svc)

	r := chi.NewRouter()
	web.NewHandler(s.svc, s.sess, render.MustLocale("en-US")).Routes(r)
	s.router = r
}

func (s *PageSuite) page() string {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	return rec.Body.String()
}

func (s *PageSuite) post(target string, form url.Values) {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/", rec.Header().Get("Location"))
}

func (s *PageSuite) addTask(draft task.Draft) *task.Task {
	created, err := s.svc.AddTask(s.ctx, draft)
	s.Require().NoError(err)
	return created
}

func (s *PageSuite) TestEmptyState() {
	html := s.page()

	s.Contains(html, `id="empty-state"`)
	s.Contains(html, `id="add-task"`)
	s.NotContains(html, `id="task-form"`)
	s.Contains(html, `<strong id="stat-total">0</strong>`)
	s.NotContains(html, `id="pending"`)
}

func (s *PageSuite) TestCreateThroughForm() {
	s.post("/form/new", nil)

	html := s.page()
	s.Contains(html, `id="task-form"`)
	s.NotContains(html, `id="add-task"`, "add control hidden while the form is open")
	s.Contains(html, `id="confirm" disabled`)

	s.post("/form/confirm", url.Values{
		"title":    {"Draft contract"},
		"client":   {"Acme"},
		"due_date": {"2020-01-01"},
		"priority": {"high"},
	})

	html = s.page()
	s.NotContains(html, `id="task-form"`)
	s.Contains(html, `id="add-task"`)
	s.Contains(html, `<strong id="stat-pending">1</strong>`)
	s.Contains(html, `<strong id="stat-completed">0</strong>`)
	s.Contains(html, "Draft contract")
	s.Contains(html, "Client: Acme")
	s.Contains(html, "Due: 1/1/2020")
	s.Contains(html, `class="badge overdue"`)
	s.Contains(html, "High priority")
}

func (s *PageSuite) TestBlankTitleKeepsFormOpen() {
	s.post("/form/new", nil)
	s.post("/form/confirm", url.Values{"title": {"   "}, "client": {"Acme"}})

	html := s.page()
	s.Contains(html, `id="task-form"`)
	s.Contains(html, `value="Acme"`)
	s.Contains(html, `id="empty-state"`)
}

func (s *PageSuite) TestCancelClosesForm() {
	s.post("/form/new", nil)
	s.post("/form/cancel", nil)

	html := s.page()
	s.NotContains(html, `id="task-form"`)
	s.Contains(html, `id="add-task"`)
}

func (s *PageSuite) TestEditPrefillsAndSaves() {
	existing := s.addTask(task.Draft{Title: "Logo design", Client: "Beta", Priority: task.PriorityLow})

	s.post("/form/edit/"+existing.UUID.String(), nil)
	html := s.page()
	s.Contains(html, "Edit task")
	s.Contains(html, "Save changes")
	s.Contains(html, `value="Logo design"`)
	s.Contains(html, `<option value="low" selected>`)

	s.post("/form/confirm", url.Values{"title": {"Logo design v2"}, "client": {"Beta"}, "priority": {"low"}})

	stored, err := s.svc.GetTask(s.ctx, existing.UUID)
	s.Require().NoError(err)
	s.Equal("Logo design v2", stored.Title)
	s.Equal(existing.CreatedAt, stored.CreatedAt)
}

func (s *PageSuite) TestToggleMovesTaskAndHidesEdit() {
	report := s.addTask(task.Draft{Title: "Report"})
	s.Contains(s.page(), `action="/form/edit/`+report.UUID.String()+`"`)

	s.post("/tasks/"+report.UUID.String()+"/toggle", nil)

	html := s.page()
	s.Contains(html, `<strong id="stat-pending">0</strong>`)
	s.Contains(html, `<strong id="stat-completed">1</strong>`)
	s.Contains(html, `id="completed"`)
	s.NotContains(html, `id="pending"`)
	s.NotContains(html, `action="/form/edit/`+report.UUID.String()+`"`)
}

func (s *PageSuite) TestDeleteLastTaskShowsEmptyState() {
	report := s.addTask(task.Draft{Title: "Report"})

	s.post("/tasks/"+report.UUID.String()+"/delete", nil)

	s.Contains(s.page(), `id="empty-state"`)
}

func (s *PageSuite) TestUnknownIdsAreIgnored() {
	s.addTask(task.Draft{Title: "Report"})

	s.post("/tasks/00000000-0000-0000-0000-000000000000/toggle", nil)
	s.post("/tasks/not-a-uuid/delete", nil)
	s.post("/form/edit/0190d3a4-0000-7000-8000-000000000009", nil)

	html := s.page()
	s.Contains(html, `<strong id="stat-total">1</strong>`)
	s.Contains(html, `id="add-task"`)
}

func TestIndex_ThaiLocale(t *testing.T) {
	svc := service.NewTaskService(inmemory.NewTaskStorage(), service.WithClock(func() time.Time { return fixedNow }))
	_, err := svc.AddTask(context.Background(), task.Draft{
		Title:   "ออกแบบโลโก้",
		DueDate: task.Date{Year: 2024, Month: time.March, Day: 15},
	})
	require.NoError(t, err)

	h := web.NewHandler(svc, session.New(svc), render.MustLocale("th-TH"))
	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `lang="th-TH"`)
	assert.Contains(t, body, "ส่งมอบ: 15/3/2567")
	assert.Contains(t, body, "สำคัญปานกลาง")
}
