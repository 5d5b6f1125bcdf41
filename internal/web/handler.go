package web

import (
	"bytes"
	"context"
	"net/http"

	"clientTaskTracker/internal/logger"
	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/render"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService interface {
	ToggleComplete(context.Context, uuid.UUID) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
	Snapshot(context.Context) (service.Snapshot, error)
}

// Handler renders the page and applies the user's actions. Every action ends
// with a redirect to "/", so a reload never repeats it. Rejected actions are
// dropped silently, the way the page offers no error surface.
type Handler struct {
	tasks   TaskService
	session *session.Session
	locale  render.Locale
}

func NewHandler(tasks TaskService, sess *session.Session, locale render.Locale) *Handler {
	return &Handler{
		tasks:   tasks,
		session: sess,
		locale:  locale,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Index)

	r.Route("/form", func(r chi.Router) {
		r.Post("/new", h.StartCreate)
		r.Post("/edit/{id}", h.StartEdit)
		r.Post("/confirm", h.Confirm)
		r.Post("/cancel", h.Cancel)
	})

	r.Post("/tasks/{id}/toggle", h.Toggle)
	r.Post("/tasks/{id}/delete", h.Delete)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	snap, err := h.tasks.Snapshot(r.Context())
	if err != nil {
		logger.Error("Web: cannot build snapshot", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, buildPage(h.locale, snap, h.session.View())); err != nil {
		logger.Error("Web: cannot render page", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) StartCreate(w http.ResponseWriter, r *http.Request) {
	if !h.session.StartCreate() {
		logger.Info("Web: form already open, create ignored")
	}
	backToIndex(w, r)
}

func (h *Handler) StartEdit(w http.ResponseWriter, r *http.Request) {
	if id, ok := idParam(r); ok {
		started, err := h.session.StartEdit(r.Context(), id)
		if err != nil || !started {
			logger.Info("Web: edit not started", zap.String("task_id", id.String()), zap.Error(err))
		}
	}
	backToIndex(w, r)
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.Warn("Web: cannot parse form", zap.Error(err))
		backToIndex(w, r)
		return
	}

	h.session.SetDraft(draftFromForm(r))
	committed, err := h.session.Confirm(r.Context())
	switch {
	case err != nil:
		logger.Info("Web: draft not committed", zap.Error(err))
	case committed != nil:
		logger.Info("Web: draft committed", zap.String("task_id", committed.UUID.String()))
	}
	backToIndex(w, r)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.session.Cancel()
	backToIndex(w, r)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	if id, ok := idParam(r); ok {
		if _, err := h.tasks.ToggleComplete(r.Context(), id); err != nil {
			logger.Info("Web: toggle ignored", zap.String("task_id", id.String()), zap.Error(err))
		}
	}
	backToIndex(w, r)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := idParam(r); ok {
		if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
			logger.Info("Web: delete ignored", zap.String("task_id", id.String()), zap.Error(err))
		}
	}
	backToIndex(w, r)
}

// draftFromForm reads the form fields. A malformed date is dropped rather than
// blocking the save, since the date picker only ever sends YYYY-MM-DD.
func draftFromForm(r *http.Request) task.Draft {
	dueDate, err := task.ParseDate(r.PostFormValue("due_date"))
	if err != nil {
		logger.Warn("Web: malformed due date dropped", zap.Error(err))
	}
	return task.Draft{
		Title:       r.PostFormValue("title"),
		Client:      r.PostFormValue("client"),
		Description: r.PostFormValue("description"),
		DueDate:     dueDate,
		Priority:    task.ParsePriority(r.PostFormValue("priority")),
	}
}

func idParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		logger.Warn("Web: bad task id", zap.String("id", chi.URLParam(r, "id")))
		return uuid.Nil, false
	}
	return id, true
}

func backToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
