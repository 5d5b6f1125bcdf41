// Package web serves the tracker as a server-rendered HTML page.
package web

import (
	"embed"
	"html/template"

	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/render"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/session"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Lang       string
	L          render.Locale
	Stats      service.Stats
	AddVisible bool
	Form       *formData
	Pending    []rowData
	Completed  []rowData
	Empty      bool
}

type formData struct {
	Editing      bool
	ConfirmLabel string
	Draft        task.Draft
	DueDate      string
	CanConfirm   bool
	Priorities   []priorityOption
}

type priorityOption struct {
	Value    string
	Label    string
	Selected bool
}

type rowData struct {
	ID            string
	Title         string
	Client        string
	Description   string
	DueDate       string
	CreatedAt     string
	PriorityLabel string
	PriorityClass string
	Overdue       bool
	OverdueLabel  string
	Completed     bool
	Editable      bool
	ToggleLabel   string
	EditLabel     string
	DeleteLabel   string
}

func buildPage(loc render.Locale, snap service.Snapshot, form session.FormView) pageData {
	page := pageData{
		Lang:       loc.Tag(),
		L:          loc,
		Stats:      snap.Stats,
		AddVisible: form.AddVisible,
		Empty:      snap.Empty(),
	}

	if !form.AddVisible {
		page.Form = &formData{
			Editing:      form.Editing,
			ConfirmLabel: loc.T(form.ConfirmLabel),
			Draft:        form.Draft,
			DueDate:      form.Draft.DueDate.String(),
			CanConfirm:   form.CanConfirm,
			Priorities:   priorityOptions(loc, form.Draft.Priority),
		}
	}

	for _, row := range snap.Pending {
		page.Pending = append(page.Pending, buildRow(loc, row))
	}
	for _, row := range snap.Completed {
		page.Completed = append(page.Completed, buildRow(loc, row))
	}
	return page
}

func buildRow(loc render.Locale, row service.Row) rowData {
	t := row.Task
	data := rowData{
		ID:            t.UUID.String(),
		Title:         t.Title,
		Description:   t.Description,
		CreatedAt:     loc.T("Created: %s", loc.Day(t.CreatedAt)),
		PriorityLabel: loc.Priority(t.Priority),
		PriorityClass: "priority-" + string(t.Priority),
		Overdue:       row.Overdue,
		OverdueLabel:  loc.T("Overdue"),
		Completed:     t.Completed,
		Editable:      row.Editable,
		ToggleLabel:   loc.T("Mark as done"),
		EditLabel:     loc.T("Edit"),
		DeleteLabel:   loc.T("Delete"),
	}
	if t.Completed {
		data.ToggleLabel = loc.T("Mark as pending")
	}
	if t.Client != "" {
		data.Client = loc.T("Client: %s", t.Client)
	}
	if !t.DueDate.IsZero() {
		data.DueDate = loc.T("Due: %s", loc.Date(t.DueDate))
	}
	return data
}

func priorityOptions(loc render.Locale, selected task.Priority) []priorityOption {
	options := make([]priorityOption, 0, len(task.Priorities))
	for _, p := range task.Priorities {
		options = append(options, priorityOption{
			Value:    string(p),
			Label:    loc.Priority(p),
			Selected: p == selected,
		})
	}
	return options
}
