// Package tui is the terminal front-end of the tracker.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clientTaskTracker/internal/logger"
	"clientTaskTracker/internal/models/task"
	"clientTaskTracker/internal/render"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/session"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService interface {
	Snapshot(context.Context) (service.Snapshot, error)
	ToggleComplete(context.Context, uuid.UUID) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
}

type field int

const (
	fieldTitle field = iota
	fieldClient
	fieldDueDate
	fieldPriority
	fieldDescription
	fieldCount
)

type tickMsg time.Time

type Model struct {
	ctx     context.Context
	tasks   TaskService
	session *session.Session
	loc     render.Locale
	refresh time.Duration

	snap   service.Snapshot
	cursor int

	// inputs is indexed by field; the priority and description slots stay unused.
	inputs      [fieldCount]textinput.Model
	description textarea.Model
	focus       field
	priority    task.Priority

	status string
}

func New(ctx context.Context, tasks TaskService, sess *session.Session, loc render.Locale, refresh time.Duration) Model {
	m := Model{
		ctx:      ctx,
		tasks:    tasks,
		session:  sess,
		loc:      loc,
		refresh:  refresh,
		priority: task.PriorityMedium,
	}

	m.inputs[fieldTitle] = newInput(loc.T("What needs to be done"), 200)
	m.inputs[fieldClient] = newInput(loc.T("Client or company name"), 120)
	m.inputs[fieldDueDate] = newInput("YYYY-MM-DD", len(task.DateLayout))
	m.description = newTextarea(loc.T("Scope, special requirements"), 1000)

	m.reload()
	return m
}

func Run(ctx context.Context, tasks TaskService, sess *session.Session, loc render.Locale, refresh time.Duration) error {
	program := tea.NewProgram(New(ctx, tasks, sess, loc, refresh), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 48
	return in
}

func newTextarea(placeholder string, limit int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = limit
	ta.ShowLineNumbers = false
	ta.SetWidth(48)
	ta.SetHeight(3)
	return ta
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick re-renders on a timer so overdue badges follow the clock.
func (m Model) tick() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.reload()
		return m, m.tick()
	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-20, 20)
		}
		m.description.SetWidth(max(msg.Width-20, 20))
		return m, nil
	case tea.KeyMsg:
		if m.formOpen() {
			return m.updateForm(msg)
		}
		return m.updateList(msg.String())
	}
	return m, nil
}

func (m Model) formOpen() bool {
	_, idle := m.session.Mode().(session.Idle)
	return !idle
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	rows := m.snap.Rows()

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(rows))
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(rows))
	case "n":
		if m.session.StartCreate() {
			cmd := m.openForm()
			return m, cmd
		}
	case "e":
		if len(rows) == 0 || !rows[m.cursor].Editable {
			return m, nil
		}
		started, err := m.session.StartEdit(m.ctx, rows[m.cursor].Task.UUID)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		if started {
			cmd := m.openForm()
			return m, cmd
		}
	case " ", "space":
		if len(rows) == 0 {
			return m, nil
		}
		if _, err := m.tasks.ToggleComplete(m.ctx, rows[m.cursor].Task.UUID); err != nil {
			m.fail(err)
		}
		m.reload()
	case "d":
		if len(rows) == 0 {
			return m, nil
		}
		if err := m.tasks.DeleteTask(m.ctx, rows[m.cursor].Task.UUID); err != nil {
			m.fail(err)
		} else {
			m.status = m.loc.T("Task deleted")
		}
		m.reload()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.session.Cancel()
		m.status = m.loc.T("Cancelled")
		m.blurAll()
		return m, nil
	case "ctrl+s":
		return m.confirm()
	case "tab":
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case "shift+tab":
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	// The description takes enter and the arrows for itself.
	if m.focus == fieldDescription {
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		m.syncDraft()
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		return m.confirm()
	case "down":
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case "up":
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	if m.focus == fieldPriority {
		switch msg.String() {
		case "left", "h":
			m.priority = shiftPriority(m.priority, -1)
		case "right", "l", " ":
			m.priority = shiftPriority(m.priority, 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncDraft()
	return m, cmd
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	if _, err := task.ParseDate(m.inputs[fieldDueDate].Value()); err != nil {
		m.status = m.loc.T("Invalid date, use YYYY-MM-DD")
		cmd := m.focusField(fieldDueDate)
		return m, cmd
	}
	m.syncDraft()
	if !m.session.CanConfirm() {
		m.status = m.loc.T("Title is required")
		cmd := m.focusField(fieldTitle)
		return m, cmd
	}

	_, editing := m.session.EditingID()
	committed, err := m.session.Confirm(m.ctx)
	if err != nil {
		m.fail(err)
	} else if committed != nil {
		m.status = m.loc.T("Task added")
		if editing {
			m.status = m.loc.T("Changes saved")
		}
	}
	if !m.formOpen() {
		m.blurAll()
	}
	m.reload()
	return m, nil
}

// openForm loads the session draft into the inputs.
func (m *Model) openForm() tea.Cmd {
	draft := m.session.Draft()
	m.inputs[fieldTitle].SetValue(draft.Title)
	m.inputs[fieldClient].SetValue(draft.Client)
	m.inputs[fieldDueDate].SetValue(draft.DueDate.String())
	m.description.SetValue(draft.Description)
	m.priority = draft.Priority
	m.status = ""
	return m.focusField(fieldTitle)
}

// syncDraft pushes the inputs back into the session. An unparsable date is
// kept in the input only; confirm refuses it.
func (m *Model) syncDraft() {
	dueDate, _ := task.ParseDate(m.inputs[fieldDueDate].Value())
	m.session.SetDraft(task.Draft{
		Title:       m.inputs[fieldTitle].Value(),
		Client:      m.inputs[fieldClient].Value(),
		Description: m.description.Value(),
		DueDate:     dueDate,
		Priority:    m.priority,
	})
}

func (m *Model) focusField(f field) tea.Cmd {
	m.blurAll()
	m.focus = f
	switch f {
	case fieldPriority:
		return nil
	case fieldDescription:
		return m.description.Focus()
	}
	return m.inputs[f].Focus()
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.description.Blur()
}

func (m *Model) reload() {
	snap, err := m.tasks.Snapshot(m.ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.snap = snap
	m.cursor = clampCursor(m.cursor, len(snap.Rows()))
}

func (m *Model) fail(err error) {
	logger.Warn("TUI: action rejected", zap.Error(err))
}

func shiftPriority(p task.Priority, step int) task.Priority {
	n := len(task.Priorities)
	for i, candidate := range task.Priorities {
		if candidate == p {
			return task.Priorities[(i+step+n)%n]
		}
	}
	return task.PriorityMedium
}

func clampCursor(cursor, length int) int {
	if length == 0 || cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.loc.T("Client Task Tracker")) + "\n")
	b.WriteString(subtitleStyle.Render(m.loc.T("Keep track of work owed to clients")) + "\n")
	b.WriteString(fmt.Sprintf("%s   %s   %s\n",
		pendingStat.Render(fmt.Sprintf("%s: %d", m.loc.T("Pending"), m.snap.Stats.Pending)),
		completedStat.Render(fmt.Sprintf("%s: %d", m.loc.T("Completed"), m.snap.Stats.Completed)),
		totalStat.Render(fmt.Sprintf("%s: %d", m.loc.T("Total"), m.snap.Stats.Total)),
	))

	if m.formOpen() {
		b.WriteString(m.viewForm() + "\n")
	}

	index := 0
	if len(m.snap.Pending) > 0 {
		b.WriteString(sectionStyle.Render(m.loc.T("Pending tasks (%d)", m.snap.Stats.Pending)) + "\n")
		for _, row := range m.snap.Pending {
			b.WriteString(m.viewRow(row, index == m.cursor))
			index++
		}
	}
	if len(m.snap.Completed) > 0 {
		b.WriteString(sectionStyle.Render(m.loc.T("Completed tasks (%d)", m.snap.Stats.Completed)) + "\n")
		for _, row := range m.snap.Completed {
			b.WriteString(m.viewRow(row, index == m.cursor))
			index++
		}
	}
	if m.snap.Empty() {
		b.WriteString(emptyStyle.Render(m.loc.T("No tasks yet")+" · "+m.loc.T("Press \"New task\" to get started")) + "\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	if m.formOpen() {
		b.WriteString("\n" + helpStyle.Render(m.loc.T("tab next field • ←/→ priority • ctrl+s save • esc cancel")))
	} else {
		b.WriteString("\n" + helpStyle.Render(m.loc.T("n new • e edit • space done • d delete • q quit")))
	}
	return b.String()
}

func (m Model) viewRow(row service.Row, selected bool) string {
	t := row.Task

	pointer := "  "
	if selected && !m.formOpen() {
		pointer = cursorStyle.Render("> ")
	}
	check := "[ ]"
	title := t.Title
	if t.Completed {
		check = "[x]"
		title = doneTitle.Render(title)
	}

	line := fmt.Sprintf("%s%s %s %s", pointer, check, title, priorityBadges[t.Priority].Render(m.loc.Priority(t.Priority)))
	if row.Overdue {
		line += " " + overdueBadge.Render(m.loc.T("Overdue"))
	}

	var b strings.Builder
	b.WriteString(line + "\n")
	if t.Client != "" {
		b.WriteString(metaStyle.Render(m.loc.T("Client: %s", t.Client)) + "\n")
	}
	if !t.DueDate.IsZero() {
		style := metaStyle
		if row.Overdue {
			style = lateMetaStyle
		}
		b.WriteString(style.Render(m.loc.T("Due: %s", m.loc.Date(t.DueDate))) + "\n")
	}
	if t.Description != "" {
		b.WriteString(metaStyle.Render(t.Description) + "\n")
	}
	b.WriteString(metaStyle.Render(m.loc.T("Created: %s", m.loc.Day(t.CreatedAt))) + "\n")
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	form := m.session.View()
	heading := m.loc.T("New task")
	if form.Editing {
		heading = m.loc.T("Edit task")
	}
	button := m.loc.T(form.ConfirmLabel)
	b.WriteString(titleStyle.Render(heading) + "\n")

	labels := [fieldCount]string{
		fieldTitle:       m.loc.T("Title *"),
		fieldClient:      m.loc.T("Client"),
		fieldDueDate:     m.loc.T("Due date"),
		fieldPriority:    m.loc.T("Priority"),
		fieldDescription: m.loc.T("Description"),
	}
	for f := field(0); f < fieldCount; f++ {
		label := blurredLabel.Render(labels[f])
		if f == m.focus {
			label = focusedLabel.Render(labels[f])
		}
		var value string
		switch f {
		case fieldPriority:
			value = "< " + priorityBadges[m.priority].Render(m.loc.Priority(m.priority)) + " >"
		case fieldDescription:
			value = m.description.View()
		default:
			value = m.inputs[f].View()
		}
		b.WriteString(label + "\n" + value + "\n")
	}

	if form.CanConfirm {
		b.WriteString(enabledButton.Render("[ "+button+" ]") + "  " + helpStyle.Render(m.loc.T("Cancel")+": esc"))
	} else {
		b.WriteString(disabledButton.Render("[ "+button+" ]") + "  " + helpStyle.Render(m.loc.T("Cancel")+": esc"))
	}
	return formStyle.Render(b.String())
}
