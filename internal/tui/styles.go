package tui

import (
	"clientTaskTracker/internal/models/task"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	subtitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	pendingStat    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	completedStat  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	totalStat      = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	doneTitle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244"))
	overdueBadge   = lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("231")).Padding(0, 1)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(4)
	lateMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).PaddingLeft(4)
	formStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).MarginTop(1)
	focusedLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	blurredLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).MarginTop(1)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).MarginTop(1)
	disabledButton = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	enabledButton  = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true)
)

var priorityBadges = map[task.Priority]lipgloss.Style{
	task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
}
