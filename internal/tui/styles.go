package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)

	statusStyle         = lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.HiddenBorder(), false, false, false, true)
	selectedStatusStyle = lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("12"))
	authorStyle  = lipgloss.NewStyle().Bold(true)
	acctStyle    = lipgloss.NewStyle().Faint(true)
	boostedStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)
