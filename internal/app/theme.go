package app

import "charm.land/lipgloss/v2"

var (
	headerStyle              = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerFocusedStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")).Underline(true)
	helpStyle                = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusWarningStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	statusErrorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	selectedStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	selectedFocusedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("25")).Bold(true)
	emptyStyle               = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	dividerStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	checkboxOnStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	checkboxOffStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	confirmDialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1)
	confirmButtonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	confirmButtonActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
