package app

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const returnToggleLabel = "[x] with return"

const helpText = "tab focus · ↑/↓ select+copy · i edit · c add category · e rename · D remove category · a add · r replace · x remove · w return · q quit"

func (m *Model) render() string {
	if m.confirm.IsOpen() {
		dialog := m.confirm.View(m.width)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	sections := []string{
		m.categories.View(),
		m.feedback.View(),
		m.renderInputLine(),
		helpStyle.Render(truncateToWidth(helpText, m.width)),
		m.renderStatus(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderInputLine() string {
	toggle := checkboxOffStyle.Render("[ ] with return")
	if m.withReturn {
		toggle = checkboxOnStyle.Render(returnToggleLabel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), dividerStyle.Render("  │ "), toggle)
}
