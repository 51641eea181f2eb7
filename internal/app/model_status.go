package app

import "strings"

type statusLevel int

const (
	statusLevelInfo statusLevel = iota
	statusLevelWarning
	statusLevelError
)

func (m *Model) setStatusInfo(message string) {
	m.setStatus(statusLevelInfo, message)
}

func (m *Model) setStatusWarning(message string) {
	m.setStatus(statusLevelWarning, message)
}

func (m *Model) setStatusError(message string) {
	m.setStatus(statusLevelError, message)
}

func (m *Model) setStatus(level statusLevel, message string) {
	message = strings.TrimSpace(strings.ReplaceAll(message, "\n", " "))
	if message == "" {
		return
	}
	m.status = message
	m.statusLevel = level
}

func (m *Model) renderStatus() string {
	switch m.statusLevel {
	case statusLevelWarning:
		return statusWarningStyle.Render(m.status)
	case statusLevelError:
		return statusErrorStyle.Render(m.status)
	default:
		return statusStyle.Render(m.status)
	}
}
