package app

import (
	tea "charm.land/bubbletea/v2"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.confirm.IsOpen() {
		m.reduceConfirmKey(msg)
		return nil
	}
	if m.focus == focusInput {
		return m.reduceInputKey(msg)
	}
	if handled, cmd := m.reduceNormalModeKey(msg); handled {
		return cmd
	}
	return nil
}

func (m *Model) reduceConfirmKey(msg tea.KeyPressMsg) {
	_, choice := m.confirm.HandleKey(msg)
	switch choice {
	case confirmChoiceConfirm:
		category := m.pendingRemove
		m.confirm.Close()
		m.pendingRemove = ""
		m.removeCategory(category)
	case confirmChoiceCancel:
		m.confirm.Close()
		m.pendingRemove = ""
		m.setStatusInfo("remove canceled")
	}
}

func (m *Model) reduceInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.setFocus(focusFeedback)
		return nil
	case "tab":
		m.setFocus(focusCategories)
		return nil
	case "shift+tab":
		m.setFocus(focusFeedback)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) reduceNormalModeKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	if handled, cmd := m.reduceAppKeys(msg); handled {
		return true, cmd
	}
	if handled := m.reduceNavigationKeys(msg); handled {
		return true, nil
	}
	return m.reduceBankCommandKeys(msg), nil
}

func (m *Model) reduceAppKeys(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, tea.Quit
	case "i", "/":
		return true, m.setFocus(focusInput)
	case "tab":
		return true, m.setFocus((m.focus + 1) % 3)
	case "shift+tab":
		return true, m.setFocus((m.focus + 2) % 3)
	case "w":
		m.toggleReturn()
		return true, nil
	default:
		return false, nil
	}
}

func (m *Model) reduceNavigationKeys(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "pgup":
		m.moveSelection(-max(1, m.paneForFocus().visibleHeight()))
	case "pgdown":
		m.moveSelection(max(1, m.paneForFocus().visibleHeight()))
	case "left", "h":
		m.setFocus(focusCategories)
	case "right", "l":
		m.setFocus(focusFeedback)
	case "enter":
		if m.focus == focusCategories {
			m.setFocus(focusFeedback)
			return true
		}
		m.copySelectedFeedback()
	default:
		return false
	}
	return true
}

func (m *Model) reduceBankCommandKeys(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "c":
		m.addCategory()
	case "a":
		m.addFeedback()
	case "D":
		m.requestRemoveCategory()
	case "e":
		m.renameCategory()
	case "x":
		m.removeFeedback()
	case "r":
		m.replaceFeedback()
	default:
		return false
	}
	return true
}

func (m *Model) paneForFocus() *ListPane {
	if m.focus == focusCategories {
		return m.categories
	}
	return m.feedback
}

func (m *Model) moveSelection(delta int) {
	switch m.focus {
	case focusCategories:
		if m.categories.Move(delta) {
			m.onCategorySelected()
		}
	case focusFeedback:
		if m.feedback.Move(delta) {
			m.copySelectedFeedback()
		}
	}
}

func (m *Model) setFocus(focus focusArea) tea.Cmd {
	m.focus = focus
	return m.applyFocus()
}

func (m *Model) applyFocus() tea.Cmd {
	m.categories.SetFocused(m.focus == focusCategories)
	m.feedback.SetFocused(m.focus == focusFeedback)
	if m.focus == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}
