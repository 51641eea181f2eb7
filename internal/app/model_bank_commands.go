package app

import (
	"context"
	"fmt"
	"strings"

	"commentbank/internal/bank"
	"commentbank/internal/clipboard"
	"commentbank/internal/logging"
)

func (m *Model) inputText() string {
	return strings.TrimSpace(m.input.Value())
}

// onCategorySelected loads the category's feedback and selects its first
// entry, which copies it like any other feedback selection.
func (m *Model) onCategorySelected() {
	m.reloadFeedback("")
	m.copySelectedFeedback()
}

func (m *Model) copySelectedFeedback() {
	text, ok := m.feedback.Selected()
	if !ok {
		return
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
	ctx, cancel := context.WithTimeout(context.Background(), m.copyTimeout)
	defer cancel()
	method, err := m.copier.Copy(ctx, clipboard.WithReturn(text, m.withReturn))
	if err != nil {
		m.logger.Warn("clipboard copy failed", logging.F("error", err))
		m.setStatusError("copy failed: " + err.Error())
		return
	}
	m.logger.Debug("copied feedback", logging.F("method", method), logging.F("category", m.selectedCategory()))
	m.setStatusInfo("copied: " + text)
}

func (m *Model) toggleReturn() {
	m.withReturn = !m.withReturn
	if _, ok := m.feedback.Selected(); ok {
		m.copySelectedFeedback()
		return
	}
	m.setStatusInfo(fmt.Sprintf("with return: %t", m.withReturn))
}

func (m *Model) addCategory() {
	name := m.inputText()
	res := m.store.AddCategory(name)
	if res.Changed() {
		m.refresh(name, "")
		m.setFocus(focusCategories)
	}
	m.reportResult("add category", name, res)
}

func (m *Model) addFeedback() {
	category := m.selectedCategory()
	text := m.inputText()
	if category == "" {
		return
	}
	res := m.store.AddFeedback(category, text)
	if res.Changed() {
		m.refresh(category, text)
	}
	m.reportResult("add feedback", text, res)
}

func (m *Model) requestRemoveCategory() {
	category := m.selectedCategory()
	if category == "" {
		return
	}
	if !m.confirmRemove {
		m.removeCategory(category)
		return
	}
	m.pendingRemove = category
	count := len(m.store.FeedbackFor(category))
	m.confirm.Open("Remove Category", fmt.Sprintf("Remove %q and its %d feedback entries?", category, count), "Remove", "Cancel")
}

func (m *Model) removeCategory(category string) {
	if category == "" {
		return
	}
	res := m.store.RemoveCategory(category)
	m.refresh("", "")
	m.reportResult("remove category", category, res)
}

func (m *Model) renameCategory() {
	oldName := m.selectedCategory()
	newName := m.inputText()
	if oldName == "" {
		return
	}
	res := m.store.RenameCategory(oldName, newName)
	if res.Changed() {
		m.refresh(newName, m.selectedFeedback())
	}
	m.reportResult("rename category", newName, res)
}

func (m *Model) removeFeedback() {
	category := m.selectedCategory()
	feedback, ok := m.feedback.Selected()
	if category == "" || !ok {
		return
	}
	res := m.store.RemoveFeedback(category, feedback)
	m.refresh(category, "")
	m.reportResult("remove feedback", feedback, res)
}

func (m *Model) replaceFeedback() {
	category := m.selectedCategory()
	feedback, ok := m.feedback.Selected()
	if category == "" || !ok {
		return
	}
	replacement := m.inputText()
	res := m.store.ReplaceFeedback(category, feedback, replacement)
	if res.Changed() {
		m.refresh(category, replacement)
	}
	m.reportResult("replace feedback", replacement, res)
}

func (m *Model) reportResult(action, subject string, res bank.Result) {
	fields := []logging.Field{logging.F("subject", subject), logging.F("result", res)}
	switch res {
	case bank.Applied:
		m.logger.Info(action, fields...)
		m.setStatusInfo(action + ": " + subject)
	case bank.PersistFailed:
		m.logger.Error(action, append(fields, logging.F("path", m.store.Path()))...)
		m.setStatusError(action + ": saved in memory only, writing " + m.store.Path() + " failed")
	case bank.Rejected:
		m.logger.Warn(action, fields...)
		m.setStatusWarning(action + ": nothing to do")
	case bank.Unchanged:
		m.logger.Info(action, fields...)
		m.setStatusInfo(action + ": no change")
	}
}
