package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const confirmMaxWidth = 60

type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	*c = ConfirmController{
		active:       true,
		title:        strings.TrimSpace(title),
		message:      strings.TrimSpace(message),
		confirmLabel: confirmLabel,
		cancelLabel:  cancelLabel,
	}
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	*c = ConfirmController{}
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, confirmChoiceCancel
	case "y":
		return true, confirmChoiceConfirm
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	// Swallow everything else so keys never leak to the lists behind the dialog.
	return true, confirmChoiceNone
}

func (c *ConfirmController) View(maxWidth int) string {
	if !c.IsOpen() {
		return ""
	}
	width := confirmMaxWidth
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}
	inner := max(10, width-4)
	confirm := confirmButtonStyle.Render("[ " + c.confirmLabel + " ]")
	cancel := confirmButtonStyle.Render("[ " + c.cancelLabel + " ]")
	if c.selected == 0 {
		confirm = confirmButtonActiveStyle.Render("[ " + c.confirmLabel + " ]")
	} else {
		cancel = confirmButtonActiveStyle.Render("[ " + c.cancelLabel + " ]")
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(c.title),
		"",
		lipgloss.NewStyle().Width(inner).Render(c.message),
		"",
		confirm+"  "+cancel,
	)
	return confirmDialogBorderStyle.Render(body)
}
