package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ListPane is a titled single-selection list with a scrolling window.
type ListPane struct {
	title   string
	width   int
	height  int
	cursor  int
	offset  int
	focused bool
	items   []string
}

func NewListPane(title string) *ListPane {
	return &ListPane{title: title}
}

func (p *ListPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.ensureVisible()
}

func (p *ListPane) SetFocused(focused bool) {
	p.focused = focused
}

// SetItems replaces the items, keeping the cursor index clamped.
func (p *ListPane) SetItems(items []string) {
	p.items = append(p.items[:0], items...)
	p.ensureVisible()
}

func (p *ListPane) Items() []string {
	return append([]string(nil), p.items...)
}

func (p *ListPane) Selected() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return "", false
	}
	return p.items[p.cursor], true
}

func (p *ListPane) Move(delta int) bool {
	if len(p.items) == 0 || delta == 0 {
		return false
	}
	next := clamp(p.cursor+delta, 0, len(p.items)-1)
	if next == p.cursor {
		return false
	}
	p.cursor = next
	p.ensureVisible()
	return true
}

func (p *ListPane) SetCursor(index int) {
	p.cursor = index
	p.ensureVisible()
}

// Select moves the cursor to the first item equal to item.
func (p *ListPane) Select(item string) bool {
	for i, candidate := range p.items {
		if candidate == item {
			p.cursor = i
			p.ensureVisible()
			return true
		}
	}
	return false
}

func (p *ListPane) View() string {
	if p.height <= 0 {
		return ""
	}
	lines := make([]string, 0, p.height)
	title := headerStyle.Render(p.title)
	if p.focused {
		title = headerFocusedStyle.Render(p.title)
	}
	lines = append(lines, title)
	rows := p.visibleHeight()
	if rows <= 0 {
		return padLines(lines, p.width)
	}
	if len(p.items) == 0 {
		lines = append(lines, emptyStyle.Render(" (none)"))
	}
	for i := 0; i < rows && len(p.items) > 0; i++ {
		idx := p.offset + i
		if idx >= len(p.items) {
			lines = append(lines, "")
			continue
		}
		line := " " + p.label(p.items[idx])
		if idx == p.cursor {
			if p.focused {
				line = selectedFocusedStyle.Render(line)
			} else {
				line = selectedStyle.Render(line)
			}
		}
		lines = append(lines, line)
	}
	for len(lines) < p.height {
		lines = append(lines, "")
	}
	return padLines(lines, p.width)
}

func (p *ListPane) label(item string) string {
	item = strings.ReplaceAll(item, "\r\n", " ")
	item = strings.ReplaceAll(item, "\n", " ")
	if p.width <= 2 {
		return item
	}
	return runewidth.Truncate(item, p.width-2, "…")
}

func (p *ListPane) visibleHeight() int {
	return max(0, p.height-1)
}

func (p *ListPane) ensureVisible() {
	if len(p.items) == 0 {
		p.cursor = 0
		p.offset = 0
		return
	}
	p.cursor = clamp(p.cursor, 0, len(p.items)-1)
	rows := p.visibleHeight()
	if rows <= 0 {
		p.offset = 0
		return
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
	p.offset = clamp(p.offset, 0, max(0, len(p.items)-rows))
}

func padLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if lineWidth := xansi.StringWidth(line); lineWidth < width {
			line += strings.Repeat(" ", width-lineWidth)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	return xansi.Truncate(text, width, "…")
}
