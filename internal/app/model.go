package app

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"commentbank/internal/bank"
	"commentbank/internal/clipboard"
	"commentbank/internal/logging"
)

const (
	defaultCopyTimeout = 2 * time.Second
	minPaneHeight      = 3
	inputCharLimit     = 2000
)

type focusArea int

const (
	focusCategories focusArea = iota
	focusFeedback
	focusInput
)

type ModelOption func(*Model)

func WithClipboard(copier clipboard.Copier) ModelOption {
	return func(m *Model) {
		if copier != nil {
			m.copier = copier
		}
	}
}

func WithLogger(logger logging.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithReturn sets the initial state of the "with return" toggle.
func WithReturn(on bool) ModelOption {
	return func(m *Model) {
		m.withReturn = on
	}
}

func WithConfirmRemoveCategory(on bool) ModelOption {
	return func(m *Model) {
		m.confirmRemove = on
	}
}

// WithStartupMessages shows the last of messages in the status line, typically
// the store's load report.
func WithStartupMessages(messages ...string) ModelOption {
	return func(m *Model) {
		for _, msg := range messages {
			m.setStatusInfo(msg)
		}
	}
}

// Model is the terminal view over a comment bank. It holds no copy of the
// table: every mutation is followed by a re-query of the store.
type Model struct {
	store  *bank.Store
	copier clipboard.Copier
	logger logging.Logger

	categories *ListPane
	feedback   *ListPane
	input      textinput.Model
	confirm    *ConfirmController

	focus         focusArea
	withReturn    bool
	confirmRemove bool
	pendingRemove string
	copyTimeout   time.Duration

	width  int
	height int

	status      string
	statusLevel statusLevel
}

func NewModel(store *bank.Store, opts ...ModelOption) *Model {
	if store == nil {
		store = bank.New(bank.DefaultEntries())
	}
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "feedback or category text"
	input.CharLimit = inputCharLimit

	m := &Model{
		store:         store,
		copier:        clipboard.Service{},
		logger:        logging.Nop(),
		categories:    NewListPane("Category"),
		feedback:      NewListPane("Feedback"),
		input:         input,
		confirm:       NewConfirmController(),
		focus:         focusCategories,
		confirmRemove: true,
		copyTimeout:   defaultCopyTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.applyFocus()
	m.refresh("", "")
	m.resize(80, 24)
	return m
}

func Run(store *bank.Store, opts ...ModelOption) error {
	p := tea.NewProgram(NewModel(store, opts...))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.PasteMsg:
		if m.focus != focusInput {
			m.setFocus(focusInput)
		}
	}
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "Comment bank"
	return v
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	// Two panes share what is left after the edit line, help and status rows.
	available := max(2*minPaneHeight, height-4)
	categoryHeight := max(minPaneHeight, available*2/5)
	feedbackHeight := max(minPaneHeight, available-categoryHeight)
	m.categories.SetSize(width, categoryHeight)
	m.feedback.SetSize(width, feedbackHeight)
	m.input.SetWidth(max(10, width-len(m.input.Prompt)-len(returnToggleLabel)-4))
}

func (m *Model) selectedCategory() string {
	category, _ := m.categories.Selected()
	return category
}

func (m *Model) selectedFeedback() string {
	feedback, _ := m.feedback.Selected()
	return feedback
}

// refresh re-reads the store, preferring the given selections and falling back
// to the first row.
func (m *Model) refresh(category, feedback string) {
	m.categories.SetItems(m.store.Categories())
	if category != "" {
		m.categories.Select(category)
	}
	m.reloadFeedback(feedback)
}

func (m *Model) reloadFeedback(feedback string) {
	m.feedback.SetItems(m.store.FeedbackFor(m.selectedCategory()))
	if feedback == "" || !m.feedback.Select(feedback) {
		m.feedback.SetCursor(0)
	}
}
