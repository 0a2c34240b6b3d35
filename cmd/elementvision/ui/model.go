// Package ui provides the interactive terminal dashboard for elementvision.
// The interface is split across two files:
//   - model.go: Types, Init, Update loop (this file)
//   - view.go: Rendering functions
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"elementvision/internal/catalog"
	"elementvision/internal/present"
	"elementvision/internal/resolve"
)

// resolvedMsg carries a successful lookup back into the update loop. Token
// identifies the request generation; stale generations are dropped.
type resolvedMsg struct {
	token  uint64
	record catalog.Record
}

// resolveFailedMsg carries a failed lookup back into the update loop.
type resolveFailedMsg struct {
	token uint64
	err   error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	resolver *resolve.Resolver
	session  *resolve.Session

	locale present.Locale
	msgs   present.Messages

	input    textinput.Model
	spin     spinner.Model
	viewport viewport.Model

	// Current result. record holds the bilingual source of truth so a
	// locale toggle re-projects without another lookup.
	record    *catalog.Record
	view      *present.DisplayView
	lookupErr error

	loading bool
	ready   bool
	width   int
	height  int
}

// New builds the dashboard model.
func New(resolver *resolve.Resolver, locale present.Locale) Model {
	msgs := present.MessagesFor(locale)

	input := textinput.New()
	input.Placeholder = msgs.SearchPrompt
	input.CharLimit = 64
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(accentColor)

	return Model{
		resolver: resolver,
		session:  resolve.NewSession(),
		locale:   locale,
		msgs:     msgs,
		input:    input,
		spin:     spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.setLocale(m.locale.Toggle())
			return m, nil

		case tea.KeyEsc:
			if m.loading {
				// Abandon the in-flight lookup; its response will arrive
				// with a stale token and be dropped.
				m.session.Cancel()
				m.loading = false
				return m, nil
			}
			return m, tea.Quit

		case tea.KeyEnter:
			if m.loading {
				// Busy: one lookup at a time.
				return m, nil
			}
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			return m.startLookup(query)
		}

		if m.loading {
			// Input is frozen while a lookup is in flight.
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutViewport()
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case resolvedMsg:
		if !m.session.Accept(msg.token) {
			return m, nil
		}
		m.loading = false
		m.lookupErr = nil
		rec := msg.record
		m.record = &rec
		m.project()
		return m, nil

	case resolveFailedMsg:
		if !m.session.Accept(msg.token) {
			return m, nil
		}
		m.loading = false
		m.lookupErr = msg.err
		m.record = nil
		m.view = nil
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// startLookup begins a new request generation and dispatches the resolve.
func (m Model) startLookup(query string) (Model, tea.Cmd) {
	token := m.session.Begin()
	m.loading = true
	m.lookupErr = nil
	return m, tea.Batch(m.spin.Tick, m.resolveCmd(token, query))
}

// resolveCmd runs the lookup off the update loop.
func (m Model) resolveCmd(token uint64, query string) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		rec, err := resolver.Resolve(context.Background(), query)
		if err != nil {
			return resolveFailedMsg{token: token, err: err}
		}
		return resolvedMsg{token: token, record: rec}
	}
}

// setLocale switches the display language and re-projects the current
// record without touching the resolver.
func (m *Model) setLocale(locale present.Locale) {
	m.locale = locale
	m.msgs = present.MessagesFor(locale)
	m.input.Placeholder = m.msgs.SearchPrompt
	m.project()
}

// project refreshes the display view and viewport from the current record.
func (m *Model) project() {
	if m.record == nil {
		m.view = nil
		return
	}
	view := present.Project(*m.record, m.locale)
	m.view = &view
	if m.ready {
		m.viewport.SetContent(m.renderCard())
		m.viewport.GotoTop()
	}
}

func (m *Model) layoutViewport() {
	w := m.width
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	if !m.ready {
		m.viewport = viewport.New(w, h)
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	if m.view != nil {
		m.viewport.SetContent(m.renderCard())
	}
}
