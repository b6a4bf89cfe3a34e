package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MenuView ViewState = iota
	FormView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	deps   Deps
	width  int
	height int

	menu    list.Model
	actions []menuAction

	action  *menuAction
	inputs  []textinput.Model
	focused int

	status     string
	resultList list.Model
	hasList    bool
	err        error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, deps Deps) *Model {
	actions := menuActions()

	items := make([]list.Item, len(actions))
	for i, action := range actions {
		items[i] = actionItem{action: action}
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Watchlist Manager"
	if deps.Session != nil {
		menu.Title = fmt.Sprintf("Watchlist Manager (%s)", deps.Session.Name)
	}

	return &Model{
		ctx:     ctx,
		view:    MenuView,
		deps:    deps,
		menu:    menu,
		actions: actions,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		if m.hasList {
			m.resultList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case MenuView:
			return m.handleMenuKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case actionDoneMsg:
		m.err = msg.err
		m.status = msg.status
		m.hasList = msg.items != nil
		if m.hasList {
			m.resultList = list.New(msg.items, list.NewDefaultDelegate(), 0, 0)
			m.resultList.Title = m.action.title
			m.resultList.SetSize(m.width-4, m.height-8)
		}
		m.view = ResultView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case MenuView:
		return m.renderMenu()
	case FormView:
		return m.renderForm()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.menu.SelectedItem()
		if selected == nil {
			return m, nil
		}
		item, ok := selected.(actionItem)
		if !ok {
			return m, nil
		}

		action := item.action
		m.action = &action
		if len(action.fields) == 0 {
			return m, m.runAction(nil)
		}
		m.startForm()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MenuView
		return m, nil
	case "tab", "down":
		m.focusField(m.focused + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusField(m.focused - 1)
		return m, nil
	case "enter":
		if m.focused < len(m.inputs)-1 {
			m.focusField(m.focused + 1)
			return m, nil
		}
		values := make([]string, len(m.inputs))
		for i, input := range m.inputs {
			values[i] = strings.TrimSpace(input.Value())
		}
		return m, m.runAction(values)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		if m.hasList && msg.String() == "enter" {
			break
		}
		m.view = MenuView
		m.action = nil
		m.status = ""
		m.err = nil
		m.hasList = false
		return m, nil
	}

	if m.hasList {
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case MenuView:
		m.menu, cmd = m.menu.Update(msg)
	case ResultView:
		if m.hasList {
			m.resultList, cmd = m.resultList.Update(msg)
		}
	}
	return m, cmd
}

// startForm builds textinput fields for the selected action.
func (m *Model) startForm() {
	m.inputs = make([]textinput.Model, len(m.action.fields))
	for i, field := range m.action.fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.Prompt = "> "
		input.CharLimit = 256
		if field.secret {
			input.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = input
	}
	m.focused = 0
	m.inputs[0].Focus()
	m.view = FormView
}

func (m *Model) focusField(index int) {
	if index < 0 || index >= len(m.inputs) {
		return
	}
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}

// runAction executes the selected action's service call off the UI loop.
func (m *Model) runAction(values []string) tea.Cmd {
	action := *m.action
	return func() tea.Msg {
		return action.run(m.ctx, m.deps, values)
	}
}

func (m *Model) renderMenu() string {
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n\n%s", m.menu.View(), helpView)
}

func (m *Model) renderForm() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(m.action.title))
	b.WriteString("\n\n")

	for i, field := range m.action.fields {
		label := field.label
		if i == m.focused {
			label = styles.ok.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", label, m.inputs[i].View()))
	}

	b.WriteString(styles.help.Render("enter: next/submit • tab: next field • esc: back"))
	return b.String()
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err)) +
			"\n\n" + styles.help.Render("esc: menu • q: quit")
	}

	if m.hasList {
		helpView := m.help.ShortHelpView(m.keys.ShortHelp())
		return fmt.Sprintf("%s\n\n%s", m.resultList.View(), helpView)
	}

	return styles.ok.Render("✓ "+m.status) +
		"\n\n" + styles.help.Render("esc: menu • q: quit")
}
