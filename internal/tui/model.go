package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/casebook/internal/app"
	"github.com/example/casebook/internal/core/effects"
	"github.com/example/casebook/internal/core/session"
)

// effectDoneMsg carries the completion messages of one effect back into Update.
type effectDoneMsg struct {
	msgs []session.Msg
}

type inputID int

const (
	inputNone inputID = iota
	inputSearch
	inputNewCategory
)

var draftFields = [...]session.DraftField{
	session.FieldTitle,
	session.FieldDescription,
	session.FieldUseCase,
	session.FieldSubmittedBy,
}

var draftLabels = [...]string{"Title", "Description", "Use case", "Your name"}

// Model is the bubbletea model. The session state is the single source of
// truth; the text inputs mirror it after every transition.
type Model struct {
	ctx    context.Context
	runner app.EffectRunner
	now    func() time.Time

	state   session.State
	initial []effects.Effect

	width  int
	height int
	cursor int

	gate       textinput.Model
	search     textinput.Model
	newCat     textinput.Model
	draft      [len(draftFields)]textinput.Model
	draftFocus int
	editing    inputID
}

// New creates a Model in the loading state.
func New(ctx context.Context, runner app.EffectRunner) Model {
	m := Model{
		ctx:    ctx,
		runner: runner,
		now:    time.Now,
	}
	m.state, m.initial = session.Init()

	m.gate = newInput("password")
	m.gate.EchoMode = textinput.EchoPassword
	m.gate.EchoCharacter = '•'
	m.gate.Focus()

	m.search = newInput("search titles and descriptions")
	m.newCat = newInput("new category name")
	for i := range m.draft {
		m.draft[i] = newInput(draftLabels[i])
	}
	m.draft[0].Focus()

	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.CharLimit = 500
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// State returns the current session state.
func (m Model) State() session.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return m.run(m.initial)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case effectDoneMsg:
		cmds := make([]tea.Cmd, 0, len(msg.msgs))
		for _, sm := range msg.msgs {
			cmds = append(cmds, m.apply(sm))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// apply feeds one message through the reducer and schedules its effects.
func (m *Model) apply(msg session.Msg) tea.Cmd {
	var effs []effects.Effect
	m.state, effs = session.Update(m.state, msg, m.now())
	m.syncInputs()
	m.clampCursor()
	return m.run(effs)
}

// run executes each effect as its own command. Bubbletea runs them
// concurrently and delivers the completions one at a time.
func (m Model) run(effs []effects.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effs))
	for _, eff := range effs {
		eff := eff
		runner, ctx := m.runner, m.ctx
		cmds = append(cmds, func() tea.Msg {
			return effectDoneMsg{msgs: runner.Run(ctx, eff)}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncInputs() {
	setValue(&m.gate, m.state.AdminGatePassword)
	setValue(&m.search, m.state.SearchTerm)
	setValue(&m.newCat, m.state.NewCategoryName)

	d := m.state.Draft
	values := [...]string{d.Title, d.Description, d.UseCase, d.SubmittedBy}
	for i := range m.draft {
		setValue(&m.draft[i], values[i])
	}
}

func setValue(in *textinput.Model, v string) {
	if in.Value() != v {
		in.SetValue(v)
	}
}

func (m *Model) clampCursor() {
	n := m.itemCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) itemCount() int {
	if m.state.Mode() == session.ModeAdmin {
		switch m.state.AdminTab {
		case session.TabPending:
			return len(m.state.PendingSubmissions())
		case session.TabCategories:
			return len(m.state.Categories)
		}
	}
	return len(m.state.ApprovedSubmissions())
}
