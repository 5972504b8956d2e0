package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/casebook/internal/core/session"
)

var adminTabs = [...]session.AdminTab{session.TabPending, session.TabApproved, session.TabCategories}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.Mode() {
	case session.ModeLoading:
		switch msg.String() {
		case "a":
			return m, m.apply(session.OpenAdminGate{})
		case "q":
			return m, tea.Quit
		}
		return m, nil
	case session.ModeAdminGate:
		return m.updateGate(msg)
	case session.ModeAdmin:
		return m.updateAdmin(msg)
	case session.ModeSubmit:
		return m.updateSubmit(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updateGate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.apply(session.Login{Password: m.gate.Value()})
	case "esc":
		return m, m.apply(session.CancelAdminGate{})
	}

	m.gate, _ = m.gate.Update(msg)
	if m.gate.Value() == m.state.AdminGatePassword {
		return m, nil
	}
	return m, m.apply(session.EditGatePassword{Value: m.gate.Value()})
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing != inputNone {
		return m.updateEditing(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.startEditing(inputSearch)
	case "c":
		return m, m.apply(session.SelectCategoryFilter{Name: m.nextFilterCategory()})
	case "s":
		m.focusDraft(0)
		return m, m.apply(session.Navigate{View: session.ViewSubmit})
	case "a":
		return m, m.apply(session.OpenAdminGate{})
	case "esc":
		return m, m.apply(session.DismissNotice{})
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	}
	return m, nil
}

func (m Model) updateSubmit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.apply(session.Navigate{View: session.ViewBrowse})
	case "ctrl+g":
		return m, m.apply(session.OpenAdminGate{})
	case "ctrl+s":
		return m, m.apply(session.SubmitDraft{})
	case "tab", "down":
		m.focusDraft(m.draftFocus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusDraft(m.draftFocus - 1)
		return m, nil
	case "enter":
		if m.draftFocus == len(m.draft)-1 {
			return m, m.apply(session.SubmitDraft{})
		}
		m.focusDraft(m.draftFocus + 1)
		return m, nil
	}

	i := m.draftFocus
	m.draft[i], _ = m.draft[i].Update(msg)
	return m, m.apply(session.EditDraft{Field: draftFields[i], Value: m.draft[i].Value()})
}

func (m Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.state.PendingDeleteID != "" {
		switch key {
		case "y":
			return m, m.apply(session.ConfirmDelete{Confirmed: true})
		case "n", "esc":
			return m, m.apply(session.ConfirmDelete{Confirmed: false})
		}
		return m, nil
	}

	if m.editing != inputNone {
		return m.updateEditing(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "a":
		return m, m.apply(session.OpenAdminGate{})
	case "esc":
		return m, m.apply(session.DismissNotice{})
	case "l":
		m.cursor = 0
		return m, m.apply(session.Logout{})
	case "1", "2", "3":
		m.cursor = 0
		return m, m.apply(session.SelectAdminTab{Tab: adminTabs[key[0]-'1']})
	case "tab":
		m.cursor = 0
		return m, m.apply(session.SelectAdminTab{Tab: m.nextTab()})
	case "/":
		m.startEditing(inputSearch)
		return m, nil
	case "f":
		return m, m.apply(session.SelectCategoryFilter{Name: m.nextFilterCategory()})
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	}

	switch m.state.AdminTab {
	case session.TabPending:
		pending := m.state.PendingSubmissions()
		switch key {
		case "c":
			return m, m.apply(session.ChooseReviewCategory{Name: m.nextReviewCategory()})
		case "enter":
			if m.cursor < len(pending) {
				return m, m.apply(session.Approve{ID: pending[m.cursor].ID, Category: m.state.CategoryUnderReview})
			}
		case "x":
			if m.cursor < len(pending) {
				return m, m.apply(session.Reject{ID: pending[m.cursor].ID})
			}
		}
	case session.TabApproved:
		approved := m.state.ApprovedSubmissions()
		if key == "d" && m.cursor < len(approved) {
			return m, m.apply(session.RequestDelete{ID: approved[m.cursor].ID})
		}
	case session.TabCategories:
		switch key {
		case "n":
			m.startEditing(inputNewCategory)
		case "d":
			if m.cursor < len(m.state.Categories) {
				return m, m.apply(session.DeleteCategory{Name: m.state.Categories[m.cursor]})
			}
		}
	}
	return m, nil
}

// updateEditing routes keys to the focused search or new-category input.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		editing := m.editing
		m.stopEditing()
		if editing == inputNewCategory {
			return m, m.apply(session.AddCategory{Name: m.newCat.Value()})
		}
		return m, nil
	}

	switch m.editing {
	case inputSearch:
		m.search, _ = m.search.Update(msg)
		return m, m.apply(session.EditSearchTerm{Value: m.search.Value()})
	case inputNewCategory:
		m.newCat, _ = m.newCat.Update(msg)
		return m, m.apply(session.EditNewCategory{Value: m.newCat.Value()})
	}
	return m, nil
}

func (m *Model) startEditing(id inputID) {
	m.stopEditing()
	m.editing = id
	switch id {
	case inputSearch:
		m.search.Focus()
	case inputNewCategory:
		m.newCat.Focus()
	}
}

func (m *Model) stopEditing() {
	m.editing = inputNone
	m.search.Blur()
	m.newCat.Blur()
}

func (m *Model) focusDraft(i int) {
	n := len(m.draft)
	i = (i%n + n) % n
	for j := range m.draft {
		m.draft[j].Blur()
	}
	m.draftFocus = i
	m.draft[i].Focus()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m Model) nextTab() session.AdminTab {
	for i, tab := range adminTabs {
		if tab == m.state.AdminTab {
			return adminTabs[(i+1)%len(adminTabs)]
		}
	}
	return session.TabPending
}

// nextFilterCategory cycles through "all" followed by every category.
func (m Model) nextFilterCategory() string {
	options := append([]string{""}, m.state.Categories...)
	return nextOf(options, m.state.SelectedCategory)
}

func (m Model) nextReviewCategory() string {
	if len(m.state.Categories) == 0 {
		return ""
	}
	return nextOf(m.state.Categories, m.state.CategoryUnderReview)
}

func nextOf(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
