package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/core/submission"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#A48CFF"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6A737D", Dark: "#8B949E"}
	colorError  = lipgloss.AdaptiveColor{Light: "#CB2431", Dark: "#FF7B72"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#22863A", Dark: "#7EE787"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(colorOK)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	activeTab     = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(colorAccent)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(1, 2)
	tagStyle      = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("casebook") + mutedStyle.Render("  AI use cases"))
	b.WriteString("\n\n")

	switch m.state.Mode() {
	case session.ModeLoading:
		b.WriteString("Loading use cases...\n")
	case session.ModeAdminGate:
		b.WriteString(m.viewGate())
	case session.ModeAdmin:
		b.WriteString(m.viewAdmin())
	case session.ModeSubmit:
		b.WriteString(m.viewSubmit())
	default:
		b.WriteString(m.viewBrowse())
	}

	b.WriteString("\n")
	b.WriteString(m.viewNotice())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help()))
	return b.String()
}

func (m Model) viewNotice() string {
	n := m.state.Notice
	if n.IsZero() {
		return ""
	}
	if n.Level == session.NoticeError {
		return errorStyle.Render(n.Message)
	}
	return infoStyle.Render(n.Message)
}

func (m Model) viewGate() string {
	return "Admin login\n\n" + m.gate.View() + "\n"
}

func (m Model) viewFilters() string {
	category := m.state.SelectedCategory
	if category == "" {
		category = "All categories"
	}
	search := m.search.View()
	if m.editing != inputSearch && m.state.SearchTerm == "" {
		search = mutedStyle.Render("(none)")
	}
	return fmt.Sprintf("Search: %s   Category: %s\n\n", search, category)
}

func (m Model) viewBrowse() string {
	var b strings.Builder
	b.WriteString(m.viewFilters())

	list := m.state.ApprovedSubmissions()
	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("No use cases found.") + "\n")
		return b.String()
	}
	for i, s := range list {
		b.WriteString(m.viewCard(s, i == m.cursor))
	}
	return b.String()
}

func (m Model) viewCard(s submission.Submission, selected bool) string {
	var b strings.Builder
	title := s.Title
	if s.Category != "" {
		title += "  [" + s.Category + "]"
	}
	if selected {
		b.WriteString(selectedStyle.Render("▸ " + title))
	} else {
		b.WriteString("  " + title)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %s\n", s.Description)
	fmt.Fprintf(&b, "    Use case: %s\n", s.UseCase)
	b.WriteString(mutedStyle.Render(fmt.Sprintf("    %s · %s", s.SubmittedBy, s.SubmittedDate)))
	b.WriteString("\n")
	if len(s.Tags) > 0 {
		b.WriteString(tagStyle.Render("    #"+strings.Join(s.Tags, " #")) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewSubmit() string {
	var b strings.Builder
	b.WriteString("Share an AI use case\n\n")
	for i := range m.draft {
		label := draftLabels[i]
		if i == m.draftFocus {
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", label, m.draft[i].View())
	}
	return b.String()
}

func (m Model) viewAdmin() string {
	var b strings.Builder

	counts := map[session.AdminTab]int{
		session.TabPending:    submission.CountByStatus(m.state.Submissions, submission.StatusPending),
		session.TabApproved:   submission.CountByStatus(m.state.Submissions, submission.StatusApproved),
		session.TabCategories: len(m.state.Categories),
	}
	names := map[session.AdminTab]string{
		session.TabPending:    "Pending",
		session.TabApproved:   "Approved",
		session.TabCategories: "Categories",
	}
	tabs := make([]string, 0, len(adminTabs))
	for i, tab := range adminTabs {
		label := fmt.Sprintf("%d %s (%d)", i+1, names[tab], counts[tab])
		if tab == m.state.AdminTab {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.state.AdminTab {
	case session.TabPending:
		b.WriteString(m.viewFilters())
		review := m.state.CategoryUnderReview
		if review == "" {
			review = mutedStyle.Render("(choose with c)")
		}
		fmt.Fprintf(&b, "Approve into: %s\n\n", review)
		b.WriteString(m.viewSubmissionList(m.state.PendingSubmissions()))
	case session.TabApproved:
		b.WriteString(m.viewFilters())
		b.WriteString(m.viewSubmissionList(m.state.ApprovedSubmissions()))
	case session.TabCategories:
		b.WriteString(m.viewCategories())
	}

	if id := m.state.PendingDeleteID; id != "" {
		title := id
		if s, ok := m.state.FindSubmission(id); ok {
			title = s.Title
		}
		b.WriteString("\n")
		b.WriteString(modalStyle.Render(fmt.Sprintf("Delete %q permanently?\n\ny: delete   n: keep", title)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewSubmissionList(list []submission.Submission) string {
	if len(list) == 0 {
		return mutedStyle.Render("Nothing here.") + "\n"
	}
	var b strings.Builder
	for i, s := range list {
		b.WriteString(m.viewCard(s, i == m.cursor))
	}
	return b.String()
}

func (m Model) viewCategories() string {
	var b strings.Builder
	if m.editing == inputNewCategory {
		b.WriteString("New category: " + m.newCat.View() + "\n\n")
	}
	if len(m.state.Categories) == 0 {
		b.WriteString(mutedStyle.Render("No categories yet.") + "\n")
		return b.String()
	}
	for i, name := range m.state.Categories {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ "+name) + "\n")
		} else {
			b.WriteString("  " + name + "\n")
		}
	}
	return b.String()
}

func (m Model) help() string {
	if m.editing != inputNone {
		return "enter: done  esc: cancel"
	}
	switch m.state.Mode() {
	case session.ModeLoading:
		return "a: admin  q: quit"
	case session.ModeAdminGate:
		return "enter: log in  esc: cancel"
	case session.ModeSubmit:
		return "tab: next field  enter/ctrl+s: submit  esc: back  ctrl+g: admin"
	case session.ModeAdmin:
		if m.state.PendingDeleteID != "" {
			return "y: delete  n: keep"
		}
		switch m.state.AdminTab {
		case session.TabPending:
			return "c: category  enter: approve  x: reject  /: search  f: filter  tab: next tab  a: password  l: logout"
		case session.TabApproved:
			return "d: delete  /: search  f: filter  tab: next tab  a: password  l: logout"
		default:
			return "n: new  d: delete  tab: next tab  a: password  l: logout"
		}
	default:
		return "s: submit  /: search  c: category  a: admin  esc: dismiss  q: quit"
	}
}
