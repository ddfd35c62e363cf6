package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m BrowserModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.detailView()
	case ViewStateList:
		return m.listView()
	default:
		return m.listView()
	}
}

func (m BrowserModel) listView() string {
	var sections []string

	title := TitleStyle.Render(fmt.Sprintf("Regulation Database (%d entries, sorted by %s)",
		len(m.regulations), m.sortBy))
	sections = append(sections, title)

	if m.showFilter {
		sections = append(sections, "Filter: "+m.textInput.View())
	} else if m.textInput.Value() != "" {
		sections = append(sections, "Filter: "+m.textInput.Value()+" (esc to clear)")
	}

	sections = append(sections, m.table.View())
	sections = append(sections, HelpStyle.Render(
		"enter: details  /: filter  s: sort  esc: back  q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowserModel) detailView() string {
	if m.selected < 0 || m.selected >= len(m.regulations) {
		return m.listView()
	}
	reg := m.regulations[m.selected]

	verification := UnverifiedStyle.Render(reg.VerificationStatus)
	if reg.Verified() {
		verification = VerifiedStyle.Render(reg.VerificationStatus)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(reg.Name) + "\n\n")
	writeDetail(&b, "ID", reg.ID)
	writeDetail(&b, "Number", reg.RegulationNumber)
	writeDetail(&b, "Region", reg.Region)
	writeDetail(&b, "Country", reg.Country)
	writeDetail(&b, "Authority", reg.Authority)
	writeDetail(&b, "Status", reg.Status)
	writeDetail(&b, "Verification", verification)
	writeDetail(&b, "Legal reference", reg.LegalReference)
	writeDetail(&b, "Official source", reg.OfficialURL)
	if reg.EURLexLink != "" {
		writeDetail(&b, "EUR-Lex", reg.EURLexLink)
	}
	b.WriteString("\n" + DetailLabelStyle.Render("Scope") + "\n" + reg.Scope + "\n")
	b.WriteString("\n" + DetailLabelStyle.Render("Requirements") + "\n" + reg.RequirementsSummary + "\n")
	b.WriteString("\n" + HelpStyle.Render("esc: back  q: quit"))
	return b.String()
}

func writeDetail(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", DetailLabelStyle.Render(label), value)
}
