package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carboncomply/internal/refdata"
)

// SortField selects the browser's table ordering.
type SortField int

const (
	SortByDatabase SortField = iota
	SortByName
	SortByRegion
	numSortFields
)

func (s SortField) String() string {
	switch s {
	case SortByName:
		return "name"
	case SortByRegion:
		return "region"
	default:
		return "database"
	}
}

// BrowserModel is the Bubble Tea model for the interactive regulation
// browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	state ViewState

	allRegulations []refdata.Regulation // source of truth, database order
	regulations    []refdata.Regulation // filtered/sorted view

	table     table.Model
	textInput textinput.Model
	selected  int

	width      int
	height     int
	sortBy     SortField
	showFilter bool
}

// NewBrowserModel builds the browser over the regulation database.
func NewBrowserModel(regulations []refdata.Regulation) BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "filter by name, region, or country"
	ti.CharLimit = 64

	// Copy the database so sorting the view never reorders the caller's
	// slice; allRegulations stays in database order for the restore path.
	all := append([]refdata.Regulation(nil), regulations...)
	m := BrowserModel{
		state:          ViewStateList,
		allRegulations: all,
		regulations:    append([]refdata.Regulation(nil), all...),
		textInput:      ti,
		width:          defaultWidth,
		height:         defaultHeight,
	}
	m.table = m.buildTable()
	return m
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table = m.buildTable()
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m BrowserModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter(m.textInput.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m BrowserModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		m.selected = m.table.Cursor()
		if m.selected >= 0 && m.selected < len(m.regulations) {
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keySort:
		m.sortBy = (m.sortBy + 1) % numSortFields
		m.refresh()
		return m, nil
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter("")
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m BrowserModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

// applyFilter narrows the view to regulations whose name, region, or
// country contains the query.
func (m *BrowserModel) applyFilter(filterText string) {
	if filterText == "" {
		m.regulations = append([]refdata.Regulation(nil), m.allRegulations...)
	} else {
		query := strings.ToLower(filterText)
		filtered := []refdata.Regulation{}
		for _, reg := range m.allRegulations {
			if strings.Contains(strings.ToLower(reg.Name), query) ||
				strings.Contains(strings.ToLower(reg.Region), query) ||
				strings.Contains(strings.ToLower(reg.Country), query) {
				filtered = append(filtered, reg)
			}
		}
		m.regulations = filtered
	}
	m.refresh()
}

// refresh re-sorts the view and rebuilds the table.
func (m *BrowserModel) refresh() {
	switch m.sortBy {
	case SortByName:
		sort.SliceStable(m.regulations, func(i, j int) bool {
			return m.regulations[i].Name < m.regulations[j].Name
		})
	case SortByRegion:
		sort.SliceStable(m.regulations, func(i, j int) bool {
			return m.regulations[i].Region < m.regulations[j].Region
		})
	case SortByDatabase:
		ordered := make([]refdata.Regulation, 0, len(m.regulations))
		keep := make(map[string]bool, len(m.regulations))
		for _, reg := range m.regulations {
			keep[reg.ID] = true
		}
		for _, reg := range m.allRegulations {
			if keep[reg.ID] {
				ordered = append(ordered, reg)
			}
		}
		m.regulations = ordered
	}
	m.table = m.buildTable()
}

func (m *BrowserModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},       //nolint:mnd // Column width.
		{Title: "Name", Width: 36},    //nolint:mnd // Column width.
		{Title: "Region", Width: 16},  //nolint:mnd // Column width.
		{Title: "Country", Width: 12}, //nolint:mnd // Column width.
		{Title: "Status", Width: 12},  //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(m.regulations))
	for i, reg := range m.regulations {
		rows[i] = table.Row{reg.ID, reg.Name, reg.Region, reg.Country, reg.Status}
	}

	availableHeight := m.height - footerHeight
	if availableHeight < minTableRows {
		availableHeight = minTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

// Regulations returns the current filtered view.
func (m *BrowserModel) Regulations() []refdata.Regulation {
	return m.regulations
}
