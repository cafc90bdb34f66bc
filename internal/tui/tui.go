// Package tui implements the root Bubble Tea model for browsing generated
// batches of people and companies.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zecid/internal/identity"
)

type viewID int

const (
	viewMenu viewID = iota
	viewList
	viewDetail
)

type recordKind int

const (
	kindPeople recordKind = iota
	kindCompanies
)

const (
	defaultBatchSize  = 20
	defaultListHeight = 15

	// rows taken by header, separator, footer and status lines
	chromeHeight = 9
)

// Model is the root TUI model.
type Model struct {
	version string
	gen     *identity.Generator
	opts    identity.Options

	active viewID
	menu   menuModel
	list   listModel
	detail detailModel

	// terminal dimensions
	width  int
	height int
}

// Option configures the root model.
type Option func(*Model)

// WithOptions sets the generation options for every batch. Quantity
// defaults to 20.
func WithOptions(o identity.Options) Option {
	return func(m *Model) { m.opts = o }
}

// New creates the root TUI model.
func New(version string, gen *identity.Generator, opts ...Option) Model {
	m := Model{
		version: version,
		gen:     gen,
		opts:    identity.Options{Quantity: defaultBatchSize},
		active:  viewMenu,
		menu:    newMenuModel(version),
	}
	for _, o := range opts {
		o(&m)
	}
	if m.opts.Quantity == 0 {
		m.opts.Quantity = defaultBatchSize
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.height = m.listHeight()
		m.list.scroll()
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case generateMsg:
		return m.generate(msg.kind)

	case viewRecordMsg:
		m.detail = newDetailModel(m.list.kind, msg.record)
		m.active = viewDetail
		return m, tea.ClearScreen
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu renders its own header
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := "  " + zstyle.Title.Render("zecid") + "  " + zstyle.Subtitle.Render(m.viewTitle())
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for the active view.
func (m Model) viewTitle() string {
	noun := "People"
	if m.list.kind == kindCompanies {
		noun = "Companies"
	}

	switch m.active {
	case viewList:
		return noun
	case viewDetail:
		if m.list.kind == kindCompanies {
			return "Company"
		}
		return "Person"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "c", Desc: "copy all"},
			{Key: "n", Desc: "new batch"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "n", Desc: "new batch"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewList:
		m.active = viewList
		return m, tea.ClearScreen
	}

	return m, nil
}

// generate replaces the current batch and shows it.
func (m Model) generate(kind recordKind) (tea.Model, tea.Cmd) {
	var records []identity.Record
	var err error

	switch kind {
	case kindPeople:
		var people []identity.Person
		people, err = m.gen.People(m.opts)
		records = identity.People(people)
	case kindCompanies:
		var companies []identity.Company
		companies, err = m.gen.Companies(m.opts)
		records = identity.Companies(companies)
	}

	if err != nil {
		m.menu = newMenuModel(m.version)
		m.menu.err = err.Error()
		m.active = viewMenu
		return m, tea.ClearScreen
	}

	m.list = newListModel(kind, records)
	m.list.height = m.listHeight()
	m.active = viewList
	return m, tea.ClearScreen
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return defaultListHeight
	}
	return max(1, m.height-chromeHeight)
}
