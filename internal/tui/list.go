package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zecid/internal/export"
	"github.com/zarlcorp/zecid/internal/identity"
)

var (
	accent      = lipgloss.Color("#f2c94c")
	accentStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	keyCopyAll = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy all"))
	keyNew     = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new batch"))
)

// listModel displays a generated batch in a scrollable list.
type listModel struct {
	kind    recordKind
	records []identity.Record
	cursor  int
	offset  int
	height  int
	flash   string
}

// viewRecordMsg requests the detail view for one record.
type viewRecordMsg struct {
	record identity.Record
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newListModel(kind recordKind, records []identity.Record) listModel {
	return listModel{kind: kind, records: records, height: defaultListHeight}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, keyNew) {
		kind := m.kind
		return m, func() tea.Msg { return generateMsg{kind: kind} }
	}

	if len(m.records) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		m.scroll()
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		r := m.records[m.cursor]
		return m, func() tea.Msg { return viewRecordMsg{record: r} }
	}

	if key.Matches(msg, keyCopyAll) {
		var b strings.Builder
		if err := export.Write(&b, export.TSV, m.records); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		if err := clipboardWrite(b.String()); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash(fmt.Sprintf("copied %d rows!", len(m.records))), clearFlashAfter()
	}

	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *listModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m listModel) setFlash(msg string) listModel {
	m.flash = msg
	return m
}

func (m listModel) View() string {
	s := "\n"

	if len(m.records) == 0 {
		s += "  " + zstyle.MutedText.Render("empty batch") + "\n\n\n"
		return s
	}

	end := min(m.offset+m.height, len(m.records))
	for i := m.offset; i < end; i++ {
		line := summary(m.records[i])
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n  " + zstyle.MutedText.Render(fmt.Sprintf("%d of %d", m.cursor+1, len(m.records))) + "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// summary renders one list row for a record.
func summary(r identity.Record) string {
	switch v := r.(type) {
	case identity.Person:
		return fmt.Sprintf("%-10s  %-28s %s", v.Cedula, truncate(v.FirstName+" "+v.LastName, 28), v.Province)
	case identity.Company:
		return fmt.Sprintf("%-13s  %-36s %s", v.RUC, truncate(v.Name, 36), v.Province)
	}

	fields := r.Fields()
	if len(fields) == 0 {
		return ""
	}
	return fields[0].Value
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
