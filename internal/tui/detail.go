package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zecid/internal/export"
	"github.com/zarlcorp/zecid/internal/identity"
)

// detailModel displays all fields of one record.
type detailModel struct {
	kind   recordKind
	record identity.Record
	fields []identity.Field
	cursor int
	flash  string
}

func newDetailModel(kind recordKind, r identity.Record) detailModel {
	return detailModel{
		kind:   kind,
		record: r,
		fields: r.Fields(),
	}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) && len(m.fields) > 0 {
		// copy selected field
		if err := clipboardWrite(m.fields[m.cursor].Value); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied!"), clearFlashAfter()
	}

	if key.Matches(msg, keyCopyAll) {
		if err := clipboardWrite(export.FieldsTSV(m.record)); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied all!"), clearFlashAfter()
	}

	if key.Matches(msg, keyNew) {
		kind := m.kind
		return m, func() tea.Msg { return generateMsg{kind: kind} }
	}

	return m, nil
}

func (m detailModel) setFlash(msg string) detailModel {
	m.flash = msg
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m detailModel) View() string {
	s := fmt.Sprintf("\n  %s\n\n", zstyle.Subtitle.Render(title(m.record)))

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", f.Name))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.Value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.Value)
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func title(r identity.Record) string {
	switch v := r.(type) {
	case identity.Person:
		return v.FirstName + " " + v.LastName
	case identity.Company:
		return v.Name
	}
	return "record"
}
