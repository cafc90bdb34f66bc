package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zecid/internal/identity"
	"github.com/zarlcorp/zecid/internal/rng"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func testPerson() identity.Person {
	return identity.Person{
		Cedula:     "1714616123",
		FirstName:  "María",
		LastName:   "Pérez Ortiz",
		Email:      "maria.perez@gmail.com",
		Phone:      "+593 99 123 4567",
		Address:    "Av. Amazonas N123",
		Province:   "Pichincha",
		Canton:     "Quito",
		BirthDate:  "1990-05-12",
		Gender:     identity.Female,
		Profession: "Ingeniera",
	}
}

func testCompany() identity.Company {
	return identity.Company{
		Name:     "Comercial Andes S.A.",
		RUC:      "1791234561001",
		Sector:   "Comercial",
		Type:     "Sociedad Anónima",
		Email:    "info@andes.com.ec",
		Phone:    "+593 2 123 4567",
		Address:  "Av. 6 de Diciembre N45",
		Province: "Pichincha",
		Canton:   "Quito",
	}
}

// captureClipboard replaces the clipboard for the test and returns what was copied.
func captureClipboard(t *testing.T) *[]string {
	t.Helper()
	var copied []string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })
	return &copied
}

func testGenerator() *identity.Generator {
	return identity.New(identity.WithSource(rng.Seeded(11)))
}

func navigation(t *testing.T, cmd tea.Cmd) viewID {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok {
		t.Fatal("should emit navigateMsg")
	}
	return nav.view
}

// menu view tests

func TestMenuViewShowsItems(t *testing.T) {
	m := newMenuModel("1.0")
	view := m.View()

	for _, item := range menuItems {
		if !strings.Contains(view, item) {
			t.Errorf("menu should contain %q", item)
		}
	}
	if !strings.Contains(view, "1.0") {
		t.Error("menu should show version")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newMenuModel("1.0")

	if m.cursor != 0 {
		t.Fatal("cursor should start at 0")
	}

	// move down
	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// move down with arrow
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	// clamp at the last item
	m, _ = m.Update(keyMsg('j'))
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want %d (clamped)", m.cursor, len(menuItems)-1)
	}

	// up arrow
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// don't go below 0
	m, _ = m.Update(keyMsg('k'))
	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   recordKind
	}{
		{"people", 0, kindPeople},
		{"companies", 1, kindCompanies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMenuModel("1.0")
			m.cursor = tt.cursor
			_, cmd := m.Update(enterKey())
			if cmd == nil {
				t.Fatal("enter should produce command")
			}
			msg, ok := cmd().(generateMsg)
			if !ok {
				t.Fatal("should emit generateMsg")
			}
			if msg.kind != tt.want {
				t.Errorf("kind = %d, want %d", msg.kind, tt.want)
			}
		})
	}
}

func TestMenuQuitOnQ(t *testing.T) {
	m := newMenuModel("1.0")
	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestMenuQuitFromLastItem(t *testing.T) {
	m := newMenuModel("1.0")
	m.cursor = len(menuItems) - 1 // Quit item
	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("selecting Quit should produce command")
	}
}

func TestMenuShowsError(t *testing.T) {
	m := newMenuModel("1.0")
	m.err = "unknown province"
	if !strings.Contains(m.View(), "unknown province") {
		t.Error("menu should show the generation error")
	}
}

// list view tests

func TestListViewShowsRecords(t *testing.T) {
	p := testPerson()
	m := newListModel(kindPeople, []identity.Record{p})
	view := m.View()

	for _, want := range []string{p.Cedula, "María Pérez Ortiz", "Pichincha", "1 of 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestListViewCompanies(t *testing.T) {
	c := testCompany()
	m := newListModel(kindCompanies, []identity.Record{c})
	view := m.View()

	if !strings.Contains(view, c.RUC) || !strings.Contains(view, c.Name) {
		t.Errorf("view should show ruc and name:\n%s", view)
	}
}

func TestListViewEmpty(t *testing.T) {
	m := newListModel(kindPeople, nil)
	if !strings.Contains(m.View(), "empty batch") {
		t.Error("should show empty state")
	}
}

func TestListNavigation(t *testing.T) {
	records := []identity.Record{testPerson(), testPerson(), testPerson()}
	m := newListModel(kindPeople, records)

	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestListScrolls(t *testing.T) {
	records := make([]identity.Record, 10)
	for i := range records {
		p := testPerson()
		p.Cedula = "17146161" + string(rune('0'+i)) + "0"
		records[i] = p
	}
	m := newListModel(kindPeople, records)
	m.height = 3

	for range 5 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.offset != 3 {
		t.Errorf("offset = %d, want 3", m.offset)
	}

	view := m.View()
	if strings.Contains(view, "1714616100") {
		t.Error("first row should have scrolled out of view")
	}
	if !strings.Contains(view, "1714616150") {
		t.Error("cursor row should be visible")
	}

	for range 5 {
		m, _ = m.Update(keyMsg('k'))
	}
	if m.offset != 0 {
		t.Errorf("offset = %d, want 0", m.offset)
	}
}

func TestListSelectRecord(t *testing.T) {
	p := testPerson()
	m := newListModel(kindPeople, []identity.Record{p})

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce command")
	}
	msg, ok := cmd().(viewRecordMsg)
	if !ok {
		t.Fatal("should emit viewRecordMsg")
	}
	if msg.record.(identity.Person).Cedula != p.Cedula {
		t.Errorf("record = %+v", msg.record)
	}
}

func TestListCopyAll(t *testing.T) {
	copied := captureClipboard(t)
	m := newListModel(kindPeople, []identity.Record{testPerson(), testPerson()})

	m, _ = m.Update(keyMsg('c'))
	if len(*copied) != 1 {
		t.Fatalf("expected one clipboard write, got %d", len(*copied))
	}
	lines := strings.Split(strings.TrimSpace((*copied)[0]), "\n")
	if len(lines) != 3 {
		t.Errorf("tsv should have header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "cedula\tfirst_name\t") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(m.View(), "copied 2 rows!") {
		t.Error("should flash after copy")
	}
}

func TestListCopyError(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWrite = orig })

	m := newListModel(kindPeople, []identity.Record{testPerson()})
	m, _ = m.Update(keyMsg('c'))
	if !strings.Contains(m.View(), "copy: no clipboard") {
		t.Error("should flash the clipboard error")
	}
}

func TestListNewBatch(t *testing.T) {
	m := newListModel(kindCompanies, nil)
	_, cmd := m.Update(keyMsg('n'))
	if cmd == nil {
		t.Fatal("n should produce command")
	}
	msg, ok := cmd().(generateMsg)
	if !ok || msg.kind != kindCompanies {
		t.Errorf("should regenerate companies, got %#v", cmd())
	}
}

func TestListBackToMenu(t *testing.T) {
	m := newListModel(kindPeople, nil)
	_, cmd := m.Update(escKey())
	if v := navigation(t, cmd); v != viewMenu {
		t.Errorf("view = %d, want viewMenu", v)
	}
}

func TestListFlashClears(t *testing.T) {
	m := newListModel(kindPeople, nil)
	m.flash = "copied!"
	m, _ = m.Update(flashMsg{})
	if m.flash != "" {
		t.Error("flash should clear")
	}
}

// detail view tests

func TestDetailViewShowsFields(t *testing.T) {
	p := testPerson()
	m := newDetailModel(kindPeople, p)
	view := m.View()

	for _, want := range []string{"María Pérez Ortiz", p.Cedula, p.Email, p.Phone, p.BirthDate, "profession"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestDetailViewCompany(t *testing.T) {
	c := testCompany()
	m := newDetailModel(kindCompanies, c)
	view := m.View()

	for _, want := range []string{c.Name, c.RUC, c.Type, "sector"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestDetailNavigation(t *testing.T) {
	m := newDetailModel(kindPeople, testPerson())

	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	for range 20 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(m.fields)-1 {
		t.Errorf("cursor = %d, want %d (clamped)", m.cursor, len(m.fields)-1)
	}
}

func TestDetailCopyField(t *testing.T) {
	copied := captureClipboard(t)
	p := testPerson()
	m := newDetailModel(kindPeople, p)

	m, _ = m.Update(keyMsg('j')) // first_name
	m, _ = m.Update(enterKey())

	if len(*copied) != 1 || (*copied)[0] != p.FirstName {
		t.Errorf("copied = %q, want %q", *copied, p.FirstName)
	}
	if !strings.Contains(m.View(), "copied!") {
		t.Error("should flash after copy")
	}
}

func TestDetailCopyAll(t *testing.T) {
	copied := captureClipboard(t)
	c := testCompany()
	m := newDetailModel(kindCompanies, c)

	m, _ = m.Update(keyMsg('c'))
	if len(*copied) != 1 {
		t.Fatalf("expected one clipboard write, got %d", len(*copied))
	}
	if !strings.HasPrefix((*copied)[0], "name\tComercial Andes S.A.\n") {
		t.Errorf("copied = %q", (*copied)[0])
	}
	if !strings.Contains(m.View(), "copied all!") {
		t.Error("should flash after copy all")
	}
}

func TestDetailBackToList(t *testing.T) {
	m := newDetailModel(kindPeople, testPerson())
	_, cmd := m.Update(escKey())
	if v := navigation(t, cmd); v != viewList {
		t.Errorf("view = %d, want viewList", v)
	}
}

func TestDetailNewBatch(t *testing.T) {
	m := newDetailModel(kindPeople, testPerson())
	_, cmd := m.Update(keyMsg('n'))
	if cmd == nil {
		t.Fatal("n should produce command")
	}
	if msg, ok := cmd().(generateMsg); !ok || msg.kind != kindPeople {
		t.Error("should regenerate people")
	}
}

func TestDetailQuit(t *testing.T) {
	m := newDetailModel(kindPeople, testPerson())
	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

// root model tests

func TestRootStartsAtMenu(t *testing.T) {
	m := New("1.0", testGenerator())
	if m.active != viewMenu {
		t.Errorf("active = %d, want viewMenu", m.active)
	}
	if !strings.Contains(m.View(), "Generate people") {
		t.Error("root view should render the menu")
	}
}

func TestRootGeneratePeople(t *testing.T) {
	m := New("1.0", testGenerator())

	result, _ := m.Update(generateMsg{kind: kindPeople})
	rm := result.(Model)
	if rm.active != viewList {
		t.Errorf("active = %d, want viewList", rm.active)
	}
	if len(rm.list.records) != defaultBatchSize {
		t.Errorf("batch size = %d, want %d", len(rm.list.records), defaultBatchSize)
	}
	if _, ok := rm.list.records[0].(identity.Person); !ok {
		t.Error("batch should hold persons")
	}
	if !strings.Contains(rm.View(), "People") {
		t.Error("header should name the batch kind")
	}
}

func TestRootGenerateCompaniesWithOptions(t *testing.T) {
	m := New("1.0", testGenerator(), WithOptions(identity.Options{Quantity: 3, Province: "Loja"}))

	result, _ := m.Update(generateMsg{kind: kindCompanies})
	rm := result.(Model)
	if len(rm.list.records) != 3 {
		t.Fatalf("batch size = %d, want 3", len(rm.list.records))
	}
	for _, r := range rm.list.records {
		c, ok := r.(identity.Company)
		if !ok {
			t.Fatal("batch should hold companies")
		}
		if c.Province != "Loja" {
			t.Errorf("province = %s, want Loja", c.Province)
		}
	}
}

func TestRootGenerateErrorShowsOnMenu(t *testing.T) {
	m := New("1.0", testGenerator(), WithOptions(identity.Options{Province: "nowhere"}))

	result, _ := m.Update(generateMsg{kind: kindPeople})
	rm := result.(Model)
	if rm.active != viewMenu {
		t.Errorf("active = %d, want viewMenu", rm.active)
	}
	if !strings.Contains(rm.View(), "unknown province") {
		t.Error("menu should report the error")
	}
}

func TestRootListToDetailAndBack(t *testing.T) {
	m := New("1.0", testGenerator())
	result, _ := m.Update(generateMsg{kind: kindPeople})

	result, cmd := result.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter in list should produce command")
	}
	result, _ = result.Update(cmd())
	rm := result.(Model)
	if rm.active != viewDetail {
		t.Fatalf("active = %d, want viewDetail", rm.active)
	}
	want := rm.list.records[0].(identity.Person).Cedula
	if rm.detail.record.(identity.Person).Cedula != want {
		t.Error("detail should show the selected record")
	}
	if !strings.Contains(rm.View(), "Person") {
		t.Error("header should name the detail view")
	}

	result, cmd = rm.Update(escKey())
	result, _ = result.Update(cmd())
	if result.(Model).active != viewList {
		t.Error("esc in detail should return to the list")
	}
}

func TestRootRegenerate(t *testing.T) {
	m := New("1.0", testGenerator())
	result, _ := m.Update(generateMsg{kind: kindPeople})
	first := result.(Model).list.records[0].(identity.Person)

	result, cmd := result.Update(keyMsg('n'))
	result, _ = result.Update(cmd())
	second := result.(Model).list.records[0].(identity.Person)

	if first == second {
		t.Error("n should produce a fresh batch")
	}
}

func TestRootWindowSize(t *testing.T) {
	m := New("1.0", testGenerator())
	result, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	rm := result.(Model)
	if rm.width != 80 || rm.height != 30 {
		t.Errorf("size = %dx%d", rm.width, rm.height)
	}

	result, _ = rm.Update(generateMsg{kind: kindPeople})
	if h := result.(Model).list.height; h != 30-chromeHeight {
		t.Errorf("list height = %d, want %d", h, 30-chromeHeight)
	}
}

func TestRootQuitFromMenu(t *testing.T) {
	m := New("1.0", testGenerator())
	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit from menu")
	}
}

func TestHelpFor(t *testing.T) {
	if helpFor(viewMenu) != nil {
		t.Error("menu renders its own help")
	}
	for _, v := range []viewID{viewList, viewDetail} {
		if len(helpFor(v)) == 0 {
			t.Errorf("view %d has no help", v)
		}
	}
}
