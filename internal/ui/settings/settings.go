// Package settings renders the database settings screen: a list of
// preferences that open confirmation dialogs, followed by database stats.
package settings

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/keyvault/internal/keymap"
	"github.com/llehouerou/keyvault/internal/resources"
	"github.com/llehouerou/keyvault/internal/ui"
	"github.com/llehouerou/keyvault/internal/ui/cursor"
	"github.com/llehouerou/keyvault/internal/ui/render"
	"github.com/llehouerou/keyvault/internal/ui/styles"
	"github.com/llehouerou/keyvault/internal/vault"
)

const (
	titleHeight = 2 // title and blank line
	statsHeight = 6 // separator, three stats rows, pending notice, blank line
	rowHeight   = 2 // title and summary
)

// Item is a single preference row.
type Item struct {
	Key     string
	Title   string
	Summary string
}

// Model is the settings list.
type Model struct {
	ui.Base
	catalog *resources.Catalog
	keys    *keymap.Resolver
	help    help.Model
	items   []Item
	cur     cursor.Cursor
	stats   *vault.Stats
	status  string
	focused bool
}

// New builds the list for the given preference keys.
func New(catalog *resources.Catalog, prefKeys []string) Model {
	items := make([]Item, 0, len(prefKeys))
	for _, k := range prefKeys {
		it := Item{Key: k, Title: catalog.String(resources.PreferenceTitle(k))}
		if catalog.Has(resources.PreferenceSummary(k)) {
			it.Summary = catalog.String(resources.PreferenceSummary(k))
		}
		items = append(items, it)
	}
	return Model{
		catalog: catalog,
		keys:    keymap.NewResolver(keymap.ForContexts("settings")),
		help:    help.New(),
		items:   items,
		focused: true,
	}
}

// Items returns the preference rows.
func (m Model) Items() []Item {
	return m.items
}

// Selected returns the key under the cursor, or "" when the list is empty.
func (m Model) Selected() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cur.Pos()].Key
}

// Select moves the cursor to key. Unknown keys are ignored.
func (m *Model) Select(key string) bool {
	for i, it := range m.items {
		if it.Key == key {
			m.cur.Jump(i, len(m.items), m.visibleItems())
			return true
		}
	}
	return false
}

// SetSize sets the dimensions and keeps the selection in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cur.Fit(len(m.items), m.visibleItems())
}

// SetStats replaces the stats block; nil means no database is open.
func (m *Model) SetStats(s *vault.Stats) {
	m.stats = s
}

// SetStatus sets the one-line status message.
func (m *Model) SetStatus(s string) {
	m.status = s
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.status
}

// SetFocused toggles whether the list reacts to keys.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// ToggleHelp switches between short and full help.
func (m *Model) ToggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles list navigation and activation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.items) == 0 {
		return m, nil
	}

	n, h := len(m.items), m.visibleItems()
	var moved bool
	switch m.keys.Resolve(keyMsg.String()) {
	case keymap.ActionMoveUp:
		moved = m.cur.Move(-1, n, h)
	case keymap.ActionMoveDown:
		moved = m.cur.Move(1, n, h)
	case keymap.ActionJumpStart:
		moved = m.cur.JumpStart(n, h)
	case keymap.ActionJumpEnd:
		moved = m.cur.JumpEnd(n, h)
	case keymap.ActionSelect:
		key := m.Selected()
		return m, func() tea.Msg { return ActionMsg(OpenDialog{Key: key}) }
	}

	if !moved {
		return m, nil
	}
	key := m.Selected()
	return m, func() tea.Msg { return ActionMsg(SelectionChanged{Key: key}) }
}

// visibleItems is how many two-line rows fit between the title and the
// stats block; zero means unbounded.
func (m Model) visibleItems() int {
	if m.Height() == 0 {
		return 0
	}
	reserved := ui.BorderHeight + titleHeight + statsHeight + ui.StatusHeight + ui.FooterHeight
	return max((m.Height()-reserved)/rowHeight, 1)
}

// View renders the list, stats and help footer.
func (m Model) View() string {
	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render(m.catalog.String(resources.SettingsTitle)))
	b.WriteString("\n\n")

	textW := m.Width() - ui.BorderWidth - 4
	start, end := m.cur.VisibleRange(len(m.items), m.visibleItems())
	for i := start; i < end; i++ {
		it := m.items[i]
		if i == m.cur.Pos() {
			b.WriteString(s.Selected.Render("> " + render.Truncate(it.Title, textW)))
		} else {
			b.WriteString(s.Base.Render("  " + render.Truncate(it.Title, textW)))
		}
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("    " + render.Truncate(it.Summary, textW)))
		b.WriteString("\n")
	}

	b.WriteString(s.Subtle.Render(render.Separator(m.Width() - ui.BorderWidth)))
	b.WriteString("\n")
	b.WriteString(m.statsView())

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Success.Render(m.status))
	}

	b.WriteString("\n\n")
	m.help.Width = m.Width()
	b.WriteString(m.help.View(helpKeys{}))

	content := b.String()
	if m.Width() > 0 {
		return styles.PanelStyle(m.focused).
			Width(m.Width() - ui.BorderWidth).
			Height(max(m.Height()-ui.BorderHeight, 0)).
			Render(content)
	}
	return content
}

func (m Model) statsView() string {
	s := styles.T().S()
	if m.stats == nil {
		return s.Warning.Render(m.catalog.String(resources.StatusNoDatabase))
	}

	row := func(id, value string) string {
		return s.Muted.Render(m.catalog.String(id)+": ") + s.Base.Render(value)
	}
	unlinked := strconv.Itoa(m.stats.Unlinked)
	if m.stats.Unlinked > 0 {
		unlinked += " (" + humanize.IBytes(uint64(m.stats.UnlinkedBytes)) + ")" //nolint:gosec // sizes are never negative
	}
	lines := []string{
		row(resources.StatsEntries, humanize.Comma(int64(m.stats.Entries))),
		row(resources.StatsAttachments, humanize.Comma(int64(m.stats.Attachments))),
		row(resources.StatsUnlinked, unlinked),
	}
	if m.stats.Pending > 0 {
		lines = append(lines, s.Warning.Render(m.catalog.Format(resources.StatsPending, m.stats.Pending)))
	}
	return strings.Join(lines, "\n")
}

// helpKeys adapts keymap bindings to help.KeyMap.
type helpKeys struct{}

func (helpKeys) ShortHelp() []key.Binding {
	var short []key.Binding
	for _, b := range keymap.Bindings {
		switch b.Action {
		case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionSelect,
			keymap.ActionQuit, keymap.ActionHelp:
			short = append(short, b.Help())
		}
	}
	return short
}

func (helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		keymap.HelpBindings("settings"),
		keymap.HelpBindings("global"),
	}
}
