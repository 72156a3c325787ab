// Package selectlist is a themed select control for Bubbletea views. It
// supports single and multiple selection, a search filter, grouped
// options, disabled options and custom item rendering.
//
// The control is closed until activated with enter, space or down. While
// open, up and down move a focus cursor circularly over the visible
// options, enter commits the focused option and esc closes without
// committing. A click outside the control or a BlurMsg also closes it.
package selectlist

import (
	"reflect"
	"slices"
	"strings"

	"nathanbeddoewebdev/hirectl/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Option is one selectable entry. Value must be comparable.
type Option struct {
	Value       any
	Label       string
	Description string
	Icon        string
	Disabled    bool
	Group       string
}

// Size controls how many rows are shown while open.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

func (s Size) rows() int {
	switch s {
	case SizeSmall:
		return 4
	case SizeLarge:
		return 10
	default:
		return 7
	}
}

// Variant controls the trigger's frame.
type Variant int

const (
	VariantDefault Variant = iota
	VariantOutlined
	VariantFilled
)

// ItemState describes an option at render time.
type ItemState struct {
	Focused  bool
	Selected bool
}

// Renderer draws one option line. The result is truncated to the control
// width.
type Renderer func(opt Option, state ItemState, s *styles.Styles) string

// Config holds the presentation and behaviour flags.
type Config struct {
	Multiple      bool
	Searchable    bool
	Clearable     bool
	Grouping      bool
	CloseOnSelect bool
	Disabled      bool

	Size        Size
	Variant     Variant
	Placeholder string
	Width       int
	Renderer    Renderer

	// OnChange receives the new value: the option Value (or nil after a
	// clear) when Multiple is false, otherwise a fresh []any.
	OnChange func(value any)
}

// DefaultConfig returns the config for a plain single select.
func DefaultConfig() Config {
	return Config{
		CloseOnSelect: true,
		Placeholder:   "Select…",
		Width:         40,
	}
}

// BlurMsg closes the control as if focus moved elsewhere.
type BlurMsg struct{}

// hitTester reports whether a mouse event falls inside a marked region.
type hitTester interface {
	InBounds(id string, msg tea.MouseMsg) bool
}

type zoneHits struct{ m *zone.Manager }

func (z zoneHits) InBounds(id string, msg tea.MouseMsg) bool {
	if z.m == nil {
		return false
	}
	info := z.m.Get(id)
	return info != nil && info.InBounds(msg)
}

// Model is the select control.
type Model struct {
	id      string
	cfg     Config
	options []Option
	styles  *styles.Styles

	zones *zone.Manager
	hits  hitTester

	single any
	multi  []any

	focused bool
	open    bool
	cursor  int // index into visible; -1 means none
	offset  int
	filter  textinput.Model
	visible []int
	headers map[int]string
}

// New creates a closed, unfocused control. options is copied. zones may
// be nil, in which case pointer input is ignored; when set, the root view
// must pass its output through zones.Scan.
func New(id string, options []Option, cfg Config, s *styles.Styles, zones *zone.Manager) Model {
	if cfg.Width <= 0 {
		cfg.Width = 40
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Select…"
	}

	ti := textinput.New()
	ti.Placeholder = "Search…"
	ti.Prompt = "/ "
	ti.Width = max(cfg.Width-4, 4)

	m := Model{
		id:      id,
		cfg:     cfg,
		options: slices.Clone(options),
		styles:  s,
		zones:   zones,
		hits:    zoneHits{m: zones},
		cursor:  -1,
		filter:  ti,
	}
	if cfg.Multiple {
		m.multi = []any{}
	}
	m.refresh()
	return m
}

// ID returns the zone id of the control.
func (m Model) ID() string { return m.id }

// Options returns a copy of the option list.
func (m Model) Options() []Option { return slices.Clone(m.options) }

// SetStyles swaps the style set after a theme change.
func (m *Model) SetStyles(s *styles.Styles) { m.styles = s }

// Value returns the current selection: an option value or nil when
// Multiple is false, otherwise a copy of the selected values in selection
// order.
func (m Model) Value() any {
	if m.cfg.Multiple {
		return slices.Clone(m.multi)
	}
	return m.single
}

// SetValue replaces the selection without calling OnChange. For a
// multiple select v must be a []any.
func (m *Model) SetValue(v any) {
	if m.cfg.Multiple {
		vals, _ := v.([]any)
		m.multi = append([]any{}, vals...)
		return
	}
	m.single = v
}

// Focus gives the control keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus and closes the control.
func (m *Model) Blur() {
	m.focused = false
	m.setOpen(false)
}

func (m Model) Focused() bool { return m.focused }
func (m Model) IsOpen() bool  { return m.open }

// Cursor returns the focused position in Visible, or -1.
func (m Model) Cursor() int { return m.cursor }

// Visible returns the options currently shown, in navigation order.
func (m Model) Visible() []Option {
	out := make([]Option, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.options[idx]
	}
	return out
}

// FilterText returns the search text.
func (m Model) FilterText() string { return m.filter.Value() }

// SetFilter replaces the search text. It resets the focus cursor.
func (m *Model) SetFilter(text string) {
	if !m.cfg.Searchable {
		return
	}
	m.filter.SetValue(text)
	m.refresh()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BlurMsg:
		m.Blur()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.focused || m.cfg.Disabled {
			return m, nil
		}
		if m.open {
			return m.handleOpenKey(msg)
		}
		return m.handleClosedKey(msg)
	}
	return m, nil
}

func (m Model) handleClosedKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "down":
		m.setOpen(true)
		if m.cfg.Searchable {
			return m, textinput.Blink
		}
	case "ctrl+x", "backspace", "delete":
		m.clear()
	}
	return m, nil
}

func (m Model) handleOpenKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab", "shift+tab":
		m.setOpen(false)
		return m, nil
	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, nil
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, nil
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.visible) {
			m.commit(m.visible[m.cursor])
		}
		return m, nil
	case "ctrl+x":
		m.clear()
		return m, nil
	case "backspace":
		if m.filter.Value() == "" {
			m.clear()
			return m, nil
		}
	case " ":
		if !m.cfg.Searchable {
			if m.cursor >= 0 && m.cursor < len(m.visible) {
				m.commit(m.visible[m.cursor])
			}
			return m, nil
		}
	}

	if !m.cfg.Searchable {
		return m, nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.open {
		for pos, idx := range m.visible {
			if m.hits.InBounds(m.optionZone(pos), msg) {
				m.focused = true
				m.commit(idx)
				return m, nil
			}
		}
	}

	inside := m.hits.InBounds(m.id, msg)
	switch {
	case inside && !m.open && !m.cfg.Disabled:
		m.focused = true
		m.setOpen(true)
	case !inside && m.open:
		m.setOpen(false)
	case !inside:
		m.focused = false
	}
	return m, nil
}

// commit selects options[idx]. Disabled options are ignored.
func (m *Model) commit(idx int) {
	opt := m.options[idx]
	if opt.Disabled {
		return
	}

	if m.cfg.Multiple {
		m.multi = toggle(m.multi, opt.Value)
		m.emit(slices.Clone(m.multi))
	} else {
		m.single = opt.Value
		m.emit(opt.Value)
	}

	if m.cfg.CloseOnSelect {
		m.setOpen(false)
	}
}

// toggle removes v when present and appends it otherwise. The input slice
// is not modified.
func toggle(values []any, v any) []any {
	for i, cur := range values {
		if equal(cur, v) {
			out := make([]any, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...)
		}
	}
	out := make([]any, 0, len(values)+1)
	out = append(out, values...)
	return append(out, v)
}

func (m *Model) clear() {
	if !m.cfg.Clearable {
		return
	}
	if m.cfg.Multiple {
		m.multi = []any{}
		m.emit([]any{})
		return
	}
	m.single = nil
	m.emit(nil)
}

func (m *Model) emit(v any) {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(v)
	}
}

func (m *Model) setOpen(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	m.cursor = -1
	m.offset = 0
	if !open && m.filter.Value() != "" {
		m.filter.SetValue("")
		m.refresh()
	}
	if open && m.cfg.Searchable {
		m.filter.Focus()
	} else {
		m.filter.Blur()
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(m.visible)
	if n == 0 {
		m.cursor = -1
		return
	}
	switch {
	case m.cursor < 0 && delta > 0:
		m.cursor = 0
	case m.cursor < 0:
		m.cursor = n - 1
	default:
		m.cursor = ((m.cursor+delta)%n + n) % n
	}

	rows := m.cfg.Size.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// refresh recomputes the visible options from the filter and grouping,
// and resets the focus cursor.
func (m *Model) refresh() {
	m.visible, m.headers = visibleOptions(m.options, m.filter.Value(), m.cfg.Grouping)
	m.cursor = -1
	m.offset = 0
}

// visibleOptions filters by case-insensitive substring on label and
// description, then partitions by group in first-seen order with
// ungrouped options last. headers maps a position in the result to the
// group title that starts there.
func visibleOptions(options []Option, query string, grouping bool) ([]int, map[int]string) {
	q := strings.ToLower(strings.TrimSpace(query))
	var matched []int
	for i, o := range options {
		if q == "" ||
			strings.Contains(strings.ToLower(o.Label), q) ||
			strings.Contains(strings.ToLower(o.Description), q) {
			matched = append(matched, i)
		}
	}
	if !grouping {
		return matched, nil
	}

	var order []string
	buckets := make(map[string][]int)
	var ungrouped []int
	for _, i := range matched {
		g := options[i].Group
		if g == "" {
			ungrouped = append(ungrouped, i)
			continue
		}
		if _, ok := buckets[g]; !ok {
			order = append(order, g)
		}
		buckets[g] = append(buckets[g], i)
	}

	out := make([]int, 0, len(matched))
	headers := make(map[int]string)
	for _, g := range order {
		headers[len(out)] = g
		out = append(out, buckets[g]...)
	}
	if len(ungrouped) > 0 && len(order) > 0 {
		headers[len(out)] = "Other"
	}
	out = append(out, ungrouped...)
	return out, headers
}

func (m Model) isSelected(v any) bool {
	if m.cfg.Multiple {
		return slices.ContainsFunc(m.multi, func(x any) bool { return equal(x, v) })
	}
	return m.single != nil && equal(m.single, v)
}

// equal compares option values without panicking on uncomparable types.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
