// Package tui is the interactive preset browser: a list of saved presets
// beside a live preview of the selected one and its generated code.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/artisan/pkg/codegen"
	"github.com/dkoosis/artisan/pkg/entry"
	"github.com/dkoosis/artisan/pkg/render"
)

// Pane is what the detail pane shows for the selected preset.
type Pane int

const (
	PanePreview Pane = iota
	PaneUsage
	PaneInline
	PaneLibrary
	paneCount
)

func (p Pane) String() string {
	switch p {
	case PanePreview:
		return "preview"
	case PaneUsage:
		return string(codegen.Usage)
	case PaneInline:
		return string(codegen.Inline)
	case PaneLibrary:
		return string(codegen.Library)
	}
	return "?"
}

// Options configure the browser.
type Options struct {
	Theme   render.Theme
	Expand  bool
	NoColor bool
}

// Run launches the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, presets []entry.Preset, opts Options) error {
	program := tea.NewProgram(New(presets, opts), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model of the browser.
type Model struct {
	presets     []entry.Preset
	opts        Options
	styles      styles
	selected    int
	pane        Pane
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

type styles struct {
	title      lipgloss.Style
	selected   lipgloss.Style
	unselected lipgloss.Style
	meta       lipgloss.Style
	box        lipgloss.Style
	header     lipgloss.Style
	tab        lipgloss.Style
	activeTab  lipgloss.Style
	status     lipgloss.Style
	warning    lipgloss.Style
	failure    lipgloss.Style
}

func newStyles(t render.Theme) styles {
	if t.Name == "" {
		t = render.DefaultTheme()
	}
	border := lipgloss.RoundedBorder()
	return styles{
		title:      t.Bold.Inherit(t.Primary).Padding(0, 1),
		selected:   t.Bold.Inherit(t.Primary).Reverse(true).Padding(0, 1),
		unselected: lipgloss.NewStyle().Padding(0, 1),
		meta:       t.Muted,
		box:        lipgloss.NewStyle().Border(border).Padding(0, 1),
		header:     t.Bold,
		tab:        t.Muted.Padding(0, 1),
		activeTab:  t.Bold.Inherit(t.Success).Underline(true).Padding(0, 1),
		status:     t.Muted.Padding(0, 1),
		warning:    t.Warning,
		failure:    t.Bold.Inherit(t.Error),
	}
}

// New creates a browser model over presets.
func New(presets []entry.Preset, opts Options) Model {
	vp := viewport.New(0, 0)
	vp.SetContent("No presets saved")
	return Model{presets: presets, opts: opts, styles: newStyles(opts.Theme), viewport: vp}
}

// Selected returns the index of the highlighted preset.
func (m Model) Selected() int { return m.selected }

// Pane returns the active detail pane.
func (m Model) Pane() Pane { return m.pane }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.viewport.GotoTop()
				m.refreshViewport()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.presets)-1 {
				m.selected++
				m.viewport.GotoTop()
				m.refreshViewport()
			}
			return m, nil
		case "tab":
			m.pane = (m.pane + 1) % paneCount
			m.viewport.GotoTop()
			m.refreshViewport()
			return m, nil
		case "shift+tab":
			m.pane = (m.pane + paneCount - 1) % paneCount
			m.viewport.GotoTop()
			m.refreshViewport()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 1
		m.viewport.Width = max(m.detailWidth-4, 10)
		m.viewport.Height = max(msg.Height-8, 3)
		m.ready = true
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) calculateListWidth() int {
	width := 22
	for _, p := range m.presets {
		if w := lipgloss.Width(p.Name) + 4; w > width {
			width = w
		}
	}
	return width + 4
}

func (m *Model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.presets) {
		return
	}
	m.viewport.SetContent(m.detail(m.presets[m.selected].Logs))
}

// detail renders items for the active pane.
func (m Model) detail(items []entry.Item) string {
	switch m.pane {
	case PaneUsage:
		return codegen.ProjectAll(items, codegen.Usage)
	case PaneInline:
		return codegen.ProjectAll(items, codegen.Inline)
	case PaneLibrary:
		return codegen.LibrarySource()
	}

	var buf bytes.Buffer
	sink := render.NewTerminal(&buf, render.Options{
		Theme:   m.opts.Theme,
		Width:   m.viewport.Width,
		Expand:  m.opts.Expand,
		NoColor: m.opts.NoColor,
	})
	if !m.opts.NoColor {
		sink.SetColorProfile(lipgloss.ColorProfile())
	}
	entry.Run(sink, items)
	if err := sink.Err(); err != nil {
		return m.styles.failure.Render(fmt.Sprintf("render failed: %v", err))
	}
	if buf.Len() == 0 {
		return m.styles.warning.Render("(empty preset)")
	}
	return buf.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading presets..."
	}

	contentHeight := max(m.height-6, 3)
	title := m.styles.title.Render("artisan presets")

	list := fit(m.renderList(), contentHeight)
	listPanel := m.styles.box.Width(m.listWidth).Render(list)

	var detail string
	if len(m.presets) == 0 {
		detail = m.styles.meta.Render("No presets saved. Use `artisan preset save` to add one.")
	} else {
		p := m.presets[m.selected]
		detail = m.styles.header.Render(p.Name) + "  " + m.renderTabs() + "\n\n" + m.viewport.View()
	}
	detailPanel := m.styles.box.Width(m.detailWidth - 4).Render(fit(detail, contentHeight))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.styles.status.Render("↑/↓ select • tab switch view • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, paneCount)
	for p := PanePreview; p < paneCount; p++ {
		if p == m.pane {
			tabs = append(tabs, m.styles.activeTab.Render(p.String()))
			continue
		}
		tabs = append(tabs, m.styles.tab.Render(p.String()))
	}
	return strings.Join(tabs, "")
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.presets)*2)
	for i, p := range m.presets {
		meta := m.styles.meta.Render("  " + Summary(p))
		if i == m.selected {
			lines = append(lines, m.styles.selected.Render(p.Name), meta)
			continue
		}
		lines = append(lines, m.styles.unselected.Render(p.Name), meta)
	}
	return strings.Join(lines, "\n")
}

// Summary describes p in one line: item count, creation date and the
// distinct statement types it holds.
func Summary(p entry.Preset) string {
	seen := make(map[entry.Type]bool)
	var types []string
	for _, it := range p.Logs {
		if !seen[it.Config.Type] {
			seen[it.Config.Type] = true
			types = append(types, it.Config.Type.Title())
		}
	}
	noun := "items"
	if len(p.Logs) == 1 {
		noun = "item"
	}
	s := fmt.Sprintf("%d %s", len(p.Logs), noun)
	if p.CreatedAt > 0 {
		s += " · " + time.UnixMilli(p.CreatedAt).UTC().Format("2006-01-02")
	}
	if len(types) > 0 {
		s += " · " + strings.Join(types, ", ")
	}
	return s
}

// fit pads or truncates s to exactly height lines.
func fit(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
