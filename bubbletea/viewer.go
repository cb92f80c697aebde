// Package bubbletea provides a two-pane terminal viewer for comparisons using
// the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/miraflynn/textcompare"
	dv "github.com/miraflynn/textcompare/lipgloss"
)

// Layout rows outside the panes.
const (
	headerHeight    = 1
	statusBarHeight = 1
)

// separator is drawn between the two panes.
const separator = "│"

// Model is the Bubble Tea model for viewing a comparison side by side.
// Both panes scroll together so aligned text stays level.
type Model struct {
	alignment textcompare.Alignment
	theme     textcompare.Theme
	renderer  *lipgloss.Renderer
	keymap    KeyMap
	titles    [2]string

	left  viewport.Model
	right viewport.Model
	width int
	ready bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTheme sets the colors used for segments and titles.
func WithTheme(theme textcompare.Theme) ModelOption {
	return func(m *Model) { m.theme = theme }
}

// WithRenderer sets the lipgloss renderer, which decides the color profile.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.renderer = r }
}

// WithTitles sets the pane titles.
func WithTitles(left, right string) ModelOption {
	return func(m *Model) { m.titles = [2]string{left, right} }
}

// NewModel creates a new Model for the alignment.
func NewModel(a textcompare.Alignment, opts ...ModelOption) Model {
	m := Model{
		alignment: a,
		theme:     dv.DefaultTheme(),
		keymap:    DefaultKeyMap(),
		titles:    [2]string{"Text 1", "Text 2"},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Up):
			m.scroll(func(vp *viewport.Model) { vp.ScrollUp(1) })
		case key.Matches(msg, m.keymap.Down):
			m.scroll(func(vp *viewport.Model) { vp.ScrollDown(1) })
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.scroll(func(vp *viewport.Model) { vp.HalfPageUp() })
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.scroll(func(vp *viewport.Model) { vp.HalfPageDown() })
		case key.Matches(msg, m.keymap.GotoTop):
			m.scroll(func(vp *viewport.Model) { vp.GotoTop() })
		case key.Matches(msg, m.keymap.GotoBottom):
			m.scroll(func(vp *viewport.Model) { vp.GotoBottom() })
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		var cmdLeft, cmdRight tea.Cmd
		m.left, cmdLeft = m.left.Update(msg)
		m.right, cmdRight = m.right.Update(msg)
		return m, tea.Batch(cmdLeft, cmdRight)
	}

	return m, nil
}

// scroll applies the same movement to both panes.
func (m *Model) scroll(fn func(vp *viewport.Model)) {
	if !m.ready {
		return
	}
	fn(&m.left)
	fn(&m.right)
}

func (m *Model) resize(width, height int) {
	paneHeight := max(height-headerHeight-statusBarHeight, 1)
	leftWidth, rightWidth := paneWidths(width)

	if !m.ready {
		m.left = viewport.New(leftWidth, paneHeight)
		m.right = viewport.New(rightWidth, paneHeight)
		m.ready = true
	} else {
		m.left.Width, m.left.Height = leftWidth, paneHeight
		m.right.Width, m.right.Height = rightWidth, paneHeight
	}
	m.width = width

	m.left.SetContent(m.renderPane(m.alignment.Side1, leftWidth))
	m.right.SetContent(m.renderPane(m.alignment.Side2, rightWidth))
}

// paneWidths splits the terminal width between the panes and the separator.
func paneWidths(width int) (left, right int) {
	usable := max(width-lipgloss.Width(separator), 2)
	left = usable / 2
	return left, usable - left
}

// renderPane styles a side's segments and wraps them to the pane width.
func (m Model) renderPane(segs []textcompare.Segment, width int) string {
	content := dv.NewRenderer(m.theme, m.renderer).RenderSide(expandSegmentTabs(segs))
	return m.newStyle().Width(width).Render(content)
}

func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sep := strings.TrimSuffix(strings.Repeat(separator+"\n", m.left.Height), "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.left.View(), sep, m.right.View())

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusBarView())
}

func (m Model) headerView() string {
	title := dv.StyleFromColorPair(m.theme.Styles().Title, m.renderer).Bold(true)
	left := title.Width(m.left.Width).Render(m.titles[0])
	right := title.Width(m.right.Width).Render(m.titles[1])
	return lipgloss.JoinHorizontal(lipgloss.Top, left, separator, right)
}

func (m Model) statusBarView() string {
	var help []string
	for _, b := range m.keymap.ShortHelp() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}

	matched, unmatched := m.alignment.Stats()
	status := fmt.Sprintf("%d matched, %d unmatched  %s  %3.f%%",
		matched, unmatched, strings.Join(help, " • "), m.scrollPercent()*100)

	return m.newStyle().Faint(true).MaxWidth(m.width).Render(status)
}

// scrollPercent reports the position of the longer pane.
func (m Model) scrollPercent() float64 {
	if m.left.TotalLineCount() >= m.right.TotalLineCount() {
		return m.left.ScrollPercent()
	}
	return m.right.ScrollPercent()
}

// Compile-time interface verification.
var _ textcompare.Viewer = (*Viewer)(nil)

// Viewer implements textcompare.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer. The options are applied to every Model it
// creates.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the alignment and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, a textcompare.Alignment) error {
	m := NewModel(a, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
