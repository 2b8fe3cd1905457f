// Package tui provides the Bubble Tea portfolio interface.
package tui

import (
	"log"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/particles"
	"github.com/verte-zerg/folio/internal/render"
	"github.com/verte-zerg/folio/internal/state"
	"github.com/verte-zerg/folio/internal/tracker"
)

const (
	frameInterval = 50 * time.Millisecond
	scrollEase    = 0.35
	barEase       = 0.2
	barSnap       = 0.005
)

type frameMsg time.Time

// Model implements the Bubble Tea portfolio UI.
type Model struct {
	cfg   model.Config
	state state.State

	visibility *tracker.Visibility
	pointer    *tracker.Pointer

	viewport viewport.Model
	keys     keyMap
	help     help.Model

	spans     []model.Span
	particles []particles.Particle
	bars      []float64

	width  int
	height int

	start   time.Time
	elapsed time.Duration

	scrolling    bool
	scrollTarget int

	dirty     bool
	unmounted bool
}

// NewModel constructs a portfolio model and registers its trackers.
func NewModel(cfg model.Config) *Model {
	m := &Model{
		cfg:       cfg,
		state:     state.New(),
		viewport:  viewport.New(0, 0),
		keys:      defaultKeyMap(),
		help:      help.New(),
		particles: particles.New().Field(cfg.Particles),
		bars:      make([]float64, len(content.Skills)),
		start:     time.Now(),
		dirty:     true,
	}
	if cfg.Dark {
		m.state = state.Reduce(m.state, state.ThemeToggled{})
	}
	m.visibility = tracker.NewVisibility(cfg.Threshold, func(b state.ObservationBatch) { m.dispatch(b) })
	m.pointer = tracker.NewPointer(func(p state.PointerMoved) { m.dispatch(p) })
	return m
}

// State returns a snapshot of the UI state.
func (m *Model) State() state.State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	log.Printf("mounted with %d particles", len(m.particles))
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.unmounted {
		return m, nil
	}
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-render.NavHeight-render.StatusHeight, 1)
		m.help.Width = msg.Width
		m.dirty = true
	case frameMsg:
		m.elapsed = time.Time(msg).Sub(m.start)
		m.stepScroll()
		if m.stepBars() {
			m.dirty = true
		}
		cmd = tick()
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	m.settle()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return render.Screen(m.frame(), m.viewport.View(), m.help.View(m.keys))
}

// Navigate smoothly scrolls to region r and closes the menu. A region that
// is not on the page leaves the scroll position alone.
func (m *Model) Navigate(r model.Region) {
	m.dispatch(state.MenuClosed{})
	span, ok := m.spanFor(r)
	if !ok {
		log.Printf("navigate: region %q is not rendered", r)
		return
	}
	m.scrolling = true
	m.scrollTarget = min(span.Top, m.maxOffset())
}

// Unmount stops both trackers and the frame loop. It is safe to call more than once.
func (m *Model) Unmount() {
	if m.unmounted {
		return
	}
	m.visibility.Disconnect()
	m.pointer.Stop()
	m.scrolling = false
	m.unmounted = true
	log.Printf("unmounted")
}

func (m *Model) dispatch(ev state.Event) {
	next := state.Reduce(m.state, ev)
	if next.Dark != m.state.Dark {
		m.dirty = true
	}
	if _, ok := ev.(state.ObservationBatch); ok {
		m.dirty = true
	}
	m.state = next
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Unmount()
		return tea.Quit
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(model.Regions) {
			m.Navigate(model.Regions[idx])
		}
	case key.Matches(msg, m.keys.Next):
		m.Navigate(m.neighbor(1))
	case key.Matches(msg, m.keys.Prev):
		m.Navigate(m.neighbor(-1))
	case key.Matches(msg, m.keys.Theme):
		m.dispatch(state.ThemeToggled{})
	case key.Matches(msg, m.keys.Menu):
		m.dispatch(state.MenuToggled{})
	case key.Matches(msg, m.keys.Top):
		m.scrolling = false
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.scrolling = false
		m.viewport.GotoBottom()
	default:
		before := m.viewport.YOffset
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.YOffset != before {
			m.scrolling = false
		}
		return cmd
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.pointer.Move(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pointer.Move(msg.X, msg.Y)
		m.click(msg.X, msg.Y)
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		m.scrolling = false
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) click(x, y int) {
	for _, z := range render.NavZones(m.width, m.state.MenuOpen) {
		if !z.Contains(x, y) {
			continue
		}
		switch z.Kind {
		case render.ZoneTheme:
			m.dispatch(state.ThemeToggled{})
		case render.ZoneMenu:
			m.dispatch(state.MenuToggled{})
		default:
			m.Navigate(z.Region)
		}
		return
	}
}

func (m *Model) neighbor(step int) model.Region {
	n := len(model.Regions)
	idx := (m.state.Active.Index() + step + n) % n
	return model.Regions[idx]
}

func (m *Model) spanFor(r model.Region) (model.Span, bool) {
	for _, s := range m.spans {
		if s.Region == r {
			return s, true
		}
	}
	return model.Span{}, false
}

func (m *Model) maxOffset() int {
	return max(m.viewport.TotalLineCount()-m.viewport.Height, 0)
}

func (m *Model) stepScroll() {
	if !m.scrolling {
		return
	}
	diff := m.scrollTarget - m.viewport.YOffset
	if diff == 0 {
		m.scrolling = false
		return
	}
	step := int(math.Round(float64(diff) * scrollEase))
	if step == 0 {
		step = 1
		if diff < 0 {
			step = -1
		}
	}
	m.viewport.SetYOffset(m.viewport.YOffset + step)
	if m.viewport.YOffset == m.scrollTarget {
		m.scrolling = false
	}
}

// stepBars eases each skill bar toward its target and reports whether any moved.
func (m *Model) stepBars() bool {
	visible := m.state.IsVisible(model.RegionAbout)
	moved := false
	for i, skill := range content.Skills {
		target := render.SkillTarget(skill.Level, visible)
		cur := m.bars[i]
		if cur == target {
			continue
		}
		next := cur + (target-cur)*barEase
		if math.Abs(target-next) < barSnap {
			next = target
		}
		m.bars[i] = next
		moved = true
	}
	return moved
}

// settle re-renders the page when its inputs changed and lets the
// visibility tracker look at the current scroll position.
func (m *Model) settle() {
	if m.width == 0 || m.height == 0 {
		return
	}
	if m.dirty {
		m.refreshPage()
	}
	m.visibility.Check(m.window())
	if m.dirty {
		m.refreshPage()
	}
}

func (m *Model) refreshPage() {
	page, spans := render.Page(m.frame())
	m.viewport.SetContent(page)
	m.spans = spans
	m.visibility.Observe(spans)
	m.dirty = false
}

func (m *Model) window() tracker.Viewport {
	return tracker.Viewport{Top: m.viewport.YOffset, Height: m.viewport.Height}
}

func (m *Model) frame() render.Frame {
	return render.Frame{
		State:     m.state,
		Width:     m.width,
		Height:    m.height,
		Bars:      append([]float64(nil), m.bars...),
		Particles: m.particles,
		Elapsed:   m.elapsed,
		Mouse:     m.cfg.Mouse,
	}
}
