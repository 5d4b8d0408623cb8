package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/smallheath/internal/fx"
	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/lore"
	"github.com/DaanHessen/smallheath/internal/nav"
	"github.com/DaanHessen/smallheath/internal/persona"
	"github.com/DaanHessen/smallheath/internal/prefs"
	"github.com/DaanHessen/smallheath/internal/telemetry"
	"github.com/DaanHessen/smallheath/internal/text"
	"github.com/DaanHessen/smallheath/internal/theme"
	"github.com/DaanHessen/smallheath/internal/util"
)

// Deps are the long-lived services the TUI drives.
type Deps struct {
	Personas *persona.Store
	Ledger   *ledger.Manager
	Prefs    *prefs.Prefs
	Metrics  *telemetry.Metrics
	Renderer text.Renderer
	Log      *slog.Logger
}

// timer messages carry the generation they were scheduled under; stale ones are dropped.
type (
	peakMsg       struct{ gen int }
	completeMsg   struct{ gen int }
	splashDoneMsg struct{ gen int }
	frameMsg      struct{ gen int }
)

const frameInterval = 120 * time.Millisecond

type model struct {
	ctx  context.Context
	cfg  util.Config
	deps Deps
	nav  *nav.Machine
	gen  int

	splash    bool
	splashGen int
	frameGen  int
	frame     int
	field     fx.Field

	width  int
	height int
	status string

	inv        inventory
	quote      int
	netSel     int
	mapSel     int
	eraIdx     int
	eraOpen    bool
	dossierIdx int
	scroll     int
}

func initialModel(ctx context.Context, deps Deps, cfg util.Config) model {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	if deps.Renderer == nil {
		deps.Renderer = text.NewPlain()
	}
	m := model{
		ctx:    ctx,
		cfg:    cfg,
		deps:   deps,
		nav:    nav.New(nav.Home),
		width:  100,
		height: 32,
		netSel: -1,
		mapSel: -1,
		inv:    newInventory(),
	}
	m.inv.onMutate = deps.Metrics.LedgerMutation
	m.inv.refresh(deps.Ledger)
	m.splash = !cfg.NoIntro && !deps.Prefs.IntroSeen()
	m.field = m.newField()
	return m
}

func (m model) Init() tea.Cmd {
	if !m.splash {
		if m.deps.Prefs.Cinematic() {
			return m.frameTick()
		}
		return nil
	}
	return tea.Batch(m.splashTimer(), m.frameTick())
}

func (m model) world() lore.World { return lore.For(m.deps.Personas.Persona()) }

func (m model) newField() fx.Field {
	return fx.NewField(string(m.deps.Personas.Persona()), max(m.width, 1), max(m.height-4, 1), m.width*m.height/60)
}

// animating reports whether anything on screen reads m.frame.
func (m model) animating() bool { return m.splash || m.deps.Prefs.Cinematic() || m.nav.Active() }

func (m model) frameTick() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{gen} })
}

func (m model) splashTimer() tea.Cmd {
	gen := m.splashGen
	return tea.Tick(m.cfg.SplashHold, func(time.Time) tea.Msg { return splashDoneMsg{gen} })
}

// restartFrames begins a fresh tick chain, orphaning any running one.
func (m *model) restartFrames() tea.Cmd {
	m.frameGen++
	return m.frameTick()
}

func (m *model) startSplash() tea.Cmd {
	m.splash = true
	m.splashGen++
	m.field = m.newField()
	return tea.Batch(m.splashTimer(), m.restartFrames())
}

func (m *model) endSplash() {
	m.splash = false
	m.deps.Prefs.MarkIntroSeen(m.ctx)
}

func (m *model) navigate(target nav.Section) tea.Cmd {
	return m.apply(m.nav.Fire(nav.Requested{Target: target}))
}

// apply performs a nav effect: timers for the two transition phases and the content swap.
func (m *model) apply(eff nav.Effect) tea.Cmd {
	switch eff {
	case nav.BeginTransition:
		m.gen++
		gen := m.gen
		return tea.Batch(
			tea.Tick(m.cfg.PeakDelay, func(time.Time) tea.Msg { return peakMsg{gen} }),
			m.restartFrames(),
		)
	case nav.SwapContent:
		m.enterSection()
		if _, settling := m.nav.State().(nav.Settling); settling {
			gen := m.gen
			return tea.Tick(m.cfg.SettleDelay, func(time.Time) tea.Msg { return completeMsg{gen} })
		}
	}
	return nil
}

func (m *model) enterSection() {
	cur := m.nav.Current()
	m.deps.Metrics.Navigated(string(cur))
	m.deps.Log.Debug("navigate", slog.String("section", string(cur)))
	m.scroll, m.netSel, m.mapSel, m.eraOpen = 0, -1, -1, false
	switch cur {
	case nav.Home:
		m.quote++
	case nav.Inventory:
		m.inv.refresh(m.deps.Ledger)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.field = m.newField()
		m.inv.resize(m.contentWidth(), m.height)
		return m, nil
	case peakMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, m.apply(m.nav.Fire(nav.Peaked{}))
	case completeMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, m.apply(m.nav.Fire(nav.Completed{}))
	case splashDoneMsg:
		if msg.gen == m.splashGen && m.splash {
			m.endSplash()
		}
		return m, nil
	case frameMsg:
		if msg.gen != m.frameGen || !m.animating() {
			return m, nil
		}
		m.frame++
		return m, m.frameTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.splash {
		m.endSplash()
		return m, nil
	}
	if m.nav.Current() == nav.Inventory && !m.nav.Active() && m.inv.capturing() {
		cmd, status := m.inv.update(m.ctx, m.deps.Ledger, msg)
		m.setStatus(status)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "tab":
		return m, m.navigate(nav.Next(m.nav.Current()))
	case "shift+tab":
		return m, m.navigate(nav.Prev(m.nav.Current()))
	case "1", "2", "3", "4", "5", "6", "7", "8":
		i := int(key[0] - '1')
		if i < len(nav.AllSections) {
			return m, m.navigate(nav.AllSections[i])
		}
		return m, nil
	case "c":
		m.deps.Personas.TogglePersona(m.ctx)
		m.netSel, m.mapSel, m.eraIdx, m.dossierIdx = -1, -1, 0, 0
		m.status = m.deps.Personas.Theme().FullName + " takes the chair."
		return m, m.startSplash()
	case "s":
		m.deps.Personas.ToggleStealth(m.ctx)
		if m.deps.Personas.Stealth() {
			m.status = "Stealth. The lamps are out."
		} else {
			m.status = "Lamps lit."
		}
		return m, nil
	case "v":
		m.deps.Prefs.ToggleCinematic(m.ctx)
		if m.deps.Prefs.Cinematic() {
			m.status = "Cinematic."
			return m, m.restartFrames()
		}
		m.status = "Cinematic off."
		return m, nil
	case "I":
		m.deps.Prefs.ResetIntro(m.ctx)
		return m, m.startSplash()
	}
	if m.nav.Active() {
		return m, nil
	}
	return m.sectionKey(msg)
}

func (m *model) setStatus(s string) {
	if s != "" {
		m.status = s
	}
}

// sectionKey routes keys that only mean something on the visible page.
func (m model) sectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.world()
	key := msg.String()
	switch m.nav.Current() {
	case nav.Home:
		if key == "n" {
			m.quote++
		}
	case nav.Inventory:
		cmd, status := m.inv.update(m.ctx, m.deps.Ledger, msg)
		m.setStatus(status)
		return m, cmd
	case nav.Map:
		switch key {
		case "j", "down":
			m.mapSel = step(m.mapSel, 1, len(w.Territories))
		case "k", "up":
			m.mapSel = step(m.mapSel, -1, len(w.Territories))
		case "esc":
			m.mapSel = -1
		case "o":
			if m.mapSel >= 0 {
				m.status = orderMessage(m.deps.Personas.Persona() == theme.Luca, w.Territories[m.mapSel])
			}
		}
	case nav.Relationships:
		switch key {
		case "j", "down":
			m.netSel = step(m.netSel, 1, len(w.Characters))
		case "k", "up":
			m.netSel = step(m.netSel, -1, len(w.Characters))
		case "esc":
			m.netSel = -1
		}
	case nav.Timeline:
		switch key {
		case "l", "right", "j", "down":
			m.eraIdx = min(m.eraIdx+1, len(w.Eras)-1)
		case "h", "left", "k", "up":
			m.eraIdx = max(m.eraIdx-1, 0)
		case "enter", " ":
			m.eraOpen = !m.eraOpen
		}
	case nav.Dossier:
		switch key {
		case "l", "right", "j", "down":
			m.dossierIdx = (m.dossierIdx + 1) % len(w.Roster)
		case "h", "left", "k", "up":
			m.dossierIdx = (m.dossierIdx - 1 + len(w.Roster)) % len(w.Roster)
		}
	case nav.Ledger, nav.Reports:
		switch key {
		case "j", "down":
			m.scroll++
		case "k", "up":
			m.scroll = max(m.scroll-1, 0)
		}
	}
	return m, nil
}

// step moves a selection that may be unset (-1), wrapping at either end.
func step(cur, delta, n int) int {
	if n == 0 {
		return -1
	}
	if cur < 0 {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return (cur + delta + n) % n
}

func orderMessage(vendetta bool, t lore.Territory) string {
	if vendetta {
		return fmt.Sprintf("Black Hand delivered to %s. Vendetta mark placed.", t.Name)
	}
	return fmt.Sprintf("Deploying men to %s. Reinforcements en route.", t.Name)
}

const sidebarWidth = 24

func (m model) contentWidth() int { return max(m.width-sidebarWidth-4, 30) }

func (m model) View() string {
	p := paletteFor(m.deps.Personas.Theme())
	if m.splash {
		return m.splashView(p)
	}
	header := m.headerView(p)
	footer := m.footerView(p)
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 6)
	cinematic := m.deps.Prefs.Cinematic()
	if cinematic {
		bodyHeight = max(bodyHeight-4, 6)
	}

	content := m.sectionView(p, m.nav.Current())
	if m.nav.Active() {
		content = m.smokeView(p) + "\n" + content
	}
	content = clip(content, m.scroll, bodyHeight-1)
	page := lipgloss.NewStyle().Width(m.contentWidth()).Height(bodyHeight).PaddingLeft(2).Render(content)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(p, bodyHeight), page)
	if cinematic {
		top, bottom := m.grainView(p)
		body = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), true, false).BorderForeground(p.Border).Render(body)
		body = lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// clip drops the first skip lines and keeps at most n.
func clip(s string, skip, n int) string {
	lines := strings.Split(s, "\n")
	skip = min(skip, max(len(lines)-1, 0))
	lines = lines[skip:]
	if n > 0 && len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func (m model) splashView(p palette) string {
	t := m.deps.Personas.Theme()
	ember := lipgloss.NewStyle().Foreground(p.Particle)
	bright := lipgloss.NewStyle().Foreground(p.Accent)
	field := m.field.Render(m.frame, func(e fx.Ember) string {
		if e.Bright {
			return bright.Render(string(e.Glyph))
		}
		return ember.Render(string(e.Glyph))
	})
	quote := lipgloss.NewStyle().Foreground(p.Text).Italic(true).Width(min(m.width-8, 70)).Align(lipgloss.Center).Render(t.Quote)
	author := lipgloss.NewStyle().Foreground(p.Accent).Render("~ " + t.Author)
	name := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(strings.ToUpper(t.FullName))
	card := lipgloss.JoinVertical(lipgloss.Center, name, "", quote, "", author, "", lipgloss.NewStyle().Foreground(p.Muted).Render("press any key"))

	mid := len(field) / 2
	top := strings.Join(field[:max(mid-4, 0)], "\n")
	bottom := strings.Join(field[min(mid+4, len(field)):], "\n")
	centred := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
	return lipgloss.NewStyle().Background(p.Background).Render(lipgloss.JoinVertical(lipgloss.Left, top, centred, bottom))
}

func (m model) headerView(p palette) string {
	t := m.deps.Personas.Theme()
	title := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(strings.ToUpper(t.FullName))
	sub := lipgloss.NewStyle().Foreground(p.Muted).Render("  " + t.Title)
	badge := lipgloss.NewStyle().Foreground(p.Background).Background(p.AccentAlt).Padding(0, 1)
	var badges []string
	if m.deps.Personas.Stealth() {
		badges = append(badges, badge.Render("STEALTH"))
	}
	if m.deps.Prefs.Cinematic() {
		badges = append(badges, badge.Render("CINEMATIC"))
	}
	right := strings.Join(badges, " ")
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(sub)-lipgloss.Width(right), 1)
	line := title + sub + strings.Repeat(" ", gap) + right
	rule := lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", max(m.width, 1)))
	return line + "\n" + rule
}

func (m model) sidebarView(p palette, height int) string {
	cur := m.nav.Current()
	pending, hasPending := m.nav.Pending()
	var b strings.Builder
	for i, s := range nav.AllSections {
		marker, style := "  ", lipgloss.NewStyle().Foreground(p.Muted)
		switch {
		case s == cur:
			marker, style = "▸ ", lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
		case hasPending && s == pending:
			marker, style = "› ", lipgloss.NewStyle().Foreground(p.AccentAlt)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d %s", marker, i+1, s.Label())) + "\n")
	}
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(p.Border).
		Render(b.String())
}

// smokeView is the band drawn over the page while a transition runs.
func (m model) smokeView(p palette) string {
	band := fx.NewField("smoke:"+string(m.nav.Current()), m.contentWidth(), 3, m.contentWidth()/3)
	style := lipgloss.NewStyle().Foreground(p.Muted)
	return strings.Join(band.Render(m.frame, func(e fx.Ember) string { return style.Render("░") }), "\n")
}

// grainView is the film grain drifting above and below the page in cinematic mode.
func (m model) grainView(p palette) (top, bottom string) {
	band := fx.NewField("grain:"+string(m.deps.Personas.Persona()), max(m.width, 1), 2, max(m.width/6, 1))
	style := lipgloss.NewStyle().Foreground(p.Particle)
	lines := band.Render(m.frame, func(e fx.Ember) string { return style.Render(string(e.Glyph)) })
	return lines[0], lines[1]
}

func (m model) footerView(p palette) string {
	help := "tab/1-8 sections · c persona · s stealth · v cinematic · q quit"
	switch m.nav.Current() {
	case nav.Inventory:
		help = "a add · e edit · d delete · / search · l location · t status · x clear · R reset · " + help
	case nav.Map:
		help = "j/k territory · o order · esc clear · " + help
	case nav.Relationships:
		help = "j/k character · esc clear · " + help
	case nav.Timeline:
		help = "h/l era · enter expand · " + help
	case nav.Dossier:
		help = "h/l file · " + help
	case nav.Home:
		help = "n next quote · " + help
	}
	status := lipgloss.NewStyle().Foreground(p.AccentAlt).Render(m.status)
	return status + "\n" + lipgloss.NewStyle().Foreground(p.Muted).Render(help)
}
