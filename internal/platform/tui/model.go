package tui

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
	"github.com/vovakirdan/rocket-arcade/internal/telemetry"
)

// keyHoldWindow is how long a key counts as held after its last press.
// Terminals deliver key repeats but no release events, so a key whose
// repeats stop is treated as released once this window expires.
const keyHoldWindow = 250 * time.Millisecond

// maxFrameDelta caps the simulation step after stalls (debugger pauses,
// terminal suspends) so the world does not teleport.
const maxFrameDelta = 250 * time.Millisecond

// flashDuration is how long HUD flash text stays visible, in game seconds.
const flashDuration = 1.0

// Options configures a play session.
type Options struct {
	FPS    int
	Seed   int64
	Store  *storage.Store // may be nil
	Logger *log.Logger    // may be nil
	// ScreenW and ScreenH set the initial screen size; the first
	// WindowSizeMsg overrides them.
	ScreenW int
	ScreenH int
	// Metrics enables Prometheus counters; the caller is responsible
	// for serving them.
	Metrics bool
}

// Model is the Bubble Tea model driving a single play session.
type Model struct {
	cfg     config.RocketConfig
	opts    Options
	logger  *log.Logger
	state   *rocket.GameState
	timeCtl *rocket.TimeController
	input   *rocket.InputController
	events  *rocket.EventBuffer
	rng     *rand.Rand
	screen  *Screen
	keys    GameKeyMap

	hasFocus bool
	lastTick time.Time
	held     map[rocket.Key]time.Time

	flash      string
	flashUntil float64
	highScore  int
	scoreSaved bool

	enemiesDestroyed int
	shotsFired       int

	quitting bool
}

// NewModel creates a Bubble Tea model for the given configuration.
func NewModel(cfg config.RocketConfig, opts Options) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.ScreenW <= 0 {
		opts.ScreenW = 80
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = 24
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	state, err := rocket.New(cfg.ArenaSize(), rng)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		opts:     opts,
		logger:   logger,
		state:    state,
		timeCtl:  rocket.NewTimeController(cfg.Tuning()),
		input:    rocket.NewInputController(),
		events:   rocket.NewEventBuffer(),
		rng:      rng,
		screen:   NewScreen(opts.ScreenW, opts.ScreenH),
		keys:     DefaultKeyMap(),
		hasFocus: true,
		held:     make(map[rocket.Key]time.Time),
	}

	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.hasFocus = true
		// Skip the blur gap rather than simulate it
		m.lastTick = time.Time{}
		return m, nil

	case tea.BlurMsg:
		m.hasFocus = false
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Any other key restarts once the run has ended
	if m.state.GameOver() {
		m.restart()
		return m, nil
	}

	if k, ok := translateKey(msg); ok {
		m.input.KeyPress(k, rocket.ModNone)
		m.held[k] = time.Now()
	}

	return m, nil
}

// restart begins a fresh run with a new world layout.
func (m *Model) restart() {
	for k := range m.held {
		m.input.KeyRelease(k, rocket.ModNone)
		delete(m.held, k)
	}
	m.timeCtl.Reset()
	m.state.Reset(m.rng)
	m.scoreSaved = false
	m.enemiesDestroyed = 0
	m.shotsFired = 0
	m.flash = ""
	m.lastTick = time.Time{}
}

// handleTick advances the simulation by the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	m.expireHeldKeys(now)

	if m.hasFocus && !m.state.GameOver() {
		start := time.Now()
		actions := m.input.Actions()
		m.timeCtl.UpdateSeconds(dt.Seconds(), actions, m.state, m.events, m.rng)
		rocket.HandleCollisions(m.state, m.timeCtl, m.events)
		if m.opts.Metrics {
			telemetry.RecordTick(time.Since(start))
		}
	}

	m.drainEvents()

	if m.flash != "" && m.timeCtl.CurrentTime() >= m.flashUntil {
		m.flash = ""
	}

	return m, tickCmd(m.opts.FPS)
}

// expireHeldKeys releases keys whose terminal repeats have stopped.
func (m *Model) expireHeldKeys(now time.Time) {
	for k, pressedAt := range m.held {
		if now.Sub(pressedAt) > keyHoldWindow {
			m.input.KeyRelease(k, rocket.ModNone)
			delete(m.held, k)
		}
	}
}

// drainEvents consumes buffered simulation events and applies their
// platform side effects.
func (m *Model) drainEvents() {
	for _, ev := range m.events.Drain() {
		if m.opts.Metrics {
			telemetry.RecordEvent(ev.String())
		}

		switch ev {
		case rocket.EventShotFired:
			m.shotsFired++

		case rocket.EventEnemyDestroyed:
			m.enemiesDestroyed++
			m.setFlash("+10")

		case rocket.EventRocketDestroyed:
			m.finishRun()
		}
	}
}

// setFlash shows transient HUD text.
func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashUntil = m.timeCtl.CurrentTime() + flashDuration
}

// finishRun persists and reports the completed run.
func (m *Model) finishRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Metrics {
		telemetry.GamePlayed()
	}

	duration := m.timeCtl.CurrentTime()
	m.logger.Info("run ended",
		"score", m.state.Score,
		"duration", duration,
		"enemies", m.enemiesDestroyed,
		"shots", m.shotsFired,
	)

	if m.state.Score > m.highScore {
		m.highScore = m.state.Score
	}

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunRecord{
		Score:            m.state.Score,
		DurationSecs:     duration,
		EnemiesDestroyed: m.enemiesDestroyed,
		ShotsFired:       m.shotsFired,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.state, m.keys, m.highScore, m.flash)
	if !m.hasFocus {
		m.screen.DrawTextCentered(0, "PAUSED", ColorOrange)
	}
	return RenderScreen(m.screen)
}

// Run starts a local play session and blocks until it ends.
func Run(cfg config.RocketConfig, opts Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(), // Blur pauses the simulation
	)

	_, err = p.Run()
	return err
}
