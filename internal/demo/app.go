package demo

import (
	"sync"

	"github.com/dshills/cellgrid/internal/config"
	"github.com/dshills/cellgrid/internal/logging"
	"github.com/dshills/cellgrid/internal/renderer"
	"github.com/dshills/cellgrid/internal/renderer/backend"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
)

// Title is shown in the title bar.
const Title = "cellgrid"

// Action tells the event loop what to do after an event.
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionClear
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionRedraw:
		return "redraw"
	case ActionClear:
		return "clear"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// App holds the demo state. Its methods are safe for concurrent use so a
// config reload can update it while the event loop draws.
type App struct {
	mu sync.Mutex

	styles    config.Styles
	showStats bool

	paused      bool
	tick        uint64
	message     string
	messageType MessageType
	last        dirty.Stats

	logger *logging.Logger
}

// NewApp creates the demo state from cfg.
func NewApp(cfg *config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Null()
	}
	a := &App{logger: logger.WithComponent("demo")}
	if err := a.applyConfig(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// ApplyConfig switches to the theme and settings of cfg.
func (a *App) ApplyConfig(cfg *config.Config) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.applyConfig(cfg); err != nil {
		return err
	}
	a.message, a.messageType = "config reloaded", MessageInfo
	return nil
}

func (a *App) applyConfig(cfg *config.Config) error {
	styles, err := cfg.Theme.Styles()
	if err != nil {
		return err
	}
	a.styles = styles
	a.showStats = cfg.Renderer.ShowStats
	return nil
}

// SetMessage shows msg in the status line until the next message.
func (a *App) SetMessage(msg string, msgType MessageType) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message, a.messageType = msg, msgType
}

// Paused reports whether the animation is stopped.
func (a *App) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Tick advances the animation unless paused.
func (a *App) Tick() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.paused {
		a.tick++
	}
}

// HandleEvent updates the state for ev and returns what the loop should
// do next.
func (a *App) HandleEvent(ev backend.Event) Action {
	switch ev.Type {
	case backend.EventKey:
		return a.handleKey(ev)
	case backend.EventResize:
		a.logger.Debug("resize to %dx%d", ev.Width, ev.Height)
		return ActionRedraw
	case backend.EventInterrupt:
		return ActionRedraw
	default:
		return ActionNone
	}
}

func (a *App) handleKey(ev backend.Event) Action {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ActionQuit
	case backend.KeyCtrlL:
		return ActionClear
	case backend.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return ActionQuit
		case ' ':
			a.mu.Lock()
			a.paused = !a.paused
			a.mu.Unlock()
			return ActionRedraw
		}
	}
	return ActionNone
}

// Record keeps the statistics of a drawn frame for the status line.
func (a *App) Record(done renderer.CompletedFrame) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = done.Stats
}

// Render draws the title bar, the showcase and the status line.
func (a *App) Render(f *renderer.Frame) {
	a.mu.Lock()
	defer a.mu.Unlock()

	area := f.Area()
	if area.IsEmpty() {
		return
	}

	mode := "LIVE"
	if a.paused {
		mode = "PAUSED"
	}
	status := StatusLine{
		Mode:        mode,
		Frame:       f.Count(),
		Size:        area.AsSize(),
		Stats:       a.last,
		ShowStats:   a.showStats,
		Message:     a.message,
		MessageType: a.messageType,
		ModeStyle:   a.styles.Status.Bold(),
		BarStyle:    a.styles.Muted.Reverse(),
	}
	statusRow := core.NewRect(area.X, area.Bottom()-1, area.Width, 1)
	f.RenderWidget(status, statusRow)
	if area.Height < 2 {
		return
	}

	f.RenderWidget(TitleBar{Title: Title, Style: a.styles.Title}, core.NewRect(area.X, area.Y, area.Width, 1))
	if area.Height < 3 {
		return
	}

	body := core.NewRect(area.X, area.Y+1, area.Width, area.Height-2).Inner(core.NewMargin(1, 1))
	f.RenderWidget(Showcase{Tick: a.tick, Styles: a.styles}, body)
}
