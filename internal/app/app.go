package app

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/kobzarvs/gridsel/internal/config"
	"github.com/kobzarvs/gridsel/internal/logger"
	"github.com/kobzarvs/gridsel/internal/selection"
	"github.com/kobzarvs/gridsel/internal/table"
)

// Overrides are applied on top of the loaded configuration. Zero values keep
// the configured setting.
type Overrides struct {
	Columns int
	Rows    int
	Debug   bool
	// Out receives the final selection, one id per line, when non-nil.
	Out io.Writer
}

// App is the top-level runtime for gridsel.
type App struct {
	overrides Overrides
	cfg       config.Config
	table     *table.Table
	engine    *selection.Engine[*table.Cell]
	detach    func()
}

func New(overrides Overrides) *App {
	return &App{overrides: overrides}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.applyOverrides(&cfg)

	if err := logger.Init(cfg.Debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	s, err := tcell.NewScreen()
	if err != nil {
		logger.Error("create screen", "error", err)
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		logger.Error("init screen", "error", err)
		return fmt.Errorf("init screen: %w", err)
	}
	fini := finiOnce(s)
	defer fini()
	s.EnableMouse()

	a.setup(cfg, logger.Named("selection"))
	defer a.detach()

	a.loop(s)
	// The terminal must be restored before the selection goes to stdout.
	fini()
	if err := a.printSelection(); err != nil {
		logger.Error("print selection", "error", err)
		return err
	}
	return nil
}

// finiOnce returns a function that finalizes s on its first call only.
func finiOnce(s tcell.Screen) func() {
	var once sync.Once
	return func() { once.Do(s.Fini) }
}

func (a *App) applyOverrides(cfg *config.Config) {
	if a.overrides.Columns > 0 {
		cfg.Grid.Columns = a.overrides.Columns
	}
	if a.overrides.Rows > 0 {
		cfg.Grid.Rows = a.overrides.Rows
	}
	if a.overrides.Debug {
		cfg.Debug = true
	}
}

func (a *App) setup(cfg config.Config, log *zap.Logger) {
	a.cfg = cfg
	a.table = table.New(cfg.Grid, table.NewStyles(cfg.Theme))
	a.engine = selection.New[*table.Cell](a.table, selection.WithLogger(log))
	a.detach = a.engine.Attach(a.table)
	cols, rows := a.table.Size()
	logger.Info("table ready", "columns", cols, "rows", rows)
}

func (a *App) loop(s tcell.Screen) {
	a.table.Render(s)
	for {
		if quit := a.handleEvent(s, s.PollEvent()); quit {
			return
		}
		a.table.Render(s)
	}
}

// handleEvent applies one event and reports whether the app should exit.
func (a *App) handleEvent(s tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return true
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.table.HandleMouse(ev)
	case *tcell.EventResize:
		s.Sync()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	key := keyString(ev)
	action, ok := a.cfg.Keymap[key]
	if !ok {
		return false
	}
	logger.Debug("key action", "key", key, "action", action)
	switch action {
	case "quit":
		return true
	case "clear_selection":
		a.engine.Clear()
		a.table.SetStatus("cleared")
	case "toggle_modifier":
		a.table.ToggleModifier()
		if a.table.ModifierActive() {
			a.table.SetStatus("accumulating")
		} else {
			a.table.SetStatus("")
		}
	default:
		logger.Warn("unknown keymap action", "key", key, "action", action)
	}
	return false
}

func (a *App) printSelection() error {
	if a.overrides.Out == nil {
		return nil
	}
	for _, id := range a.engine.Selection() {
		if _, err := fmt.Fprintln(a.overrides.Out, id); err != nil {
			return fmt.Errorf("print selection: %w", err)
		}
	}
	return nil
}
