package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dshills/cellgrid/internal/config"
	"github.com/dshills/cellgrid/internal/demo"
	"github.com/dshills/cellgrid/internal/logging"
	"github.com/dshills/cellgrid/internal/metrics"
	"github.com/dshills/cellgrid/internal/renderer"
	"github.com/dshills/cellgrid/internal/renderer/backend"
)

// loadConfig reads the config file, then applies environment variables
// and command line flags on top.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates the logger described by cfg. Without a log file,
// interactive runs discard logs because the screen belongs to tcell.
func newLogger(cfg *config.Config, interactive bool) (*logging.Logger, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel()

	switch {
	case cfg.Logging.File != "":
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logCfg.Output = f
		return logging.New(logCfg), func() { _ = f.Close() }, nil
	case interactive:
		return logging.Null(), func() {}, nil
	default:
		return logging.New(logCfg), func() {}, nil
	}
}

// viewportFor maps the configured viewport mode to a renderer viewport.
func viewportFor(cfg *config.Config) renderer.Viewport {
	if cfg.Renderer.Viewport == config.ViewportInline {
		return renderer.Inline(uint16(cfg.Renderer.InlineHeight))
	}
	return renderer.Fullscreen()
}

// frameInterval returns the time between animation frames.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

// runHeadless draws frames into an in-memory backend and writes the
// last one to w.
func runHeadless(cfg *config.Config, logger *logging.Logger, frames int, width, height uint16, w io.Writer) error {
	b := backend.NewTestBackend(width, height)
	if err := b.Init(); err != nil {
		return err
	}
	defer b.Shutdown()

	term, err := renderer.New(b, renderer.Options{Viewport: viewportFor(cfg), Logger: logger})
	if err != nil {
		return err
	}
	app, err := demo.NewApp(cfg, logger)
	if err != nil {
		return err
	}

	for i := range frames {
		if i > 0 {
			app.Tick()
		}
		done, err := term.Draw(app.Render)
		if err != nil {
			return err
		}
		app.Record(done)
	}

	counters := b.Counters()
	logger.Info("drew %d frames: %d draw calls, %d cells", frames, counters.DrawCalls, counters.CellsDrawn)
	_, err = fmt.Fprintln(w, b.String())
	return err
}

// redrawLimit caps event-triggered redraws at the animation rate.
func redrawLimit(fps int) rate.Limit {
	if fps <= 0 {
		fps = 1
	}
	return rate.Limit(fps)
}

// runInteractive drives the demo on the terminal until the user quits or
// ctx is cancelled.
func runInteractive(ctx context.Context, cfg *config.Config, logger *logging.Logger, opts options) error {
	b, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer b.Shutdown()

	termOpts := renderer.Options{Viewport: viewportFor(cfg), Logger: logger}
	var m *metrics.Metrics
	if opts.metricsAddr != "" {
		m = metrics.New()
		termOpts.Observer = m
	}

	term, err := renderer.New(b, termOpts)
	if err != nil {
		return err
	}
	app, err := demo.NewApp(cfg, logger)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if opts.watch {
		watcher, err = config.NewWatcher(opts.configPath, config.WithLogger(logger))
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The event pump ends when Shutdown closes the screen, which happens
	// after the group below has finished.
	events := make(chan backend.Event)
	go func() {
		for {
			ev := b.PollEvent()
			if ev.Type == backend.EventClosed {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	if m != nil {
		g.Go(func() error {
			return m.Serve(gctx, opts.metricsAddr, logger)
		})
	}

	reloads := make(chan *config.Config)
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx, func(reloaded *config.Config, err error) {
				if err != nil {
					app.SetMessage(err.Error(), demo.MessageError)
					return
				}
				select {
				case reloads <- reloaded:
				case <-gctx.Done():
				}
			})
		})
	}

	g.Go(func() error {
		defer cancel()
		return drawLoop(gctx, term, app, cfg.Renderer.FPS, events, reloads)
	})
	return g.Wait()
}

// drawLoop redraws on ticks, input events and config reloads until the
// user quits or ctx is cancelled.
func drawLoop(ctx context.Context, term *renderer.Terminal, app *demo.App, fps int,
	events <-chan backend.Event, reloads <-chan *config.Config) error {
	draw := func() error {
		done, err := term.Draw(app.Render)
		if err != nil {
			return err
		}
		app.Record(done)
		return nil
	}

	ticker := time.NewTicker(frameInterval(fps))
	defer ticker.Stop()
	limiter := rate.NewLimiter(redrawLimit(fps), 1)

	// pending is set when an event redraw was deferred by the limiter; the
	// next tick draws it even while paused.
	pending := false

	if err := draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch app.HandleEvent(ev) {
			case demo.ActionQuit:
				return nil
			case demo.ActionClear:
				if err := term.Clear(); err != nil {
					return err
				}
				if err := draw(); err != nil {
					return err
				}
				pending = false
			case demo.ActionRedraw:
				if !limiter.Allow() {
					pending = true
					continue
				}
				if err := draw(); err != nil {
					return err
				}
				pending = false
			}

		case reloaded := <-reloads:
			if err := app.ApplyConfig(reloaded); err != nil {
				app.SetMessage(err.Error(), demo.MessageError)
				continue
			}
			ticker.Reset(frameInterval(reloaded.Renderer.FPS))
			limiter.SetLimit(redrawLimit(reloaded.Renderer.FPS))
			pending = true

		case <-ticker.C:
			if app.Paused() && !pending {
				continue
			}
			if !app.Paused() {
				app.Tick()
			}
			if err := draw(); err != nil {
				return err
			}
			pending = false
		}
	}
}
