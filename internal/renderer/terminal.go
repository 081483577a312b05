package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/cellgrid/internal/logging"
	"github.com/dshills/cellgrid/internal/renderer/backend"
	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
)

// Options configures a Terminal.
type Options struct {
	// Viewport selects the drawing area. Defaults to Fullscreen.
	Viewport Viewport
	// Logger receives frame statistics at debug level. May be nil.
	Logger *logging.Logger
	// Observer is told about every completed frame. May be nil.
	Observer FrameObserver
}

// FrameObserver receives the statistics and draw time of each frame.
type FrameObserver interface {
	ObserveFrame(stats dirty.Stats, elapsed time.Duration)
}

// DefaultOptions returns a fullscreen configuration without logging.
func DefaultOptions() Options {
	return Options{Viewport: Fullscreen()}
}

// Terminal keeps the previous and current frame for a backend and sends
// only their difference on each Draw.
//
// The backend must be initialized before New is called. Terminal methods
// must not be called from inside a render callback.
type Terminal struct {
	mu sync.Mutex

	backend  backend.Backend
	viewport Viewport
	logger   *logging.Logger
	observer FrameObserver
	now      func() time.Time

	// buffers[current] is drawn into; the other holds the last frame.
	buffers [2]*buffer.Buffer
	current int

	area          core.Rect
	lastKnownSize core.Size
	frameCount    uint64

	changes []buffer.Change
}

// New creates a Terminal drawing to b.
func New(b backend.Backend, opts Options) (*Terminal, error) {
	size, err := b.Size()
	if err != nil {
		return nil, fmt.Errorf("query backend size: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Null()
	}

	area := opts.Viewport.resolve(size)
	t := &Terminal{
		backend:       b,
		viewport:      opts.Viewport,
		logger:        logger.WithComponent("renderer"),
		observer:      opts.Observer,
		now:           time.Now,
		buffers:       [2]*buffer.Buffer{buffer.Empty(area), buffer.Empty(area)},
		area:          area,
		lastKnownSize: size,
	}
	t.logger.Debug("viewport %s at %s", t.viewport, area)
	return t, nil
}

// Backend returns the underlying backend.
func (t *Terminal) Backend() backend.Backend {
	return t.backend
}

// Area returns the current viewport area.
func (t *Terminal) Area() core.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.area
}

// FrameCount returns the number of frames drawn so far.
func (t *Terminal) FrameCount() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frameCount
}

// CurrentBuffer returns the buffer the next frame will be drawn into.
func (t *Terminal) CurrentBuffer() *buffer.Buffer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffers[t.current]
}

// Draw renders one frame. The current buffer starts blank, render fills
// it, and the cells that differ from the previous frame are drawn and
// flushed. The viewport is resized first if the backend size changed.
func (t *Terminal) Draw(render func(*Frame)) (CompletedFrame, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start := t.now()
	if err := t.autoresize(); err != nil {
		return CompletedFrame{}, err
	}

	frame := &Frame{
		area:  t.area,
		buf:   t.buffers[t.current],
		count: t.frameCount,
	}
	render(frame)

	stats, err := t.flush()
	if err != nil {
		return CompletedFrame{}, err
	}

	if frame.cursor != nil {
		t.backend.SetCursorPosition(*frame.cursor)
		t.backend.ShowCursor()
	} else {
		t.backend.HideCursor()
	}

	completed := CompletedFrame{
		Buffer: t.buffers[t.current].Clone(),
		Area:   t.area,
		Count:  t.frameCount,
		Stats:  stats,
	}
	t.swapBuffers()

	if err := t.backend.Flush(); err != nil {
		return CompletedFrame{}, fmt.Errorf("flush backend: %w", err)
	}

	if t.logger.Enabled(logging.LevelDebug) {
		t.logger.Debug("frame %d: %s coverage=%.2f",
			completed.Count, stats, stats.Coverage(t.area.Area()))
	}
	if t.observer != nil {
		t.observer.ObserveFrame(stats, t.now().Sub(start))
	}
	t.frameCount++
	return completed, nil
}

// flush sends the difference between the previous and current buffers
// to the backend.
func (t *Terminal) flush() (dirty.Stats, error) {
	previous := t.buffers[1-t.current]
	current := t.buffers[t.current]

	t.changes = previous.DiffInto(current, t.changes[:0])
	stats := dirty.Summarize(t.changes)
	if len(t.changes) == 0 {
		return stats, nil
	}
	if err := t.backend.Draw(t.changes); err != nil {
		return stats, fmt.Errorf("draw %d cells: %w", len(t.changes), err)
	}
	return stats, nil
}

// swapBuffers makes the current buffer the previous one and blanks the
// buffer for the next frame.
func (t *Terminal) swapBuffers() {
	t.buffers[1-t.current].Reset()
	t.current = 1 - t.current
}

// Resize sets the viewport area and clears the screen so the next frame
// is drawn in full.
func (t *Terminal) Resize(area core.Rect) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resize(area)
}

func (t *Terminal) resize(area core.Rect) error {
	t.buffers[0].Resize(area)
	t.buffers[1].Resize(area)
	t.logger.Info("viewport resized from %s to %s", t.area, area)
	t.area = area
	return t.clear()
}

// Autoresize resizes the viewport if the backend size changed. Fixed
// viewports are never resized.
func (t *Terminal) Autoresize() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.autoresize()
}

func (t *Terminal) autoresize() error {
	if !t.viewport.followsResize() {
		return nil
	}
	size, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("query backend size: %w", err)
	}
	if size == t.lastKnownSize {
		return nil
	}
	t.lastKnownSize = size
	return t.resize(t.viewport.resolve(size))
}

// Clear blanks the backend and forgets the previous frame so the next
// Draw repaints every non-blank cell.
func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clear()
}

func (t *Terminal) clear() error {
	if err := t.backend.Clear(); err != nil {
		return fmt.Errorf("clear backend: %w", err)
	}
	t.buffers[1-t.current].Reset()
	return nil
}
