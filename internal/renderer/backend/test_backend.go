package backend

import (
	"sync"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
)

// TestBackend is an in-memory backend. It applies changes the way a
// terminal would and records what it was asked to do, so callers can
// assert on the resulting screen.
type TestBackend struct {
	mu            sync.Mutex
	screen        *buffer.Buffer
	initialized   bool
	cursor        core.Position
	cursorVisible bool
	events        chan Event

	drawCalls  int
	cellsDrawn int
	flushes    int
	clears     int
}

// NewTestBackend creates a test backend with the given dimensions.
func NewTestBackend(width, height uint16) *TestBackend {
	return &TestBackend{
		screen:        buffer.Empty(core.NewRect(0, 0, width, height)),
		cursorVisible: true,
		events:        make(chan Event, 100),
	}
}

func (b *TestBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initialized = true
	return nil
}

func (b *TestBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initialized = false
}

func (b *TestBackend) Size() (core.Size, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.screen.Area().AsSize(), nil
}

func (b *TestBackend) Draw(changes []buffer.Change) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}
	b.drawCalls++
	for _, ch := range changes {
		cell := b.screen.CellAt(ch.X, ch.Y)
		if cell == nil {
			continue
		}
		*cell = ch.Cell
		b.cellsDrawn++

		// A wide glyph covers the columns after it.
		for k := 1; k < ch.Cell.Width(); k++ {
			if covered := b.screen.CellAt(ch.X+uint16(k), ch.Y); covered != nil {
				covered.Reset().SetSymbol("").SetSkip(true)
			}
		}
	}
	return nil
}

func (b *TestBackend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}
	b.flushes++
	return nil
}

func (b *TestBackend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}
	b.clears++
	b.screen.Reset()
	return nil
}

func (b *TestBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorVisible = false
}

func (b *TestBackend) ShowCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorVisible = true
}

func (b *TestBackend) SetCursorPosition(pos core.Position) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursor = pos
}

func (b *TestBackend) PollEvent() Event {
	return <-b.events
}

func (b *TestBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Buffer returns a copy of what is currently on screen.
func (b *TestBackend) Buffer() *buffer.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.screen.Clone()
}

// String returns the screen contents, one line per row.
func (b *TestBackend) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.screen.String()
}

// Cursor returns the current cursor position and visibility.
func (b *TestBackend) Cursor() (core.Position, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursor, b.cursorVisible
}

// Counters reports how many draw calls, drawn cells, flushes and clears
// the backend has seen.
type Counters struct {
	DrawCalls  int
	CellsDrawn int
	Flushes    int
	Clears     int
}

// Counters returns the recorded call counts.
func (b *TestBackend) Counters() Counters {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Counters{
		DrawCalls:  b.drawCalls,
		CellsDrawn: b.cellsDrawn,
		Flushes:    b.flushes,
		Clears:     b.clears,
	}
}

// ResetCounters zeroes the recorded call counts.
func (b *TestBackend) ResetCounters() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.drawCalls, b.cellsDrawn, b.flushes, b.clears = 0, 0, 0, 0
}

// Resize simulates a terminal resize. Content in the overlapping region is
// kept and a resize event is posted.
func (b *TestBackend) Resize(width, height uint16) {
	b.mu.Lock()
	b.screen.Resize(core.NewRect(0, 0, width, height))
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: int(width), Height: int(height)})
}
