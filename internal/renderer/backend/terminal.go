package backend

import (
	"math"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	mu            sync.Mutex
	screen        tcell.Screen
	initialized   bool
	cursor        core.Position
	cursorVisible bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.initialized = true
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		t.screen.Fini()
		t.initialized = false
	}
}

func (t *Terminal) Size() (core.Size, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return core.Size{}, ErrNotInitialized
	}
	w, h := t.screen.Size()
	return core.NewSize(clampDim(w), clampDim(h)), nil
}

func (t *Terminal) Draw(changes []buffer.Change) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return ErrNotInitialized
	}
	for _, run := range dirty.Runs(changes) {
		for x, cell := range run.All() {
			// tcell owns the right half of a wide rune.
			if cell.Skip {
				continue
			}
			mainc, combc := splitSymbol(cell.Symbol())
			t.screen.SetContent(int(x), int(run.Y), mainc, combc, convertStyle(cell.Style()))
		}
	}
	return nil
}

func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return ErrNotInitialized
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return ErrNotInitialized
	}
	t.screen.Clear()
	return nil
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursorVisible = false
	if t.initialized {
		t.screen.HideCursor()
	}
}

func (t *Terminal) ShowCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursorVisible = true
	if t.initialized {
		t.screen.ShowCursor(int(t.cursor.X), int(t.cursor.Y))
	}
}

func (t *Terminal) SetCursorPosition(pos core.Position) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursor = pos
	if t.initialized && t.cursorVisible {
		t.screen.ShowCursor(int(pos.X), int(pos.Y))
	}
}

// CellAt reads back the cell tcell holds at pos.
func (t *Terminal) CellAt(pos core.Position) buffer.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc, style, _ := t.screen.GetContent(int(pos.X), int(pos.Y)) //nolint:staticcheck // GetContent is the correct API
	cell := buffer.NewCell(string(append([]rune{mainc}, combc...)))
	cell.SetStyle(convertTcellStyle(style))
	return cell
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventResize:
		ev = tcell.NewEventResize(event.Width, event.Height)
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}

// splitSymbol splits a grapheme cluster into the primary rune and the
// combining runes tcell expects.
func splitSymbol(symbol string) (rune, []rune) {
	if symbol == "" {
		return ' ', nil
	}
	mainc, size := utf8.DecodeRuneInString(symbol)
	if size == len(symbol) {
		return mainc, nil
	}
	return mainc, []rune(symbol[size:])
}

func clampDim(v int) uint16 {
	return uint16(min(max(v, 0), math.MaxUint16))
}

// attrMasks pairs every core attribute with its tcell mask.
var attrMasks = []struct {
	attr core.Attribute
	mask tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrDim, tcell.AttrDim},
	{core.AttrItalic, tcell.AttrItalic},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrBlink, tcell.AttrBlink},
	{core.AttrReverse, tcell.AttrReverse},
	{core.AttrStrikethrough, tcell.AttrStrikeThrough},
}

// convertStyle converts a cell style to a tcell style.
func convertStyle(s core.Style) tcell.Style {
	var mask tcell.AttrMask
	for _, am := range attrMasks {
		if s.Attributes.Has(am.attr) {
			mask |= am.mask
		}
	}
	return tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background)).
		Attributes(mask)
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// convertTcellStyle converts a tcell style back to a cell style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, mask := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	for _, am := range attrMasks {
		if mask&am.mask != 0 {
			s.Attributes |= am.attr
		}
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}

	// Check if it's a palette color
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}

	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyCtrlL:
		return KeyCtrlL
	default:
		return KeyNone
	}
}

// convertToTcellKey converts our Key to tcell.Key.
func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	case KeyCtrlC:
		return tcell.KeyCtrlC
	case KeyCtrlL:
		return tcell.KeyCtrlL
	default:
		return tcell.KeyRune
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

// convertToTcellMod converts our ModMask to tcell.ModMask.
func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		result |= tcell.ModMeta
	}
	return result
}
