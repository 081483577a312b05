// Package renderer drives a backend with double-buffered frames.
//
// Each call to Terminal.Draw renders into the current buffer, diffs it
// against the previous frame and sends only the changed cells to the
// backend:
//
//	┌─────────────────────────────────────────┐
//	│        Terminal (double buffer)         │
//	├─────────────────────────────────────────┤
//	│  Frame │ Widget │ Viewport              │
//	├─────────────────────────────────────────┤
//	│  buffer.Diff → dirty.Runs               │
//	├─────────────────────────────────────────┤
//	│  Backend: tcell │ in-memory             │
//	└─────────────────────────────────────────┘
//
// Options.Observer receives the diff statistics and draw time of every
// frame; internal/metrics implements it.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	_ = b.Init()
//	term, _ := renderer.New(b, renderer.DefaultOptions())
//	term.Draw(func(f *renderer.Frame) {
//		f.Buffer().SetString(0, 0, "hello", core.DefaultStyle())
//	})
package renderer
