// Package demo contains the widgets and the state of the cellgrid demo:
// a title bar, a showcase of tricky glyphs and a status line that
// reports what the last frame sent to the backend.
package demo
