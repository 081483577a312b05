// Package buffer holds the in-memory grid of terminal cells that widgets
// paint into, and computes the ordered set of cell changes that turns one
// frame into the next.
//
// A Buffer is a flat row-major slice of cells covering a rectangle of the
// screen. Every column has exactly one cell; a double-width glyph lives in
// its first column and marks the following column as a skip cell.
//
// Buffers are plain values with no shared state. They are not safe for
// concurrent mutation.
package buffer
