// Package core provides the value types shared by the renderer subsystem:
// terminal geometry (Rect, Position, Size, Margin, Offset) and the style
// model stored in every buffer cell.
//
// All types are small immutable values. Geometry uses uint16 coordinates to
// match terminal dimensions; arithmetic that could leave that domain
// saturates instead of wrapping or panicking.
//
// This package breaks import cycles between buffer, backend and renderer.
package core
