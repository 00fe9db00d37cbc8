// Package engine is the Gray-Scott simulation core: a double-buffered
// stencil solver over a two-channel concentration field, with a
// spatially varying feed mask, deterministic re-seeding from a bitmap
// procedure, and a tick scheduler bound to a host frame cadence.
//
// The engine runs on a single logical thread of control. Each stencil
// step is dispatched as a data-parallel kernel over the grid, but from
// the engine's point of view a step is atomic: it reads only the
// committed buffer and is complete before the next step is issued.
package engine
