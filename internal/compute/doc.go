// Package compute dispatches per-cell kernels over a 2D index space.
//
// The simulation treats each stencil pass as a data-parallel kernel: a
// pure function of the committed read buffer applied independently at
// every cell. Backends decide how that index space is walked, serially
// or chunked across worker goroutines, without changing the result.
//
//	backend := compute.Auto()
//	backend.Dispatch(size, size, func(x, y int) { ... })
package compute
