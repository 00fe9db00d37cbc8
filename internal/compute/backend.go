package compute

// Kernel is a pure per-cell transition applied at one grid coordinate.
// Kernels must write only to their own cell's output so a backend may
// dispatch them in any order or in parallel.
type Kernel func(x, y int)

// Backend dispatches a kernel over a 2D index space. Each Dispatch call
// is an atomic unit: it returns only after every cell has been visited.
type Backend interface {
	Name() string
	Available() bool
	Dispatch(width, height int, k Kernel)
}

// Auto picks the best available backend: the chunked parallel backend
// when more than one CPU is present, otherwise the serial one.
func Auto() Backend {
	cpu := NewCPUBackend()
	if cpu.workers > 1 {
		return cpu
	}
	return NewSerialBackend()
}
