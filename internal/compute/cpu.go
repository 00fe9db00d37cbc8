package compute

import (
	"runtime"
	"sync"
)

// CPUBackend dispatches kernels across a pool of goroutines, one chunk
// of rows per worker. Because every cell's update reads only committed
// input and writes only its own output, chunking does not change the
// observable result.
type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{workers: runtime.NumCPU()}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }

func (c *CPUBackend) Dispatch(width, height int, k Kernel) {
	if height < c.workers*2 {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				k(x, y)
			}
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (height + c.workers - 1) / c.workers

	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			start := worker * chunk
			end := start + chunk
			if end > height {
				end = height
			}

			for y := start; y < end; y++ {
				for x := 0; x < width; x++ {
					k(x, y)
				}
			}
		}(w)
	}

	wg.Wait()
}
