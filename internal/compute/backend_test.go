package compute

import (
	"math/rand"
	"sync/atomic"
	"testing"
)

func TestSerialVisitsEveryCell(t *testing.T) {
	const w, h = 7, 5
	seen := make([]int, w*h)

	NewSerialBackend().Dispatch(w, h, func(x, y int) {
		seen[y*w+x]++
	})

	for i, n := range seen {
		if n != 1 {
			t.Fatalf("cell %d visited %d times, want 1", i, n)
		}
	}
}

func TestCPUVisitsEveryCell(t *testing.T) {
	const w, h = 33, 129
	var seen [w * h]int64

	NewCPUBackend().Dispatch(w, h, func(x, y int) {
		atomic.AddInt64(&seen[y*w+x], 1)
	})

	for i := range seen {
		if seen[i] != 1 {
			t.Fatalf("cell %d visited %d times, want 1", i, seen[i])
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	const size = 64
	rng := rand.New(rand.NewSource(42))
	in := make([]float64, size*size)
	for i := range in {
		in[i] = rng.Float64()
	}

	kernel := func(out []float64) Kernel {
		return func(x, y int) {
			i := y*size + x
			v := in[i]
			out[i] = v*v - 0.5*v + in[(i+1)%len(in)]
		}
	}

	serial := make([]float64, size*size)
	parallel := make([]float64, size*size)
	NewSerialBackend().Dispatch(size, size, kernel(serial))
	NewCPUBackend().Dispatch(size, size, kernel(parallel))

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("cell %d: serial %v != parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestAutoReturnsAvailableBackend(t *testing.T) {
	b := Auto()
	if b == nil {
		t.Fatal("Auto returned nil")
	}
	if !b.Available() {
		t.Errorf("backend %q reports unavailable", b.Name())
	}
}
