package compute

// SerialBackend visits every cell on the calling goroutine. It is the
// reference implementation the parallel backend is tested against.
type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string    { return "serial" }
func (s *SerialBackend) Available() bool { return true }

func (s *SerialBackend) Dispatch(width, height int, k Kernel) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			k(x, y)
		}
	}
}
