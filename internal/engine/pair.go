package engine

import (
	"fmt"

	"github.com/morphlab/grayscott/internal/field"
)

// bufferRole marks which half of the pair a grid currently plays.
type bufferRole int

const (
	roleRead bufferRole = iota
	roleWrite
)

// BufferPair owns the two alternating simulation grids. Exactly one grid
// holds the read role and one the write role at any time; the roles swap
// only through Commit, so a step can never observe a torn state where
// both point at the same buffer.
type BufferPair struct {
	grids [2]*field.Grid
	roles [2]bufferRole
}

// NewBufferPair allocates both grids at size*size. Allocation failure is
// fatal for the session: there is no degraded single-buffer mode.
func NewBufferPair(size int) (*BufferPair, error) {
	a, err := field.NewGrid(size)
	if err != nil {
		return nil, fmt.Errorf("allocating front buffer: %w", err)
	}
	b, err := field.NewGrid(size)
	if err != nil {
		return nil, fmt.Errorf("allocating back buffer: %w", err)
	}
	return &BufferPair{
		grids: [2]*field.Grid{a, b},
		roles: [2]bufferRole{roleRead, roleWrite},
	}, nil
}

// Read returns the committed current-state grid. Callers must treat it
// as read-only until the next Commit.
func (p *BufferPair) Read() *field.Grid {
	return p.grids[p.index(roleRead)]
}

// Write returns the grid the next step populates.
func (p *BufferPair) Write() *field.Grid {
	return p.grids[p.index(roleWrite)]
}

// Commit exchanges the read and write roles.
func (p *BufferPair) Commit() {
	p.roles[0], p.roles[1] = p.roles[1], p.roles[0]
}

func (p *BufferPair) index(r bufferRole) int {
	if p.roles[0] == r {
		return 0
	}
	return 1
}
