package engine

import (
	"testing"

	"github.com/morphlab/grayscott/internal/field"
)

func TestNewBufferPairRejectsBadSize(t *testing.T) {
	if _, err := NewBufferPair(0); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := NewBufferPair(-3); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestBufferPairRolesAlternate(t *testing.T) {
	p, err := NewBufferPair(4)
	if err != nil {
		t.Fatalf("NewBufferPair: %v", err)
	}

	r0, w0 := p.Read(), p.Write()
	if r0 == w0 {
		t.Fatal("read and write buffers alias before first commit")
	}

	for i := 0; i < 5; i++ {
		prevRead, prevWrite := p.Read(), p.Write()
		p.Commit()
		if p.Read() != prevWrite || p.Write() != prevRead {
			t.Fatalf("commit %d did not exchange roles", i)
		}
		if p.Read() == p.Write() {
			t.Fatalf("commit %d left both roles on one buffer", i)
		}
	}
}

func TestBufferPairCommitExposesWrittenState(t *testing.T) {
	p, _ := NewBufferPair(2)
	p.Write().Set(1, 1, field.Cell{A: 0.5, B: 0.25})
	p.Commit()

	got := p.Read().At(1, 1)
	if got.A != 0.5 || got.B != 0.25 {
		t.Errorf("read buffer after commit = %+v, want {0.5 0.25}", got)
	}
}
