package voice

import (
	"math"
	"testing"
)

func TestRing_FillAndWrap(t *testing.T) {
	r := NewRing[int](3)
	if got := r.Snapshot(); len(got) != 0 {
		t.Fatalf("empty ring snapshot has %d items", len(got))
	}

	r.Push(1)
	r.Push(2)
	got := r.Snapshot()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("snapshot = %v, want [1 2]", got)
	}

	r.Push(3)
	r.Push(4) // evicts 1
	got = r.Snapshot()
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("snapshot after wrap = %v, want [2 3 4]", got)
	}
}

func TestRmsEnergy(t *testing.T) {
	if got := rmsEnergy(nil); got != 0 {
		t.Errorf("rmsEnergy(nil) = %f", got)
	}
	got := rmsEnergy([]float32{0.5, -0.5, 0.5, -0.5})
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("rmsEnergy = %f, want 0.5", got)
	}
}

func TestI16ToF32_Scale(t *testing.T) {
	in := []int16{0, 16384, -32768, 32767}
	out := make([]float32, len(in))
	i16ToF32(in, out)
	if out[0] != 0 || math.Abs(float64(out[1])-0.5) > 1e-4 {
		t.Errorf("unexpected scaling: %v", out)
	}
	if out[2] != -1.0 {
		t.Errorf("min sample = %f, want -1", out[2])
	}
	if out[3] >= 1.0 {
		t.Errorf("max sample = %f, want just under 1", out[3])
	}
}

func TestFlatten(t *testing.T) {
	got := flatten([][]float32{{1, 2}, {3}, {}, {4, 5}})
	want := []float32{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flatten[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}
