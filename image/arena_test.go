package image

import (
	"testing"

	"github.com/blurhwy/libblur/edge"
)

func fill3x3(t *testing.T) View[float32] {
	t.Helper()
	v, err := Alloc[float32](3, 3, 1)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	val := float32(1)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v.Set(x, y, 0, val)
			val++
		}
	}
	return v
}

func TestBuildRowStripClamp(t *testing.T) {
	v := fill3x3(t)
	strip, err := BuildRowStrip[float32](v, 0, 3, edge.Clamp, nil)
	if err != nil {
		t.Fatalf("BuildRowStrip: %v", err)
	}
	// row 0 is [1,2,3]; radius 1 clamp pads to [1,1,2,3,3].
	want := []float32{1, 1, 2, 3, 3}
	for i, w := range want {
		if strip[i] != w {
			t.Errorf("strip[%d]: got %v, want %v", i, strip[i], w)
		}
	}
}

func TestBuildRowStripConstant(t *testing.T) {
	v := fill3x3(t)
	strip, err := BuildRowStrip[float32](v, 0, 3, edge.Constant, []float32{9})
	if err != nil {
		t.Fatalf("BuildRowStrip: %v", err)
	}
	if strip[0] != 9 || strip[len(strip)-1] != 9 {
		t.Errorf("constant margins: got %v", strip)
	}
}

func TestBuildRowStripRejectsEvenKernel(t *testing.T) {
	v := fill3x3(t)
	if _, err := BuildRowStrip[float32](v, 0, 4, edge.Clamp, nil); err == nil {
		t.Fatal("expected error for even kernel length")
	}
}

func TestBuildColumnStrips(t *testing.T) {
	v := fill3x3(t)
	top, bottom, err := BuildColumnStrips[float32](v, 3, edge.Clamp, nil)
	if err != nil {
		t.Fatalf("BuildColumnStrips: %v", err)
	}
	if top.Height() != 1 || bottom.Height() != 1 {
		t.Fatalf("strip heights: top=%d bottom=%d, want 1,1", top.Height(), bottom.Height())
	}
	// top strip mirrors row 0 under Clamp: [1,2,3]
	for x := 0; x < 3; x++ {
		if got := top.At(x, 0, 0); got != float32(x+1) {
			t.Errorf("top[%d]: got %v, want %v", x, got, x+1)
		}
	}
	// bottom strip mirrors row 2: [7,8,9]
	for x := 0; x < 3; x++ {
		if got := bottom.At(x, 0, 0); got != float32(7+x) {
			t.Errorf("bottom[%d]: got %v, want %v", x, got, 7+x)
		}
	}
}

func TestBuildFullArenaInteriorMatchesSource(t *testing.T) {
	v := fill3x3(t)
	arena, err := BuildFullArena[float32](v, 3, 3, edge.Wrap, nil)
	if err != nil {
		t.Fatalf("BuildFullArena: %v", err)
	}
	if arena.Width() != 5 || arena.Height() != 5 {
		t.Fatalf("arena dims: got %dx%d, want 5x5", arena.Width(), arena.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got, want := arena.At(x+1, y+1, 0), v.At(x, y, 0); got != want {
				t.Errorf("interior(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}
