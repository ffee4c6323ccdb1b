package fastgaussian

import (
	"testing"

	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/threadpool"
)

func uniform(t *testing.T, w, h, cn int, val uint8) image.View[uint8] {
	t.Helper()
	v, err := image.Alloc[uint8](w, h, cn)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < cn; c++ {
				v.Set(x, y, c, val)
			}
		}
	}
	return v
}

func TestConstantImageWithinToleranceU8(t *testing.T) {
	img := uniform(t, 148, 148, 3, 126)
	cfg := Config[uint8]{Radius: 5, EdgeModeX: edge.Clamp, EdgeModeY: edge.Clamp}
	if err := Run[uint8](img, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for y := 0; y < 148; y++ {
		for x := 0; x < 148; x++ {
			for c := 0; c < 3; c++ {
				got := int(img.At(x, y, c))
				if diff := got - 126; diff > 3 || diff < -3 {
					t.Fatalf("(%d,%d,%d): got %d, want 126±3", x, y, c, got)
				}
			}
		}
	}
}

func TestRejectsRadiusZero(t *testing.T) {
	img := uniform(t, 8, 8, 1, 10)
	if err := Run[uint8](img, Config[uint8]{Radius: 0}); err == nil {
		t.Fatal("expected error for radius 0")
	}
}

func TestRejectsRadiusAboveCap(t *testing.T) {
	img := uniform(t, 8, 8, 1, 10)
	if err := Run[uint8](img, Config[uint8]{Radius: 1000}); err == nil {
		t.Fatal("expected error for radius above u8 cap")
	}
}

func TestRejectsKernelClip(t *testing.T) {
	img := uniform(t, 8, 8, 1, 10)
	cfg := Config[uint8]{Radius: 2, EdgeModeX: edge.KernelClip}
	if err := Run[uint8](img, cfg); err == nil {
		t.Fatal("expected error for KernelClip edge mode")
	}
}

func TestDeterminismAcrossThreadCounts(t *testing.T) {
	pool := threadpool.New(4)
	defer pool.Close()

	mk := func() image.View[uint8] {
		v, _ := image.Alloc[uint8](40, 30, 3)
		n := 0
		for y := 0; y < 30; y++ {
			for x := 0; x < 40; x++ {
				for c := 0; c < 3; c++ {
					v.Set(x, y, c, uint8((n*7)%256))
					n++
				}
			}
		}
		return v
	}

	single := mk()
	threaded := mk()

	if err := Run[uint8](single, Config[uint8]{Radius: 4, EdgeModeX: edge.Reflect, EdgeModeY: edge.Reflect, Plan: threadpool.Plan{Policy: threadpool.Single}}); err != nil {
		t.Fatalf("Run single: %v", err)
	}
	if err := Run[uint8](threaded, Config[uint8]{Radius: 4, EdgeModeX: edge.Reflect, EdgeModeY: edge.Reflect, Plan: threadpool.Plan{Policy: threadpool.Fixed, Threads: 4}, Pool: pool}); err != nil {
		t.Fatalf("Run threaded: %v", err)
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			for c := 0; c < 3; c++ {
				if single.At(x, y, c) != threaded.At(x, y, c) {
					t.Fatalf("(%d,%d,%d): single=%d threaded=%d", x, y, c, single.At(x, y, c), threaded.At(x, y, c))
				}
			}
		}
	}
}
