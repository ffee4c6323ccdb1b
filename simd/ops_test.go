package simd

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestFMA(t *testing.T) {
	a := Set[float32](2.0)
	b := Set[float32](3.0)
	c := Set[float32](4.0)
	result := FMA(a, b, c) // 2*3 + 4 = 10

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 10.0 {
			t.Errorf("FMA: lane %d: got %v, want 10.0", i, result.data[i])
		}
	}
}

func TestMaskLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	mask := TailMask[float32](3) // First 3 lanes active
	v := MaskLoad(mask, data)

	if v.data[0] != 1.0 {
		t.Errorf("MaskLoad: lane 0: got %v, want 1.0", v.data[0])
	}
	if v.data[1] != 2.0 {
		t.Errorf("MaskLoad: lane 1: got %v, want 2.0", v.data[1])
	}
	if v.data[2] != 3.0 {
		t.Errorf("MaskLoad: lane 2: got %v, want 3.0", v.data[2])
	}
	// Lanes 3+ should be zero
	for i := 3; i < v.NumLanes(); i++ {
		if v.data[i] != 0.0 {
			t.Errorf("MaskLoad: lane %d: got %v, want 0.0", i, v.data[i])
		}
	}
}

func TestMaskStore(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	dst := make([]float32, 8)
	mask := TailMask[float32](3) // First 3 lanes active
	MaskStore(mask, v, dst)

	if dst[0] != 1.0 {
		t.Errorf("MaskStore: dst[0]: got %v, want 1.0", dst[0])
	}
	if dst[1] != 2.0 {
		t.Errorf("MaskStore: dst[1]: got %v, want 2.0", dst[1])
	}
	if dst[2] != 3.0 {
		t.Errorf("MaskStore: dst[2]: got %v, want 3.0", dst[2])
	}
	// dst[3:] should remain zero
	for i := 3; i < len(dst); i++ {
		if dst[i] != 0.0 {
			t.Errorf("MaskStore: dst[%d]: got %v, want 0.0", i, dst[i])
		}
	}
}

func TestMaskAllTrue(t *testing.T) {
	allTrue := TailMask[float32](MaxLanes[float32]())
	if !allTrue.AllTrue() {
		t.Error("AllTrue: expected true for full mask")
	}

	partial := TailMask[float32](2)
	if partial.AllTrue() {
		t.Error("AllTrue: expected false for partial mask")
	}
}

func TestMaskAnyTrue(t *testing.T) {
	partial := TailMask[float32](2)
	if !partial.AnyTrue() {
		t.Error("AnyTrue: expected true for partial mask")
	}

	empty := TailMask[float32](0)
	if empty.AnyTrue() {
		t.Error("AnyTrue: expected false for empty mask")
	}
}

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" {
		t.Error("CurrentName should not be empty")
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()
	maxI32 := MaxLanes[int32]()

	t.Logf("MaxLanes: float32=%d, float64=%d, int32=%d", maxF32, maxF64, maxI32)

	if maxF32 <= 0 {
		t.Error("MaxLanes[float32] should be positive")
	}

	// float64 uses twice as much space, so should have half the lanes
	if maxF64*2 != maxF32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of float32 lanes (%d)", maxF64, maxF32)
	}
}

func TestTailMask(t *testing.T) {
	mask := TailMask[float32](3)

	if !mask.GetBit(0) || !mask.GetBit(1) || !mask.GetBit(2) {
		t.Error("TailMask: first 3 bits should be true")
	}

	for i := 3; i < mask.NumLanes(); i++ {
		if mask.GetBit(i) {
			t.Errorf("TailMask: bit %d should be false", i)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	data := make([]float32, 100)
	for i := range data {
		data[i] = float32(i)
	}

	output := make([]float32, len(data))

	fullVectors := 0

	two := Set[float32](2)
	ProcessWithTail[float32](len(data),
		func(offset int) {
			fullVectors++
			v := Load(data[offset:])
			result := FMA(two, v, Zero[float32]()) // Double each value
			Store(result, output[offset:])
		},
		func(offset, count int) {
			mask := TailMask[float32](count)
			v := MaskLoad(mask, data[offset:])
			result := FMA(two, v, Zero[float32]())
			MaskStore(mask, result, output[offset:])
		},
	)

	if fullVectors == 0 {
		t.Error("ProcessWithTail: no full vectors processed")
	}

	// Verify results
	for i, val := range output {
		expected := float32(i) * 2
		if math.Abs(float64(val-expected)) > 0.001 {
			t.Errorf("ProcessWithTail: output[%d]: got %v, want %v", i, val, expected)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	maxLanes := MaxLanes[float32]()

	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, maxLanes},
		{maxLanes, maxLanes},
		{maxLanes + 1, maxLanes * 2},
		{maxLanes * 2, maxLanes * 2},
	}

	for _, tt := range tests {
		result := AlignedSize[float32](tt.input)
		if result != tt.expected {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestIsAligned(t *testing.T) {
	maxLanes := MaxLanes[float32]()

	if !IsAligned[float32](0) {
		t.Error("IsAligned: 0 should be aligned")
	}

	if !IsAligned[float32](maxLanes) {
		t.Error("IsAligned: maxLanes should be aligned")
	}

	if !IsAligned[float32](maxLanes * 2) {
		t.Error("IsAligned: maxLanes*2 should be aligned")
	}

	if IsAligned[float32](maxLanes + 1) {
		t.Error("IsAligned: maxLanes+1 should not be aligned")
	}
}
