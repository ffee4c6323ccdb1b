// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// The module has no AVX2/AVX-512 code paths, so on amd64 the dispatch
// level is always scalar and every call runs the scalar reference
// implementation; CPU detection here only reports F16C support.

// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+).
var hasF16C bool

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	setScalarMode()
	detectF16Features()
}

func detectF16Features() {
	// F16C detection: use FMA as a proxy (F16C is present on all FMA-capable CPUs).
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}

// HasF16C returns true if the CPU supports F16C instructions, which provide
// hardware-accelerated float16 <-> float32 conversions (Intel Haswell+, AMD
// Piledriver+). libblur's f16 path uses this only as a capability report;
// the conversion itself always runs through the portable promote/demote
// routines in float16.go.
func HasF16C() bool {
	return hasF16C
}

// HasAVX512FP16 returns false; AVX-512 FP16 detection is not yet exposed by
// golang.org/x/sys/cpu.
func HasAVX512FP16() bool {
	return false
}

// HasARMFP16 returns false on x86; use HasF16C for x86 float16 support.
func HasARMFP16() bool {
	return false
}
