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

//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// CPU feature flag for ARM float16 support.
var (
	// hasARMFP16 indicates ARMv8.2-A FP16 extension support.
	// Provides native float16 arithmetic in NEON/ASIMD.
	// Detected via cpu.ARM64.HasFPHP (scalar) and cpu.ARM64.HasASIMDHP (vector).
	hasARMFP16 bool
)

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it's part of the
	// ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		// Should never happen on ARMv8+.
		currentLevel = DispatchScalar
		currentWidth = 16
	}

	hasARMFP16 = cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
}

// HasARMFP16 returns true if the CPU supports the ARM FP16 extension.
// ARMv8.2-A and later (Apple A11+, Cortex-A75+) implement native float16
// arithmetic in NEON. It is a capability report only; libblur's f16 path
// does not consult it and always promotes through float32.
func HasARMFP16() bool {
	return hasARMFP16
}

// HasF16C returns false on ARM64; F16C is an x86-specific feature.
func HasF16C() bool {
	return false
}

// HasAVX512FP16 returns false on ARM64; AVX-512 is x86-specific.
func HasAVX512FP16() bool {
	return false
}
