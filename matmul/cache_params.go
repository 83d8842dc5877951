// Copyright 2026 matmulbench Authors
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

package matmul

import (
	"os"
	"strconv"

	"golang.org/x/sys/cpu"
)

// BlockParams defines the tile sizes used by BlockedMatMul.
//
// The loop nest is i0 (Mc rows of C) → p0 (Kc of the shared dimension)
// → j0 (Nc columns of C), so one Kc×Nc panel of B is reused for Mc rows
// of A before moving on.
type BlockParams struct {
	Mc int // Rows of A/C per tile (L2)
	Nc int // Columns of B/C per tile (L1)
	Kc int // Depth of the shared dimension per tile (L1)
}

// Blocking parameters for 4-byte elements. Cores with wider vector units
// tend to ship with larger caches, so the ISA level is used as a proxy for
// the cache hierarchy rather than probing sizes directly.

// BlockParamsAVX512 returns tiles for AVX-512 class x86 cores.
// Assumes: 48KB L1d, 1-2MB L2 (Ice Lake server and later, Zen 4).
func BlockParamsAVX512() BlockParams {
	return BlockParams{
		Mc: 128,  // 128 * 256 * 4 bytes = 128KB A panel
		Nc: 1024, // 1024 * 4 bytes = 4KB of one B row per tile
		Kc: 256,
	}
}

// BlockParamsAVX2 returns tiles for AVX2 class x86 cores.
// Assumes: 32KB L1d, 256KB-512KB L2 (Haswell and later).
func BlockParamsAVX2() BlockParams {
	return BlockParams{
		Mc: 64,
		Nc: 512,
		Kc: 256,
	}
}

// BlockParamsNEON returns tiles for ARMv8 cores.
func BlockParamsNEON() BlockParams {
	return BlockParams{
		Mc: 64,
		Nc: 512,
		Kc: 128,
	}
}

// BlockParamsGeneric returns conservative tiles that fit small caches,
// including the default gem5 L1d of 32KB with 2-way associativity.
func BlockParamsGeneric() BlockParams {
	return BlockParams{
		Mc: 32,
		Nc: 256,
		Kc: 128,
	}
}

// currentName and currentParams are set once by init.
var (
	currentName   string
	currentParams BlockParams
)

func init() {
	if GenericEnv() {
		currentName, currentParams = "generic", BlockParamsGeneric()
		return
	}
	currentName, currentParams = detectCPU()
}

func detectCPU() (string, BlockParams) {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512", BlockParamsAVX512()
	case cpu.X86.HasAVX2:
		return "avx2", BlockParamsAVX2()
	case cpu.ARM64.HasASIMD:
		return "neon", BlockParamsNEON()
	default:
		return "generic", BlockParamsGeneric()
	}
}

// CPUName returns the CPU class the default block parameters were chosen
// for: "avx512", "avx2", "neon" or "generic".
func CPUName() string {
	return currentName
}

// DefaultBlockParams returns the block parameters for the detected CPU.
func DefaultBlockParams() BlockParams {
	return currentParams
}

// GenericEnv checks the MATMULBENCH_GENERIC environment variable.
// When set, the generic block parameters are used regardless of CPU
// capabilities, which keeps runs comparable across hosts and simulators.
func GenericEnv() bool {
	val := os.Getenv("MATMULBENCH_GENERIC")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
