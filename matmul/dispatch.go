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
	"slices"

	"github.com/samber/lo"
)

// Kernel computes C = A * B for row-major int32 operands, A is M×K,
// B is K×N and C is M×N.
type Kernel func(a, b, c []int32, m, n, k int)

// MatMul is the kernel the benchmark times: the textbook i-j-k loop.
var MatMul Kernel = BaseMatMul[int32]

// Kernel names accepted by Lookup.
const (
	KernelNaive      = "naive"
	KernelIKJ        = "ikj"
	KernelBlocked    = "blocked"
	KernelTransposed = "transposed"
)

var kernels = map[string]Kernel{
	KernelNaive:      BaseMatMul[int32],
	KernelIKJ:        MatMulIKJ[int32],
	KernelBlocked:    BlockedMatMul[int32],
	KernelTransposed: TransposedMatMul[int32],
}

// Kernels returns the registered kernel names in sorted order.
func Kernels() []string {
	names := lo.Keys(kernels)
	slices.Sort(names)
	return names
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Kernel, bool) {
	k, ok := kernels[name]
	return k, ok
}
