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

// Package matmul provides square integer matrices and the multiplication
// kernels exercised by the benchmark.
//
// All kernels operate on flat row-major slices and use fixed-width
// two's-complement arithmetic: products and running sums wrap silently.
// Because wrapping addition and multiplication form a commutative ring,
// every kernel here produces bit-identical output regardless of loop order.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN
//	a := make([]int32, M*K)  // row-major
//	b := make([]int32, K*N)  // row-major
//	c := make([]int32, M*N)  // output, row-major
//
//	matmul.BaseMatMul(a, b, c, M, N, K)
//
// Available kernels:
//   - BaseMatMul: textbook i-j-k triple loop (the benchmark reference)
//   - MatMulIKJ: i-k-j streaming order, unit stride over B and C
//   - BlockedMatMul: cache tiling sized from the detected CPU
//   - TransposedMatMul: transposes B once, then row-by-row dot products
package matmul
