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

// BaseMatMul computes C = A * B with the textbook triple loop.
//
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
//
// C[i,j] = sum(A[i,p] * B[p,j]) for p in 0..K-1. Every element of C is
// written exactly once, so C need not be cleared beforehand.
func BaseMatMul[T Integers](a, b, c []T, m, n, k int) {
	checkShapes(a, b, c, m, n, k)

	for i := 0; i < m; i++ {
		aRow := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			var sum T
			for p, aip := range aRow {
				sum += aip * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// MatMulIKJ computes C = A * B walking B and C with unit stride in the
// innermost loop.
func MatMulIKJ[T Integers](a, b, c []T, m, n, k int) {
	checkShapes(a, b, c, m, n, k)

	clear(c[:m*n])
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			for j, bpj := range bRow {
				cRow[j] += aip * bpj
			}
		}
	}
}

func checkShapes[T Integers](a, b, c []T, m, n, k int) {
	if len(a) < m*k {
		panic("matmul: A slice too short")
	}
	if len(b) < k*n {
		panic("matmul: B slice too short")
	}
	if len(c) < m*n {
		panic("matmul: C slice too short")
	}
}
