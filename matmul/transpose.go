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

// transposeTile is the square tile edge used by Transpose.
const transposeTile = 16

// Transpose writes the transpose of the M×K matrix src into dst (K×M).
// It walks 16×16 tiles so that neither side is strided over a whole row.
func Transpose[T Integers](src []T, m, k int, dst []T) {
	if len(src) < m*k {
		panic("matmul: transpose source too short")
	}
	if len(dst) < m*k {
		panic("matmul: transpose destination too short")
	}

	for i0 := 0; i0 < m; i0 += transposeTile {
		iEnd := min(i0+transposeTile, m)
		for j0 := 0; j0 < k; j0 += transposeTile {
			jEnd := min(j0+transposeTile, k)
			for i := i0; i < iEnd; i++ {
				for j := j0; j < jEnd; j++ {
					dst[j*m+i] = src[i*k+j]
				}
			}
		}
	}
}

// TransposedMatMul computes C = A * B by first transposing B into a
// scratch buffer, so the inner product reads both operands with unit
// stride.
func TransposedMatMul[T Integers](a, b, c []T, m, n, k int) {
	checkShapes(a, b, c, m, n, k)

	bt := make([]T, k*n)
	Transpose(b, k, n, bt)

	for i := 0; i < m; i++ {
		aRow := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			btRow := bt[j*k : (j+1)*k]
			var sum T
			for p, aip := range aRow {
				sum += aip * btRow[p]
			}
			c[i*n+j] = sum
		}
	}
}
