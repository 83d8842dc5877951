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

import "fmt"

// BlockedMatMul computes C = A * B using cache tiling with the tile sizes
// from DefaultBlockParams.
//
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
func BlockedMatMul[T Integers](a, b, c []T, m, n, k int) {
	BlockedMatMulWith(DefaultBlockParams(), a, b, c, m, n, k)
}

// BlockedMatMulWith is BlockedMatMul with explicit tile sizes. Tiles larger
// than the matrix are clamped by the loop bounds.
func BlockedMatMulWith[T Integers](params BlockParams, a, b, c []T, m, n, k int) {
	checkShapes(a, b, c, m, n, k)
	if params.Mc <= 0 || params.Nc <= 0 || params.Kc <= 0 {
		panic(fmt.Sprintf("matmul: invalid block params %+v", params))
	}

	clear(c[:m*n])
	for i0 := 0; i0 < m; i0 += params.Mc {
		iEnd := min(i0+params.Mc, m)

		for p0 := 0; p0 < k; p0 += params.Kc {
			pEnd := min(p0+params.Kc, k)

			for j0 := 0; j0 < n; j0 += params.Nc {
				jEnd := min(j0+params.Nc, n)

				for i := i0; i < iEnd; i++ {
					cRow := c[i*n+j0 : i*n+jEnd]
					for p := p0; p < pEnd; p++ {
						aip := a[i*k+p]
						bRow := b[p*n+j0 : p*n+jEnd]
						for j, bpj := range bRow {
							cRow[j] += aip * bpj
						}
					}
				}
			}
		}
	}
}
