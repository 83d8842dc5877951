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

// Matrix is a square n×n matrix of int32 stored row-major in one slice.
//
// int32 has the width of C int on ILP32 and LP64 targets, so checksums
// agree bit for bit with a C build of the same benchmark.
type Matrix struct {
	n    int
	data []int32
}

// New allocates a zeroed n×n matrix. It panics if n is not positive.
func New(n int) *Matrix {
	if n <= 0 {
		panic(fmt.Sprintf("matmul: invalid matrix dimension %d", n))
	}
	return &Matrix{n: n, data: make([]int32, n*n)}
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Data returns the backing row-major slice. Writes through it are visible
// in the matrix.
func (m *Matrix) Data() []int32 { return m.data }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) int32 {
	return m.data[i*m.n+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v int32) {
	m.data[i*m.n+j] = v
}

// Row returns row i as a subslice of the backing storage.
func (m *Matrix) Row(i int) []int32 {
	return m.data[i*m.n : (i+1)*m.n]
}

// Equal reports whether m and o have the same dimension and elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// FillPattern writes the benchmark input pattern:
//
//	A[i][j] = i + j
//	B[i][j] = i - j
//
// Any other matrix the caller holds (the product) is left untouched.
func FillPattern(a, b *Matrix) {
	if a.n != b.n {
		panic(fmt.Sprintf("matmul: dimension mismatch %d != %d", a.n, b.n))
	}
	n := a.n
	for i := 0; i < n; i++ {
		aRow := a.Row(i)
		bRow := b.Row(i)
		for j := 0; j < n; j++ {
			aRow[j] = int32(i + j)
			bRow[j] = int32(i - j)
		}
	}
}

// Mul computes c = a * b with kernel. All three matrices must share one
// dimension.
func Mul(kernel Kernel, a, b, c *Matrix) {
	if a.n != b.n || a.n != c.n {
		panic(fmt.Sprintf("matmul: dimension mismatch %d, %d, %d", a.n, b.n, c.n))
	}
	kernel(a.data, b.data, c.data, a.n, a.n, a.n)
}
