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
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// matmulReference computes C = A * B accumulating in int64 and truncating
// to int32 at the end. Truncation of a 64-bit wrapping sum gives the same
// low 32 bits as wrapping in 32 bits throughout, so this is an independent
// check of the kernels' wraparound behavior.
func matmulReference(a, b, c []int32, m, n, k int) {
	for i := range m {
		for j := range n {
			var sum int64
			for p := range k {
				sum += int64(a[i*k+p]) * int64(b[p*n+j])
			}
			c[i*n+j] = int32(sum)
		}
	}
}

func randomInts(r *rand.Rand, size int) []int32 {
	out := make([]int32, size)
	for i := range out {
		out[i] = int32(r.Uint32())
	}
	return out
}

func allKernels() map[string]func(a, b, c []int32, m, n, k int) {
	return map[string]func(a, b, c []int32, m, n, k int){
		"base":       BaseMatMul[int32],
		"ikj":        MatMulIKJ[int32],
		"blocked":    BlockedMatMul[int32],
		"transposed": TransposedMatMul[int32],
		"tiny-tiles": func(a, b, c []int32, m, n, k int) {
			BlockedMatMulWith(BlockParams{Mc: 3, Nc: 5, Kc: 7}, a, b, c, m, n, k)
		},
	}
}

func TestMatMulSmall(t *testing.T) {
	// 2x3 * 3x2 = 2x2
	a := []int32{1, 2, 3, 4, 5, 6}
	b := []int32{7, 8, 9, 10, 11, 12}
	want := []int32{58, 64, 139, 154}

	for name, kernel := range allKernels() {
		t.Run(name, func(t *testing.T) {
			c := make([]int32, 4)
			kernel(a, b, c, 2, 2, 3)
			for i := range c {
				if c[i] != want[i] {
					t.Errorf("c[%d] = %d, want %d", i, c[i], want[i])
				}
			}
		})
	}
}

func TestMatMulPattern4(t *testing.T) {
	a, b, c := New(4), New(4), New(4)
	FillPattern(a, b)
	Mul(MatMul, a, b, c)

	// sum over k of (0+k)*(k-0) = 0 + 1 + 4 + 9
	if got := c.At(0, 0); got != 14 {
		t.Errorf("C[0][0] = %d, want 14", got)
	}
}

func TestKernelsAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	testCases := []struct {
		m, n, k int
	}{
		{1, 1, 1},
		{4, 4, 4},
		{7, 5, 3},     // all odd, smaller than any tile
		{16, 16, 16},  // exactly one transpose tile
		{33, 50, 37},  // all different, none aligned
		{64, 33, 130}, // K crosses the generic Kc
		{129, 65, 31}, // M crosses AVX-512 Mc
	}

	for _, tc := range testCases {
		a := randomInts(r, tc.m*tc.k)
		b := randomInts(r, tc.k*tc.n)
		expected := make([]int32, tc.m*tc.n)
		matmulReference(a, b, expected, tc.m, tc.n, tc.k)

		for name, kernel := range allKernels() {
			t.Run(fmt.Sprintf("%s/%dx%dx%d", name, tc.m, tc.n, tc.k), func(t *testing.T) {
				c := randomInts(r, tc.m*tc.n) // stale output must be overwritten
				kernel(a, b, c, tc.m, tc.n, tc.k)
				for i := range c {
					if c[i] != expected[i] {
						t.Fatalf("c[%d] = %d, want %d", i, c[i], expected[i])
					}
				}
			})
		}
	}
}

func TestMatMulWraparound(t *testing.T) {
	// 2^20 * 2^12 = 2^32 wraps to 0 in 32 bits.
	c32 := make([]int32, 1)
	BaseMatMul([]int32{1 << 20}, []int32{1 << 12}, c32, 1, 1, 1)
	if c32[0] != 0 {
		t.Errorf("int32 product = %d, want 0", c32[0])
	}

	c64 := make([]int64, 1)
	BaseMatMul([]int64{1 << 20}, []int64{1 << 12}, c64, 1, 1, 1)
	if c64[0] != 1<<32 {
		t.Errorf("int64 product = %d, want %d", c64[0], int64(1)<<32)
	}

	// MaxInt32 + MaxInt32 = -2 after wrapping.
	a := []int32{math.MaxInt32, math.MaxInt32}
	b := []int32{1, 1}
	for name, kernel := range allKernels() {
		c := make([]int32, 1)
		kernel(a, b, c, 1, 1, 2)
		if c[0] != -2 {
			t.Errorf("%s: sum = %d, want -2", name, c[0])
		}
	}
}

// TestMatMulGonum checks the 256x256 benchmark product against gonum's
// float64 multiply. Every intermediate value stays far below 2^53, so the
// float64 result is exact.
func TestMatMulGonum(t *testing.T) {
	const n = 256
	a, b, c := New(n), New(n), New(n)
	FillPattern(a, b)
	Mul(MatMul, a, b, c)

	toFloat := func(m *Matrix) []float64 {
		out := make([]float64, n*n)
		for i, v := range m.Data() {
			out[i] = float64(v)
		}
		return out
	}
	var want mat.Dense
	want.Mul(mat.NewDense(n, n, toFloat(a)), mat.NewDense(n, n, toFloat(b)))

	for i := range n {
		for j := range n {
			if got := float64(c.At(i, j)); got != want.At(i, j) {
				t.Fatalf("C[%d][%d] = %v, want %v", i, j, got, want.At(i, j))
			}
		}
	}
	if got := c.At(n/2, n/2); got != 1365376 {
		t.Errorf("C[128][128] = %d, want 1365376", got)
	}
}

func TestMatMulIdempotent(t *testing.T) {
	const n = 32
	a, b := New(n), New(n)
	FillPattern(a, b)

	first, second := New(n), New(n)
	Mul(MatMul, a, b, first)
	Mul(MatMul, a, b, second)

	if !first.Equal(second) {
		t.Error("second run produced a different product")
	}
}

func TestBlockedMatMulInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero tile size")
		}
	}()
	c := make([]int32, 1)
	BlockedMatMulWith(BlockParams{Mc: 0, Nc: 1, Kc: 1}, []int32{1}, []int32{1}, c, 1, 1, 1)
}

func TestTranspose(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, dims := range [][2]int{{1, 1}, {3, 5}, {16, 16}, {17, 40}} {
		m, k := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", m, k), func(t *testing.T) {
			src := randomInts(r, m*k)
			dst := make([]int32, m*k)
			Transpose(src, m, k, dst)
			for i := range m {
				for j := range k {
					if dst[j*m+i] != src[i*k+j] {
						t.Fatalf("dst[%d][%d] = %d, want %d", j, i, dst[j*m+i], src[i*k+j])
					}
				}
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	b.Logf("CPU: %s, block params: %+v", CPUName(), DefaultBlockParams())

	sizes := []int{64, 128, 256}

	for _, size := range sizes {
		a, bm, c := New(size), New(size), New(size)
		FillPattern(a, bm)

		for _, name := range Kernels() {
			kernel, _ := Lookup(name)
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				b.SetBytes(int64(3 * size * size * 4))
				for b.Loop() {
					Mul(kernel, a, bm, c)
				}
			})
		}
	}
}
