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

// Package bench runs the fixed-size matrix multiplication benchmark and
// reports its elapsed time and checksum.
//
// The report is exactly three lines:
//
//	Matrix multiplication completed
//	Time: 0.012345 seconds
//	Result checksum: 1365376
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/archlab/matmulbench/matmul"
)

// N is the matrix dimension of the benchmark.
const N = 256

// Result is the outcome of one timed multiplication.
type Result struct {
	Elapsed  time.Duration
	Checksum int32
}

// Benchmark owns the input matrices A and B and the product C.
type Benchmark struct {
	A, B, C *matmul.Matrix

	kernel matmul.Kernel
	now    func() time.Time
}

// New allocates three n×n matrices and fills A and B with the benchmark
// pattern. The product is timed with matmul.MatMul.
func New(n int) *Benchmark {
	return NewWithKernel(n, matmul.MatMul)
}

// NewWithKernel is New with an explicit multiplication kernel.
func NewWithKernel(n int, kernel matmul.Kernel) *Benchmark {
	b := &Benchmark{
		A:      matmul.New(n),
		B:      matmul.New(n),
		C:      matmul.New(n),
		kernel: kernel,
		now:    time.Now,
	}
	matmul.FillPattern(b.A, b.B)
	return b
}

// Run multiplies A by B into C and returns the elapsed time and checksum.
// The clock is sampled immediately around the kernel call; time.Time
// carries a monotonic reading, so wall clock adjustments do not affect
// the result.
func (b *Benchmark) Run() Result {
	start := b.now()
	matmul.Mul(b.kernel, b.A, b.B, b.C)
	end := b.now()

	return Result{
		Elapsed:  max(end.Sub(start), 0),
		Checksum: Checksum(b.C),
	}
}

// Checksum returns the center element C[n/2][n/2].
func Checksum(c *matmul.Matrix) int32 {
	mid := c.N() / 2
	return c.At(mid, mid)
}

// Report writes the three result lines to w.
func (r Result) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Matrix multiplication completed\nTime: %f seconds\nResult checksum: %d\n",
		r.Elapsed.Seconds(), r.Checksum)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Main runs the N×N benchmark once and writes the report to w.
func Main(w io.Writer) error {
	return New(N).Run().Report(w)
}
