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

// Command matrixmul multiplies two 256x256 integer matrices with the
// textbook triple loop and prints the elapsed time and a checksum.
//
// It takes no arguments and reads no environment, so the same binary can
// be run natively or under a simulator and compared run for run.
package main

import (
	"fmt"
	"os"

	"github.com/archlab/matmulbench/bench"
)

func main() {
	if err := bench.Main(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
