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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernels(t *testing.T) {
	assert.Equal(t, []string{"blocked", "ikj", "naive", "transposed"}, Kernels())

	for _, name := range Kernels() {
		k, ok := Lookup(name)
		require.True(t, ok, name)
		require.NotNil(t, k, name)
	}

	_, ok := Lookup("strassen")
	assert.False(t, ok)
}

func TestRegisteredKernelsMatchReference(t *testing.T) {
	const n = 48
	a, b := New(n), New(n)
	FillPattern(a, b)

	want := New(n)
	Mul(MatMul, a, b, want)

	for _, name := range Kernels() {
		t.Run(name, func(t *testing.T) {
			k, _ := Lookup(name)
			got := New(n)
			Mul(k, a, b, got)
			assert.True(t, want.Equal(got))
		})
	}
}

func TestGenericEnv(t *testing.T) {
	testCases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true}, // unparsable but non-empty
	}
	for _, tc := range testCases {
		t.Run(tc.val, func(t *testing.T) {
			t.Setenv("MATMULBENCH_GENERIC", tc.val)
			assert.Equal(t, tc.want, GenericEnv())
		})
	}
}

func TestDefaultBlockParams(t *testing.T) {
	t.Logf("CPU: %s", CPUName())

	params := DefaultBlockParams()
	assert.Positive(t, params.Mc)
	assert.Positive(t, params.Nc)
	assert.Positive(t, params.Kc)

	name, detected := detectCPU()
	assert.Contains(t, []string{"avx512", "avx2", "neon", "generic"}, name)
	if !GenericEnv() {
		assert.Equal(t, name, CPUName())
		assert.Equal(t, detected, params)
	} else {
		assert.Equal(t, BlockParamsGeneric(), params)
	}
}
