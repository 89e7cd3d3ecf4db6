// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and gonum-backed oracles.
//   • Keep all data finite and well-conditioned so exact/approx checks are stable.

package tensor_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"gonum.org/v1/gonum/mat"
)

// tol is the absolute/relative tolerance for floating-point comparisons.
const tol = 1e-9

// seq returns 0, 1, ..., n-1 as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// mustNew builds a tensor or fails the test.
func mustNew(t *testing.T, w, h int, elements []float64) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(w, h, elements)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}

	return x
}

// mustMatrix builds an n×n matrix or fails the test.
func mustMatrix(t *testing.T, n int, elements []float64) tensor.Matrix {
	t.Helper()
	m, err := tensor.NewMatrixDim(n, elements)
	if err != nil {
		t.Fatalf("NewMatrixDim(%d): %v", n, err)
	}

	return m
}

// elems snapshots every element of g in row-major order.
func elems(g tensor.Grid) []float64 {
	out := make([]float64, g.Size())
	for i := range out {
		out[i] = g.Get(i)
	}

	return out
}

// randomMatrix returns an n×n diagonally dominant (hence invertible) matrix.
func randomMatrix(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n*n)
	for i := range out {
		out[i] = rng.Float64()*10 - 5
	}
	for i := 0; i < n; i++ {
		out[i*n+i] += float64(10 * n)
	}

	return out
}

// toGonum copies g into a gonum Dense (rows = height, cols = width).
func toGonum(g tensor.Grid) *mat.Dense {
	return mat.NewDense(g.Height(), g.Width(), slices.Clone(elems(g)))
}
