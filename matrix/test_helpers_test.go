// Package matrix_test: shared helpers for matrix tests.
// Helpers fail the test immediately on unexpected errors so the numeric
// assertions that follow can stay free of error plumbing.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/quantlab/matrix"
)

// mustDense allocates a rows×cols Dense or fails the test.
func mustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustFromRows builds a Dense from a rectangular table or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// mustSet writes (i,j) or fails the test.
func mustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// hide wraps a Matrix so kernels cannot see the concrete *Dense type,
// forcing the interface fallback paths.
type hide struct{ matrix.Matrix }
