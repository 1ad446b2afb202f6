// Package matrix_test contains unit tests for the universal linear-algebra
// kernels.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/quantlab/matrix"
)

func TestAddSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if v := mustAt(t, sum, 1, 1); v != 44 {
		t.Fatalf("Add[1,1] = %v, want 44", v)
	}

	diff, err := matrix.Sub(b, a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if v := mustAt(t, diff, 0, 1); v != 18 {
		t.Fatalf("Sub[0,1] = %v, want 18", v)
	}
}

func TestAddShapeMismatch(t *testing.T) {
	a := mustDense(t, 2, 2)
	b := mustDense(t, 2, 3)
	if _, err := matrix.Add(a, b); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("Add with mismatched shapes must return ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.Add(nil, b); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("Add(nil, b) must return ErrNilMatrix, got %v", err)
	}
}

func TestMul(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	prod, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	want := [][]float64{{58, 64}, {139, 154}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if v := mustAt(t, prod, i, j); v != want[i][j] {
				t.Fatalf("Mul[%d,%d] = %v, want %v", i, j, v, want[i][j])
			}
		}
	}

	if _, err = matrix.Mul(a, a); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("Mul with incompatible inner dims must return ErrDimensionMismatch, got %v", err)
	}
}

func TestTransposeScale(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	if at.Rows() != 3 || at.Cols() != 2 {
		t.Fatalf("Transpose dims = %dx%d, want 3x2", at.Rows(), at.Cols())
	}
	if v := mustAt(t, at, 2, 1); v != 6 {
		t.Fatalf("Transpose[2,1] = %v, want 6", v)
	}

	scaled, err := matrix.Scale(a, 0.5)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if v := mustAt(t, scaled, 1, 2); v != 3 {
		t.Fatalf("Scale[1,2] = %v, want 3", v)
	}
	// operand untouched
	if v := mustAt(t, a, 1, 2); v != 6 {
		t.Fatalf("Scale mutated its operand: a[1,2] = %v, want 6", v)
	}
}

func TestMatVec(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(a, []float64{1, -1})
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	for i, want := range []float64{-1, -1, -1} {
		if y[i] != want {
			t.Fatalf("MatVec[%d] = %v, want %v", i, y[i], want)
		}
	}

	if _, err = matrix.MatVec(a, []float64{1, 2, 3}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("MatVec with wrong vector length must return ErrDimensionMismatch, got %v", err)
	}
	if _, err = matrix.MatVec(a, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("MatVec with nil vector must return ErrNilMatrix, got %v", err)
	}
}

// TestKernels_InterfaceFallback ensures that hiding the concrete type behind
// a wrapper forces the At-based fallback paths and produces the same results
// as the Dense fast paths.
func TestKernels_InterfaceFallback(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})
	wa, wb := hide{a}, hide{b}

	fast, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul fast path: %v", err)
	}
	slow, err := matrix.Mul(wa, wb)
	if err != nil {
		t.Fatalf("Mul fallback path: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if mustAt(t, fast, i, j) != mustAt(t, slow, i, j) {
				t.Fatalf("fast/fallback mismatch at [%d,%d]", i, j)
			}
		}
	}

	sumFast, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add fast path: %v", err)
	}
	sumSlow, err := matrix.Add(wa, wb)
	if err != nil {
		t.Fatalf("Add fallback path: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if mustAt(t, sumFast, i, j) != mustAt(t, sumSlow, i, j) {
				t.Fatalf("Add fast/fallback mismatch at [%d,%d]", i, j)
			}
		}
	}
}
