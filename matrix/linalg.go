// SPDX-License-Identifier: MIT
// Package matrix: universal linear-algebra kernels over any Matrix
// implementation — element-wise addition and subtraction, matrix
// multiplication, transpose, scalar scaling, and matrix-vector products.
// All kernels perform strict fail-fast validation, never mutate their
// operands, and return clear sentinel-backed errors on dimension mismatches.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opMatVec        = "MatVec"
	opEigen         = "Eigen"
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match the sentinel with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub sharing validation, allocation,
// and the flat fast path.
// Complexity: O(r*c).
func addSub(a, b Matrix, sign float64, tag string) (Matrix, error) {
	// Stage 1 (Validate): both present, same shape.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 2 (Execute): fast path when both operands are *Dense — a single
	// flat loop over the backing slices. Fallback walks At in fixed i→j order.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range out.data {
			out.data[k] = da.data[k] + sign*db.data[k]
		}

		return out, nil
	}

	var va, vb float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*c+j] = va + sign*vb
		}
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b (a is r×k, b is k×c, result r×c).
// The inner loop runs in i→p→j order over flat slices on the Dense fast path
// for cache-friendly access.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*k*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1 (Validate): presence and inner-dimension agreement.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	r, k, c := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		// Stage 2 (Execute fast path): accumulate row i of the result from
		// scaled rows of b; flat offsets avoid per-element bounds checks.
		for i := 0; i < r; i++ {
			outBase := i * c
			aBase := i * k
			for p := 0; p < k; p++ {
				av := da.data[aBase+p]
				if av == 0 {
					continue
				}
				bBase := p * c
				for j := 0; j < c; j++ {
					out.data[outBase+j] += av * db.data[bBase+j]
				}
			}
		}

		return out, nil
	}

	// Stage 2 (Execute fallback): interface path via At with fixed order.
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				if av, err = a.At(i, p); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(p, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			out.data[i*c+j] = sum
		}
	}

	return out, nil
}

// Transpose returns mᵀ (r×c input, c×r output).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[j*r+i] = d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*r+i] = v
		}
	}

	return out, nil
}

// Scale returns alpha·m as a fresh Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for k := range out.data {
			out.data[k] = alpha * d.data[k]
		}

		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			out.data[i*c+j] = alpha * v
		}
	}

	return out, nil
}

// MatVec returns the matrix-vector product m·x (m is r×c, x has length c).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	out := make([]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			sum := 0.0
			for j := 0; j < c; j++ {
				sum += d.data[base+j] * x[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}
