package pca

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quantlab/matrix"
)

// PCA — Principal Component Analysis
//
// Description:
//
//	Fit runs the four-step textbook recipe on an observation table
//	(rows = observations, columns = features):
//
//	 1. Center:      Xc = X − columnMeans(X)
//	 2. Covariance:  Σ  = Xcᵀ·Xc / (r−1)
//	 3. Eigen:       Σ = V·diag(λ)·Vᵀ, λ sorted descending,
//	                 V orthonormal with deterministic signs
//	 4. Project:     Scores = Xc·V[:, :k]
//
// Errors:
//   - ErrNilInput      — X is nil.
//   - ErrNoFeatures    — X has no columns.
//   - ErrTooFewRows    — fewer than two observations (the sample covariance
//     divides by r−1).
//   - ErrBadComponents — Components is negative or exceeds the feature count.
var (
	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("pca: input matrix is nil")

	// ErrNoFeatures indicates an input table with no columns.
	ErrNoFeatures = errors.New("pca: input has no feature columns")

	// ErrTooFewRows indicates fewer than two observations.
	ErrTooFewRows = errors.New("pca: need at least two observations")

	// ErrBadComponents indicates a Components option outside 0..cols.
	ErrBadComponents = errors.New("pca: components out of range")
)

// Fit performs PCA on X and returns the fully populated Result.
//
// X is never mutated. With Options.Components == 0 the full basis is kept,
// in which case Reconstruct recovers X to floating-point tolerance.
//
// Example:
//
//	res, err := pca.Fit(X, pca.DefaultOptions())
func Fit(X *matrix.Dense, opts Options) (*Result, error) {
	// Validate the table and the requested component count up front.
	if X == nil {
		return nil, ErrNilInput
	}
	r, c := X.Rows(), X.Cols()
	if c < 1 {
		return nil, ErrNoFeatures
	}
	if r < 2 {
		return nil, ErrTooFewRows
	}
	k := opts.Components
	if k < 0 || k > c {
		return nil, fmt.Errorf("components=%d with %d features: %w", k, c, ErrBadComponents)
	}
	if k == 0 {
		k = c
	}

	// Step 1: center the table by its per-column means.
	centered, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, fmt.Errorf("pca: center: %w", err)
	}

	// Step 2: sample covariance of the original table (centers internally
	// with the same means; kept separate so Result carries both artifacts).
	cov, _, err := matrix.Covariance(X)
	if err != nil {
		return nil, fmt.Errorf("pca: covariance: %w", err)
	}

	// Step 3: eigendecompose the symmetric covariance; eigenvalues arrive
	// sorted descending with sign-fixed eigenvector columns.
	values, vectors, err := matrix.Eigen(cov, opts.Tol, opts.MaxIter)
	if err != nil {
		return nil, fmt.Errorf("pca: eigen: %w", err)
	}

	// Keep the leading k eigenvector columns as the component basis.
	components, err := leadingColumns(vectors, k)
	if err != nil {
		return nil, fmt.Errorf("pca: components: %w", err)
	}

	// Step 4: project the centered data onto the component basis.
	scoresM, err := matrix.Mul(centered, components)
	if err != nil {
		return nil, fmt.Errorf("pca: project: %w", err)
	}

	return &Result{
		Means:       means,
		Centered:    centered,
		Covariance:  cov,
		Eigenvalues: values,
		Components:  components,
		Scores:      scoresM.(*matrix.Dense),
	}, nil
}

// ExplainedVariance returns, for each RETAINED component, its share of the
// total variance: λᵢ / Σλ. The denominator uses the full spectrum, so the
// shares of a truncated basis sum to less than one.
//
// A degenerate all-zero spectrum (constant table) yields all-zero shares.
func (res *Result) ExplainedVariance() []float64 {
	k := res.Components.Cols()
	out := make([]float64, k)

	total := 0.0
	for _, v := range res.Eigenvalues {
		total += v
	}
	if total <= 0 {
		return out
	}
	for i := 0; i < k; i++ {
		out[i] = res.Eigenvalues[i] / total
	}

	return out
}

// Project expresses new observations in the fitted component basis:
// (X − Means)·Components. X must have the same feature count as the fit.
//
// Errors: ErrNilInput, ErrBadComponents via matrix.ErrDimensionMismatch
// semantics (wrapped matrix sentinels).
func (res *Result) Project(X matrix.Matrix) (*matrix.Dense, error) {
	if X == nil {
		return nil, ErrNilInput
	}
	r, c := X.Rows(), X.Cols()
	if c != len(res.Means) {
		return nil, fmt.Errorf("pca: project: %d features, fitted on %d: %w", c, len(res.Means), matrix.ErrDimensionMismatch)
	}

	centered, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("pca: project: %w", err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, fmt.Errorf("pca: project: %w", err)
			}
			if err = centered.Set(i, j, v-res.Means[j]); err != nil {
				return nil, fmt.Errorf("pca: project: %w", err)
			}
		}
	}

	scores, err := matrix.Mul(centered, res.Components)
	if err != nil {
		return nil, fmt.Errorf("pca: project: %w", err)
	}

	return scores.(*matrix.Dense), nil
}

// Reconstruct maps the scores back to the original feature space and
// un-centers: Scores·Componentsᵀ + Means. With the full basis this recovers
// the fitted table to floating-point tolerance; with a truncated basis it
// returns the best rank-k approximation.
func (res *Result) Reconstruct() (*matrix.Dense, error) {
	compT, err := matrix.Transpose(res.Components)
	if err != nil {
		return nil, fmt.Errorf("pca: reconstruct: %w", err)
	}
	back, err := matrix.Mul(res.Scores, compT)
	if err != nil {
		return nil, fmt.Errorf("pca: reconstruct: %w", err)
	}

	out := back.(*matrix.Dense)
	r, c := out.Rows(), out.Cols()
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = out.At(i, j); err != nil {
				return nil, fmt.Errorf("pca: reconstruct: %w", err)
			}
			if err = out.Set(i, j, v+res.Means[j]); err != nil {
				return nil, fmt.Errorf("pca: reconstruct: %w", err)
			}
		}
	}

	return out, nil
}

// leadingColumns copies the first k columns of src into a fresh Dense.
func leadingColumns(src *matrix.Dense, k int) (*matrix.Dense, error) {
	rows := src.Rows()
	out, err := matrix.NewDense(rows, k)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
