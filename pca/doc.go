// Package pca implements Principal Component Analysis (PCA) as the textbook
// four-step recipe: mean-center, covariance, eigendecomposition, projection.
//
// 🚀 What is PCA?
//
//	PCA re-expresses a data table in a new orthonormal basis whose axes
//	(the principal components) point along the directions of maximal
//	variance, ordered by how much variance each explains.  It's the
//	standard first tool for:
//	  • Dimensionality reduction & visualization
//	  • De-correlating features before modeling
//	  • Factor analysis of returns in quantitative finance
//	  • Noise filtering (drop the low-variance tail)
//
// ✨ Key features:
//   - Fit returns EVERY derived artifact of the recipe: column means, the
//     centered table, the sample covariance matrix, the ordered eigenpairs,
//     and the projected scores.
//   - Deterministic output: eigenvalues sorted descending, eigenvector signs
//     fixed, so the same input always prints the same walkthrough.
//   - Project maps new observations into the fitted basis; Reconstruct
//     inverts the projection (exactly, when all components are kept).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quantlab/pca"
//
//	X, _ := matrix.NewDenseFromRows(rows) // observations × features
//	res, err := pca.Fit(X, pca.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Eigenvalues)          // λ₁ ≥ λ₂ ≥ …
//	fmt.Println(res.ExplainedVariance())  // λᵢ / Σλ
//	scores := res.Scores                  // centered data in the PC basis
//
// Recipe (what Fit actually does):
//  1. means ← per-column mean of X; Xc ← X − means  (centering)
//  2. Σ ← Xcᵀ·Xc / (r−1)                            (sample covariance)
//  3. (λ, V) ← Eigen(Σ), λ sorted descending        (eigendecomposition)
//  4. Scores ← Xc·V[:, :k]                          (projection)
//
// Complexity: O(r·c²) for covariance + O(c³) for the eigensolve — both tiny
// for the feature counts this package targets.
//
// See example_test.go for the fully worked 10×2 walkthrough.
package pca
