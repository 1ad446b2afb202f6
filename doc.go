// Package quantlab is your in-memory playground for the math behind
// quantitative interviews — matrices, descriptive statistics, and a fully
// worked Principal Component Analysis (PCA) walkthrough.
//
// 🚀 What is quantlab?
//
//	A small, focused library that brings together:
//		• Dense matrices: row-major storage, strict fail-fast validation
//		• Linear algebra: Add/Sub/Mul, transpose, scaling, mat-vec
//		• Spectral math: Jacobi eigendecomposition for symmetric matrices
//		• Statistics: column means, centering, sample covariance, correlation
//		• PCA: the four-step textbook recipe as a reusable, testable routine
//		• Rendering: scatter plots with principal axes overlaid (PNG)
//
// ✨ Why choose quantlab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted eigenpairs, fixed sign convention, stable output
//   - Honest numerics – every property the recipe promises is unit-tested
//     and cross-checked against gonum
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/  — Dense matrices, kernels, eigensolver & statistical transforms
//	pca/     — mean-center → covariance → eigendecompose → project
//	dataset/ — the canonical 10×2 walkthrough table + YAML dataset loader
//	render/  — the scatter-with-principal-axes plot
//	cmd/     — the quantlab CLI: run the whole walkthrough from a terminal
//
// Quick sketch of the worked example:
//
//	  y │        ·  ·
//	    │     ·  ·   ↗ PC1
//	    │   ·  ·  ·
//	    │  · ·   ↘ PC2
//	    └──────────────── x
//
//	ten observations of two features, centered, with the two principal
//	axes drawn from the origin and scaled by √eigenvalue.
//
// Dive into pca/example_test.go for the end-to-end walkthrough and
// examples/pca_tutorial.go for a runnable program.
//
//	go get github.com/katalvlaran/quantlab
package quantlab
