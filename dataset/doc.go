// Package dataset supplies the observation tables the quantlab walkthroughs
// run on: the canonical embedded 10×2 point cloud, plus a YAML loader for
// user-supplied tables.
//
// A dataset file is a small YAML document:
//
//	name: heights-vs-weights
//	features: [height, weight]
//	rows:
//	  - [1.71, 64.2]
//	  - [1.82, 77.9]
//	  - [1.65, 58.0]
//
// Validation is fail-fast: a usable table names each feature once, carries
// at least two rows, and every row matches the feature count with finite
// values only. Violations surface as "dataset:"-prefixed sentinels matched
// via errors.Is.
package dataset
