// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 storage that backs
// every distance table in qmap, plus an in-place Floyd–Warshall closure.
//
// What & Why:
//
//	Routing asks "how far apart are physical qubits p and q?" millions of
//	times per circuit. The answer is precomputed once into an n×n Dense and
//	read with a single flat-slice index afterwards. Calibrated devices need a
//	weighted all-pairs closure; Floyd–Warshall with a fixed k→i→j loop order
//	gives bit-identical tables across runs, which keeps routing deterministic.
//
// Numeric policy:
//
//	+Inf off the diagonal means "no path"; the diagonal must be 0 before
//	FloydWarshall is called. Set rejects NaN unless the matrix was created
//	with NewDistance (which accepts +Inf as a legal value).
//
// Errors:
//
//	ErrInvalidDimensions – rows or cols ≤ 0.
//	ErrOutOfRange        – At/Set index outside the matrix.
//	ErrNonSquare         – square matrix required.
//	ErrNilMatrix         – nil receiver or argument.
//	ErrNaNInf            – value rejected by the numeric policy.
//
// Complexity quicksheet:
//
//	NewDense O(r·c); At/Set O(1); Clone O(r·c); FloydWarshall O(n³) time, O(1) extra.
package matrix
