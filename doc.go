// Package ndarray is a small toolkit for describing, validating and
// rendering jagged nested-array data — plus the numeric formatting that
// goes with it.
//
// 🚀 What is ndarray?
//
//	A lightweight, pure-Go library that brings together:
//		• Shape inference: derive the size vector of any nested structure
//		• Rectangularity validation: confirm every row, at every depth, conforms
//		• Numeric formatting: fixed vs scientific notation with a sane cutover
//		• Array rendering: one-line display strings for matrices and ragged trees
//
// ✨ Why choose ndarray?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest errors – sentinel errors carrying expected/actual numbers, errors.Is-friendly
//   - Pure Go – no cgo, in-memory values only, no hidden I/O
//   - Deterministic – fixed walk orders, stable output everywhere
//
// Everything is organized under four subpackages:
//
//	shape/  — size vectors, first-branch inference & exhaustive validation
//	numfmt/ — FormatNumber with significant-digit rounding and E-notation fallback
//	render/ — display strings for scalars, rank-2 matrices and ragged arrays
//	util/   — element-wise map/iterate glue and identifier generation
//
// Quick ASCII example:
//
//	    [[1, 2],          size vector [2, 2] — rectangular, renders as
//	     [3, 4]]          "[1, 2; 3, 4]"
//
//	    [[1, 2],          ragged — shape.Of fails with ErrDimensionMismatch
//	     [3]]             (row length 1, want 2)
//
// Dive into the per-package docs and example tests for full usage patterns.
//
//	go get github.com/katalvlaran/ndarray
package ndarray
