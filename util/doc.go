// Package util carries the small glue helpers around the core packages:
// element-wise mapping and iteration over sequences and string-keyed
// objects, and random identifier generation.
//
// Object iteration is deterministic: keys are visited in sorted order, so
// output built from a map is stable across runs.
package util
