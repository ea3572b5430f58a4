// Package shape infers and validates the size vector of nested-array data.
//
// 🚀 What is a size vector?
//
//	For a nested structure, Vector[d] is the required length of every
//	sequence at nesting depth d. A scalar has the empty vector. For
//	example, [[1, 2], [3, 4]] has vector [2, 2].
//
// ✨ Key features:
//   - first-branch inference: Infer walks only value[0] at each level — O(depth)
//   - exhaustive validation: Validate walks every element at every depth
//   - Of = Infer + Validate, the one entry point callers should reach for
//   - explicit cycle guard: a self-referential slice is a fatal input error,
//     never an endless walk
//
// The inference/validation split is deliberate: Infer alone is an unchecked
// hint (a ragged structure whose first branch is unrepresentative yields an
// under-specified vector), so Of always verifies the whole structure against
// the inferred vector and reports the inferred vector in its error text.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ndarray/shape"
//
//	s, err := shape.Of([][]int{{1, 2}, {3, 4}})
//	// s = [2, 2], err = nil
//
//	_, err = shape.Of([][]int{{1, 2}, {3}})
//	// errors.Is(err, shape.ErrDimensionMismatch) == true
//
// Complexity:
//
//   - Infer:    O(depth) time, O(depth) space.
//   - Validate: O(total elements) time, O(depth) space.
//
// See example_test.go for runnable walkthroughs.
package shape
