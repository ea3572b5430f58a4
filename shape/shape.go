// SPDX-License-Identifier: MIT
package shape

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Vector is the size vector of a nested structure: Vector[d] is the required
// length of every sequence at nesting depth d. A nil or empty Vector denotes
// a scalar.
type Vector []int

// String renders the vector as "[2, 2]". Used verbatim in diagnostics.
// Complexity: O(len(v)).
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Rank returns the number of dimensions; 0 means scalar.
func (v Vector) Rank() int { return len(v) }

// sequence classifies a value exactly once per recursive call: slices and
// arrays are sequences, everything else (strings included) is a scalar.
func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// IsSequence reports whether v is an ordered sequence (slice or array).
// Strings count as scalars: they are terminal display values here, not
// sequences of runes. Complexity: O(1).
func IsSequence(v any) bool {
	_, ok := sequence(v)
	return ok
}

// Infer computes the size vector of v from its FIRST branch only: a scalar
// yields nil, an empty sequence yields [0], and otherwise the result is
// [len(v)] followed by Infer(v[0]). Sibling elements are never consulted —
// the result is an unchecked hint until Validate confirms it.
//
// Errors: ErrCyclicStructure if the first branch references itself.
// Complexity: O(depth) time and space.
func Infer(v any) (Vector, error) {
	return infer(v, make(map[uintptr]struct{}))
}

func infer(v any, path map[uintptr]struct{}) (Vector, error) {
	seq, ok := sequence(v)
	if !ok {
		return nil, nil
	}
	// Only slices can be self-referential; arrays are plain values.
	if seq.Kind() == reflect.Slice && !seq.IsNil() {
		ptr := seq.Pointer()
		if _, onPath := path[ptr]; onPath {
			return nil, fmt.Errorf("Infer: self-referential sequence: %w", ErrCyclicStructure)
		}
		path[ptr] = struct{}{}
		defer delete(path, ptr)
	}
	n := seq.Len()
	if n == 0 {
		return Vector{0}, nil
	}
	rest, err := infer(seq.Index(0).Interface(), path)
	if err != nil {
		return nil, err
	}
	return append(Vector{n}, rest...), nil
}

// Validate verifies that the WHOLE structure of v conforms to the size
// vector s: every sequence at depth d has exactly s[d] elements, every
// element at depth len(s) is a scalar, and every position above that holds
// a sequence. The walk is eager and depth-first in ascending index order;
// the first violation found in that order is returned.
//
// Errors:
//   - ErrDimensionMismatch — wrong length, or a sequence nested deeper than
//     the declared rank (including a sequence where s is empty).
//   - ErrExpectedSequence — a scalar where s demands another dimension
//     (wraps ErrDimensionMismatch).
//   - ErrCyclicStructure — a self-referential slice on the walk.
//
// Complexity: O(total elements) time, O(depth) space.
func Validate(v any, s Vector) error {
	return validate(v, s, 0, make(map[uintptr]struct{}))
}

func validate(v any, s Vector, depth int, path map[uintptr]struct{}) error {
	seq, ok := sequence(v)
	if depth == len(s) {
		// Scalar expected from here on; any sequence is over-nesting.
		if ok {
			return fmt.Errorf("Validate: depth %d: sequence nested deeper than rank %d: %w", depth, len(s), ErrDimensionMismatch)
		}
		return nil
	}
	if !ok {
		return fmt.Errorf("Validate: depth %d: scalar where a sequence of length %d is required: %w", depth, s[depth], ErrExpectedSequence)
	}
	if seq.Kind() == reflect.Slice && !seq.IsNil() {
		ptr := seq.Pointer()
		if _, onPath := path[ptr]; onPath {
			return fmt.Errorf("Validate: depth %d: self-referential sequence: %w", depth, ErrCyclicStructure)
		}
		path[ptr] = struct{}{}
		defer delete(path, ptr)
	}
	n := seq.Len()
	if n != s[depth] {
		return fmt.Errorf("Validate: depth %d: length %d, want %d: %w", depth, n, s[depth], ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ { // fixed index order keeps failures deterministic
		if err := validate(seq.Index(i).Interface(), s, depth+1, path); err != nil {
			return err
		}
	}

	return nil
}

// Of infers the size vector of v and validates the whole structure against
// it, returning the confirmed vector. This is the entry point callers should
// use; Infer alone is an unchecked hint. On mismatch the error text includes
// the inferred vector for diagnostics.
//
// Errors: ErrDimensionMismatch, ErrExpectedSequence, ErrCyclicStructure.
// Complexity: O(total elements).
func Of(v any) (Vector, error) {
	s, err := Infer(v)
	if err != nil {
		return nil, err
	}
	if err = Validate(v, s); err != nil {
		return nil, fmt.Errorf("Of: inferred %s: %w", s, err)
	}

	return s, nil
}
