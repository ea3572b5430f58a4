package util

import (
	"sort"

	"github.com/google/uuid"
)

// Map applies fn to every element of xs and returns the results in order.
// A nil input yields nil. Complexity: O(len(xs)).
func Map[T, U any](xs []T, fn func(T) U) []U {
	if xs == nil {
		return nil
	}
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// ForEach calls fn(index, element) for every element of xs in order.
// Complexity: O(len(xs)).
func ForEach[T any](xs []T, fn func(int, T)) {
	for i, x := range xs {
		fn(i, x)
	}
}

// MapObject applies fn to every value of m, preserving keys. A nil input
// yields nil. Complexity: O(len(m)).
func MapObject[V, U any](m map[string]V, fn func(V) U) map[string]U {
	if m == nil {
		return nil
	}
	out := make(map[string]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// ForEachObject calls fn(key, value) for every entry of m in sorted key
// order, so iteration is deterministic. Complexity: O(n log n).
func ForEachObject[V any](m map[string]V, fn func(string, V)) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m[k])
	}
}

// UUID returns a random RFC 4122 version-4 identifier, e.g.
// "3d6f0a8c-6f4e-4b8e-9d2a-1c7e5b3f9a10".
func UUID() string {
	return uuid.NewString()
}
