// Package render produces one-line display strings for scalars and
// nested-array values.
//
// Three entry points, by strictness:
//
//   - Format     — any single value: numbers via numfmt, strings quoted,
//     nil as an empty segment, sequences delegated to FormatArray.
//   - FormatArray — any nesting depth, UNCHECKED: ragged input renders
//     fine. Meant for diagnostics, e.g. "[[1, 2], [3]]".
//   - FormatArray2D — strictly rank-2 input, validated through shape.Of
//     first; rows joined by "; ", cells by ", ": "[1, 2; 3, 4]".
//
// FormatArray2D is a reporting consumer of the shape package: shape errors
// propagate unchanged (match them with errors.Is against the shape
// sentinels), and a rectangular-but-wrong-rank input fails with ErrBadRank.
package render
