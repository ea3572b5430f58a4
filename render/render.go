// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndarray/numfmt"
	"github.com/katalvlaran/ndarray/shape"
)

// Separators used by the array renderers.
const (
	cellSep = ", "
	rowSep  = "; "
)

// Format renders a single value for display:
//
//   - numbers (all int/uint/float kinds) via numfmt.FormatNumber at
//     numfmt.DefaultPrecision,
//   - strings double-quoted,
//   - bools as "true"/"false",
//   - nil — the missing-cell sentinel — as an empty segment,
//   - sequences delegated to FormatArray,
//   - fmt.Stringer honored, anything else through %v.
//
// Complexity: O(1) for scalars, O(size) for sequences.
func Format(v any) string {
	if shape.IsSequence(v) {
		return FormatArray(v)
	}

	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return `"` + x + `"`
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return numfmt.FormatNumber(x, numfmt.DefaultPrecision)
	case float32:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case int:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case int8:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case int16:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case int32:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case int64:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case uint:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case uint8:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case uint16:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case uint32:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case uint64:
		return numfmt.FormatNumber(float64(x), numfmt.DefaultPrecision)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// FormatArray renders a value of ANY nesting depth without validation:
// sequences become "[a, b, ...]" recursively, scalars go through Format.
// Ragged input is accepted by design — this is the lenient renderer used
// for diagnostic messages. The input must be acyclic.
//
// Complexity: O(total elements).
func FormatArray(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Format(v)
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			sb.WriteString(cellSep)
		}
		sb.WriteString(FormatArray(rv.Index(i).Interface()))
	}
	sb.WriteByte(']')

	return sb.String()
}

// FormatArray2D renders a strictly two-dimensional structure as
// "[r0c0, r0c1; r1c0, r1c1]": rows joined by "; ", cells by ", ". A nil
// cell renders as an empty segment rather than failing.
//
// The input is validated through shape.Of first, so shape sentinels
// (ErrDimensionMismatch and friends) propagate unchanged; rectangular input
// of any other rank fails with ErrBadRank.
//
// Complexity: O(total elements), dominated by validation.
func FormatArray2D(v any) (string, error) {
	s, err := shape.Of(v)
	if err != nil {
		return "", fmt.Errorf("FormatArray2D: %w", err)
	}
	if s.Rank() != 2 {
		return "", fmt.Errorf("FormatArray2D: rank %d, want 2: %w", s.Rank(), ErrBadRank)
	}

	rows := reflect.ValueOf(v)
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rows.Len(); i++ {
		if i > 0 {
			sb.WriteString(rowSep)
		}
		row := reflect.ValueOf(rows.Index(i).Interface()) // unwrap a possible interface element
		for j := 0; j < row.Len(); j++ {
			if j > 0 {
				sb.WriteString(cellSep)
			}
			sb.WriteString(Format(row.Index(j).Interface()))
		}
	}
	sb.WriteByte(']')

	return sb.String(), nil
}
