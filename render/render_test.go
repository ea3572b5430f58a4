package render_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndarray/render"
	"github.com/katalvlaran/ndarray/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// label is a fmt.Stringer fixture for Format.
type label string

func (l label) String() string { return "label:" + string(l) }

// TestFormat_Scalars covers the per-kind scalar rendering.
func TestFormat_Scalars(t *testing.T) {
	assert.Equal(t, "7", render.Format(7))
	assert.Equal(t, "3.1416", render.Format(3.14159), "default precision is 5 significant digits")
	assert.Equal(t, "1E7", render.Format(10000000), "large numbers go scientific even as scalars")
	assert.Equal(t, `"hi"`, render.Format("hi"))
	assert.Equal(t, "true", render.Format(true))
	assert.Equal(t, "", render.Format(nil), "nil is the missing-cell sentinel")
	assert.Equal(t, "NaN", render.Format(math.NaN()))
	assert.Equal(t, "label:x", render.Format(label("x")))
	assert.Equal(t, "255", render.Format(uint8(255)))
}

// TestFormat_DelegatesSequences confirms Format hands sequences to
// FormatArray.
func TestFormat_DelegatesSequences(t *testing.T) {
	assert.Equal(t, "[1, 2]", render.Format([]int{1, 2}))
}

// TestFormatArray_Rectangular pins the n-dimensional rendering.
func TestFormatArray_Rectangular(t *testing.T) {
	assert.Equal(t, "[[1, 2], [3, 4]]", render.FormatArray([][]int{{1, 2}, {3, 4}}))
	assert.Equal(t, "[]", render.FormatArray([]any{}))
	assert.Equal(t, "[[[1]]]", render.FormatArray([][][]int{{{1}}}))
}

// TestFormatArray_RaggedAccepted verifies the lenient contract: no shape
// check is performed.
func TestFormatArray_RaggedAccepted(t *testing.T) {
	v := []any{[]any{1, 2}, []any{3}}
	assert.Equal(t, "[[1, 2], [3]]", render.FormatArray(v))

	mixed := []any{1, []any{2, 3}, "x"}
	assert.Equal(t, `[1, [2, 3], "x"]`, render.FormatArray(mixed))
}

// TestFormatArray_Scalar confirms scalars fall through to Format.
func TestFormatArray_Scalar(t *testing.T) {
	assert.Equal(t, "7", render.FormatArray(7))
}

// TestFormatArray2D_Rectangular pins the row/cell separators.
func TestFormatArray2D_Rectangular(t *testing.T) {
	out, err := render.FormatArray2D([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2; 3, 4]", out)
}

// TestFormatArray2D_MissingCell verifies a nil cell renders as an empty
// segment instead of failing.
func TestFormatArray2D_MissingCell(t *testing.T) {
	out, err := render.FormatArray2D([][]any{{1, nil}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, ; 3, 4]", out)
}

// TestFormatArray2D_WrongRank verifies rank-1 and rank-3 rectangular input
// fail with ErrBadRank.
func TestFormatArray2D_WrongRank(t *testing.T) {
	_, err := render.FormatArray2D([]int{1, 2})
	assert.ErrorIs(t, err, render.ErrBadRank, "rank 1 must fail")

	_, err = render.FormatArray2D([][][]int{{{1}}})
	assert.ErrorIs(t, err, render.ErrBadRank, "rank 3 must fail")
}

// TestFormatArray2D_RaggedPropagates verifies shape sentinels pass through
// unchanged.
func TestFormatArray2D_RaggedPropagates(t *testing.T) {
	_, err := render.FormatArray2D([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, shape.ErrDimensionMismatch)
	assert.NotErrorIs(t, err, render.ErrBadRank, "a shape failure is not a rank failure")
}
