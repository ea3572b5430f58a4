// Package render: sentinel error set.

package render

import "errors"

// ErrBadRank is returned by FormatArray2D when the (already rectangular)
// input has any rank other than 2. Wrapped messages carry the actual rank.
var ErrBadRank = errors.New("render: array is not two-dimensional")
