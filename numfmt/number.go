// SPDX-License-Identifier: MIT
package numfmt

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of significant digits used when a caller
// passes digits <= 0.
const DefaultPrecision = 5

// Fixed-notation window: magnitudes strictly inside (fixedLower, fixedUpper)
// render as plain decimals; everything else (except exact zero) goes
// scientific. The bounds themselves are scientific.
const (
	fixedLower = 1e-4
	fixedUpper = 1e6
)

// Display strings for non-finite values.
const (
	nanText    = "NaN"
	posInfText = "Infinity"
	negInfText = "-Infinity"
)

// RoundTo rounds v to digits significant digits, half away from zero.
// digits <= 0 selects DefaultPrecision. Zero, NaN and ±Inf pass through
// unchanged.
//
// The scale factor is applied as an exact multiply-or-divide by a power of
// ten so that shortest-form rendering of the result stays clean (no
// 119.99999999999999 artifacts).
//
// Complexity: O(1).
func RoundTo(v float64, digits int) float64 {
	if digits <= 0 {
		digits = DefaultPrecision
	}
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	// Position of the leading significant digit, e.g. 3 for 123.456.
	exp := int(math.Ceil(math.Log10(math.Abs(v))))
	shift := digits - exp
	if shift >= 0 {
		p := math.Pow(10, float64(shift))
		return math.Round(v*p) / p
	}
	p := math.Pow(10, float64(-shift))

	return math.Round(v/p) * p
}

// FormatNumber renders v with the given number of significant digits
// (digits <= 0 selects DefaultPrecision).
//
// Behavior:
//   - NaN → "NaN"; +Inf → "Infinity"; -Inf → "-Infinity".
//   - |v| == 0 or 1e-4 < |v| < 1e6 → fixed decimal of RoundTo(v, digits).
//   - otherwise → "<mantissa>E<exp>" with exp = round(log10(|v|)) and the
//     mantissa v/10^exp rounded to digits; the exponent is unpadded and may
//     be negative ("0.5E-4").
//
// The branch depends on |v| only, so sign never changes notation.
// Complexity: O(1).
func FormatNumber(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return nanText
	case math.IsInf(v, 1):
		return posInfText
	case math.IsInf(v, -1):
		return negInfText
	}

	abs := math.Abs(v)
	if abs == 0 || (abs > fixedLower && abs < fixedUpper) {
		return strconv.FormatFloat(RoundTo(v, digits), 'f', -1, 64)
	}

	// Scientific fallback for very small or very large magnitudes.
	exp := int(math.Round(math.Log10(abs)))
	mantissa := RoundTo(v/math.Pow(10, float64(exp)), digits)

	return strconv.FormatFloat(mantissa, 'f', -1, 64) + "E" + strconv.Itoa(exp)
}
