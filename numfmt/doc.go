// Package numfmt converts numeric values to display strings, choosing
// between plain decimal and scientific notation.
//
// Values with magnitude strictly between 1e-4 and 1e6 (and exact zero) are
// rendered in fixed notation after rounding; anything smaller or larger
// falls back to "<mantissa>E<exponent>" scientific notation. The branch is
// chosen by magnitude alone — sign never affects it.
//
// Rounding convention: SIGNIFICANT digits, half away from zero. The same
// rule applies in both branches (RoundTo rounds the fixed value or the
// mantissa alike), so output is consistent across the cutover.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ndarray/numfmt"
//
//	numfmt.FormatNumber(123.456, 2)    // "120"
//	numfmt.FormatNumber(123456789, 3)  // "1.23E8"
//	numfmt.FormatNumber(0.00005, 3)    // "0.5E-4"
//
// Special values: NaN renders as "NaN", ±Inf as "Infinity"/"-Infinity".
package numfmt
