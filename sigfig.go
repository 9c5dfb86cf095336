package colfmt

// Significant-figure decimal formatting. The decision tree follows the
// sigfig.R conventions of the GNU R pillar package: numbers in one column
// are formatted so their magnitudes are easy to compare at a glance.
//
//	12345.0  -> "12345"
//	 1234.50 -> "1234."
//	  123.45 -> "123."
//	   12.345 -> "12.3"
//	    1.2345 -> "1.23"
//	    0.12345 -> "0.123"

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decimalSplit is per-value scratch state for one formatting call: the
// sign, the integer magnitude, and the fractional remainder in [0,1).
type decimalSplit struct {
	val    float64
	sigfig int
	neg    bool
	lhs    float64
	rhs    float64
}

func splitDecimal(val float64, sigfig int) decimalSplit {
	abs := math.Abs(val)
	lhs := math.Trunc(abs)
	return decimalSplit{
		val:    val,
		sigfig: sigfig,
		neg:    val < 0,
		lhs:    lhs,
		rhs:    abs - lhs,
	}
}

// FormatDecimal renders val with the requested number of significant
// figures. sigfig must be in [3, 7]; anything else is ErrInvalidConfig.
func FormatDecimal(val float64, sigfig int) (string, error) {
	if sigfig < minSigFigs || sigfig > maxSigFigs {
		return "", fmt.Errorf("%w: sigfig %d out of range [%d, %d]", ErrInvalidConfig, sigfig, minSigFigs, maxSigFigs)
	}
	return formatDecimal(val, sigfig), nil
}

func formatDecimal(val float64, sigfig int) string {
	s := splitDecimal(val, sigfig)
	switch {
	case s.lhs == 0 && s.rhs == 0:
		return "0"
	case s.lhs == 0:
		return s.formatFraction()
	case math.Log10(s.lhs)+1 >= float64(sigfig):
		return s.formatWideInteger()
	case s.rhs == 0:
		return s.formatExactInteger()
	default:
		return s.formatStraddling()
	}
}

// formatFraction handles magnitudes below one: round to the nearest
// multiple of 10^(floor(log10|x|)+1-sigfig) and print the result.
func (s decimalSplit) formatFraction() string {
	abs := math.Abs(s.val)
	n := math.Floor(math.Log10(abs)) + 1 - float64(s.sigfig)
	scale := math.Pow(10, n)
	r := scale * math.Round(s.val/scale)
	out := strconv.FormatFloat(r, 'f', -1, 64)
	if len(out) > 13 {
		// Shortest-representation artifact: the scaling above can land on
		// a float whose shortest form is a long tail, e.g. 0.0001 becomes
		// "0.00009999999999999999". Reformat with fixed fractional digits.
		exp := int(math.Abs(math.Floor(math.Log10(abs))))
		digits := s.sigfig
		if exp >= s.sigfig {
			digits = exp
		}
		out = strconv.FormatFloat(r, 'f', digits, 64)
	}
	return out
}

// formatWideInteger handles values whose integer part alone meets or
// exceeds the sigfig budget: no fractional digits are shown, but a bare
// decimal point marks a nonzero discarded fraction (123.45 -> "123.").
func (s decimalSplit) formatWideInteger() string {
	var b strings.Builder
	if s.neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatFloat(s.lhs, 'f', -1, 64))
	if s.rhs > 0 {
		b.WriteByte('.')
	}
	return b.String()
}

// formatExactInteger handles whole values smaller than the sigfig budget:
// the integer digits with no point (100.0 -> "100").
func (s decimalSplit) formatExactInteger() string {
	if s.neg {
		return "-" + strconv.FormatFloat(s.lhs, 'f', -1, 64)
	}
	return strconv.FormatFloat(s.lhs, 'f', -1, 64)
}

// formatStraddling handles the normal case: digits on both sides of the
// point together exceed the sigfig budget. Take integer digits, the
// point, and enough fractional digits to reach sigfig total from the
// shortest round-trip representation, spending one extra character on a
// leading minus sign.
func (s decimalSplit) formatStraddling() string {
	full := strconv.FormatFloat(s.val, 'f', -1, 64)
	point := strings.IndexByte(full, '.')
	if point < 0 {
		return full
	}
	lhsDigits := point
	if s.neg {
		lhsDigits--
	}
	take := point + 1 + (s.sigfig - lhsDigits)
	if take >= len(full) {
		return full
	}
	return full[:take]
}

// formatScientific renders val in the exponent style of the reference
// output: mantissa, lowercase e, and a bare exponent with no plus sign or
// zero padding ("1.23e-7", "1.23e14").
func formatScientific(val float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	out := strconv.FormatFloat(val, 'e', precision, 64)
	i := strings.IndexByte(out, 'e')
	mant, exp := out[:i], out[i+1:]
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "+0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "e" + exp
}
