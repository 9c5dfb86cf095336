package colfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// ValueKind is the inferred semantic type of a cell.
type ValueKind int

const (
	Character ValueKind = iota
	Missing
	Boolean
	Integer
	Double
	Date
	Time
	DateTime
)

var kindNames = map[ValueKind]string{
	Character: "character",
	Missing:   "missing",
	Boolean:   "boolean",
	Integer:   "integer",
	Double:    "double",
	Date:      "date",
	Time:      "time",
	DateTime:  "datetime",
}

// Column-type hints, in the abbreviation style of the R tibble ecosystem.
var kindLabels = map[ValueKind]string{
	Character: "<chr>",
	Missing:   "<na>",
	Boolean:   "<lgl>",
	Integer:   "<int>",
	Double:    "<dbl>",
	Date:      "<tsd>",
	Time:      "<tst>",
	DateTime:  "<tdt>",
}

// String returns the kind name.
func (k ValueKind) String() string { return kindNames[k] }

// Label returns the short column-type hint printed under headers, e.g.
// "<dbl>" for Double.
func (k ValueKind) Label() string { return kindLabels[k] }

// The closed set of missing-value spellings. Matched exactly, no fuzzing.
var missingSpellings = map[string]struct{}{
	"NA": {}, "N/A": {}, "NaN": {}, "NAN": {},
	"null": {}, "Null": {}, "None": {}, "none": {},
	"na": {}, "nan": {}, "missing": {}, "n/a": {},
}

// The closed set of boolean spellings. No whitespace tolerance.
var booleanSpellings = map[string]struct{}{
	"true": {}, "false": {}, "TRUE": {}, "FALSE": {},
	"True": {}, "False": {}, "t": {}, "f": {},
	"T": {}, "F": {}, "1": {}, "0": {},
}

var (
	integerRe    = regexp.MustCompile(`^\s*([+-]?[1-9][0-9]*|0)\s*$`)
	scientificRe = regexp.MustCompile(`^[+-]?[0-9]*\.?[0-9]+[eE][+-]?[0-9]+$`)
	dateRe       = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	timeRe       = regexp.MustCompile(`^(?:[01][0-9]|2[0123]):(?:[012345][0-9]):(?:[012345][0-9])$`)
	dateTimeRe   = regexp.MustCompile(`^(?:[01][0-9]|2[0123]):(?:[012345][0-9]):(?:[012345][0-9])`)
	negativeRe   = regexp.MustCompile(`^\s*-[0-9]*\.?[0-9]*\s*$`)

	// A zero-padded digit run ("007") is character data, not a number.
	zeroPaddedRe = regexp.MustCompile(`^[+-]?0[0-9]+$`)
)

// IsMissing reports whether text is empty or one of the recognized
// missing-value spellings (NA, N/A, NaN, null, None, ...).
func IsMissing(text string) bool {
	if text == "" {
		return true
	}
	_, ok := missingSpellings[text]
	return ok
}

// IsMissingPadded is [IsMissing] with surrounding whitespace tolerated.
// Useful for matching cells that have already been padded to column width.
func IsMissingPadded(text string) bool {
	return IsMissing(strings.TrimSpace(text))
}

// IsBoolean reports whether text is a boolean literal:
// true/false in lower, upper, or title case, t/f, T/F, 1, or 0.
func IsBoolean(text string) bool {
	_, ok := booleanSpellings[text]
	return ok
}

// IsInteger reports whether text is an integer literal with an optional
// sign, optionally surrounded by whitespace. Leading zeros disqualify.
func IsInteger(text string) bool {
	return integerRe.MatchString(text)
}

// IsDouble reports whether the whitespace-trimmed text parses as a
// floating-point literal, decimal or scientific.
func IsDouble(text string) bool {
	trimmed := strings.TrimSpace(text)
	if zeroPaddedRe.MatchString(trimmed) {
		return false
	}
	_, err := parseFloat(trimmed)
	return err == nil
}

// IsNumber reports whether text is an integer or floating-point literal.
func IsNumber(text string) bool {
	return IsInteger(text) || IsDouble(text)
}

// IsNegativeNumber reports whether text is a negative numeric literal.
func IsNegativeNumber(text string) bool {
	return negativeRe.MatchString(text)
}

// IsScientificNotation reports whether text carries an explicit exponent
// marker, e.g. "1.23e-7". This distinguishes "has an exponent" from "is
// merely numeric"; plain decimals return false.
func IsScientificNotation(text string) bool {
	return scientificRe.MatchString(strings.TrimSpace(text))
}

// IsDate reports whether text contains a YYYY-MM-DD date.
func IsDate(text string) bool {
	return dateRe.MatchString(text)
}

// IsTime reports whether text is exactly an HH:MM:SS clock time.
func IsTime(text string) bool {
	return timeRe.MatchString(text)
}

// IsDateTime reports whether text starts with an HH:MM:SS clock time.
// Unlike [IsTime] the match is unanchored at the end, so every Time is
// also a DateTime; [Classify] checks Time first to resolve the overlap.
func IsDateTime(text string) bool {
	return dateTimeRe.MatchString(text)
}

// parseFloat is strconv.ParseFloat restricted to the literal forms the
// classifier's patterns describe. Go additionally accepts underscored and
// hexadecimal mantissas, which are not numeric cells in tabular data.
func parseFloat(text string) (float64, error) {
	if strings.ContainsAny(text, "_xX") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(text, 64)
}

// classifiers is the ordered dispatch table for [Classify]. Order is a
// deliberate tie-break: a cell matching several patterns takes the first.
var classifiers = []struct {
	match func(string) bool
	kind  ValueKind
}{
	{IsTime, Time},
	{IsBoolean, Boolean},
	{IsInteger, Integer},
	{IsDateTime, DateTime},
	{IsDate, Date},
	{IsDouble, Double},
	{IsMissing, Missing},
}

// Classify infers the semantic kind of a single raw cell.
func Classify(text string) ValueKind {
	for _, c := range classifiers {
		if c.match(text) {
			return c.kind
		}
	}
	return Character
}

// DominantKind infers a column's kind by majority vote over its cells,
// ignoring Missing values. Frequency ties go to the kind seen first in
// column order. Returns ErrEmptyColumn when no non-Missing cell exists.
func DominantKind(column []string) (ValueKind, error) {
	counts := make(map[ValueKind]int)
	var order []ValueKind
	for _, cell := range column {
		k := Classify(cell)
		if k == Missing {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	if len(order) == 0 {
		return Character, ErrEmptyColumn
	}
	best := order[0]
	for _, k := range order[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best, nil
}
