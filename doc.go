// Package colfmt renders columns of raw text cells as aligned,
// fixed-width strings for terminal display.
//
// The package has three layers, consumed leaf-first: a value classifier,
// a significant-figure decimal formatter, and a column formatting engine
// that ties them together. A thin table renderer and CSV reader sit on
// top for callers that want whole tables.
//
// # Classification
//
// [Classify] infers the semantic kind of one cell by evaluating an
// ordered list of pattern predicates ([IsTime], [IsBoolean], [IsInteger],
// [IsDateTime], [IsDate], [IsDouble], [IsMissing]); the first match wins,
// so "11:59:37" is a [Time] even though it would also pass for text.
// [DominantKind] infers a whole column's kind by majority vote, ignoring
// missing values and breaking frequency ties by first appearance:
//
//	kind, err := colfmt.DominantKind([]string{"1.5", "2", "NA", "7.25"})
//	// kind == colfmt.Double
//
// # Numeric formatting
//
// [FormatDecimal] renders a float with a fixed significant-figure budget
// in the style of the R pillar package: integer parts wider than the
// budget keep all their digits and mark a discarded fraction with a bare
// trailing point, fractions below one are rounded to the budget, and
// everything in between is cut to exactly the budget.
//
//	colfmt.FormatDecimal(1234.50, 3) // "1234."
//	colfmt.FormatDecimal(12.345, 3)  // "12.3"
//	colfmt.FormatDecimal(0.12345, 3) // "0.123"
//
// [FormatIfNum] applies the same formatting to raw cell text, leaving
// non-numeric cells untouched, optionally preserving scientific notation
// verbatim, and falling back to scientific notation when the decimal form
// would be too wide.
//
// # Column formatting
//
// [FormatColumn] is the main entry point. It canonicalizes missing cells
// to "NA", formats numeric cells, aligns decimal points vertically,
// computes one Unicode-aware display width for the column (clamped to
// [Config] bounds), and pads or ellipsis-truncates every cell to that
// width plus one separator space. Output order and length always mirror
// the input.
//
// The engine is pure: no I/O, no shared state, and columns format
// independently, so callers may fan out across goroutines freely.
//
// # Tables
//
// [Render] assembles a whole table: transpose records into columns, run
// [FormatColumn] on each, and write header, optional kind-hint row, row
// numbers, and overflow footers, fitting columns to the terminal width.
// [ReadRecords] and [ParseDelimiter] cover delimited-text input, and
// [LoadConfig] reads formatting options from a YAML file.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig] — out-of-range formatting parameters
//   - [ErrEmptyColumn] — [DominantKind] on a column with no non-missing cells
//   - [ErrBadDelimiter] — delimiter flag that is not one character
package colfmt
