package colfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrEmptyColumn   = errors.New("column has no non-missing values")
	ErrBadDelimiter  = errors.New("bad delimiter")
)

const (
	minSigFigs = 3
	maxSigFigs = 7

	// naString is the canonical display form for missing cells.
	naString = "NA"

	// ellipsis marks truncated cells.
	ellipsis = "…"
)

// Config carries the formatting parameters for one column. The YAML tags
// match the keys of the tv configuration file, so a config file can be
// decoded straight into it (see [LoadConfig]).
type Config struct {
	// MinWidth and MaxWidth bound the displayed column width. Content
	// wider than MaxWidth is truncated, never the other way around.
	MinWidth int `yaml:"min_col_width"`
	MaxWidth int `yaml:"max_col_width"`
	// SigFigs is the significant-figure budget for numeric cells, 3 to 7.
	SigFigs int `yaml:"sigfig"`
	// PreserveScientific keeps cells already written in scientific
	// notation verbatim instead of expanding them.
	PreserveScientific bool `yaml:"preserve_scientific"`
	// MaxDecimalWidth is the widest decimal rendering allowed before a
	// value falls back to scientific notation.
	MaxDecimalWidth int `yaml:"max_decimal_width"`
}

// DefaultConfig returns the reference defaults: width bounds 2 and 20,
// 3 significant figures, and a 13-character decimal limit.
func DefaultConfig() Config {
	return Config{
		MinWidth:        2,
		MaxWidth:        20,
		SigFigs:         3,
		MaxDecimalWidth: 13,
	}
}

// Validate rejects out-of-range parameters before any formatting starts.
func (c Config) Validate() error {
	if c.SigFigs < minSigFigs || c.SigFigs > maxSigFigs {
		return fmt.Errorf("%w: sigfig %d out of range [%d, %d]", ErrInvalidConfig, c.SigFigs, minSigFigs, maxSigFigs)
	}
	if c.MinWidth < 2 {
		return fmt.Errorf("%w: min width %d below minimum 2", ErrInvalidConfig, c.MinWidth)
	}
	if c.MaxWidth <= c.MinWidth {
		return fmt.Errorf("%w: max width %d must exceed min width %d", ErrInvalidConfig, c.MaxWidth, c.MinWidth)
	}
	return nil
}

// FormatIfNA canonicalizes missing cells to "NA" and passes everything
// else through unchanged. Idempotent.
func FormatIfNA(text string) string {
	if IsMissing(text) {
		return naString
	}
	return text
}

// FormatIfNum formats numeric cells to the significant-figure budget and
// passes non-numeric cells through unchanged. When preserveScientific is
// set, cells already in scientific notation are kept verbatim. A decimal
// rendering wider than maxDecimalWidth falls back to scientific notation
// when the magnitude is below 1e-4 or at least 10^sigfig. Text that looks
// numeric but does not parse is passed through rather than failing.
func FormatIfNum(text string, sigfig int, preserveScientific bool, maxDecimalWidth int) (string, error) {
	if sigfig < minSigFigs || sigfig > maxSigFigs {
		return "", fmt.Errorf("%w: sigfig %d out of range [%d, %d]", ErrInvalidConfig, sigfig, minSigFigs, maxSigFigs)
	}
	return formatIfNum(text, sigfig, preserveScientific, maxDecimalWidth), nil
}

func formatIfNum(text string, sigfig int, preserveScientific bool, maxDecimalWidth int) string {
	if preserveScientific && IsScientificNotation(text) {
		return text
	}
	if !IsDouble(text) {
		return text
	}
	val, err := parseFloat(text)
	if err != nil {
		return text
	}
	out := formatDecimal(val, sigfig)
	if len(out) > maxDecimalWidth {
		abs := val
		if abs < 0 {
			abs = -abs
		}
		if abs < 1e-4 || abs >= pow10(sigfig) {
			return formatScientific(val, sigfig-1)
		}
	}
	return out
}

func pow10(n int) float64 {
	r := 1.0
	for range n {
		r *= 10
	}
	return r
}

// measuredCell is per-cell scratch for one FormatColumn call.
type measuredCell struct {
	text  string
	whole int // digits left of the point, if the cell is a double
	fract int // digits right of the point, if the cell is a double
	width int // display width after alignment padding
}

// FormatColumn formats a whole column of raw cells into fixed-width
// strings ready to print. Missing cells become "NA", numeric cells are
// formatted to the significant-figure budget and decimal-aligned down the
// column, and every result is padded or ellipsis-truncated to one final
// width (clamped to the configured bounds) plus a single trailing
// separator space. The result has the same length and order as the input.
func FormatColumn(column []string, cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cells := make([]measuredCell, len(column))
	maxWhole, maxFract := 0, 0
	for i, raw := range column {
		text := formatIfNum(FormatIfNA(raw), cfg.SigFigs, cfg.PreserveScientific, cfg.MaxDecimalWidth)
		c := measuredCell{text: text}
		if IsDouble(text) {
			whole, fractPart, hasPoint := strings.Cut(text, ".")
			c.whole = len(whole)
			if hasPoint {
				c.fract = len(fractPart)
			}
		}
		if c.whole > maxWhole {
			maxWhole = c.whole
		}
		if c.fract > maxFract {
			maxFract = c.fract
		}
		cells[i] = c
	}

	// Decimal alignment: pad doubles so the points line up vertically.
	// NA cells in a numeric column line up under the integer part, as if
	// two characters wide.
	maxWidth := 0
	for i := range cells {
		c := &cells[i]
		switch {
		case maxFract > 0 && IsDouble(c.text):
			if c.whole < maxWhole {
				c.text = strings.Repeat(" ", maxWhole-c.whole) + c.text
			}
			c.text += strings.Repeat(" ", maxFract-c.fract)
		case maxFract > 0 && IsMissing(c.text):
			if maxWhole > 2 {
				c.text = strings.Repeat(" ", maxWhole-2) + c.text
			}
			c.text += strings.Repeat(" ", maxFract-c.fract)
		}
		c.width = runewidth.StringWidth(c.text)
		if c.width > maxWidth {
			maxWidth = c.width
		}
	}

	finalWidth := clamp(maxWidth, cfg.MinWidth, cfg.MaxWidth)

	out := make([]string, len(cells))
	for i, c := range cells {
		if c.width > finalWidth {
			out[i] = runewidth.Truncate(c.text, finalWidth-1, "") + ellipsis + " "
		} else {
			out[i] = c.text + strings.Repeat(" ", finalWidth-c.width+1)
		}
	}
	return out, nil
}

// ColumnWidth returns the display width a column of already-formatted
// cells needs, clamped to the given bounds.
func ColumnWidth(column []string, minWidth, maxWidth int) int {
	widest := 0
	for _, cell := range column {
		if w := runewidth.StringWidth(cell); w > widest {
			widest = w
		}
	}
	return clamp(widest, minWidth, maxWidth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
