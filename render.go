package colfmt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// gutterWidth is the right-aligned row-number gutter printed before each
// line, matching the reference layout ("%6s" plus two spaces).
const gutterWidth = 6

// RenderOptions controls [Render]. The zero value of Width means
// auto-detect: the terminal width when writing to one, unlimited
// otherwise.
type RenderOptions struct {
	Config         Config
	Width          int
	MaxRows        int // 0 renders every row
	ShowDimensions bool
	ShowKinds      bool
	ShowRowNumbers bool
}

// DefaultRenderOptions mirrors the reference tool's defaults: dimensions
// line, row numbers, no kind hints, formatting per [DefaultConfig].
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Config:         DefaultConfig(),
		ShowDimensions: true,
		ShowRowNumbers: true,
	}
}

// Render writes records as an aligned table. The first record is the
// header; it participates in column width computation like any other
// cell. Each column is formatted independently with [FormatColumn], so a
// failure in the configuration surfaces before anything is written.
// Columns that do not fit the width budget are dropped and reported in a
// trailing "more variables" line; rows beyond MaxRows likewise.
func Render(w io.Writer, records [][]string, opts RenderOptions) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	header := records[0]
	body := records[1:]
	rowsRemaining := 0
	if opts.MaxRows > 0 && len(body) > opts.MaxRows {
		rowsRemaining = len(body) - opts.MaxRows
		body = body[:opts.MaxRows]
	}

	numCols := len(header)
	formatted := make([][]string, numCols)
	kinds := make([]ValueKind, numCols)
	for c := range numCols {
		column := make([]string, 0, len(body)+1)
		column = append(column, cellAt(header, c))
		for _, row := range body {
			column = append(column, cellAt(row, c))
		}
		cells, err := FormatColumn(column, opts.Config)
		if err != nil {
			return err
		}
		formatted[c] = cells
		kind, err := DominantKind(column[1:])
		if err != nil {
			kind = Missing
		}
		kinds[c] = kind
	}

	width := opts.Width
	if width == 0 {
		width = detectWidth(w)
	}
	colsToPrint := fitColumns(formatted, width)
	colsRemaining := numCols - colsToPrint

	if opts.ShowDimensions {
		if err := writeLine(w, fmt.Sprintf("dim: %d x %d", len(body), numCols)); err != nil {
			return err
		}
	}

	var line strings.Builder
	writeGutter(&line, "")
	for c := range colsToPrint {
		line.WriteString(formatted[c][0])
	}
	if err := writeRow(w, &line); err != nil {
		return err
	}

	if opts.ShowKinds {
		writeGutter(&line, "")
		for c := range colsToPrint {
			cellWidth := runewidth.StringWidth(formatted[c][0])
			line.WriteString(runewidth.FillRight(kinds[c].Label(), cellWidth))
		}
		if err := writeRow(w, &line); err != nil {
			return err
		}
	}

	for r := range body {
		num := ""
		if opts.ShowRowNumbers {
			num = fmt.Sprintf("%d", r+1)
		}
		writeGutter(&line, num)
		for c := range colsToPrint {
			line.WriteString(formatted[c][r+1])
		}
		if err := writeRow(w, &line); err != nil {
			return err
		}
	}

	if rowsRemaining > 0 || colsRemaining > 0 {
		if err := writeLine(w, remainderText(rowsRemaining, colsRemaining, header[colsToPrint:])); err != nil {
			return err
		}
	}
	return nil
}

func cellAt(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}

func detectWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return cols
}

// fitColumns counts how many leading columns fit the width budget,
// accumulating the gutter plus each column's formatted width. At least
// one column is always printed; a zero budget means no limit.
func fitColumns(formatted [][]string, width int) int {
	if width <= 0 {
		return len(formatted)
	}
	total := gutterWidth + 2
	fit := 0
	for _, column := range formatted {
		total += runewidth.StringWidth(column[0])
		if total > width {
			break
		}
		fit++
	}
	if fit == 0 {
		fit = 1
	}
	return fit
}

func writeGutter(line *strings.Builder, text string) {
	line.Reset()
	fmt.Fprintf(line, "%*s  ", gutterWidth, text)
}

func writeRow(w io.Writer, line *strings.Builder) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	return err
}

func writeLine(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "%*s  %s\n", gutterWidth, "", text)
	return err
}

func remainderText(rows, cols int, dropped []string) string {
	var b strings.Builder
	b.WriteString(ellipsis)
	b.WriteString(" with ")
	if rows > 0 {
		fmt.Fprintf(&b, "%d more rows", rows)
		if cols > 0 {
			b.WriteString(" and ")
		}
	}
	if cols > 0 {
		fmt.Fprintf(&b, "%d more variables: %s", cols, strings.Join(dropped, ", "))
	}
	return b.String()
}
