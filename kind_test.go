package colfmt_test

import (
	"testing"

	"github.com/bjaus/colfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"empty":        {input: "", want: true},
		"NA":           {input: "NA", want: true},
		"N/A":          {input: "N/A", want: true},
		"NaN":          {input: "NaN", want: true},
		"NAN":          {input: "NAN", want: true},
		"null":         {input: "null", want: true},
		"Null":         {input: "Null", want: true},
		"None":         {input: "None", want: true},
		"none":         {input: "none", want: true},
		"na":           {input: "na", want: true},
		"nan":          {input: "nan", want: true},
		"missing":      {input: "missing", want: true},
		"n/a":          {input: "n/a", want: true},
		"NULL upper":   {input: "NULL", want: false},
		"word":         {input: "banana", want: false},
		"padded":       {input: " NA ", want: false},
		"substring na": {input: "nap", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, colfmt.IsMissing(tt.input))
		})
	}
}

func TestIsMissingPadded(t *testing.T) {
	t.Parallel()
	assert.True(t, colfmt.IsMissingPadded("NA  "))
	assert.True(t, colfmt.IsMissingPadded("  NA"))
	assert.True(t, colfmt.IsMissingPadded(" null "))
	assert.False(t, colfmt.IsMissingPadded("N A"))
	assert.False(t, colfmt.IsMissingPadded("nope "))
}

func TestIsBoolean(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"true", "false", "TRUE", "FALSE", "True", "False", "t", "f", "T", "F", "1", "0"} {
		assert.True(t, colfmt.IsBoolean(ok), ok)
	}
	for _, bad := range []string{"tru", "yes", "no", "10", " true", "false "} {
		assert.False(t, colfmt.IsBoolean(bad), bad)
	}
}

func TestIsInteger(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"plain":        {input: "123", want: true},
		"negative":     {input: "-456", want: true},
		"positive":     {input: "+789", want: true},
		"zero":         {input: "0", want: true},
		"whitespace":   {input: " 789 ", want: true},
		"leading zero": {input: "007", want: false},
		"decimal":      {input: "123.45", want: false},
		"word":         {input: "abc", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, colfmt.IsInteger(tt.input))
		})
	}
}

func TestIsDouble(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"decimal":       {input: "123.45", want: true},
		"negative":      {input: "-456.78", want: true},
		"integer":       {input: "123", want: true},
		"scientific":    {input: "1.23e-4", want: true},
		"trimmed":       {input: " 12.5 ", want: true},
		"bare fraction": {input: ".5", want: true},
		"zero padded":   {input: "007", want: false},
		"underscored":   {input: "1_000", want: false},
		"hex":           {input: "0x1p-2", want: false},
		"word":          {input: "abc", want: false},
		"empty":         {input: "", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, colfmt.IsDouble(tt.input))
		})
	}
}

func TestIsScientificNotation(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"1.23e-7", "5.67e15", "-4.56e-10", "+2.34e8", "1e5", "3.14E-2", "7.849613446523261e-05"} {
		assert.True(t, colfmt.IsScientificNotation(ok), ok)
	}
	for _, bad := range []string{"1.23", "123", "0.0001", "e5", "1.23e", "text", ""} {
		assert.False(t, colfmt.IsScientificNotation(bad), bad)
	}
}

func TestIsDateTimePatterns(t *testing.T) {
	t.Parallel()
	assert.True(t, colfmt.IsDate("2020-10-09"))
	assert.True(t, colfmt.IsDate("released 1999-12-31 midnight"))
	assert.False(t, colfmt.IsDate("2020/10/09"))

	assert.True(t, colfmt.IsTime("11:59:37"))
	assert.True(t, colfmt.IsTime("23:45:12"))
	assert.False(t, colfmt.IsTime("25:00:00"))
	assert.False(t, colfmt.IsTime("11:59:37 UTC"))

	assert.True(t, colfmt.IsDateTime("11:59:37"))
	assert.True(t, colfmt.IsDateTime("11:59:37 UTC"))
	assert.False(t, colfmt.IsDateTime("abc 11:59:37"))
}

func TestIsNumberHelpers(t *testing.T) {
	t.Parallel()
	assert.True(t, colfmt.IsNumber("123"))
	assert.True(t, colfmt.IsNumber("123.45"))
	assert.False(t, colfmt.IsNumber("abc"))

	assert.True(t, colfmt.IsNegativeNumber("-123"))
	assert.True(t, colfmt.IsNegativeNumber("-123.45"))
	assert.True(t, colfmt.IsNegativeNumber(" -0.5 "))
	assert.False(t, colfmt.IsNegativeNumber("123"))
	assert.False(t, colfmt.IsNegativeNumber("abc"))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  colfmt.ValueKind
	}{
		"time wins over double":    {input: "11:59:37", want: colfmt.Time},
		"boolean single letter":    {input: "T", want: colfmt.Boolean},
		"boolean one":              {input: "1", want: colfmt.Boolean},
		"integer":                  {input: "42", want: colfmt.Integer},
		"datetime prefix":          {input: "11:59:37 UTC", want: colfmt.DateTime},
		"date":                     {input: "2021-01-01", want: colfmt.Date},
		"double":                   {input: "3.14", want: colfmt.Double},
		"scientific":               {input: "1.2e-4", want: colfmt.Double},
		"missing empty":            {input: "", want: colfmt.Missing},
		"missing spelled":          {input: "N/A", want: colfmt.Missing},
		"leading zero is character": {input: "007", want: colfmt.Character},
		"free text":                {input: "2/ 2.5 Gallon", want: colfmt.Character},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, colfmt.Classify(tt.input))
		})
	}
}

func TestValueKindStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "double", colfmt.Double.String())
	assert.Equal(t, "<dbl>", colfmt.Double.Label())
	assert.Equal(t, "<chr>", colfmt.Character.Label())
	assert.Equal(t, "<int>", colfmt.Integer.Label())
	assert.Equal(t, "<lgl>", colfmt.Boolean.Label())
}

func TestDominantKind(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		column []string
		want   colfmt.ValueKind
	}{
		"all doubles":       {column: []string{"1.5", "2.25", "3.75"}, want: colfmt.Double},
		"majority integer":  {column: []string{"1.5", "7", "12", "19"}, want: colfmt.Integer},
		"missing ignored":   {column: []string{"NA", "", "7", "hello"}, want: colfmt.Integer},
		"tie first seen":    {column: []string{"abc", "1.5", "xyz", "2.5"}, want: colfmt.Character},
		"tie first seen number": {
			column: []string{"1.5", "abc", "2.5", "xyz"},
			want:   colfmt.Double,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := colfmt.DominantKind(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDominantKindEmpty(t *testing.T) {
	t.Parallel()
	_, err := colfmt.DominantKind(nil)
	require.ErrorIs(t, err, colfmt.ErrEmptyColumn)

	_, err = colfmt.DominantKind([]string{"", "NA", "null"})
	require.ErrorIs(t, err, colfmt.ErrEmptyColumn)
}
