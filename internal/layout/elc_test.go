package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const elcSample = `# ASA electrode file
ReferenceLabel	avg
UnitPosition	mm
NumberPositions=	3
Positions
-29.4370 83.9171 -6.9900
0.1123 88.2470 -1.7130
29.8723 84.8959 -7.0800
Labels
Fp1
  Fpz
Fp2

trailing text that is never read
`

func TestParseELC(t *testing.T) {
	lay, err := Parse(FormatELC, strings.NewReader(elcSample))
	require.NoError(t, err)

	assert.Equal(t, []string{"Fp1", "Fpz", "Fp2"}, lay.Labels)
	want := []r3.Vec{
		{X: -29.4370, Y: 83.9171, Z: -6.9900},
		{X: 0.1123, Y: 88.2470, Z: -1.7130},
		{X: 29.8723, Y: 84.8959, Z: -7.0800},
	}
	if diff := cmp.Diff(want, lay.Positions); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseELC_CRLF(t *testing.T) {
	input := strings.ReplaceAll(elcSample, "\n", "\r\n")

	lay, err := Parse(FormatELC, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Fp1", "Fpz", "Fp2"}, lay.Labels)
	assert.Len(t, lay.Positions, 3)
}

func TestParseELC_LabelsEndAtWhitespaceOnlyLine(t *testing.T) {
	input := "Positions\n1 2 3\n4 5 6\nLabels\nA\nB\n   \nC\n"

	lay, err := Parse(FormatELC, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, lay.Labels)
	assert.Equal(t, lay.Len(), len(lay.Positions))
}

func TestParseELC_LabelsKeepTrailingSpaces(t *testing.T) {
	input := "Positions\n1 2 3\n4 5 6\nLabels\n   Fp1  \n\tCz\n\n"

	lay, err := Parse(FormatELC, strings.NewReader(input))
	require.NoError(t, err)
	// Only leading spaces and the line ending are removed.
	assert.Equal(t, []string{"Fp1  ", "\tCz"}, lay.Labels)
}

func TestParseELC_LabelsEndAtEOF(t *testing.T) {
	lay, err := Parse(FormatELC, strings.NewReader("Positions\n1 2 3\nLabels\nCz"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Cz"}, lay.Labels)
	assert.Equal(t, []r3.Vec{{X: 1, Y: 2, Z: 3}}, lay.Positions)
}

func TestParseELC_MarkerMustEndLine(t *testing.T) {
	// "NumberPositions=" and "UnitPosition" must not open the positions block.
	input := "NumberPositions=\t1\nUnitPosition mm\nPositions\n1 2 3\nLabels\nCz\n"

	lay, err := Parse(FormatELC, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{{X: 1, Y: 2, Z: 3}}, lay.Positions)
}

func TestParseELC_BlankLinesBetweenPositions(t *testing.T) {
	input := "Positions\n1 2 3\n\n4 5 6\nLabels\nA\nB\n"

	lay, err := Parse(FormatELC, strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, lay.Positions, 2)
}

func TestParseELC_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no positions marker", "1 2 3\nLabels\nA\n", "missing Positions section"},
		{"no labels marker", "Positions\n1 2 3\n", "missing Labels section"},
		{"count mismatch", "Positions\n1 2 3\n4 5 6\nLabels\nA\n\n", "1 labels for 2 positions"},
		{"two columns", "Positions\n1 2\nLabels\nA\n", "expected 3 columns, got 2"},
		{"non-numeric", "Positions\n1 two 3\nLabels\nA\n", "invalid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(FormatELC, strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestELCStateString(t *testing.T) {
	assert.Equal(t, "seek positions", elcSeekPositions.String())
	assert.Equal(t, "read positions", elcReadPositions.String())
	assert.Equal(t, "read labels", elcReadLabels.String())
	assert.Equal(t, "done", elcDone.String())
	assert.Equal(t, "unknown", elcState(42).String())
}
