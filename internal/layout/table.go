package layout

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/spatial/r3"
)

// MaxLabelLen is the fixed width of label columns in table formats.
// Longer labels are truncated.
const MaxLabelLen = 4

// commentPrefix starts a comment that runs to the end of the line.
const commentPrefix = "#"

// row is one data line of a whitespace-separated table.
type row struct {
	line   int
	fields []string
}

// readTable splits r into whitespace-separated rows of exactly columns fields.
// The first skip physical lines are discarded. Blank lines and comments are
// ignored after that.
func readTable(r io.Reader, f Format, skip, columns int) ([]row, error) {
	var rows []row

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line <= skip {
			continue
		}

		rw, ok := splitRow(scanner.Text(), line)
		if !ok {
			continue
		}
		if err := rw.expect(f, columns); err != nil {
			return nil, err
		}
		rows = append(rows, rw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s table: %w", f, err)
	}

	return rows, nil
}

// splitRow splits one physical line into fields, dropping any comment.
// It reports false for lines without data.
func splitRow(text string, line int) (row, bool) {
	if i := strings.Index(text, commentPrefix); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return row{}, false
	}
	return row{line: line, fields: fields}, true
}

// expect fails unless the row has exactly columns fields.
func (r row) expect(f Format, columns int) error {
	if len(r.fields) != columns {
		return &ParseError{
			Format: f,
			Line:   r.line,
			Msg:    fmt.Sprintf("expected %d columns, got %d", columns, len(r.fields)),
		}
	}
	return nil
}

// float parses column col (0-based) of the row as a finite float64.
func (r row) float(f Format, col int) (float64, error) {
	v, err := strconv.ParseFloat(r.fields[col], 64)
	if err != nil {
		return 0, &ParseError{Format: f, Line: r.line, Column: col + 1, Msg: "invalid number", Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Format: f, Line: r.line, Column: col + 1, Msg: fmt.Sprintf("non-finite value %q", r.fields[col])}
	}
	return v, nil
}

// vec parses three consecutive columns starting at col as a position.
func (r row) vec(f Format, col int) (r3.Vec, error) {
	var xyz [3]float64
	for i := range xyz {
		v, err := r.float(f, col+i)
		if err != nil {
			return r3.Vec{}, err
		}
		xyz[i] = v
	}
	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// label returns column col truncated to at most MaxLabelLen bytes.
// The cut never splits a UTF-8 encoded rune.
func (r row) label(col int) string {
	s := r.fields[col]
	if len(s) <= MaxLabelLen {
		return s
	}
	n := MaxLabelLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
