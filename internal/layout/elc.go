package layout

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Section markers of the .elc format. A marker line ends with the word.
const (
	elcPositionsMarker = "Positions"
	elcLabelsMarker    = "Labels"
)

// elcState is the scanning state of the .elc reader.
type elcState int

const (
	elcSeekPositions elcState = iota // header text before the Positions marker
	elcReadPositions                 // coordinate rows up to the Labels marker
	elcReadLabels                    // one label per line up to a blank line
	elcDone
)

// String returns the state name.
func (s elcState) String() string {
	switch s {
	case elcSeekPositions:
		return "seek positions"
	case elcReadPositions:
		return "read positions"
	case elcReadLabels:
		return "read labels"
	case elcDone:
		return "done"
	default:
		return "unknown"
	}
}

// elcScanner accumulates positions and labels while stepping through lines.
type elcScanner struct {
	state elcState
	lay   Layout
}

// step consumes one physical line (newline already removed).
func (s *elcScanner) step(text string, line int) error {
	switch s.state {
	case elcSeekPositions:
		if strings.HasSuffix(text, elcPositionsMarker) {
			s.state = elcReadPositions
		}
	case elcReadPositions:
		if strings.HasSuffix(text, elcLabelsMarker) {
			s.state = elcReadLabels
			return nil
		}
		rw, ok := splitRow(text, line)
		if !ok {
			return nil
		}
		if err := rw.expect(FormatELC, 3); err != nil {
			return err
		}
		pos, err := rw.vec(FormatELC, 0)
		if err != nil {
			return err
		}
		s.lay.Positions = append(s.lay.Positions, pos)
	case elcReadLabels:
		if strings.TrimSpace(text) == "" {
			s.state = elcDone
			return nil
		}
		s.lay.Labels = append(s.lay.Labels, strings.TrimLeft(text, " "))
	}
	return nil
}

// parseELC reads a sectioned .elc layout.
func parseELC(r io.Reader) (*Layout, error) {
	s := &elcScanner{state: elcSeekPositions}

	scanner := bufio.NewScanner(r)
	line := 0
	for s.state != elcDone && scanner.Scan() {
		line++
		if err := s.step(scanner.Text(), line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", FormatELC, err)
	}

	switch s.state {
	case elcSeekPositions:
		return nil, &ParseError{Format: FormatELC, Msg: "missing " + elcPositionsMarker + " section"}
	case elcReadPositions:
		return nil, &ParseError{Format: FormatELC, Msg: "missing " + elcLabelsMarker + " section"}
	}
	if len(s.lay.Labels) != len(s.lay.Positions) {
		return nil, &ParseError{
			Format: FormatELC,
			Msg:    fmt.Sprintf("%d labels for %d positions", len(s.lay.Labels), len(s.lay.Positions)),
		}
	}
	return &s.lay, nil
}
