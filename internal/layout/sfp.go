package layout

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// parseSFP reads an EGI geodesic layout: "label x y z" rows, no header.
func parseSFP(r io.Reader) (*Layout, error) {
	rows, err := readTable(r, FormatSFP, 0, 4)
	if err != nil {
		return nil, err
	}

	lay := &Layout{
		Labels:    make([]string, 0, len(rows)),
		Positions: make([]r3.Vec, 0, len(rows)),
	}
	for _, row := range rows {
		pos, err := row.vec(FormatSFP, 1)
		if err != nil {
			return nil, err
		}
		lay.Labels = append(lay.Labels, row.label(0))
		lay.Positions = append(lay.Positions, pos)
	}
	return lay, nil
}
