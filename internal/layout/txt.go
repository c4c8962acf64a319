package layout

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// txtHeaderRows is the number of header lines preceding Easycap data.
const txtHeaderRows = 1

// parseTXT reads an Easycap layout of "label theta phi" rows in degrees.
//
// Theta is supplied as both angles of the spherical conversion on the unit
// sphere. Phi is validated but does not affect the position.
func parseTXT(r io.Reader) (*Layout, error) {
	rows, err := readTable(r, FormatTXT, txtHeaderRows, 3)
	if err != nil {
		return nil, err
	}

	lay := &Layout{
		Labels:    make([]string, 0, len(rows)),
		Positions: make([]r3.Vec, 0, len(rows)),
	}
	for _, row := range rows {
		theta, err := row.float(FormatTXT, 1)
		if err != nil {
			return nil, err
		}
		if _, err := row.float(FormatTXT, 2); err != nil {
			return nil, err
		}
		rad := DegToRad(theta)
		lay.Labels = append(lay.Labels, row.label(0))
		lay.Positions = append(lay.Positions, SphereToCartesian(rad, rad, 1))
	}
	return lay, nil
}
