package layout

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// CSD toolbox columns.
const (
	csdLabel = iota
	csdTheta
	csdPhi
	csdRadius
	csdX
	csdY
	csdZ
	csdOffSphere
	csdColumns
)

// csdHeaderRows is the number of header lines preceding CSD data.
const csdHeaderRows = 2

// parseCSD reads a CSD toolbox layout. Positions come from the x, y, z
// columns; theta, phi, radius and off_sph must be numeric but are unused.
func parseCSD(r io.Reader) (*Layout, error) {
	rows, err := readTable(r, FormatCSD, csdHeaderRows, csdColumns)
	if err != nil {
		return nil, err
	}

	lay := &Layout{
		Labels:    make([]string, 0, len(rows)),
		Positions: make([]r3.Vec, 0, len(rows)),
	}
	for _, row := range rows {
		for _, col := range []int{csdTheta, csdPhi, csdRadius, csdOffSphere} {
			if _, err := row.float(FormatCSD, col); err != nil {
				return nil, err
			}
		}
		pos, err := row.vec(FormatCSD, csdX)
		if err != nil {
			return nil, err
		}
		lay.Labels = append(lay.Labels, row.label(csdLabel))
		lay.Positions = append(lay.Positions, pos)
	}
	return lay, nil
}
