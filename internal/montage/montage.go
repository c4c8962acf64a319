package montage

import (
	"fmt"
	"strings"

	"github.com/born-ml/montage/internal/layout"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// summaryChannels is the number of channel names shown by Montage.String.
const summaryChannels = 3

// Montage is a set of sensor labels and their 3D positions loaded from one
// source. Index i of Positions and Names refers to the same sensor.
// A Montage is not modified after construction.
type Montage struct {
	positions []r3.Vec
	names     []string
	kind      string
	scaled    bool
}

// NewMontage creates a Montage from parallel positions and names.
// Only use this directly when constructing a layout by hand; ReadMontage
// covers files. Both slices are copied.
func NewMontage(positions []r3.Vec, names []string, kind string) (*Montage, error) {
	if len(positions) != len(names) {
		return nil, fmt.Errorf("%w: %d positions, %d names", ErrLengthMismatch, len(positions), len(names))
	}
	if len(names) == 0 {
		return nil, layout.ErrEmptyLayout
	}

	return &Montage{
		positions: append([]r3.Vec(nil), positions...),
		names:     append([]string(nil), names...),
		kind:      kind,
		scaled:    true,
	}, nil
}

// Positions returns a copy of the sensor positions.
func (m *Montage) Positions() []r3.Vec {
	return append([]r3.Vec(nil), m.positions...)
}

// Names returns a copy of the sensor labels.
func (m *Montage) Names() []string {
	return append([]string(nil), m.names...)
}

// Kind returns the name of the source file without its directory.
func (m *Montage) Kind() string {
	return m.kind
}

// Scaled reports the scale setting the montage was read with.
func (m *Montage) Scaled() bool {
	return m.scaled
}

// Len returns the number of sensors.
func (m *Montage) Len() int {
	return len(m.names)
}

// Position returns the position of the first sensor labelled name.
func (m *Montage) Position(name string) (r3.Vec, bool) {
	for i, n := range m.names {
		if n == name {
			return m.positions[i], true
		}
	}
	return r3.Vec{}, false
}

// PositionMatrix returns the positions as an N×3 matrix, one row per sensor.
// It returns nil for a Montage without sensors.
func (m *Montage) PositionMatrix() *mat.Dense {
	if len(m.positions) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(m.positions))
	for _, p := range m.positions {
		data = append(data, p.X, p.Y, p.Z)
	}
	return mat.NewDense(len(m.positions), 3, data)
}

// String returns a short summary with the kind and the first channel names.
func (m *Montage) String() string {
	names := m.names
	if len(names) > summaryChannels {
		names = names[:summaryChannels]
	}
	return fmt.Sprintf("<Montage | %s - Channels: %s ...>", m.kind, strings.Join(names, ", "))
}
