package montage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/montage/internal/layout"
)

func TestBuiltin(t *testing.T) {
	layouts, err := Builtin()
	require.NoError(t, err)
	require.Len(t, layouts, 4)

	formats := make(map[layout.Format]bool)
	for _, l := range layouts {
		assert.NotEmpty(t, l.Description, l.Kind)
		assert.NotEmpty(t, l.Units, l.Kind)
		formats[l.Format] = true
	}
	for _, f := range layout.Formats() {
		assert.True(t, formats[f], "no bundled %s layout", f)
	}
}

func TestBuiltin_AllLoad(t *testing.T) {
	layouts, err := Builtin()
	require.NoError(t, err)

	for _, l := range layouts {
		t.Run(l.Kind, func(t *testing.T) {
			m, err := ReadMontage(l.Kind)
			require.NoError(t, err)

			assert.Equal(t, l.Kind, m.Kind())
			assert.Equal(t, 21, m.Len())
			assert.Len(t, m.Positions(), len(m.Names()))

			pm := m.PositionMatrix()
			assert.False(t, floats.HasNaN(pm.RawMatrix().Data))
			for _, v := range pm.RawMatrix().Data {
				assert.False(t, v > 1e6 || v < -1e6)
			}

			_, ok := m.Position("Cz")
			assert.True(t, ok)
		})
	}
}

func TestBuiltin_FilterAcrossFormats(t *testing.T) {
	for _, kind := range []string{"standard-1020.elc", "geodesic-1020.sfp", "standard-1020.csd"} {
		m, err := ReadMontage(kind, WithNames("Oz", "Fpz", "Cz"))
		require.NoError(t, err, kind)
		assert.Equal(t, []string{"Oz", "Fpz", "Cz"}, m.Names(), kind)
		assert.Equal(t, "<Montage | "+kind+" - Channels: Oz, Fpz, Cz ...>", m.String())

		// Cz sits on the vertex in every Cartesian file.
		cz, _ := m.Position("Cz")
		oz, _ := m.Position("Oz")
		fpz, _ := m.Position("Fpz")
		assert.Greater(t, cz.Z, oz.Z, kind)
		assert.Greater(t, fpz.Y, 0.0, kind)
		assert.Less(t, oz.Y, 0.0, kind)
	}
}
