package cellgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLatLngToCellRoundTripStaysInsideCell checks that converting a coordinate to a
// cell and back lands within one cell width of the original point, for a
// handful of points spread across resolutions and hemispheres.
func TestLatLngToCellRoundTripStaysInsideCell(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		res      int
	}{
		{"origin", 0, 0, 5},
		{"north", 51.5, -0.13, 7},
		{"south", -33.9, 151.2, 4},
		{"near pole", 89.0, 10.0, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var g LatLng
			g.setGeoDegs(c.lat, c.lon)

			h := LatLngToCell(&g, c.res)
			require.NotEqual(t, CellNil, h, "expected a valid cell")
			require.True(t, isValidCell(h))
			require.Equal(t, c.res, getResolution(h))

			var center LatLng
			CellToLatLng(h, &center)

			cellWidthRads := 2 * EdgeLengthKm(c.res) / earthRadiusKm
			require.Less(t, PointDistRads(&g, &center), cellWidthRads,
				"cell center should be near the sampled point")
		})
	}
}

// TestLatLngToCellRejectsInfiniteCoordinates checks the finite-input guard.
func TestLatLngToCellRejectsInfiniteCoordinates(t *testing.T) {
	g := LatLng{lat: math.Inf(1), lon: 0}
	require.Equal(t, CellNil, LatLngToCell(&g, 3))
}

// TestLatLngToCellRejectsBadResolution checks the resolution bound.
func TestLatLngToCellRejectsBadResolution(t *testing.T) {
	var g LatLng
	g.setGeoDegs(10, 10)
	require.Equal(t, CellNil, LatLngToCell(&g, MaxResolution+1))
	require.Equal(t, CellNil, LatLngToCell(&g, -1))
}
