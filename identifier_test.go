package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIndexDigitRoundTrip verifies that every resolution digit slot can be
// set and read back independently without disturbing its neighbors.
func TestIndexDigitRoundTrip(t *testing.T) {
	for res := 1; res <= MaxResolution; res++ {
		h := _newCellID(res, 10, AxisCenter)
		setIndexDigit(&h, res, AxisIK)
		require.Equal(t, AxisIK, getIndexDigit(h, res))
		require.Equal(t, res, getResolution(h))
		require.Equal(t, 10, getBaseCell(h))
	}
}

// TestModeRoundTrip checks that setMode/getMode agree and that
// switching to the unidirectional-edge mode does not disturb the base cell.
func TestModeRoundTrip(t *testing.T) {
	h := _newCellID(5, 42, AxisCenter)
	require.Equal(t, hexagonMode, getMode(h))

	setMode(&h, edgeMode)
	require.Equal(t, edgeMode, getMode(h))
	require.Equal(t, 42, getBaseCell(h))
}

// TestStringRoundTrip exercises ParseCellID/String as inverses.
func TestStringRoundTrip(t *testing.T) {
	cases := []CellID{
		_newCellID(0, 0, AxisCenter),
		_newCellID(3, 14, AxisK),
		_newCellID(MaxResolution, 121, AxisIJ),
	}
	for _, h := range cases {
		s := h.String()
		require.Equal(t, h, ParseCellID(s))
	}
}

// TestParseCellIDInvalid confirms malformed strings decode to CellNil.
func TestParseCellIDInvalid(t *testing.T) {
	require.Equal(t, CellNil, ParseCellID("not-hex"))
}

// TestIsValidCell checks that a freshly constructed hexagon index is valid and
// that setting its high bit breaks validity.
func TestIsValidCell(t *testing.T) {
	h := _newCellID(2, 1, AxisCenter)
	require.True(t, isValidCell(h))

	bad := h
	setHighBit(&bad, 1)
	require.False(t, isValidCell(bad))
}
