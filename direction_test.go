package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRotate60RoundTrip checks that six ccw rotations of any digit return to
// the original digit, and that cw is the exact inverse of ccw.
func TestRotate60RoundTrip(t *testing.T) {
	digits := []Axis{
		AxisCenter, AxisK, AxisJ, AxisJK,
		AxisI, AxisIK, AxisIJ,
	}
	for _, d := range digits {
		got := d
		for i := 0; i < 6; i++ {
			got = _rotate60ccw(got)
		}
		require.Equal(t, d, got)

		require.Equal(t, d, _rotate60cw(_rotate60ccw(d)))
	}
}

// TestCenterAndInvalidDigitsAreFixedPoints checks the two digits with no
// axis meaning are unaffected by rotation.
func TestCenterAndInvalidDigitsAreFixedPoints(t *testing.T) {
	require.Equal(t, AxisCenter, _rotate60ccw(AxisCenter))
	require.Equal(t, AxisInvalid, _rotate60ccw(AxisInvalid))
	require.Equal(t, AxisCenter, _rotate60cw(AxisCenter))
	require.Equal(t, AxisInvalid, _rotate60cw(AxisInvalid))
}
