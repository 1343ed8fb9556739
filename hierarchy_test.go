package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestToParentToChildrenRoundTrip checks that a cell's children all report
// it as their parent at the original resolution.
func TestToParentToChildrenRoundTrip(t *testing.T) {
	parent := _newCellID(2, 8, AxisCenter)
	children := parent.ToChildren(4)
	require.NotEmpty(t, children)

	for _, c := range children {
		require.Equal(t, 4, getResolution(c))
		require.Equal(t, parent, c.ToParent(2))
	}
}

// TestToParentSameResolution checks the identity case named in spec.md.
func TestToParentSameResolution(t *testing.T) {
	h := _newCellID(3, 5, AxisCenter)
	require.Equal(t, h, h.ToParent(3))
}

// TestToParentFinerResolutionIsNull checks that asking for a "parent" at a
// finer resolution than the cell itself fails closed.
func TestToParentFinerResolutionIsNull(t *testing.T) {
	h := _newCellID(2, 5, AxisCenter)
	require.Equal(t, CellNil, h.ToParent(4))
}

// TestPentagonSkipsKAxisChild verifies pentagon cells never produce a child
// down the missing k-axis digit.
func TestPentagonSkipsKAxisChild(t *testing.T) {
	var pentagons []CellID
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			pentagons = append(pentagons, _newCellID(0, bc, AxisCenter))
			break
		}
	}
	require.NotEmpty(t, pentagons)

	children := pentagons[0].ToChildren(1)
	for _, c := range children {
		require.NotEqual(t, AxisK, getIndexDigit(c, 1))
	}
}

// TestCompactUncompactRoundTrip exercises the compact/uncompact inverse
// relationship supplemented in SPEC_FULL.md item 11: uncompact(compact(S),
// res) must cover every member of S when S is uniform at res.
func TestCompactUncompactRoundTrip(t *testing.T) {
	parent := _newCellID(1, 6, AxisCenter)
	full := parent.ToChildren(3)

	compacted, err := Compact(full)
	require.NoError(t, err)
	require.NotEmpty(t, compacted)

	uncompacted, err := Uncompact(compacted, 3)
	require.NoError(t, err)

	seen := make(map[CellID]bool, len(uncompacted))
	for _, h := range uncompacted {
		seen[h] = true
	}
	for _, h := range full {
		require.True(t, seen[h], "uncompacted set must contain %v", h)
	}
}

// TestCompactEmptySet checks the degenerate empty-input case.
func TestCompactEmptySet(t *testing.T) {
	compacted, err := Compact(nil)
	require.NoError(t, err)
	require.Nil(t, compacted)
}

// TestUncompactRejectsFinerInput checks that uncompact refuses to "expand"
// a set that is already finer than the requested resolution.
func TestUncompactRejectsFinerInput(t *testing.T) {
	h := _newCellID(4, 6, AxisCenter)
	_, err := Uncompact([]CellID{h}, 2)
	require.ErrorIs(t, err, ErrUncompactResExceeded)
}
