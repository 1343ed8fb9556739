package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPentagonBaseCellCount checks that exactly NumPentagons base cells are
// flagged as pentagons, matching the fixed count named in spec.md.
func TestPentagonBaseCellCount(t *testing.T) {
	count := 0
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
	}
	require.Equal(t, NumPentagons, count)
}

// TestBaseCellNeighborsAreDistinct checks that a non-pentagon base cell's
// six neighbors (excluding itself) are all different base cells.
func TestBaseCellNeighborsAreDistinct(t *testing.T) {
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			continue
		}
		seen := make(map[int]bool)
		for d := Axis(1); d < Axis(NumDigits); d++ {
			n := baseCellNeighbors[bc][d]
			require.NotEqual(t, InvalidBaseCell, n, "base cell %d direction %d", bc, d)
			require.False(t, seen[n], "base cell %d has duplicate neighbor %d", bc, n)
			seen[n] = true
		}
	}
}

// TestPentagonBaseCellHasNoKAxisNeighbor checks the defining distortion of a
// pentagon base cell: no neighbor down the k-axis digit.
func TestPentagonBaseCellHasNoKAxisNeighbor(t *testing.T) {
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			require.Equal(t, InvalidBaseCell, baseCellNeighbors[bc][AxisK])
		}
	}
}

// TestGetPentagonIndexesCount checks the public pentagon-enumeration API
// against the fixed pentagon count.
func TestGetPentagonIndexesCount(t *testing.T) {
	out := make([]CellID, NumPentagons)
	GetPentagonIndexes(1, &out)
	for _, h := range out {
		require.True(t, cellIsPentagon(h))
		require.Equal(t, 1, getResolution(h))
	}
}

// TestBaseCellDirectionIsInverseOfNeighbor checks
// _getBaseCellDirection/_getBaseCellNeighbor consistency for a sample of
// base cells.
func TestBaseCellDirectionIsInverseOfNeighbor(t *testing.T) {
	for bc := 0; bc < 5; bc++ {
		for d := Axis(1); d < Axis(NumDigits); d++ {
			n := _getBaseCellNeighbor(bc, d)
			if n == InvalidBaseCell {
				continue
			}
			require.Equal(t, d, _getBaseCellDirection(bc, n))
		}
	}
}
