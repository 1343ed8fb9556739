package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCellDistanceToSelfIsZero checks the degenerate distance case.
func TestCellDistanceToSelfIsZero(t *testing.T) {
	h := _newCellID(2, 7, AxisCenter)
	require.Equal(t, 0, CellDistance(h, h))
}

// TestCellDistanceToNeighborIsOne checks that every ring-1 neighbor of a cell
// reports distance 1, matching SPEC_FULL.md's local-ijk testable property.
func TestCellDistanceToNeighborIsOne(t *testing.T) {
	origin := _newCellID(2, 7, AxisCenter)
	ring := _ring1(origin)
	for d := Axis(1); d < Axis(NumDigits); d++ {
		if ring[d] == CellNil {
			continue
		}
		require.Equal(t, 1, CellDistance(origin, ring[d]))
	}
}

// TestCellLineEndpointsMatchDistance checks that the line's length equals
// CellDistance(start, end) + 1 and that it starts/ends on the right cells, the
// property spec.md documents for CellLine.
func TestCellLineEndpointsMatchDistance(t *testing.T) {
	origin := _newCellID(2, 7, AxisCenter)
	ring := _ring1(origin)

	var end CellID
	found := false
	for d := Axis(1); d < Axis(NumDigits); d++ {
		if ring[d] != CellNil {
			end = ring[d]
			found = true
			break
		}
	}
	require.True(t, found)

	size := CellLineSize(origin, end)
	require.Greater(t, size, 0)

	line := make([]CellID, size)
	rc := CellLine(origin, end, &line)
	require.Equal(t, StatusOK, rc)
	require.Equal(t, origin, line[0])
	require.Equal(t, end, line[len(line)-1])

	distance := CellDistance(origin, end)
	require.Equal(t, distance+1, len(line))

	for i := 1; i < len(line); i++ {
		require.True(t, AreNeighbors(line[i-1], line[i]),
			"line index %d must be a neighbor of index %d", i, i-1)
	}
}
