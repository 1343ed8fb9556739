package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRing1ContainsOriginAtCenter checks the bounded ring-1 helper always
// places the origin at AxisCenter.
func TestRing1ContainsOriginAtCenter(t *testing.T) {
	origin := _newCellID(1, 20, AxisCenter)
	ring := _ring1(origin)
	require.Equal(t, origin, ring[AxisCenter])
}

// TestAreNeighborsSymmetric checks that the ring-1 fallback used by
// AreNeighbors agrees in both directions for a resolution-0 base
// cell pair.
func TestAreNeighborsSymmetric(t *testing.T) {
	origin := _newCellID(0, 0, AxisCenter)
	ring := _ring1(origin)

	for d := Axis(1); d < Axis(NumDigits); d++ {
		neighbor := ring[d]
		if neighbor == CellNil {
			continue
		}
		require.True(t, AreNeighbors(origin, neighbor))
		require.True(t, AreNeighbors(neighbor, origin))
	}
}

// TestSelfIsNotNeighbor checks the degenerate case named in spec.md: a cell
// is never its own neighbor.
func TestSelfIsNotNeighbor(t *testing.T) {
	h := _newCellID(2, 10, AxisCenter)
	require.False(t, AreNeighbors(h, h))
}

// TestUnidirectionalEdgeRoundTrip checks that an edge built between two
// neighbors recovers the same origin/destination pair.
func TestUnidirectionalEdgeRoundTrip(t *testing.T) {
	origin := _newCellID(1, 15, AxisCenter)
	ring := _ring1(origin)

	var destination CellID
	found := false
	for d := Axis(1); d < Axis(NumDigits); d++ {
		if ring[d] != CellNil {
			destination = ring[d]
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one neighbor")

	edge := DirectedEdgeFrom(origin, destination)
	require.NotEqual(t, CellNil, edge)
	require.True(t, IsValidEdge(edge))
	require.Equal(t, origin, EdgeOrigin(edge))
	require.Equal(t, destination, EdgeDestination(edge))
}

// TestUnidirectionalEdgeRejectsNonNeighbors checks that edges refuse to form
// between cells that are not in fact neighbors.
func TestUnidirectionalEdgeRejectsNonNeighbors(t *testing.T) {
	origin := _newCellID(1, 15, AxisCenter)
	farAway := _newCellID(1, 100, AxisCenter)
	require.Equal(t, CellNil, DirectedEdgeFrom(origin, farAway))
}

// TestUnidirectionalEdgesFromHexagonPentagonSkipsKAxis checks that the
// per-hexagon edge enumeration zeroes the missing k-axis slot on pentagons.
func TestUnidirectionalEdgesFromHexagonPentagonSkipsKAxis(t *testing.T) {
	var pentagonBC int
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			pentagonBC = bc
			break
		}
	}
	origin := _newCellID(0, pentagonBC, AxisCenter)

	edges := make([]CellID, 6)
	CellEdges(origin, &edges)
	require.Equal(t, CellNil, edges[0])
}
