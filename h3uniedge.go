// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cellgrid

// siblingAxisClockwise and siblingAxisCounterclockwise answer, for a cell
// at digit d under its parent, which sibling digit sits clockwise (resp.
// counterclockwise) from it. Two cells sharing a parent are neighbors
// exactly when one's digit is the other's clockwise or counterclockwise
// sibling — a cheap table lookup that avoids walking a full ring-1 most of
// the time.
var siblingAxisClockwise = []Axis{
	AxisCenter, AxisJK, AxisIJ, AxisJ,
	AxisIK, AxisK, AxisI,
}

var siblingAxisCounterclockwise = []Axis{
	AxisCenter, AxisIK, AxisJK, AxisK,
	AxisIJ, AxisI, AxisJ,
}

// shareNeighboringParentDigits reports whether origin and destination, at
// the same resolution and sharing a parent, sit in digit slots that make
// them neighbors. Child 0 (AxisCenter) neighbors every one of its
// siblings; any other child only neighbors 3 of the remaining 6.
func shareNeighboringParentDigits(origin, destination CellID, parentRes int) bool {
	if cellToParent(origin, parentRes) != cellToParent(destination, parentRes) {
		return false
	}

	originDigit := getIndexDigit(origin, parentRes+1)
	destDigit := getIndexDigit(destination, parentRes+1)
	if originDigit == AxisCenter || destDigit == AxisCenter {
		return true
	}
	return siblingAxisClockwise[originDigit] == destDigit ||
		siblingAxisCounterclockwise[originDigit] == destDigit
}

// AreNeighbors reports whether origin and destination are adjacent cells
// at the same resolution.
func AreNeighbors(origin CellID, destination CellID) bool {
	if getMode(origin) != hexagonMode || getMode(destination) != hexagonMode {
		return false
	}
	if origin == destination {
		return false
	}
	if getResolution(origin) != getResolution(destination) {
		return false
	}

	if parentRes := getResolution(origin) - 1; parentRes > 0 {
		if shareNeighboringParentDigits(origin, destination, parentRes) {
			return true
		}
	}

	// Fall back to the direct ring-1 walk when the parent-digit
	// fast path can't settle it (e.g. across a pentagon distortion).
	ring := _ring1(origin)
	for _, candidate := range ring {
		if candidate == destination {
			return true
		}
	}
	return false
}

// firstCandidateAxis is the lowest digit worth probing for a neighbor
// direction: pentagons have no k-axis neighbor, so probing starts one
// digit further around.
func firstCandidateAxis(isPentagon bool) Axis {
	if isPentagon {
		return AxisJ
	}
	return AxisK
}

// DirectedEdgeFrom builds the directed-edge cell that points from origin
// toward destination, or CellNil if they are not neighbors.
func DirectedEdgeFrom(origin CellID, destination CellID) CellID {
	if !AreNeighbors(origin, destination) {
		return CellNil
	}

	for axis := firstCandidateAxis(cellIsPentagon(origin)); axis < Axis(NumDigits); axis++ {
		rotations := 0
		if h3NeighborRotations(origin, axis, &rotations) == destination {
			edge := origin
			setMode(&edge, edgeMode)
			setReservedBits(&edge, int(axis))
			return edge
		}
	}

	return CellNil // unreachable: AreNeighbors guarantees one axis matches
}

// EdgeOrigin returns the cell an edge points from.
func EdgeOrigin(edge CellID) CellID {
	if getMode(edge) != edgeMode {
		return CellNil
	}
	origin := edge
	setMode(&origin, hexagonMode)
	setReservedBits(&origin, 0)
	return origin
}

// EdgeDestination returns the cell an edge points to.
func EdgeDestination(edge CellID) CellID {
	if getMode(edge) != edgeMode {
		return CellNil
	}
	rotations := 0
	return h3NeighborRotations(EdgeOrigin(edge), Axis(getReservedBits(edge)), &rotations)
}

// IsValidEdge reports whether edge is a well-formed directed-edge cell.
func IsValidEdge(edge CellID) bool {
	if getMode(edge) != edgeMode {
		return false
	}

	axis := getReservedBits(edge)
	if axis <= int(AxisCenter) || axis >= NumDigits {
		return false
	}

	origin := EdgeOrigin(edge)
	if cellIsPentagon(origin) && axis == int(AxisK) {
		return false
	}
	return isValidCell(origin)
}

// EdgeEndpoints writes the (origin, destination) pair an edge connects
// into originDestination, which must have length 2.
func EdgeEndpoints(edge CellID, originDestination *[]CellID) {
	(*originDestination)[0] = EdgeOrigin(edge)
	(*originDestination)[1] = EdgeDestination(edge)
}

// CellEdges fills edges with the (up to) 6 directed edges leading out of
// origin, one per neighbor axis. A pentagon's missing k-axis slot is
// written as CellNil.
func CellEdges(origin CellID, edges *[]CellID) {
	isPentagon := cellIsPentagon(origin)
	for i := 0; i < 6; i++ {
		if isPentagon && i == 0 {
			(*edges)[i] = CellNil
			continue
		}
		(*edges)[i] = origin
		setMode(&(*edges)[i], edgeMode)
		setReservedBits(&(*edges)[i], i+1)
	}
}

// EdgeBoundary fills gb with the boundary vertices of edge, which may
// carry one extra distortion vertex beyond the usual two if the edge
// crosses an icosahedron face boundary.
func EdgeBoundary(edge CellID, gb *CellBoundary) {
	axis := getReservedBits(edge)
	origin := EdgeOrigin(edge)

	startVertex := vertexNumForDirection(origin, axis)
	if startVertex == InvalidVertexNum {
		gb.numVerts = 0
		return
	}

	var fijk FaceCoord
	_h3ToFaceIjk(origin, &fijk)
	res := getResolution(origin)

	if cellIsPentagon(origin) {
		_faceIjkPentToGeoBoundary(&fijk, res, startVertex, 2, gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, startVertex, 2, gb)
	}
}
