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

// InvalidVertexNum marks a direction with no corresponding hexagon or
// pentagon vertex.
const InvalidVertexNum = -1

// directionToVertexNumHex maps a digit direction to the hexagon vertex
// number that starts the edge boundary walked from that direction.
var directionToVertexNumHex = [NumDigits]int{
	InvalidVertexNum, // AxisCenter
	3,                  // AxisK
	1,                  // AxisJ
	2,                  // AxisJK
	5,                  // AxisI
	4,                  // AxisIK
	0,                  // AxisIJ
}

// directionToVertexNumPent maps a digit direction to the pentagon vertex
// number that starts the edge boundary walked from that direction. A
// pentagon has no AxisK neighbor.
var directionToVertexNumPent = [NumDigits]int{
	InvalidVertexNum, // AxisCenter
	InvalidVertexNum, // AxisK (absent on a pentagon)
	1,                  // AxisJ
	2,                  // AxisJK
	4,                  // AxisI
	3,                  // AxisIK
	0,                  // AxisIJ
}

// vertexNumForDirection returns the vertex number that starts the edge
// boundary in the given direction from origin, or InvalidVertexNum if
// that direction has no edge (origin's own center, or the missing K
// direction of a pentagon).
func vertexNumForDirection(origin CellID, direction int) int {
	if direction <= int(AxisCenter) || direction >= NumDigits {
		return InvalidVertexNum
	}
	if cellIsPentagon(origin) {
		return directionToVertexNumPent[direction]
	}
	return directionToVertexNumHex[direction]
}

// h3NeighborRotations returns the cell adjacent to origin in the given
// digit direction, first rotating dir ccw by *rotations steps to account
// for any orientation drift already accumulated by the caller.
//
// This walks to the neighbor through FaceCoord space (the same substrate
// this package already uses for LatLngToCell and the local-IJK machinery)
// rather than through the upstream digit-adjustment tables, so it does
// not track accumulated rotation on the way out; every call site in this
// package only consumes the returned cell; see DESIGN.md.
func h3NeighborRotations(origin CellID, dir Axis, rotations *int) CellID {
	for i := 0; i < *rotations; i++ {
		dir = _rotate60ccw(dir)
	}

	if dir == AxisCenter {
		return origin
	}
	if dir >= Axis(NumDigits) {
		return CellNil
	}
	if cellIsPentagon(origin) && dir == AxisK {
		return CellNil
	}

	res := getResolution(origin)

	if res == 0 {
		baseCell := getBaseCell(origin)
		neighborBC := _getBaseCellNeighbor(baseCell, dir)
		if neighborBC == InvalidBaseCell {
			return CellNil
		}
		out := origin
		setBaseCell(&out, neighborBC)
		return out
	}

	var fijk FaceCoord
	_h3ToFaceIjk(origin, &fijk)
	_neighbor(&fijk.coord, dir)

	maxDim := maxDimByCIIres[res]
	if fijk.coord.i+fijk.coord.j+fijk.coord.k > maxDim {
		_adjustOverageClassII(&fijk, res, false, false)
	}

	return _faceCoordToCell(&fijk, res)
}

// _ring1 returns origin and its (up to) six immediate neighbors, in digit
// order starting at AxisCenter. A pentagon's missing K-axis slot is
// CellNil. This is the bounded, single-ring primitive are_neighbors falls
// back on; general k-ring traversal is out of scope for this package.
func _ring1(origin CellID) [NumDigits]CellID {
	var ring [NumDigits]CellID
	ring[AxisCenter] = origin
	for d := Axis(1); d < Axis(NumDigits); d++ {
		rotations := 0
		ring[d] = h3NeighborRotations(origin, d, &rotations)
	}
	return ring
}
