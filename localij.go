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

import "math"

// Local IJK coordinates unfold a neighborhood of the grid around an origin
// cell into a single flat ijk+ substrate, so that cells anchored to the same
// origin become directly comparable without walking the icosahedron. The
// tables below carry the corrective rotations that keep that unfolding
// consistent when a pentagon's missing k-axis sits on the path between
// origin and target.

// pentagonRotationsCW gives the cw rotation count to apply to a cell being
// unfolded across a pentagon, indexed by [originLeadingDigit][axisOfTravel].
// A -1 marks the k-axis, as leading digit (row 1) or as axis of travel
// (column 1), which a pentagon never has.
var pentagonRotationsCW = [7][7]int{
	{0, -1, 0, 0, 0, 0, 0},       // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, -1, 0, 0, 0, 1, 0},       // 2
	{0, -1, 0, 0, 1, 1, 0},       // 3
	{0, -1, 0, 5, 0, 0, 0},       // 4
	{0, -1, 5, 5, 0, 0, 0},       // 5
	{0, -1, 0, 0, 0, 0, 0},       // 6
}

// pentagonRotationsReverseCCW undoes pentagonRotationsCW when the origin
// itself sits on a pentagon, regardless of which base cell holds it.
var pentagonRotationsReverseCCW = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},        // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, 1, 0, 0, 0, 0, 0},        // 2
	{0, 1, 0, 0, 0, 1, 0},        // 3
	{0, 5, 0, 0, 0, 0, 0},        // 4
	{0, 5, 0, 5, 0, 0, 0},        // 5
	{0, 0, 0, 0, 0, 0, 0},        // 6
}

// pentagonRotationsReverseNonpolarCCW undoes pentagonRotationsCW when the
// target (not the origin) sits on a non-polar pentagon.
var pentagonRotationsReverseNonpolarCCW = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},        // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, 1, 0, 0, 0, 0, 0},        // 2
	{0, 1, 0, 0, 0, 1, 0},        // 3
	{0, 5, 0, 0, 0, 0, 0},        // 4
	{0, 1, 0, 5, 1, 1, 0},        // 5
	{0, 0, 0, 0, 0, 0, 0},        // 6
}

// pentagonRotationsReversePolarCCW undoes pentagonRotationsCW when the
// target sits on one of the two polar pentagons.
var pentagonRotationsReversePolarCCW = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},        // 0
	{-1, -1, -1, -1, -1, -1, -1}, // 1
	{0, 1, 1, 1, 1, 1, 1},        // 2
	{0, 1, 0, 0, 0, 1, 0},        // 3
	{0, 1, 0, 0, 1, 1, 1},        // 4
	{0, 1, 0, 5, 1, 1, 0},        // 5
	{0, 1, 1, 0, 1, 1, 1},        // 6
}

// unfoldForbidden flags [fromAxis][toAxis] pairs that cross more than one
// icosahedron face when unfolding a pentagon. Earlier versions of this
// table also special-cased Class II/Class III resolutions, but real
// failures turned up regardless of class, so the check was simplified to
// "any multi-face crossing fails" and left at that.
var unfoldForbidden = [7][7]bool{
	{false, false, false, false, false, false, false}, // 0
	{false, false, false, false, false, false, false}, // 1
	{false, false, false, false, true, true, false},   // 2
	{false, false, false, false, true, false, true},   // 3
	{false, false, true, true, false, false, false},   // 4
	{false, false, true, false, false, false, true},   // 5
	{false, false, false, true, false, true, false},   // 6
}

// rebaseAcrossPentagon carries the state two base cells need to agree on
// before a cell can be unfolded from one into the other's coordinate
// substrate: which axis connects them, and (if a pentagon is involved)
// how many extra 60-degree steps the unfolding must absorb.
type rebaseAcrossPentagon struct {
	axis, reverseAxis       Axis
	pentagonRots, axisRots  int
}

// planRebase works out the axis connecting originBase to targetBase and,
// when either side is a pentagon, how many corrective rotations the
// unfolding needs. It reports StatusNotNeighbor if the two base cells
// aren't adjacent, and StatusPentagon if the pentagon's missing k-axis
// makes the unfolding impossible to express.
func planRebase(origin, h3 CellID, originBase, targetBase int) (rebaseAcrossPentagon, Status) {
	var plan rebaseAcrossPentagon
	plan.axis, plan.reverseAxis = AxisCenter, AxisCenter

	if originBase == targetBase {
		return plan, StatusOK
	}

	plan.axis = _getBaseCellDirection(originBase, targetBase)
	if plan.axis == AxisInvalid {
		return plan, StatusNotNeighbor
	}
	plan.reverseAxis = _getBaseCellDirection(targetBase, originBase)
	if plan.reverseAxis == AxisInvalid {
		panic("cellgrid: base cell direction has no inverse")
	}

	originOnPent := _isBaseCellPentagon(originBase)
	targetOnPent := _isBaseCellPentagon(targetBase)
	if originOnPent && targetOnPent {
		panic("cellgrid: pentagon base cells cannot neighbor each other")
	}

	switch {
	case originOnPent:
		leading := _h3LeadingNonZeroDigit(origin)
		if unfoldForbidden[leading][plan.axis] {
			return plan, StatusPentagon
		}
		plan.axisRots = pentagonRotationsCW[leading][plan.axis]
		plan.pentagonRots = plan.axisRots
	case targetOnPent:
		leading := _h3LeadingNonZeroDigit(h3)
		if unfoldForbidden[leading][plan.reverseAxis] {
			return plan, StatusPentagon
		}
		plan.pentagonRots = pentagonRotationsCW[plan.reverseAxis][leading]
	}

	if plan.pentagonRots < 0 || plan.axisRots < 0 {
		panic("cellgrid: negative pentagon rotation count")
	}
	return plan, StatusOK
}

// cellToLocalIJK produces ijk+ coordinates for h3, anchored by origin.
//
// The coordinate space this produces may have deleted regions or warping
// due to pentagonal distortion; coordinates are only comparable against
// others computed against the same origin.
func cellToLocalIJK(origin CellID, h3 CellID, out *CubeCoord) Status {
	res := getResolution(origin)
	if res != getResolution(h3) {
		return StatusResMismatch
	}

	originBase := getBaseCell(origin)
	targetBase := getBaseCell(h3)
	originOnPent := _isBaseCellPentagon(originBase)
	targetOnPent := _isBaseCellPentagon(targetBase)

	plan, status := planRebase(origin, h3, originBase, targetBase)
	if status != StatusOK {
		return status
	}

	if plan.axis != AxisCenter {
		h3, plan.reverseAxis = rotateTowardOrigin(h3, targetOnPent, plan.reverseAxis,
			baseCellNeighbor60CCWRots[originBase][plan.axis])
	}

	var indexFijk FaceCoord
	_h3ToFaceIjkWithInitializedFijk(h3, &indexFijk) // face is unused past this point

	switch {
	case plan.axis != AxisCenter:
		for i := 0; i < plan.pentagonRots; i++ {
			_ijkRotate60cw(&indexFijk.coord)
		}

		var offset CubeCoord
		_neighbor(&offset, plan.axis)
		for r := res - 1; r >= 0; r-- {
			if isResClassIII(r + 1) {
				_downAp7(&offset)
			} else {
				_downAp7r(&offset)
			}
		}
		for i := 0; i < plan.axisRots; i++ {
			_ijkRotate60cw(&offset)
		}

		_ijkAdd(&indexFijk.coord, &offset, &indexFijk.coord)
		_ijkNormalize(&indexFijk.coord)

	case originOnPent && targetOnPent:
		// Base cells agreeing and both on a pentagon means they're the
		// same base cell; only the within-cell digit rotation applies.
		originLeading := _h3LeadingNonZeroDigit(origin)
		targetLeading := _h3LeadingNonZeroDigit(h3)
		if unfoldForbidden[originLeading][targetLeading] {
			return StatusPentagon
		}
		rots := pentagonRotationsCW[originLeading][targetLeading]
		for i := 0; i < rots; i++ {
			_ijkRotate60cw(&indexFijk.coord)
		}
	}

	*out = indexFijk.coord
	return StatusOK
}

// rotateTowardOrigin rotates h3 (cw) into the orientation of the origin
// base cell, tracking how the reverse axis rotates alongside it. Pentagons
// rotate with _h3RotatePent60cw and step the reverse axis past the k-axis,
// since that digit slot is missing on a pentagon.
func rotateTowardOrigin(h3 CellID, onPentagon bool, reverseAxis Axis, steps int) (CellID, Axis) {
	for i := 0; i < steps; i++ {
		if onPentagon {
			h3 = _h3RotatePent60cw(h3)
			reverseAxis = _rotate60cw(reverseAxis)
			if reverseAxis == AxisK {
				reverseAxis = _rotate60cw(reverseAxis)
			}
		} else {
			h3 = _h3Rotate60cw(h3)
			reverseAxis = _rotate60cw(reverseAxis)
		}
	}
	return h3, reverseAxis
}

// cellFromLocalIJK produces the cell at ijk+ coordinates anchored by
// origin, the inverse of cellToLocalIJK.
func cellFromLocalIJK(origin CellID, ijk *CubeCoord, out *CellID) Status {
	res := getResolution(origin)
	originBase := getBaseCell(origin)
	originOnPent := _isBaseCellPentagon(originBase)

	*out = cellInit
	setMode(out, hexagonMode)
	setResolution(out, res)

	if res == 0 {
		return resolveRes0Neighbor(originBase, ijk, out)
	}

	ijkCopy := *ijk
	for r := res - 1; r >= 0; r-- {
		if status := descendOneDigit(out, r, &ijkCopy); status != StatusOK {
			return status
		}
	}

	if ijkCopy.i > 1 || ijkCopy.j > 1 || ijkCopy.k > 1 {
		return StatusInvalidArg
	}

	dir := _unitIjkToDigit(&ijkCopy)
	targetBase := _getBaseCellNeighbor(originBase, dir)
	targetOnPent := targetBase != InvalidBaseCell && _isBaseCellPentagon(targetBase)

	if dir != AxisCenter {
		var status Status
		targetBase, targetOnPent, status = rebaseDigitsOntoTarget(out, origin, originBase, originOnPent, targetOnPent, dir)
		if status != StatusOK {
			return status
		}
	} else if originOnPent && targetOnPent {
		if status := rotateWithinSharedPentagon(out, origin); status != StatusOK {
			return status
		}
	}

	if targetOnPent && _h3LeadingNonZeroDigit(*out) == AxisK {
		// The recovered index would fall in the pentagon's deleted
		// subsequence: there is no cell here.
		return StatusPentagon
	}

	setBaseCell(out, targetBase)
	return StatusOK
}

// resolveRes0Neighbor handles the degenerate resolution-0 case, where ijk
// selects a base cell directly rather than a digit within one.
func resolveRes0Neighbor(originBase int, ijk *CubeCoord, out *CellID) Status {
	if ijk.i > 1 || ijk.j > 1 || ijk.k > 1 {
		return StatusInvalidArg
	}
	newBase := _getBaseCellNeighbor(originBase, _unitIjkToDigit(ijk))
	if newBase == InvalidBaseCell {
		return StatusPentagon // moving off a pentagon in an invalid direction
	}
	setBaseCell(out, newBase)
	return StatusOK
}

// descendOneDigit climbs ijkCopy up one aperture-7 level (undoing the
// substrate scaling for resolution r+1) and records the digit this
// implies at that resolution into out.
func descendOneDigit(out *CellID, r int, ijkCopy *CubeCoord) Status {
	lastIJK := *ijkCopy
	var lastCenter CubeCoord
	if isResClassIII(r + 1) {
		_upAp7(ijkCopy)
		lastCenter = *ijkCopy
		_downAp7(&lastCenter)
	} else {
		_upAp7r(ijkCopy)
		lastCenter = *ijkCopy
		_downAp7r(&lastCenter)
	}

	var diff CubeCoord
	_ijkSub(&lastIJK, &lastCenter, &diff)
	_ijkNormalize(&diff)
	setIndexDigit(out, r+1, _unitIjkToDigit(&diff))
	return StatusOK
}

// rebaseDigitsOntoTarget reconciles a warped base-cell direction, applying
// whatever digit rotations are needed so *out reads correctly in the
// target base cell's own coordinate system.
func rebaseDigitsOntoTarget(out *CellID, origin CellID, originBase int, originOnPent, targetOnPent bool, dir Axis) (int, bool, Status) {
	pentagonRots := 0
	if originOnPent {
		leading := _h3LeadingNonZeroDigit(origin)
		pentagonRots = pentagonRotationsReverseCCW[leading][dir]
		for i := 0; i < pentagonRots; i++ {
			dir = _rotate60ccw(dir)
		}
		if dir == AxisK {
			return InvalidBaseCell, false, StatusPentagon
		}
	}

	targetBase := _getBaseCellNeighbor(originBase, dir)
	if targetBase == InvalidBaseCell {
		panic("cellgrid: base cell neighbor resolved to invalid after pentagon correction")
	}
	if originOnPent && _isBaseCellPentagon(targetBase) {
		panic("cellgrid: pentagon base cells cannot neighbor each other")
	}
	targetOnPent = _isBaseCellPentagon(targetBase)

	baseRots := baseCellNeighbor60CCWRots[originBase][dir]
	if baseRots < 0 {
		panic("cellgrid: missing base cell rotation table entry")
	}

	if targetOnPent {
		reverseAxis := _getBaseCellDirection(targetBase, originBase)
		if reverseAxis == AxisInvalid {
			panic("cellgrid: base cell direction has no inverse")
		}

		for i := 0; i < baseRots; i++ {
			*out = _h3Rotate60ccw(*out)
		}

		leading := _h3LeadingNonZeroDigit(*out)
		if _isBaseCellPolarPentagon(targetBase) {
			pentagonRots = pentagonRotationsReversePolarCCW[reverseAxis][leading]
		} else {
			pentagonRots = pentagonRotationsReverseNonpolarCCW[reverseAxis][leading]
		}
		if pentagonRots < 0 {
			panic("cellgrid: negative reverse pentagon rotation count")
		}
		for i := 0; i < pentagonRots; i++ {
			*out = _h3RotatePent60ccw(*out)
		}
	} else {
		for i := 0; i < pentagonRots; i++ {
			*out = _h3Rotate60ccw(*out)
		}
		for i := 0; i < baseRots; i++ {
			*out = _h3Rotate60ccw(*out)
		}
	}

	return targetBase, targetOnPent, StatusOK
}

// rotateWithinSharedPentagon applies the digit rotation needed when origin
// and target resolve to the same pentagon base cell.
func rotateWithinSharedPentagon(out *CellID, origin CellID) Status {
	originLeading := _h3LeadingNonZeroDigit(origin)
	targetLeading := _h3LeadingNonZeroDigit(*out)
	rots := pentagonRotationsReverseCCW[originLeading][targetLeading]
	if rots < 0 {
		panic("cellgrid: negative within-pentagon rotation count")
	}
	for i := 0; i < rots; i++ {
		*out = _h3Rotate60ccw(*out)
	}
	return StatusOK
}

// CellToLocalIJ produces ij coordinates for h3, anchored by origin.
//
// The coordinate space this produces may have deleted regions or warping
// due to pentagonal distortion; coordinates are only comparable against
// others computed against the same origin. This API is experimental and
// its output is not guaranteed stable across versions.
func CellToLocalIJ(origin CellID, h3 CellID, out *PlanarCoord) Status {
	var ijk CubeCoord
	if status := cellToLocalIJK(origin, h3, &ijk); status != StatusOK {
		return status
	}
	ijkToIj(&ijk, out)
	return StatusOK
}

// LocalIJToCell produces the cell at ij coordinates anchored by origin.
//
// This API is experimental and its output is not guaranteed stable across
// versions.
func LocalIJToCell(origin CellID, ij *PlanarCoord, out *CellID) Status {
	var ijk CubeCoord
	ijToIjk(ij, &ijk)
	return cellFromLocalIJK(origin, &ijk, out)
}

// CellDistance returns the grid distance between origin and h3, or -1 if
// the distance can't be computed (for example, across a pentagon, or for
// cells too far apart to share a local IJK substrate).
func CellDistance(origin CellID, h3 CellID) int {
	var originIjk, h3Ijk CubeCoord
	if cellToLocalIJK(origin, origin, &originIjk) != StatusOK {
		return -1 // LCOV_EXCL_LINE: origin-to-self never fails in practice
	}
	if cellToLocalIJK(origin, h3, &h3Ijk) != StatusOK {
		return -1
	}
	return ijkDistance(&originIjk, &h3Ijk)
}

// CellLineSize returns the number of cells a CellLine between start and end
// would hold, for sizing the destination slice, or a negative number if the
// line cannot be computed.
func CellLineSize(start CellID, end CellID) int {
	distance := CellDistance(start, end)
	if distance >= 0 {
		return distance + 1
	}
	return distance
}

// cubeRound snaps floating-point cube coordinates to the nearest valid
// integer triple, correcting whichever axis drifted furthest from an
// integer so the i+j+k == 0 invariant survives rounding. Algorithm from
// https://www.redblobgames.com/grids/hexagons/#rounding.
func cubeRound(i, j, k float64, ijk *CubeCoord) {
	ri, rj, rk := math.Round(i), math.Round(j), math.Round(k)
	iDiff, jDiff, kDiff := math.Abs(ri-i), math.Abs(rj-j), math.Abs(rk-k)

	switch {
	case iDiff > jDiff && iDiff > kDiff:
		ri = -rj - rk
	case jDiff > kDiff:
		rj = -ri - rk
	default:
		rk = -ri - rj
	}

	ijk.i, ijk.j, ijk.k = int(ri), int(rj), int(rk)
}

// CellLine fills out with the cells on the grid line from start to end,
// inclusive. It fails with the same status cellToLocalIJK would return for
// cells that can't share a local IJK substrate.
//
// The only guarantees on the result are that it has CellDistance(start,
// end) + 1 entries and that consecutive entries are grid neighbors — the
// exact path is not guaranteed stable across versions, and need not track
// a Cartesian line or great-circle arc.
func CellLine(start CellID, end CellID, out *[]CellID) Status {
	var startIjk, endIjk CubeCoord
	if status := cellToLocalIJK(start, start, &startIjk); status != StatusOK {
		return status
	}
	if status := cellToLocalIJK(start, end, &endIjk); status != StatusOK {
		return status
	}
	distance := ijkDistance(&startIjk, &endIjk)

	ijkToCube(&startIjk)
	ijkToCube(&endIjk)

	iStep, jStep, kStep := 0.0, 0.0, 0.0
	if distance > 0 {
		iStep = float64(endIjk.i-startIjk.i) / float64(distance)
		jStep = float64(endIjk.j-startIjk.j) / float64(distance)
		kStep = float64(endIjk.k-startIjk.k) / float64(distance)
	}

	currentIjk := startIjk
	for n := 0; n <= distance; n++ {
		cubeRound(float64(startIjk.i)+iStep*float64(n),
			float64(startIjk.j)+jStep*float64(n),
			float64(startIjk.k)+kStep*float64(n), &currentIjk)
		cubeToIjk(&currentIjk)
		cellFromLocalIJK(start, &currentIjk, &(*out)[n])
	}

	return StatusOK
}
