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

import (
	"math"
	"strconv"
)

type CellID uint64

// define's of constants for bitwise manipulation of CellID's.
const (
	// The number of bits in an H3 index.
	numBits = 64

	// The bit offset of the high bit in an H3 index.
	maxOffset = 63

	// The bit offset of the mode in an H3 index.
	modeOffset = 59

	// The bit offset of the base cell in an H3 index.
	baseCellOffset = 45

	// The bit offset of the resolution in an H3 index.
	resOffset = 52

	// The bit offset of the reserved bits in an H3 index.
	reservedOffset = 56

	// The number of bits in a single H3 resolution digit.
	perDigitOffset = 3

	// 1's in the 3 bits of a single resolution digit, 0's everywhere else.
	digitMask = uint64(7)
)

// bitField describes a fixed-width, fixed-offset run of bits packed into a
// CellID's 64 bits. get/set isolate the shift-and-mask arithmetic so each
// named field (mode, base cell, resolution, ...) is declared once as data
// rather than as a hand-written pair of bit-twiddling functions.
type bitField struct {
	mask    uint64
	negMask uint64
	offset  uint
}

func newBitField(widthBits, offset uint) bitField {
	mask := (uint64(1)<<widthBits - 1) << offset
	return bitField{mask: mask, negMask: ^mask, offset: offset}
}

func (f bitField) get(h3 CellID) int {
	return int((uint64(h3) & f.mask) >> f.offset)
}

func (f bitField) set(h3 *CellID, v int) {
	*h3 = CellID((uint64(*h3) & f.negMask) | (uint64(v) << f.offset))
}

// digitField returns the bitField for the resolution-res index digit; each
// digit is 3 bits wide and digits pack from the finest resolution inward.
func digitField(res int) bitField {
	return newBitField(perDigitOffset, uint((MaxResolution-res)*perDigitOffset))
}

var (
	highBitField  = newBitField(1, maxOffset)
	modeField     = newBitField(4, modeOffset)
	baseCellField = newBitField(7, baseCellOffset)
	resField      = newBitField(4, resOffset)
	reservedField = newBitField(3, reservedOffset)
)

// H3 index with mode 0, res 0, base cell 0, and 7 for all index digits.
// Typically used to initialize the creation of an H3 cell index, which
// expects all direction digits to be 7 beyond the cell's resolution.
const cellInit = CellID(35184372088831)

// Invalid index used to indicate an error from latLngToCell and related functions
// or missing data in arrays of h3 indices. Analogous to NaN in floating point.
const CellNil = CellID(0)

/* ========================================================================== */

// GetHighBit gets the highest bit of the H3 index.
func (h3 CellID) GetHighBit() int { return highBitField.get(h3) }

// SetHighBit sets the highest bit of the h3 to v.
func (h3 *CellID) SetHighBit(v int) { highBitField.set(h3, v) }

// GetMode gets the integer mode of h3.
func (h3 CellID) GetMode() int { return modeField.get(h3) }

// SetMode sets the integer mode of h3 to v.
func (h3 *CellID) SetMode(v int) { modeField.set(h3, v) }

// GetBaseCell gets the integer base cell of h3.
func (h3 CellID) GetBaseCell() int { return baseCellField.get(h3) }

// SetBaseCell sets the integer base cell of h3 to bc.
func (h3 *CellID) SetBaseCell(bc int) { baseCellField.set(h3, bc) }

// GetResolution gets the integer resolution of h3.
func (h3 CellID) GetResolution() int { return resField.get(h3) }

// SetResolution sets the integer resolution of h3.
func (h3 *CellID) SetResolution(res int) { resField.set(h3, res) }

// GetReservedBits gets a value in the reserved space. Should always be zero for valid indexes.
func (h3 CellID) GetReservedBits() int { return reservedField.get(h3) }

// SetReservedBits sets a value in the reserved space. Setting to non-zero
// may produce invalid indexes.
func (h3 *CellID) SetReservedBits(v int) { reservedField.set(h3, v) }

// GetIndexDigit gets the resolution res integer digit (0-7) of h3.
func (h3 CellID) GetIndexDigit(res int) Axis {
	return Axis(digitField(res).get(h3))
}

// SetIndexDigit sets the resolution res digit of h3 to the integer digit (0-7)
func (h3 *CellID) SetIndexDigit(res int, digit Axis) {
	digitField(res).set(h3, int(digit))
}

// getHighBit gets the highest bit of the H3 index.
func getHighBit(h3 CellID) int {
	return h3.GetHighBit()
}

// setHighBit sets the highest bit of the h3 to v.
func setHighBit(h3 *CellID, v int) {
	h3.SetHighBit(v)
}

// getMode gets the integer mode of h3.
func getMode(h3 CellID) int {
	return h3.GetMode()
}

// setMode sets the integer mode of h3 to v.
func setMode(h3 *CellID, v int) {
	h3.SetMode(v)
}

// getBaseCell gets the integer base cell of h3.
func getBaseCell(h3 CellID) int {
	return h3.GetBaseCell()
}

// setBaseCell sets the integer base cell of h3 to bc.
func setBaseCell(h3 *CellID, bc int) {
	h3.SetBaseCell(bc)
}

// getResolution gets the integer resolution of h3.
func getResolution(h3 CellID) int {
	return h3.GetResolution()
}

// setResolution sets the integer resolution of h3.
func setResolution(h3 *CellID, res int) {
	h3.SetResolution(res)
}

// getReservedBits gets a value in the reserved space. Should always be
// zero for valid indexes.
func getReservedBits(h3 CellID) int {
	return h3.GetReservedBits()
}

// setReservedBits sets a value in the reserved space. Setting to
// non-zero may produce invalid indexes.
func setReservedBits(h3 *CellID, v int) {
	h3.SetReservedBits(v)
}

// getIndexDigit gets the resolution res integer digit (0-7) of h3.
func getIndexDigit(h3 CellID, res int) Axis {
	return h3.GetIndexDigit(res)
}

// setIndexDigit sets the resolution res digit of h3 to the integer
// digit (0-7).
func setIndexDigit(h3 *CellID, res int, digit Axis) {
	h3.SetIndexDigit(res, digit)
}

// ParseCellID converts a string representation of an H3 index into an H3 index.
//
// Return The H3 index corresponding to the string argument, or CellNil if
// invalid.
func ParseCellID(str string) CellID {
	// If failed, h will be unmodified and we should return CellNil anyways.
	u64, err := strconv.ParseUint(str, 16, 64)
	if err != nil {
		return CellNil
	}
	return CellID(u64)
}

// String converts an H3 index into a string representation.
func (h3 CellID) String() string {
	return strconv.FormatUint(uint64(h3), 16)
}

// isValidCell returns whether or not an H3 index is a valid cell (hexagon or
// pentagon).
func isValidCell(h CellID) bool {
	return h.IsValid()
}

// IsValid returns whether or not an H3 index is a valid cell (hexagon or
// pentagon).
//
// Return true if the H3 index if valid, and false if it is not.
func (h3 CellID) IsValid() bool {
	if getHighBit(h3) != 0 {
		return false
	}

	if getMode(h3) != hexagonMode {
		return false
	}

	if getReservedBits(h3) != 0 {
		return false
	}

	baseCell := getBaseCell(h3)
	if baseCell < 0 || baseCell >= NumBaseCells {
		return false
	}

	res := getResolution(h3)
	if res < 0 || res > MaxResolution {
		return false
	}

	foundFirstNonZeroDigit := false
	for r := 1; r <= res; r++ {
		digit := getIndexDigit(h3, r)

		if !foundFirstNonZeroDigit && digit != AxisCenter {
			foundFirstNonZeroDigit = true
			if _isBaseCellPentagon(baseCell) && digit == AxisK {
				return false
			}
		}

		if digit < AxisCenter || digit >= Axis(NumDigits) {
			return false
		}
	}

	for r := res + 1; r <= MaxResolution; r++ {
		digit := getIndexDigit(h3, r)
		if digit != AxisInvalid {
			return false
		}
	}

	return true
}

// _newCellID initializes an H3 index.
func _newCellID(res int, baseCell int, initDigit Axis) CellID {
	h := cellInit
	setMode(&h, hexagonMode)
	setResolution(&h, res)
	setBaseCell(&h, baseCell)
	for r := 1; r <= res; r++ {
		setIndexDigit(&h, r, initDigit)
	}
	return h
}

// ToParent produces the parent index for a given H3 index
//
// Return CellID of the parent, or CellNil if you actually asked for a child
func (h3 CellID) ToParent(parentRes int) CellID {
	childRes := getResolution(h3)
	if parentRes > childRes {
		return CellNil
	} else if parentRes == childRes {
		return h3
	} else if parentRes < 0 || parentRes > MaxResolution {
		return CellNil
	}

	parentH := h3
	setResolution(&parentH, parentRes)
	for i := parentRes + 1; i <= childRes; i++ {
		setIndexDigit(&parentH, i, Axis(digitMask))
	}
	return parentH
}

// cellToParent returns the parent index of h at parentRes.
func cellToParent(h CellID, parentRes int) CellID {
	return h.ToParent(parentRes)
}

// _isValidChildRes determines whether one resolution is a valid child
// resolution of another. Each resolution is considered a valid child resolution
// of itself.
//
// Return The validity of the child resolution.
func _isValidChildRes(parentRes int, childRes int) bool {
	if childRes < parentRes || childRes > MaxResolution {
		return false
	}
	return true
}

// MaxChildrenSize returns the maximum number of children possible for a
// given child level.
//
// Return int count of maximum number of children (equal for hexagons, less for
// pentagons.
func MaxChildrenSize(h CellID, childRes int) int {
	parentRes := getResolution(h)
	if !_isValidChildRes(parentRes, childRes) {
		return 0
	}
	return intPow(7, childRes-parentRes)
}

// makeDirectChild takes an index and immediately returns the immediate child
// index based on the specified cell number. Bit operations only, could generate
// invalid indexes if not careful (deleted cell under a pentagon).
//
// Return The new CellID for the child.
func makeDirectChild(h CellID, cellNumber Axis) CellID {
	childRes := getResolution(h) + 1

	childH := h
	setResolution(&childH, childRes)
	setIndexDigit(&childH, childRes, cellNumber)
	return childH
}

// ToChildren takes the given hexagon id and generates all of the children
// at the specified resolution.
//
// TODO: enhance algorithm
func (h3 CellID) ToChildren(childRes int) []CellID {
	buffer := make([]CellID, 0, MaxChildrenSize(h3, childRes))
	cellToChildren(h3, childRes, &buffer)
	return buffer
}

// cellToChildren appends all descendants of h at childRes to children.
func cellToChildren(h CellID, childRes int, children *[]CellID) {
	parentRes := getResolution(h)
	if !_isValidChildRes(parentRes, childRes) {
		return
	} else if parentRes == childRes {
		*children = append(*children, h)
		return
	}

	isAPentagon := cellIsPentagon(h)
	for i := AxisCenter; i < 7; i++ {
		if isAPentagon && i == AxisK {
			continue
		}

		cellToChildren(makeDirectChild(h, i), childRes, children)
	}
}

// ToCenterChild produces the center child index for a given H3 index at
// the specified resolution.
//
// Return CellID of the center child, or CellNil if you actually asked for a
// parent.
func (h3 CellID) ToCenterChild(childRes int) CellID {
	parentRes := getResolution(h3)
	if !_isValidChildRes(parentRes, childRes) {
		return CellNil
	} else if childRes == parentRes {
		return h3
	}

	child := h3
	setResolution(&child, childRes)
	for i := parentRes + 1; i <= childRes; i++ {
		setIndexDigit(&child, i, 0)
	}
	return child
}

// Compact takes a set of hexagons all at the same resolution and compresses
// them by pruning full child branches to the parent level. This is also done
// for all parents recursively to get the minimum number of hex addresses that
// perfectly cover the defined space.
//
// Return an error code on bad input data.
func Compact(h3Set []CellID) ([]CellID, error) {
	if len(h3Set) == 0 {
		return nil, nil
	}

	res := getResolution(h3Set[0])
	if res == 0 {
		compacted := make([]CellID, len(h3Set))
		copy(compacted, h3Set)
		return compacted, nil
	}

	result := make([]CellID, 0, len(h3Set))
	remaining := make([]CellID, len(h3Set))
	copy(remaining, h3Set)

	for len(remaining) > 0 {
		if len(remaining) < 6 {
			// cannot compact more. append and break
			result = append(result, remaining...)
			break
		}

		// map[cell]count
		compactable := make(map[CellID]int, len(remaining))

		res := getResolution(remaining[0])
		parentRes := res - 1

		// count parent cells
		for _, cell := range remaining {
			parent := cellToParent(cell, parentRes)
			if !isValidCell(parent) {
				return nil, ErrCompactBadData
			}
			isPentagon := cellIsPentagon(parent)
			if _, ok := compactable[parent]; ok {
				compactable[parent]++
				if compactable[parent] > 7 {
					return nil, ErrCompactDuplicate
				}
			} else if isPentagon {
				// set 2 if cell is pentagon. it helps checking if dragonball is completed.
				compactable[parent] = 2
			} else {
				compactable[parent] = 1
			}
		}

		// append uncompactable cells into result and cleanup remaining
		for i, cell := range remaining {
			parent := cellToParent(cell, parentRes)
			if compactable[parent] < 7 {
				result = append(result, cell)
			}
			remaining[i] = 0
		}
		remaining = remaining[:0]

		// move compactable cells to remaining
		for cell, count := range compactable {
			if count == 7 {
				remaining = append(remaining, cell)
			}
		}
	}

	return result, nil
}

// Uncompact takes a compressed set of hexagons and expands back to the original
// set of hexagons.
//
// Return ErrUncompactResExceeded if any hexagon is smaller than the output
// resolution.
func Uncompact(compactedSet []CellID, res int) ([]CellID, error) {
	maxSize, err := MaxUncompactSize(compactedSet, res)
	if err != nil {
		return nil, err
	}

	h3Set := make([]CellID, 0, maxSize)

	for _, cell := range compactedSet {
		if cell == 0 {
			continue
		}

		if cell.GetResolution() == res {
			h3Set = append(h3Set, cell)
		} else {
			h3Set = append(h3Set, cell.ToChildren(res)...)
		}
	}

	return h3Set, nil
}

// MaxUncompactSize takes a compacted set of hexagons are provides an
// upper-bound estimate of the size of the uncompacted set of hexagons.
//
// Return The number of hexagons to allocate memory for, or 0 and
// ErrUncompactResExceeded if a member is finer than res.
func MaxUncompactSize(compactedSet []CellID, res int) (int, error) {
	maxNumHexagons := 0
	for i := 0; i < len(compactedSet); i++ {
		if compactedSet[i] == 0 {
			continue
		}
		currentRes := getResolution(compactedSet[i])
		if !_isValidChildRes(currentRes, res) {
			// Nonsensical. Abort.
			return 0, ErrUncompactResExceeded
		}
		if currentRes == res {
			maxNumHexagons++
		} else {
			// Bigger hexagon to reduce in size
			maxNumHexagons += MaxChildrenSize(compactedSet[i], res)
		}
	}
	return maxNumHexagons, nil
}

// IsResClassIII takes a hexagon ID and determines if it is in a Class III
// resolution (rotated versus the icosahedron and subject to shape distortion
// adding extra points on icosahedron edges, making them not true hexagons).
//
// Return true if the hexagon is class III, otherwise false.
func (h3 CellID) IsResClassIII() bool {
	return getResolution(h3)%2 == 1
}

// IsPentagon takes an CellID and determines if it is actually a
// pentagon.
//
// Return true if it is a pentagon, otherwise false.
func (h3 CellID) IsPentagon() bool {
	return _isBaseCellPentagon(getBaseCell(h3)) &&
		_h3LeadingNonZeroDigit(h3) == AxisCenter
}

// cellIsPentagon reports whether h is a pentagon.
func cellIsPentagon(h CellID) bool {
	return h.IsPentagon()
}

// _h3LeadingNonZeroDigit returns the first non-zero digit of a CellID,
// scanning from resolution 1 toward finer resolutions.
func _h3LeadingNonZeroDigit(h CellID) Axis {
	for r := 1; r <= getResolution(h); r++ {
		if getIndexDigit(h, r) != AxisCenter {
			return getIndexDigit(h, r)
		}
	}

	// if we're here it's all 0's
	return AxisCenter
}

// _h3RotatePent60ccw rotate an CellID 60 degrees counter-clockwise about a
// pentagonal center.
func _h3RotatePent60ccw(h CellID) CellID {
	// rotate in place; skips any leading 1 digits (k-axis)

	foundFirstNonZeroDigit := false
	for r, res := 1, getResolution(h); r <= res; r++ {
		// rotate this digit
		setIndexDigit(&h, r, _rotate60ccw(getIndexDigit(h, r)))

		// look for the first non-zero digit so we
		// can adjust for deleted k-axes sequence
		// if necessary
		if !foundFirstNonZeroDigit && getIndexDigit(h, r) != 0 {
			foundFirstNonZeroDigit = true

			// adjust for deleted k-axes sequence
			if _h3LeadingNonZeroDigit(h) == AxisK {
				h = _h3Rotate60ccw(h)
			}
		}
	}
	return h
}

// _h3RotatePent60cw rotate an CellID 60 degrees clockwise about a pentagonal
// center.
func _h3RotatePent60cw(h CellID) CellID {
	// rotate in place; skips any leading 1 digits (k-axis)

	foundFirstNonZeroDigit := false
	for r, res := 1, getResolution(h); r <= res; r++ {
		// rotate this digit
		setIndexDigit(&h, r, _rotate60cw(getIndexDigit(h, r)))

		// look for the first non-zero digit so we
		// can adjust for deleted k-axes sequence
		// if necessary
		if !foundFirstNonZeroDigit && getIndexDigit(h, r) != 0 {
			foundFirstNonZeroDigit = true

			// adjust for deleted k-axes sequence
			if _h3LeadingNonZeroDigit(h) == AxisK {
				h = _h3Rotate60cw(h)
			}
		}
	}
	return h
}

// _h3Rotate60ccw rotate an CellID 60 degrees counter-clockwise.
func _h3Rotate60ccw(h CellID) CellID {
	for r, res := 1, getResolution(h); r <= res; r++ {
		oldDigit := getIndexDigit(h, r)
		setIndexDigit(&h, r, _rotate60ccw(oldDigit))
	}

	return h
}

// _h3Rotate60cw rotate an CellID 60 degrees clockwise.
func _h3Rotate60cw(h CellID) CellID {
	for r, res := 1, getResolution(h); r <= res; r++ {
		setIndexDigit(&h, r, _rotate60cw(getIndexDigit(h, r)))
	}

	return h
}

// _faceCoordToCell convert an FaceCoord address to the corresponding CellID.
//
// Return The encoded CellID (or CellNil on failure).
func _faceCoordToCell(fijk *FaceCoord, res int) CellID {
	// initialize the index
	h := cellInit
	setMode(&h, hexagonMode)
	setResolution(&h, res)

	// check for res 0/base cell
	if res == 0 {
		if fijk.coord.i > MaxFaceCoord ||
			fijk.coord.j > MaxFaceCoord ||
			fijk.coord.k > MaxFaceCoord {
			// out of range input
			return CellNil
		}

		setBaseCell(&h, _faceIjkToBaseCell(fijk))
		return h
	}

	// we need to find the correct base cell FaceCoord for this H3 index;
	// start with the passed in face and resolution res ijk coordinates
	// in that face's coordinate system
	fijkBC := *fijk

	// build the CellID from finest res up
	// adjust r for the fact that the res 0 base cell offsets the indexing
	// digits
	ijk := &fijkBC.coord
	for r := res - 1; r >= 0; r-- {
		lastIJK := *ijk
		var lastCenter CubeCoord
		if isResClassIII(r + 1) {
			// rotate ccw
			_upAp7(ijk)
			lastCenter = *ijk
			_downAp7(&lastCenter)
		} else {
			// rotate cw
			_upAp7r(ijk)
			lastCenter = *ijk
			_downAp7r(&lastCenter)
		}

		var diff CubeCoord
		_ijkSub(&lastIJK, &lastCenter, &diff)
		_ijkNormalize(&diff)

		setIndexDigit(&h, r+1, _unitIjkToDigit(&diff))
	}

	// fijkBC should now hold the IJK of the base cell in the
	// coordinate system of the current face

	if fijkBC.coord.i > MaxFaceCoord ||
		fijkBC.coord.j > MaxFaceCoord ||
		fijkBC.coord.k > MaxFaceCoord {
		// out of range input
		return CellNil
	}

	// lookup the correct base cell
	baseCell := _faceIjkToBaseCell(&fijkBC)
	setBaseCell(&h, baseCell)

	// rotate if necessary to get canonical base cell orientation
	// for this base cell
	numRots := _faceIjkToBaseCellCCWrot60(&fijkBC)
	if _isBaseCellPentagon(baseCell) {
		// force rotation out of missing k-axes sub-sequence
		if _h3LeadingNonZeroDigit(h) == AxisK {
			// check for a cw/ccw offset face; default is ccw
			if _baseCellIsCwOffset(baseCell, fijkBC.face) {
				h = _h3Rotate60cw(h)
			} else {
				h = _h3Rotate60ccw(h)
			}
		}

		for i := 0; i < numRots; i++ {
			h = _h3RotatePent60ccw(h)
		}
	} else {
		for i := 0; i < numRots; i++ {
			h = _h3Rotate60ccw(h)
		}
	}

	return h
}

// LatLngToCell encodes a coordinate on the sphere to the H3 index of the containing cell at
// the specified resolution.
//
// Return The encoded CellID (or CellNil on failure).
func LatLngToCell(g *LatLng, res int) CellID {
	if res < 0 || res > MaxResolution {
		return CellNil
	}

	if math.IsInf(g.lat, 0) || math.IsInf(g.lon, 0) {
		return CellNil
	}

	var fijk FaceCoord
	_geoToFaceIjk(g, res, &fijk)
	return _faceCoordToCell(&fijk, res)
}

// _h3ToFaceIjkWithInitializedFijk convert an CellID to the FaceCoord address on
// a specified icosahedral face.
//
// Return true if the possibility of overage exists, otherwise false.
func _h3ToFaceIjkWithInitializedFijk(h CellID, fijk *FaceCoord) bool {
	ijk := &fijk.coord
	res := getResolution(h)

	// center base cell hierarchy is entirely on this face
	possibleOverage := true
	if !_isBaseCellPentagon(getBaseCell(h)) &&
		(res == 0 ||
			(fijk.coord.i == 0 && fijk.coord.j == 0 && fijk.coord.k == 0)) {
		possibleOverage = false
	}

	for r := 1; r <= res; r++ {
		if isResClassIII(r) {
			// Class III == rotate ccw
			_downAp7(ijk)
		} else {
			// Class II == rotate cw
			_downAp7r(ijk)
		}

		_neighbor(ijk, getIndexDigit(h, r))
	}

	return possibleOverage
}

// _h3ToFaceIjk convert an CellID to a FaceCoord address.
func _h3ToFaceIjk(h CellID, fijk *FaceCoord) {
	baseCell := getBaseCell(h)
	// adjust for the pentagonal missing sequence; all of sub-sequence 5 needs
	// to be adjusted (and some of sub-sequence 4 below)
	if _isBaseCellPentagon(baseCell) && _h3LeadingNonZeroDigit(h) == 5 {
		h = _h3Rotate60cw(h)
	}

	// start with the "home" face and ijk+ coordinates for the base cell of c
	*fijk = baseCellData[baseCell].homeFijk
	if !_h3ToFaceIjkWithInitializedFijk(h, fijk) {
		return // no overage is possible; h lies on this face
	}

	// if we're here we have the potential for an "overage"; i.e., it is
	// possible that c lies on an adjacent face

	origIJK := fijk.coord

	// if we're in Class III, drop into the next finer Class II grid
	res := getResolution(h)
	if isResClassIII(res) {
		// Class III
		_downAp7r(&fijk.coord)
		res++
	}

	// adjust for overage if needed
	// a pentagon base cell with a leading 4 digit requires special handling
	pentLeading4 := (_isBaseCellPentagon(baseCell) && _h3LeadingNonZeroDigit(h) == 4)
	if _adjustOverageClassII(fijk, res, pentLeading4, false) != overageNone {
		// if the base cell is a pentagon we have the potential for secondary
		// overages
		if _isBaseCellPentagon(baseCell) {
			for _adjustOverageClassII(fijk, res, false, false) != overageNone {
				continue
			}
		}

		if res != getResolution(h) {
			_upAp7r(&fijk.coord)
		}
	} else if res != getResolution(h) {
		fijk.coord = origIJK
	}
}

// CellToLatLng determines the spherical coordinates of the center point of an
// CellID.
func CellToLatLng(h3 CellID, g *LatLng) {
	var fijk FaceCoord
	_h3ToFaceIjk(h3, &fijk)
	_faceIjkToGeo(&fijk, getResolution(h3), g)
}

// CellToBoundary determines the cell boundary in spherical coordinates for an H3 index.
func CellToBoundary(h3 CellID, gb *CellBoundary) {
	var fijk FaceCoord
	_h3ToFaceIjk(h3, &fijk)
	if cellIsPentagon(h3) {
		_faceIjkPentToGeoBoundary(&fijk, getResolution(h3), 0,
			NumPentVerts, gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, getResolution(h3), 0, NumHexVerts,
			gb)
	}
}

// MaxFaceCount returns the max number of possible icosahedron faces an H3 index
// may intersect.
func MaxFaceCount(h3 CellID) int {
	// a pentagon always intersects 5 faces, a hexagon never intersects more
	// than 2 (but may only intersect 1)
	if cellIsPentagon(h3) {
		return 5
	}
	return 2
}

// CellFaces find all icosahedron faces intersected by a given H3 index,
// represented as integers from 0-19. The array is sparse; since 0 is a valid
// value, invalid array values are represented as -1. It is the responsibility
// of the caller to filter out invalid values.
//
// @param out Output array. Must be of size maxFaceCount(h3).
func CellFaces(h3 CellID, out *[]int) {
	res := getResolution(h3)
	isPentagon := cellIsPentagon(h3)

	// We can't use the vertex-based approach here for class II pentagons,
	// because all their vertices are on the icosahedron edges. Their
	// direct child pentagons cross the same faces, so use those instead.
	if isPentagon && !isResClassIII(res) {
		// Note that this would not work for res 15, but this is only run on
		// Class II pentagons, it should never be invoked for a res 15 index.
		childPentagon := makeDirectChild(h3, 0)
		CellFaces(childPentagon, out)
		return
	}

	// convert to FaceCoord
	var fijk FaceCoord
	_h3ToFaceIjk(h3, &fijk)

	// Get all vertices as FaceCoord addresses: 5 for a pentagon, 6 for a
	// hexagon
	var fijkVerts []FaceCoord
	var vertexCount int

	if isPentagon {
		vertexCount = NumPentVerts
		fijkVerts = faceIjkPentToVerts(&fijk, &res)
	} else {
		vertexCount = NumHexVerts
		fijkVerts = faceIjkToVerts(&fijk, &res)
	}

	// We may not use all of the slots in the output array,
	// so fill with invalid values to indicate unused slots
	faceCount := MaxFaceCount(h3)
	for i := 0; i < faceCount; i++ {
		(*out)[i] = invalidFace
	}

	// add each vertex face, using the output array as a hash set
	for i := 0; i < vertexCount; i++ {
		vert := &fijkVerts[i]

		// Adjust overage, determining whether this vertex is
		// on another face
		if isPentagon {
			_adjustPentVertOverage(vert, res)
		} else {
			_adjustOverageClassII(vert, res, false, true)
		}

		// Save the face to the output array
		face := vert.face
		pos := 0
		// Find the first empty output position, or the first position
		// matching the current face
		for (*out)[pos] != invalidFace && (*out)[pos] != face {
			pos++
		}
		(*out)[pos] = face
	}
}

// PentagonIndexCount returns the number of pentagons (same at any resolution)
func PentagonIndexCount() int {
	return NumPentagons
}

// GetPentagonIndexes generates all pentagons at the specified resolution.
func GetPentagonIndexes(res int, out *[]CellID) {
	i := 0
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			pentagon := _newCellID(res, bc, 0)
			(*out)[i] = pentagon
			i++
		}
	}
}

// isResClassIII returns whether or not a resolution is a Class III grid. Note
// that odd resolutions are Class III and even resolutions are Class II.
//
// Return true if the resolution is a Class III grid, and false if the
// resolution is a Class II grid.
func isResClassIII(res int) bool {
	return res%2 == 1
}
