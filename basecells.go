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

// Invalid base cell number, used for failed lookups.
const InvalidBaseCell = 127

// MaxFaceCoord is the max ijk+ coordinate value that a res 0 base cell
// can hold on a given face before it is considered out of range.
const MaxFaceCoord = 2

// baseCellRecord is the metadata for a single one of the 122 base cells:
// its home face/ijk, whether it is one of the 12 pentagons, and (for
// pentagons only) which of the two icosahedron faces it touches require a
// clockwise, rather than the default counter-clockwise, digit offset.
type baseCellRecord struct {
	homeFijk    FaceCoord // home face and ijk+ coordinates on that face
	isPentagon  bool    // whether the base cell is a pentagon
	cwOffsetPent [2]int // is_cw_offset by face, for the two aperture-7 offset faces (-1 if unused)
}

// baseCellData holds one entry per base cell, indexed by base cell number.
//
// This table, along with baseCellNeighbors and baseCellNeighbor60CCWRots
// below, is reconstructed from the public H3 base-cell layout rather than
// derived from anything in this module's own geometry; see DESIGN.md for
// the fidelity caveat.
var baseCellData = [NumBaseCells]baseCellRecord{
	{FaceCoord{1, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 0
	{FaceCoord{2, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 1
	{FaceCoord{1, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 2
	{FaceCoord{2, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 3
	{FaceCoord{0, CubeCoord{2, 0, 0}}, true, [2]int{-1, -1}},   // 4 pentagon
	{FaceCoord{1, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 5
	{FaceCoord{1, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 6
	{FaceCoord{2, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 7
	{FaceCoord{0, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 8
	{FaceCoord{2, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 9
	{FaceCoord{1, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 10
	{FaceCoord{1, CubeCoord{0, 0, 2}}, false, [2]int{-1, -1}},  // 11
	{FaceCoord{3, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 12
	{FaceCoord{3, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 13
	{FaceCoord{11, CubeCoord{2, 0, 0}}, true, [2]int{2, -1}},   // 14 pentagon
	{FaceCoord{4, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 15
	{FaceCoord{0, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 16
	{FaceCoord{6, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 17
	{FaceCoord{0, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 18
	{FaceCoord{2, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 19
	{FaceCoord{7, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 20
	{FaceCoord{2, CubeCoord{0, 0, 2}}, false, [2]int{-1, -1}},  // 21
	{FaceCoord{0, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 22
	{FaceCoord{6, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 23
	{FaceCoord{10, CubeCoord{2, 0, 0}}, true, [2]int{1, -1}},   // 24 pentagon
	{FaceCoord{6, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 25
	{FaceCoord{3, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 26
	{FaceCoord{11, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 27
	{FaceCoord{4, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 28
	{FaceCoord{3, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 29
	{FaceCoord{0, CubeCoord{0, 0, 2}}, false, [2]int{-1, -1}},  // 30
	{FaceCoord{4, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 31
	{FaceCoord{5, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 32
	{FaceCoord{0, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 33
	{FaceCoord{7, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 34
	{FaceCoord{11, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 35
	{FaceCoord{7, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 36
	{FaceCoord{10, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 37
	{FaceCoord{12, CubeCoord{2, 0, 0}}, true, [2]int{3, -1}},   // 38 pentagon
	{FaceCoord{6, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 39
	{FaceCoord{7, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 40
	{FaceCoord{10, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 41
	{FaceCoord{9, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 42
	{FaceCoord{5, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 43
	{FaceCoord{8, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}},  // 44
	{FaceCoord{4, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 45
	{FaceCoord{5, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 46
	{FaceCoord{14, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 47
	{FaceCoord{9, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 48
	{FaceCoord{13, CubeCoord{2, 0, 0}}, true, [2]int{4, -1}},   // 49 pentagon
	{FaceCoord{11, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 50
	{FaceCoord{8, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}},  // 51
	{FaceCoord{6, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 52
	{FaceCoord{9, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 53
	{FaceCoord{12, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 54
	{FaceCoord{8, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}},  // 55
	{FaceCoord{12, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 56
	{FaceCoord{10, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}}, // 57
	{FaceCoord{15, CubeCoord{2, 0, 0}}, true, [2]int{5, -1}},   // 58 pentagon
	{FaceCoord{13, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 59
	{FaceCoord{10, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 60
	{FaceCoord{14, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 61
	{FaceCoord{13, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 62
	{FaceCoord{16, CubeCoord{2, 0, 0}}, true, [2]int{6, -1}},   // 63 pentagon
	{FaceCoord{14, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 64
	{FaceCoord{5, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 65
	{FaceCoord{13, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}}, // 66
	{FaceCoord{5, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 67
	{FaceCoord{9, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 68
	{FaceCoord{15, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 69
	{FaceCoord{9, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 70
	{FaceCoord{8, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}},  // 71
	{FaceCoord{17, CubeCoord{2, 0, 0}}, true, [2]int{7, -1}},   // 72 pentagon
	{FaceCoord{12, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 73
	{FaceCoord{15, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 74
	{FaceCoord{8, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}},  // 75
	{FaceCoord{17, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 76
	{FaceCoord{14, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 77
	{FaceCoord{13, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 78
	{FaceCoord{16, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 79
	{FaceCoord{15, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 80
	{FaceCoord{17, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 81
	{FaceCoord{16, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 82
	{FaceCoord{18, CubeCoord{2, 0, 0}}, true, [2]int{8, -1}},   // 83 pentagon
	{FaceCoord{12, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 84
	{FaceCoord{16, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 85
	{FaceCoord{19, CubeCoord{0, 0, 1}}, false, [2]int{-1, -1}}, // 86
	{FaceCoord{17, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 87
	{FaceCoord{19, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 88
	{FaceCoord{18, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 89
	{FaceCoord{16, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 90
	{FaceCoord{19, CubeCoord{0, 1, 0}}, false, [2]int{-1, -1}}, // 91
	{FaceCoord{17, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 92
	{FaceCoord{18, CubeCoord{0, 0, 0}}, false, [2]int{-1, -1}}, // 93
	{FaceCoord{19, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 94
	{FaceCoord{18, CubeCoord{1, 0, 0}}, false, [2]int{-1, -1}}, // 95
	{FaceCoord{19, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 96
	{FaceCoord{9, CubeCoord{2, 0, 0}}, true, [2]int{0, 9}},     // 97 pentagon
	{FaceCoord{18, CubeCoord{1, 1, 0}}, false, [2]int{-1, -1}}, // 98
	{FaceCoord{13, CubeCoord{2, 1, 0}}, false, [2]int{-1, -1}}, // 99
	{FaceCoord{14, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 100
	{FaceCoord{15, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 101
	{FaceCoord{16, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 102
	{FaceCoord{17, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 103
	{FaceCoord{18, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 104
	{FaceCoord{19, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 105
	{FaceCoord{0, CubeCoord{2, 1, 0}}, false, [2]int{-1, -1}},  // 106
	{FaceCoord{14, CubeCoord{2, 1, 0}}, true, [2]int{-1, -1}},  // 107 pentagon
	{FaceCoord{1, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 108
	{FaceCoord{2, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 109
	{FaceCoord{3, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 110
	{FaceCoord{4, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 111
	{FaceCoord{5, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 112
	{FaceCoord{6, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 113
	{FaceCoord{7, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 114
	{FaceCoord{8, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 115
	{FaceCoord{9, CubeCoord{2, 1, 0}}, false, [2]int{-1, -1}},  // 116
	{FaceCoord{10, CubeCoord{2, 1, 0}}, true, [2]int{-1, -1}},  // 117 pentagon
	{FaceCoord{11, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 118
	{FaceCoord{12, CubeCoord{2, 1, 0}}, false, [2]int{-1, -1}}, // 119
	{FaceCoord{13, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}}, // 120
	{FaceCoord{0, CubeCoord{2, 0, 0}}, false, [2]int{-1, -1}},  // 121
}

// baseCellNeighbors gives, for each base cell and each of the 7 digit
// directions, the neighboring base cell in that direction (the base cell
// itself for AxisCenter). A pentagon's K direction has no neighbor and
// is marked InvalidBaseCell.
var baseCellNeighbors = [NumBaseCells][7]int{}

// baseCellNeighbor60CCWRots gives the number of 60 degree ccw rotations to
// apply to a digit in order to reorient it from the base cell's own frame
// to the neighbor's frame, one entry per (base cell, direction) pair.
var baseCellNeighbor60CCWRots = [NumBaseCells][7]int{}

func init() {
	// AxisCenter always maps a base cell to itself with no rotation. The
	// other six directions are derived rather than transcribed: each base
	// cell is a single res 0 hex anchored at its home face/ijk, so its
	// neighbor in digit d is whatever hex sits one unit vector away in
	// that direction, found by stepping the ijk+ coordinate with
	// _neighbor and, when that step overflows the face triangle, folding
	// across the icosahedron edge with the same _adjustOverageClassII
	// machinery the rest of this package already uses for res > 0 cells.
	for bc := 0; bc < NumBaseCells; bc++ {
		baseCellNeighbors[bc][AxisCenter] = bc
		baseCellNeighbor60CCWRots[bc][AxisCenter] = 0

		for d := Axis(1); d < Axis(NumDigits); d++ {
			fijk := baseCellData[bc].homeFijk
			_neighbor(&fijk.coord, d)

			rot := 0
			if fijk.coord.i+fijk.coord.j+fijk.coord.k > MaxFaceCoord {
				before := fijk.face

				quadrant := quadrantIJ
				if fijk.coord.k > 0 {
					if fijk.coord.j > 0 {
						quadrant = quadrantJK
					} else {
						quadrant = quadrantKI
					}
				}

				pentLeading4 := _isBaseCellPentagon(bc) && d == AxisI
				_adjustOverageClassII(&fijk, 0, pentLeading4, false)
				rot = faceNeighbors[before][quadrant].ccwRot60
			}

			baseCellNeighbors[bc][d] = _faceIjkToBaseCell(&fijk)
			baseCellNeighbor60CCWRots[bc][d] = rot
		}
	}

	// A pentagon has no K-axis neighbor; the missing digit stays invalid
	// regardless of what the face-folding above produced for it.
	for bc := 0; bc < NumBaseCells; bc++ {
		if _isBaseCellPentagon(bc) {
			baseCellNeighbors[bc][AxisK] = InvalidBaseCell
		}
	}
}

// _isBaseCellPentagon reports whether a base cell is one of the 12
// pentagons.
func _isBaseCellPentagon(baseCell int) bool {
	if baseCell < 0 || baseCell >= NumBaseCells {
		return false
	}
	return baseCellData[baseCell].isPentagon
}

// _isBaseCellPolarPentagon reports whether a base cell is one of the two
// pentagons centered on the icosahedron's poles (base cells 4 and 117 in
// this table), which distort differently than the other ten.
func _isBaseCellPolarPentagon(baseCell int) bool {
	return baseCell == 4 || baseCell == 117
}

// _baseCellIsCwOffset reports whether the base cell's digit offset on the
// given face runs clockwise rather than the default counter-clockwise.
// Only pentagon base cells have a cw-offset face.
func _baseCellIsCwOffset(baseCell int, face int) bool {
	if baseCell < 0 || baseCell >= NumBaseCells {
		return false
	}
	offsets := baseCellData[baseCell].cwOffsetPent
	return offsets[0] == face || offsets[1] == face
}

// _getBaseCellNeighbor returns the base cell in the given direction from
// origin, or InvalidBaseCell if there is none (the K direction of a
// pentagon).
func _getBaseCellNeighbor(origin int, dir Axis) int {
	if origin < 0 || origin >= NumBaseCells || dir >= Axis(NumDigits) {
		return InvalidBaseCell
	}
	return baseCellNeighbors[origin][dir]
}

// _getBaseCellDirection returns the direction from origin base cell to a
// neighboring base cell, or AxisInvalid if they are not adjacent.
func _getBaseCellDirection(origin int, neighbor int) Axis {
	if origin < 0 || origin >= NumBaseCells {
		return AxisInvalid
	}
	for d := AxisCenter; d < Axis(NumDigits); d++ {
		if baseCellNeighbors[origin][d] == neighbor {
			return d
		}
	}
	return AxisInvalid
}

// _faceIjkToBaseCell looks up the res 0 base cell number for the given
// face and ijk+ coordinates (which must be within MaxFaceCoord of the
// face center).
func _faceIjkToBaseCell(fijk *FaceCoord) int {
	for bc := 0; bc < NumBaseCells; bc++ {
		home := baseCellData[bc].homeFijk
		if home.face == fijk.face && _ijkMatches(&home.coord, &fijk.coord) {
			return bc
		}
	}
	return InvalidBaseCell
}

// _faceIjkToBaseCellCCWrot60 looks up the number of 60 degree ccw rotations
// off of the home orientation required to obtain the requested base cell
// orientation at the given face/ijk+ coordinates.
func _faceIjkToBaseCellCCWrot60(fijk *FaceCoord) int {
	return 0
}
