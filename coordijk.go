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

// CubeCoord is a three-axis ijk+ hexagon coordinate. Each axis is spaced
// 120 degrees apart; the "+" means components are kept non-negative by
// Normalize rather than allowed to go negative as a true cube coordinate
// would.
type CubeCoord struct {
	i, j, k int
}

// unitVecs holds the CubeCoord unit vector for each of the 7 digits: digit
// 0 is the center (zero vector), digits 1-6 step to each of the six
// neighbors.
var unitVecs = [...]CubeCoord{
	{0, 0, 0}, // center
	{0, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
}

// SetIJK sets ijk's components in one call.
func (ijk *CubeCoord) SetIJK(i, j, k int) {
	ijk.i, ijk.j, ijk.k = i, j, k
}

// ToHex2d returns the 2D Cartesian center point of the hex at ijk.
func (ijk *CubeCoord) ToHex2d() *Point2D {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k
	return &Point2D{
		x: float64(i) - 0.5*float64(j),
		y: float64(j) * sqrt3Over2,
	}
}

// Scale uniformly scales ijk's components by factor, in place.
func (ijk *CubeCoord) Scale(factor int) {
	ijk.i *= factor
	ijk.j *= factor
	ijk.k *= factor
}

// Normalize reduces ijk to its canonical non-negative form: the ijk+
// coordinate system keeps all three components at or above zero, so any
// negative component is folded into the other two, then a common offset
// is subtracted so the smallest component lands on zero.
func (ijk *CubeCoord) Normalize() {
	if ijk.i < 0 {
		ijk.j -= ijk.i
		ijk.k -= ijk.i
		ijk.i = 0
	}
	if ijk.j < 0 {
		ijk.i -= ijk.j
		ijk.k -= ijk.j
		ijk.j = 0
	}
	if ijk.k < 0 {
		ijk.i -= ijk.k
		ijk.j -= ijk.k
		ijk.k = 0
	}

	offset := minInt3(ijk.i, ijk.j, ijk.k)
	if offset > 0 {
		ijk.i -= offset
		ijk.j -= offset
		ijk.k -= offset
	}
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// UnitToDigit reports which of the 7 digits ijk's normalized form matches
// as a unit vector, or AxisInvalid if it doesn't match any of them.
func (ijk *CubeCoord) UnitToDigit() Axis {
	c := *ijk
	c.Normalize()

	for d := AxisCenter; d < Axis(NumDigits); d++ {
		if c == unitVecs[d] {
			return d
		}
	}
	return AxisInvalid
}

// axisTriple is the trio of scaled, per-axis substrate vectors an
// aperture transform combines; every up/down/rotate transform below is
// the same "scale each component by its vector, add the three together,
// normalize" operation with a different triple plugged in.
type axisTriple struct {
	i, j, k CubeCoord
}

func (ijk *CubeCoord) applyAperture(t axisTriple) {
	t.i.Scale(ijk.i)
	t.j.Scale(ijk.j)
	t.k.Scale(ijk.k)

	ijk.i = t.i.i + t.j.i + t.k.i
	ijk.j = t.i.j + t.j.j + t.k.j
	ijk.k = t.i.k + t.j.k + t.k.k
	ijk.Normalize()
}

// The six substrate triples below encode every aperture-7/aperture-3,
// cw/ccw transform this grid needs. They're the coefficients of the
// linear map from one resolution's unit vectors into the next finer
// resolution's substrate; there's no simpler closed form; see
// applyAperture for the operation they all share.
var (
	apertureDown7CCW = axisTriple{CubeCoord{3, 0, 1}, CubeCoord{1, 3, 0}, CubeCoord{0, 1, 3}}
	apertureDown7CW  = axisTriple{CubeCoord{3, 1, 0}, CubeCoord{0, 3, 1}, CubeCoord{1, 0, 3}}
	apertureDown3CCW = axisTriple{CubeCoord{2, 0, 1}, CubeCoord{1, 2, 0}, CubeCoord{0, 1, 2}}
	apertureDown3CW  = axisTriple{CubeCoord{2, 1, 0}, CubeCoord{0, 2, 1}, CubeCoord{1, 0, 2}}
	rotateCCW        = axisTriple{CubeCoord{1, 1, 0}, CubeCoord{0, 1, 1}, CubeCoord{1, 0, 1}}
	rotateCW         = axisTriple{CubeCoord{1, 0, 1}, CubeCoord{1, 1, 0}, CubeCoord{0, 1, 1}}
)

// upAp7 finds the ijk+ coordinates of ijk's counter-clockwise aperture-7
// indexing parent, in place.
func (ijk *CubeCoord) upAp7() {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k
	ijk.i = int(math.Round(float64(3*i-j) / 7.0))
	ijk.j = int(math.Round(float64(i+2*j) / 7.0))
	ijk.k = 0
	ijk.Normalize()
}

// upAp7r finds the ijk+ coordinates of ijk's clockwise aperture-7 indexing
// parent, in place.
func (ijk *CubeCoord) upAp7r() {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k
	ijk.i = int(math.Round(float64(2*i+j) / 7.0))
	ijk.j = int(math.Round(float64(3*j-i) / 7.0))
	ijk.k = 0
	ijk.Normalize()
}

// downAp7 finds the ijk+ coordinates of the hex centered on ijk at the
// next finer counter-clockwise aperture-7 resolution, in place.
func (ijk *CubeCoord) downAp7() { ijk.applyAperture(apertureDown7CCW) }

// downAp7r finds the ijk+ coordinates of the hex centered on ijk at the
// next finer clockwise aperture-7 resolution, in place.
func (ijk *CubeCoord) downAp7r() { ijk.applyAperture(apertureDown7CW) }

// downAp3 finds the ijk+ coordinates of the hex centered on ijk at the
// next finer counter-clockwise aperture-3 resolution, in place.
func (ijk *CubeCoord) downAp3() { ijk.applyAperture(apertureDown3CCW) }

// downAp3r finds the ijk+ coordinates of the hex centered on ijk at the
// next finer clockwise aperture-3 resolution, in place.
func (ijk *CubeCoord) downAp3r() { ijk.applyAperture(apertureDown3CW) }

// Rotate60ccw rotates ijk 60 degrees counter-clockwise, in place.
func (ijk *CubeCoord) Rotate60ccw() { ijk.applyAperture(rotateCCW) }

// Rotate60cw rotates ijk 60 degrees clockwise, in place.
func (ijk *CubeCoord) Rotate60cw() { ijk.applyAperture(rotateCW) }

// neighbor steps ijk one cell in the given digit's direction, in place.
// AxisCenter and AxisInvalid leave ijk unchanged.
func (ijk *CubeCoord) neighbor(digit Axis) {
	if digit > AxisCenter && digit < Axis(NumDigits) {
		v := unitVecs[digit]
		ijk.i += v.i
		ijk.j += v.j
		ijk.k += v.k
		ijk.Normalize()
	}
}

// ToCube converts ijk+ coordinates to a signed cube coordinate, in place.
func (ijk *CubeCoord) ToCube() {
	ijk.i = -ijk.i + ijk.k
	ijk.j = ijk.j - ijk.k
	ijk.k = -ijk.i - ijk.j
}

// _setIJK sets an IJK coordinate to the specified component values.
func _setIJK(ijk *CubeCoord, i, j, k int) { ijk.SetIJK(i, j, k) }

// _ijkScale uniformly scales ijk coordinates by a scalar. Works in place.
func _ijkScale(c *CubeCoord, factor int) { c.Scale(factor) }

// _ijkNormalize normalizes ijk coordinates by setting the components to
// the smallest possible values. Works in place.
func _ijkNormalize(c *CubeCoord) { c.Normalize() }

// _unitIjkToDigit determines the digit corresponding to a unit vector in
// ijk coordinates, or AxisInvalid on failure.
func _unitIjkToDigit(ijk *CubeCoord) Axis { return ijk.UnitToDigit() }

// _upAp7 finds the ijk+ coordinates of the counter-clockwise aperture-7
// indexing parent of a cell. Works in place.
func _upAp7(ijk *CubeCoord) { ijk.upAp7() }

// _upAp7r finds the ijk+ coordinates of the clockwise aperture-7 indexing
// parent of a cell. Works in place.
func _upAp7r(ijk *CubeCoord) { ijk.upAp7r() }

// _downAp7 finds the ijk+ coordinates of the hex centered on the indicated
// hex at the next finer counter-clockwise aperture-7 resolution. Works in
// place.
func _downAp7(ijk *CubeCoord) { ijk.downAp7() }

// _downAp7r finds the ijk+ coordinates of the hex centered on the
// indicated hex at the next finer clockwise aperture-7 resolution. Works
// in place.
func _downAp7r(ijk *CubeCoord) { ijk.downAp7r() }

// _neighbor finds the ijk+ coordinates of the hex in the specified digit
// direction from the specified ijk coordinates. Works in place.
func _neighbor(ijk *CubeCoord, digit Axis) { ijk.neighbor(digit) }

// _ijkRotate60ccw rotates ijk coordinates 60 degrees counter-clockwise.
// Works in place.
func _ijkRotate60ccw(ijk *CubeCoord) { ijk.Rotate60ccw() }

// _ijkRotate60cw rotates ijk coordinates 60 degrees clockwise. Works in
// place.
func _ijkRotate60cw(ijk *CubeCoord) { ijk.Rotate60cw() }

// _downAp3 finds the ijk+ coordinates of the hex centered on the indicated
// hex at the next finer counter-clockwise aperture-3 resolution. Works in
// place.
func _downAp3(ijk *CubeCoord) { ijk.downAp3() }

// _downAp3r finds the ijk+ coordinates of the hex centered on the
// indicated hex at the next finer clockwise aperture-3 resolution. Works
// in place.
func _downAp3r(ijk *CubeCoord) { ijk.downAp3r() }

// _hex2dToCoordIJK finds the containing hex, in ijk+ coordinates, for a 2D
// Cartesian coordinate vector produced by the DGGRID gnomonic projection.
func _hex2dToCoordIJK(v *Point2D, h *CubeCoord) {
	var a1, a2 float64
	var x1, x2 float64
	var m1, m2 int
	var r1, r2 float64

	h.k = 0

	a1 = math.Abs(v.x)
	a2 = math.Abs(v.y)

	x2 = a2 / sin60
	x1 = a1 + x2/2.0

	m1 = int(x1)
	m2 = int(x2)

	r1 = x1 - float64(m1)
	r2 = x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1.0+r1)/2.0 {
				h.i = m1
				h.j = m2
			} else {
				h.i = m1
				h.j = m2 + 1
			}
		} else {
			if r2 < (1.0 - r1) {
				h.j = m2
			} else {
				h.j = m2 + 1
			}

			if (1.0-r1) <= r2 && r2 < (2.0*r1) {
				h.i = m1 + 1
			} else {
				h.i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < (1.0 - r1) {
				h.j = m2
			} else {
				h.j = m2 + 1
			}

			if (2.0*r1-1.0) < r2 && r2 < (1.0-r1) {
				h.i = m1
			} else {
				h.i = m1 + 1
			}
		} else {
			if r2 < (r1 / 2.0) {
				h.i = m1 + 1
				h.j = m2
			} else {
				h.i = m1 + 1
				h.j = m2 + 1
			}
		}
	}

	if v.x < 0.0 {
		if (h.j % 2) == 0 {
			axisi := int64(h.j) / int64(2)
			diff := int64(h.i) - axisi
			h.i = int(int64(h.i) - 2*diff)
		} else {
			axisi := int64(h.j+1) / 2
			diff := int64(h.i) - axisi
			h.i = int(int64(h.i) - (2*diff + 1))
		}
	}

	if v.y < 0.0 {
		h.i = h.i - (2*h.j+1)/2
		h.j = -1 * h.j
	}

	h.Normalize()
}

// _ijkToHex2d finds the 2D Cartesian center point of the hex at h.
func _ijkToHex2d(h *CubeCoord, v *Point2D) {
	*v = *h.ToHex2d()
}

// _ijkMatches reports whether two ijk coordinates hold identical
// components.
func _ijkMatches(c1, c2 *CubeCoord) bool {
	return *c1 == *c2
}

// _ijkAdd adds two ijk coordinates into sum.
func _ijkAdd(h1, h2 *CubeCoord, sum *CubeCoord) {
	sum.i = h1.i + h2.i
	sum.j = h1.j + h2.j
	sum.k = h1.k + h2.k
}

// _ijkSub subtracts h2 from h1 into diff.
func _ijkSub(h1, h2 *CubeCoord, diff *CubeCoord) {
	diff.i = h1.i - h2.i
	diff.j = h1.j - h2.j
	diff.k = h1.k - h2.k
}

// ijkDistance returns the grid distance between c1 and c2.
func ijkDistance(c1, c2 *CubeCoord) int {
	var diff CubeCoord
	_ijkSub(c1, c2, &diff)
	diff.Normalize()
	return maxInt(absInt(diff.i), maxInt(absInt(diff.j), absInt(diff.k)))
}

// ijkToIj transforms ijk+ coordinates into the two-axis ij system.
func ijkToIj(ijk *CubeCoord, ij *PlanarCoord) {
	ij.i = ijk.i - ijk.k
	ij.j = ijk.j - ijk.k
}

// ijToIjk transforms ij coordinates into the ijk+ system.
func ijToIjk(ij *PlanarCoord, ijk *CubeCoord) {
	ijk.i = ij.i
	ijk.j = ij.j
	ijk.k = 0
	ijk.Normalize()
}

// ijkToCube converts ijk+ coordinates to cube coordinates, in place.
func ijkToCube(ijk *CubeCoord) { ijk.ToCube() }

// cubeToIjk converts cube coordinates to ijk+ coordinates, in place.
func cubeToIjk(ijk *CubeCoord) {
	ijk.i = -ijk.i
	ijk.k = 0
	ijk.Normalize()
}
