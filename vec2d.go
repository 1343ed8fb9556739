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

// Point2D is a 2D Cartesian point, used for the gnomonic projection onto
// an icosahedron face before it's folded into ijk+ coordinates.
type Point2D struct {
	x, y float64
}

// Magnitude returns the Euclidean length of v2d as a vector from the
// origin.
func (v2d *Point2D) Magnitude() float64 {
	return math.Sqrt(v2d.x*v2d.x + v2d.y*v2d.y)
}

// Equals reports whether two points have identical coordinates. It does
// not account for floating-point rounding.
func (v2d *Point2D) Equals(other *Point2D) bool {
	return v2d.x == other.x && v2d.y == other.y
}

// intersectSegments finds where the line through (p0,p1) crosses the line
// through (p2,p3), assuming the two actually cross somewhere that is not
// an endpoint of either.
func intersectSegments(p0, p1, p2, p3 *Point2D) Point2D {
	s1 := Point2D{p1.x - p0.x, p1.y - p0.y}
	s2 := Point2D{p3.x - p2.x, p3.y - p2.y}

	t := (s2.x*(p0.y-p2.y) - s2.y*(p0.x-p2.x)) / (-s2.x*s1.y + s1.x*s2.y)

	return Point2D{
		x: p0.x + t*s1.x,
		y: p0.y + t*s1.y,
	}
}

// _v2dMag finds the magnitude of a 2D cartesian vector.
func _v2dMag(v *Point2D) float64 { return v.Magnitude() }

// _v2dIntersect finds the intersection between two lines, writing the
// result into inter.
func _v2dIntersect(p0, p1, p2, p3 *Point2D, inter *Point2D) {
	*inter = intersectSegments(p0, p1, p2, p3)
}

// _v2dEquals checks whether two 2D vectors are equal. Does not consider
// possible false negatives due to floating-point errors.
func _v2dEquals(v1, v2 *Point2D) bool { return v1.Equals(v2) }
