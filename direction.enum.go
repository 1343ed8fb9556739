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

// Axis is H3 digit representing ijk+ axes direction.
// Values will be within the lowest 3 bits of an integer.
type Axis uint

const (
	// H3 digit in center
	AxisCenter Axis = 0

	// H3 digit in k-axes direction
	AxisK Axis = 1

	// H3 digit in j-axes direction
	AxisJ Axis = 2

	// H3 digit in j == k direction
	AxisJK Axis = AxisJ | AxisK /* 3 */

	// H3 digit in i-axes direction
	AxisI Axis = 4

	// H3 digit in i == k direction
	AxisIK Axis = AxisI | AxisK /* 5 */

	// H3 digit in i == j direction
	AxisIJ Axis = AxisI | AxisJ /* 6 */

	// H3 digit in the invalid direction
	AxisInvalid Axis = 7
)

// Valid digits will be less than this value. Same value as AxisInvalid.
const NumDigits = int(AxisInvalid)

// _rotate60ccw returns digit rotated 60 degrees counter-clockwise on the
// k/ik/i/ij/j/jk hexagon axis cycle; AxisCenter and AxisInvalid are fixed.
func _rotate60ccw(digit Axis) Axis {
	switch digit {
	case AxisK:
		return AxisIK
	case AxisIK:
		return AxisI
	case AxisI:
		return AxisIJ
	case AxisIJ:
		return AxisJ
	case AxisJ:
		return AxisJK
	case AxisJK:
		return AxisK
	default:
		return digit
	}
}

// _rotate60cw rotates a digit 60 degrees clockwise. Inverse of _rotate60ccw.
func _rotate60cw(digit Axis) Axis {
	switch digit {
	case AxisK:
		return AxisJK
	case AxisJK:
		return AxisJ
	case AxisJ:
		return AxisIJ
	case AxisIJ:
		return AxisI
	case AxisI:
		return AxisIK
	case AxisIK:
		return AxisK
	default:
		return digit
	}
}
