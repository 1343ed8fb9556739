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

// Trigonometric constants used throughout the gnomonic projection and
// great-circle math. Kept as named constants rather than inline math.*
// calls so the aperture-7 rotation numbers below (which have no closed
// stdlib form) read consistently alongside them.
const (
	piRadians = math.Pi
	halfPi    = math.Pi / 2.0
	twoPi     = 2.0 * math.Pi

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	sqrt3Over2 = 0.8660254037844386467637231707529361834714
	sin60      = sqrt3Over2
)

// epsilon bounds how close two spherical coordinates must be to be treated
// as the same point; see LatLng.AlmostEquals.
const epsilon = 0.0000000000000001

// The aperture-7 rotation separates a Class II resolution from its Class
// III child: rotating the CubeCoord substrate grid by this angle before
// the next aperture-7 subdivision is what gives odd resolutions their
// twisted (non axis-aligned) hexagons. There is no closed form for these
// in terms of the trig constants above, so they are carried as their own
// named constants, same as the upstream reference implementation does.
const (
	// asin(sqrt(3.0 / 28.0))
	ap7RotationRads = 0.333473172251832115336090755351601070065900389
	sinAp7Rotation  = 0.3273268353539885718950318
	cosAp7Rotation  = 0.9449111825230680680167902
)

// Earth-scale constants for converting grid distances to physical units.
const (
	// earthRadiusKm is the WGS84 authalic radius.
	earthRadiusKm = 6371.007180918475

	// res0UnitGnomonic scales a resolution-0 unit length (the planar
	// distance between adjacent cell centers) to gnomonic projection
	// units.
	res0UnitGnomonic = 0.38196601125010500003
)

// Fixed sizes of the icosahedral aperture-7 grid. These never vary with
// resolution and are not configurable: the grid has exactly one shape.
const (
	// MaxResolution is the finest resolution this grid supports (16
	// resolutions total, numbered 0 through MaxResolution).
	MaxResolution = 15

	NumIcosaFaces = 20
	NumBaseCells  = 122
	NumHexVerts   = 6
	NumPentVerts  = 5
	NumPentagons  = 12
)

// Index mode tags stored in the top bits of a CellID; see identifier
// layout in h3index.go.
const (
	hexagonMode = 1
	edgeMode    = 2
)
