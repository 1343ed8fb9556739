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

// indexes for faceNeighbors table
const (
	// quadrantIJ quadrant faceNeighbors table direction
	quadrantIJ = 1
	// quadrantKI quadrant faceNeighbors table direction
	quadrantKI = 2
	// quadrantJK quadrant faceNeighbors table direction
	quadrantJK = 3

	// Invalid face index
	invalidFace = -1
)

// FaceCoord is face number and ijk coordinates on that face-centered coordinate
// system
type FaceCoord struct {
	face  int      // face number
	coord CubeCoord // ijk coordinates on that face
}

// FaceOrientIJK is information to transform into an adjacent face IJK system
type FaceOrientIJK struct {
	face      int      // face number
	translate CubeCoord // res 0 translation relative to primary face
	ccwRot60  int      // number of 60 degree ccw rotations relative to primary face
}

// Digit representing overage type
type Overage uint

const (
	// No overage (on original face)
	overageNone Overage = 0

	// On face edge (only occurs on substrate grids)
	overageFaceEdge Overage = 1

	// Overage on new face interior
	overageNewFace Overage = 2
)

// square root of 7
const sqrt7 = 2.6457513110645905905016157536392604257102

// icosahedron face centers in lat/lon radians
var faceCenterGeo = [NumIcosaFaces]LatLng{
	{0.803582649718989942, 1.248397419617396099},   // face  0
	{1.307747883455638156, 2.536945009877921159},   // face  1
	{1.054751253523952054, -1.347517358900396623},  // face  2
	{0.600191595538186799, -0.450603909469755746},  // face  3
	{0.491715428198773866, 0.401988202911306943},   // face  4
	{0.172745327415618701, 1.678146885280433686},   // face  5
	{0.605929321571350690, 2.953923329812411617},   // face  6
	{0.427370518328979641, -1.888876200336285401},  // face  7
	{-0.079066118549212831, -0.733429513380867741}, // face  8
	{-0.230961644455383637, 0.506495587332349035},  // face  9
	{0.079066118549212831, 2.408163140208925497},   // face 10
	{0.230961644455383637, -2.635097066257444203},  // face 11
	{-0.172745327415618701, -1.463445768309359553}, // face 12
	{-0.605929321571350690, -0.187669323777381622}, // face 13
	{-0.427370518328979641, 1.252716453253507838},  // face 14
	{-0.600191595538186799, 2.690988744120037492},  // face 15
	{-0.491715428198773866, -2.739604450678486295}, // face 16
	{-0.803582649718989942, -1.893195233972397139}, // face 17
	{-1.307747883455638156, -0.604647643711872080}, // face 18
	{-1.054751253523952054, 1.794075294689396615},  // face 19
}

// icosahedron face centers in x/y/z on the unit sphere
var faceCenterPoint = [NumIcosaFaces]Point3D{
	{0.2199307791404606, 0.6583691780274996, 0.7198475378926182},    // face  0
	{-0.2139234834501421, 0.1478171829550703, 0.9656017935214205},   // face  1
	{0.1092625278784797, -0.4811951572873210, 0.8697775121287253},   // face  2
	{0.7428567301586791, -0.3593941678278028, 0.5648005936517033},   // face  3
	{0.8112534709140969, 0.3448953237639384, 0.4721387736413930},    // face  4
	{-0.1055498149613921, 0.9794457296411413, 0.1718874610009365},   // face  5
	{-0.8075407579970092, 0.1533552485898818, 0.5695261994882688},   // face  6
	{-0.2846148069787907, -0.8644080972654206, 0.4144792552473539},  // face  7
	{0.7405621473854482, -0.6673299564565524, -0.0789837646326737},  // face  8
	{0.8512303986474293, 0.4722343788582681, -0.2289137388687808},   // face  9
	{-0.7405621473854481, 0.6673299564565524, 0.0789837646326737},   // face 10
	{-0.8512303986474292, -0.4722343788582682, 0.2289137388687808},  // face 11
	{0.1055498149613919, -0.9794457296411413, -0.1718874610009365},  // face 12
	{0.8075407579970092, -0.1533552485898819, -0.5695261994882688},  // face 13
	{0.2846148069787908, 0.8644080972654204, -0.4144792552473539},   // face 14
	{-0.7428567301586791, 0.3593941678278027, -0.5648005936517033},  // face 15
	{-0.8112534709140971, -0.3448953237639382, -0.4721387736413930}, // face 16
	{-0.2199307791404607, -0.6583691780274996, -0.7198475378926182}, // face 17
	{0.2139234834501420, -0.1478171829550704, -0.9656017935214205},  // face 18
	{-0.1092625278784796, 0.4811951572873210, -0.8697775121287253},  // face 19
}

// icosahedron face ijk axes as azimuth in radians from face center to
// vertex 0/1/2 respectively
var faceAxesAzRadsCII = [NumIcosaFaces][3]float64{
	{5.619958268523939882, 3.525563166130744542, 1.431168063737548730}, // face  0
	{5.760339081714187279, 3.665943979320991689, 1.571548876927796127}, // face  1
	{0.780213654393430055, 4.969003859179821079, 2.874608756786625655}, // face  2
	{0.430469363979999913, 4.619259568766391033, 2.524864466373195467}, // face  3
	{6.130269123335111400, 4.035874020941915804, 1.941478918548720291}, // face  4
	{2.692877706530642877, 0.598482604137447119, 4.787272808923838195}, // face  5
	{2.982963003477243874, 0.888567901084048369, 5.077358105870439581}, // face  6
	{3.532912002790141181, 1.438516900396945656, 5.627307105183336758}, // face  7
	{3.494305004259568154, 1.399909901866372864, 5.588700106652763840}, // face  8
	{3.003214169499538391, 0.908819067106342928, 5.097609271892733906}, // face  9
	{5.930472956509811562, 3.836077854116615875, 1.741682751723420374}, // face 10
	{0.138378484090254847, 4.327168688876645809, 2.232773586483450311}, // face 11
	{0.448714947059150361, 4.637505151845541521, 2.543110049452346120}, // face 12
	{0.158629650112549365, 4.347419854898940135, 2.253024752505744869}, // face 13
	{5.891865957979238535, 3.797470855586042958, 1.703075753192847583}, // face 14
	{2.711123289609793325, 0.616728187216597771, 4.805518392002988683}, // face 15
	{3.294508837434268316, 1.200113735041072948, 5.388903939827463911}, // face 16
	{3.804819692245439833, 1.710424589852244509, 5.899214794638635174}, // face 17
	{3.664438879055192436, 1.570043776661997111, 5.758833981448388027}, // face 18
	{2.361378999196363184, 0.266983896803167583, 4.455774101589558636}, // face 19
}

/** @brief Definition of which faces neighbor each other. */
var faceNeighbors = [NumIcosaFaces][4]FaceOrientIJK{
	{
		// face 0
		{face: 0, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 4, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 1, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 5, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 1
		{face: 1, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 0, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 2, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 6, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 2
		{face: 2, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 1, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 3, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 7, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 3
		{face: 3, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 2, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 4, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 8, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 4
		{face: 4, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 3, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 0, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 9, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 5
		{face: 5, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0},  // central face
		{face: 10, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3}, // ij quadrant
		{face: 14, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3}, // ki quadrant
		{face: 0, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3},  // jk quadrant
	},
	{
		// face 6
		{face: 6, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0},  // central face
		{face: 11, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3}, // ij quadrant
		{face: 10, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3}, // ki quadrant
		{face: 1, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3},  // jk quadrant
	},
	{
		// face 7
		{face: 7, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0},  // central face
		{face: 12, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3}, // ij quadrant
		{face: 11, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3}, // ki quadrant
		{face: 2, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3},  // jk quadrant
	},
	{
		// face 8
		{face: 8, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0},  // central face
		{face: 13, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3}, // ij quadrant
		{face: 12, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3}, // ki quadrant
		{face: 3, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3},  // jk quadrant
	},
	{
		// face 9
		{face: 9, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0},  // central face
		{face: 14, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3}, // ij quadrant
		{face: 13, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3}, // ki quadrant
		{face: 4, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3},  // jk quadrant
	},
	{
		// face 10
		{face: 10, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 5, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3},  // ij quadrant
		{face: 6, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3},  // ki quadrant
		{face: 15, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 11
		{face: 11, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 6, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3},  // ij quadrant
		{face: 7, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3},  // ki quadrant
		{face: 16, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 12
		{face: 12, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 7, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3},  // ij quadrant
		{face: 8, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3},  // ki quadrant
		{face: 17, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 13
		{face: 13, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 8, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3},  // ij quadrant
		{face: 9, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3},  // ki quadrant
		{face: 18, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 14
		{face: 14, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 9, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 3},  // ij quadrant
		{face: 5, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 3},  // ki quadrant
		{face: 19, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 15
		{face: 15, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 16, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 19, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 10, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 16
		{face: 16, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 17, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 15, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 11, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 17
		{face: 17, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 18, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 16, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 12, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 18
		{face: 18, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 19, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 17, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 13, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
	{
		// face 19
		{face: 19, translate: CubeCoord{i: 0, j: 0, k: 0}, ccwRot60: 0}, // central face
		{face: 15, translate: CubeCoord{i: 2, j: 0, k: 2}, ccwRot60: 1}, // ij quadrant
		{face: 18, translate: CubeCoord{i: 2, j: 2, k: 0}, ccwRot60: 5}, // ki quadrant
		{face: 14, translate: CubeCoord{i: 0, j: 2, k: 2}, ccwRot60: 3}, // jk quadrant
	},
}

/** @brief direction from the origin face to the destination face, relative to
 * the origin face's coordinate system, or -1 if not adjacent.
 */
var adjacentFaceDir = [NumIcosaFaces][NumIcosaFaces]int{
	{0, quadrantKI, -1, -1, quadrantIJ, quadrantJK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 0
	{quadrantIJ, 0, quadrantKI, -1, -1, -1, quadrantJK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 1
	{-1, quadrantIJ, 0, quadrantKI, -1, -1, -1, quadrantJK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 2
	{-1, -1, quadrantIJ, 0, quadrantKI, -1, -1, -1, quadrantJK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 3
	{quadrantKI, -1, -1, quadrantIJ, 0, -1, -1, -1, -1, quadrantJK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 4
	{quadrantJK, -1, -1, -1, -1, 0, -1, -1, -1, -1, quadrantIJ, -1, -1, -1, quadrantKI, -1, -1, -1, -1, -1}, // face 5
	{-1, quadrantJK, -1, -1, -1, -1, 0, -1, -1, -1, quadrantKI, quadrantIJ, -1, -1, -1, -1, -1, -1, -1, -1}, // face 6
	{-1, -1, quadrantJK, -1, -1, -1, -1, 0, -1, -1, -1, quadrantKI, quadrantIJ, -1, -1, -1, -1, -1, -1, -1}, // face 7
	{-1, -1, -1, quadrantJK, -1, -1, -1, -1, 0, -1, -1, -1, quadrantKI, quadrantIJ, -1, -1, -1, -1, -1, -1}, // face 8
	{-1, -1, -1, -1, quadrantJK, -1, -1, -1, -1, 0, -1, -1, -1, quadrantKI, quadrantIJ, -1, -1, -1, -1, -1}, // face 9
	{-1, -1, -1, -1, -1, quadrantIJ, quadrantKI, -1, -1, -1, 0, -1, -1, -1, -1, quadrantJK, -1, -1, -1, -1}, // face 10
	{-1, -1, -1, -1, -1, -1, quadrantIJ, quadrantKI, -1, -1, -1, 0, -1, -1, -1, -1, quadrantJK, -1, -1, -1}, // face 11
	{-1, -1, -1, -1, -1, -1, -1, quadrantIJ, quadrantKI, -1, -1, -1, 0, -1, -1, -1, -1, quadrantJK, -1, -1}, // face 12
	{-1, -1, -1, -1, -1, -1, -1, -1, quadrantIJ, quadrantKI, -1, -1, -1, 0, -1, -1, -1, -1, quadrantJK, -1}, // face 13
	{-1, -1, -1, -1, -1, quadrantKI, -1, -1, -1, quadrantIJ, -1, -1, -1, -1, 0, -1, -1, -1, -1, quadrantJK}, // face 14
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, quadrantJK, -1, -1, -1, -1, 0, quadrantIJ, -1, -1, quadrantKI}, // face 15
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, quadrantJK, -1, -1, -1, quadrantKI, 0, quadrantIJ, -1, -1}, // face 16
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, quadrantJK, -1, -1, -1, quadrantKI, 0, quadrantIJ, -1}, // face 17
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, quadrantJK, -1, -1, -1, quadrantKI, 0, quadrantIJ}, // face 18
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, quadrantJK, quadrantIJ, -1, -1, quadrantKI, 0}, // face 19
}

// overage distance table
var maxDimByCIIres = [...]int{
	2,        // res  0
	-1,       // res  1
	14,       // res  2
	-1,       // res  3
	98,       // res  4
	-1,       // res  5
	686,      // res  6
	-1,       // res  7
	4802,     // res  8
	-1,       // res  9
	33614,    // res 10
	-1,       // res 11
	235298,   // res 12
	-1,       // res 13
	1647086,  // res 14
	-1,       // res 15
	11529602, // res 16
}

// unit scale distance table
var unitScaleByCIIres = [...]int{
	1,       // res  0
	-1,      // res  1
	7,       // res  2
	-1,      // res  3
	49,      // res  4
	-1,      // res  5
	343,     // res  6
	-1,      // res  7
	2401,    // res  8
	-1,      // res  9
	16807,   // res 10
	-1,      // res 11
	117649,  // res 12
	-1,      // res 13
	823543,  // res 14
	-1,      // res 15
	5764801, // res 16
}

// _geoToFaceIjk encodes a coordinate on the sphere to the FaceCoord address of
// the containing cell at the specified resolution.
func _geoToFaceIjk(g *LatLng, res int, h *FaceCoord) {
	// first convert to hex2d
	var v Point2D
	_geoToHex2d(g, res, &h.face, &v)

	// then convert to ijk+
	_hex2dToCoordIJK(&v, &h.coord)
}

// _geoToHex2d encodes a coordinate on the sphere to the corresponding
// icosahedral face and containing 2D hex coordinates relative to that face
// center.
func _geoToHex2d(g *LatLng, res int, face *int, v *Point2D) {
	var v3d Point3D
	projectLatLng(g, &v3d)

	// determine the icosahedron face
	*face = 0
	sqd := faceCenterPoint[0].SquareDistanceTo(&v3d)
	for f := 1; f < NumIcosaFaces; f++ {
		sqdT := faceCenterPoint[f].SquareDistanceTo(&v3d)
		if sqdT < sqd {
			*face = f
			sqd = sqdT
		}
	}

	// cos(r) = 1 - 2 * sin^2(r/2) = 1 - 2 * (sqd / 4) = 1 - sqd/2
	r := math.Acos(1 - sqd/2)

	if r < epsilon {
		v.x, v.y = 0.0, 0.0
		return
	}

	// now have face and r, now find CCW theta from CII i-axis
	theta := _posAngleRads(faceAxesAzRadsCII[*face][0] -
		_posAngleRads(_geoAzimuthRads(&faceCenterGeo[*face], g)))

	// adjust theta for Class III (odd resolutions)
	if isResClassIII(res) {
		theta = _posAngleRads(theta - ap7RotationRads)
	}

	// perform gnomonic scaling of r
	r = math.Tan(r)

	// scale for current resolution length u
	r /= res0UnitGnomonic
	for i := 0; i < res; i++ {
		r *= sqrt7
	}

	// we now have (r, theta) in hex2d with theta ccw from x-axes

	// convert to local x,y
	v.x = r * math.Cos(theta)
	v.y = r * math.Sin(theta)
}

// _hex2dToGeo determines the center point in spherical coordinates of a cell
// given by 2D hex coordinates on a particular icosahedral face.
func _hex2dToGeo(v *Point2D, face int, res int, substrate bool, g *LatLng) {
	// calculate (r, theta) in hex2d
	r := _v2dMag(v)

	if r < epsilon {
		*g = faceCenterGeo[face]
		return
	}

	theta := math.Atan2(v.y, v.x)

	// scale for current resolution length u
	for i := 0; i < res; i++ {
		r /= sqrt7
	}

	// scale accordingly if this is a substrate grid
	if substrate {
		r /= 3.0
		if isResClassIII(res) {
			r /= sqrt7
		}
	}

	r *= res0UnitGnomonic

	// perform inverse gnomonic scaling of r
	r = math.Atan(r)

	// adjust theta for Class III
	// if a substrate grid, then it's already been adjusted for Class III
	if !substrate && isResClassIII(res) {
		theta = _posAngleRads(theta + ap7RotationRads)
	}

	// find theta as an azimuth
	theta = _posAngleRads(faceAxesAzRadsCII[face][0] - theta)

	// now find the point at (r,theta) from the face center
	_geoAzDistanceRads(&faceCenterGeo[face], theta, r, g)
}

// _faceIjkToGeo determines the center point in spherical coordinates of a cell
// given by a FaceCoord address at a specified resolution.
func _faceIjkToGeo(h *FaceCoord, res int, g *LatLng) {
	var v Point2D
	_ijkToHex2d(&h.coord, &v)
	_hex2dToGeo(&v, h.face, res, false, g)
}

// _faceIjkPentToVerts fills fijkVerts with the substrate FaceCoord vertices of
// a pentagon cell, adjusting *res to the substrate resolution used.
func _faceIjkPentToVerts(fijk *FaceCoord, res *int, fijkVerts *[NumPentVerts]FaceCoord) {
	verts := faceIjkPentToVerts(fijk, res)
	copy(fijkVerts[:], verts)
}

// _faceIjkPentToGeoBoundary generates the cell boundary in spherical
// coordinates for a pentagonal cell given by a FaceCoord address at a specified
// resolution.
func _faceIjkPentToGeoBoundary(h *FaceCoord, res int, start int, length int, g *CellBoundary) {
	adjRes := res
	centerIJK := *h
	var fijkVerts [NumPentVerts]FaceCoord
	_faceIjkPentToVerts(&centerIJK, &adjRes, &fijkVerts)

	// If we're returning the entire loop, we need one more iteration in case
	// of a distortion vertex on the last edge
	additionalIteration := 0
	if length == NumPentVerts {
		additionalIteration = 1
	}

	// convert each vertex to lat/lon
	// adjust the face of each vertex as appropriate and introduce
	// edge-crossing vertices as needed
	g.numVerts = 0
	var lastFijk FaceCoord
	for vert := start; vert < start+length+additionalIteration; vert++ {
		v := vert % NumPentVerts

		fijk := fijkVerts[v]

		_adjustPentVertOverage(&fijk, adjRes)

		// all Class III pentagon edges cross icosa edges
		// note that Class II pentagons have vertices on the edge,
		// not edge intersections
		if isResClassIII(res) && vert > start {
			// find hex2d of the two vertexes on the last face

			tmpFijk := fijk

			var orig2d0 Point2D
			_ijkToHex2d(&lastFijk.coord, &orig2d0)

			currentToLastDir := adjacentFaceDir[tmpFijk.face][lastFijk.face]

			fijkOrient := &faceNeighbors[tmpFijk.face][currentToLastDir]

			tmpFijk.face = fijkOrient.face
			ijk := &tmpFijk.coord

			// rotate and translate for adjacent face
			for i := 0; i < fijkOrient.ccwRot60; i++ {
				_ijkRotate60ccw(ijk)
			}

			transVec := fijkOrient.translate
			_ijkScale(&transVec, unitScaleByCIIres[adjRes]*3)
			_ijkAdd(ijk, &transVec, ijk)
			_ijkNormalize(ijk)

			var orig2d1 Point2D
			_ijkToHex2d(ijk, &orig2d1)

			// find the appropriate icosa face edge vertexes
			maxDim := maxDimByCIIres[adjRes]
			v0 := Point2D{3.0 * float64(maxDim), 0.0}
			v1 := Point2D{-1.5 * float64(maxDim), 3.0 * sqrt3Over2 * float64(maxDim)}
			v2 := Point2D{-1.5 * float64(maxDim), -3.0 * sqrt3Over2 * float64(maxDim)}

			var edge0 *Point2D
			var edge1 *Point2D
			switch adjacentFaceDir[tmpFijk.face][fijk.face] {
			case quadrantIJ:
				edge0 = &v0
				edge1 = &v1
			case quadrantJK:
				edge0 = &v1
				edge1 = &v2
			case quadrantKI:
				fallthrough
			default:
				edge0 = &v2
				edge1 = &v0
			}

			// find the intersection and add the lat/lon point to the result
			var inter Point2D
			_v2dIntersect(&orig2d0, &orig2d1, edge0, edge1, &inter)
			_hex2dToGeo(&inter, tmpFijk.face, adjRes, true, &g.verts[g.numVerts])
			g.numVerts++
		}

		// convert vertex to lat/lon and add to the result
		// vert == start + NumPentVerts is only used to test for possible
		// intersection on last edge
		if vert < start+NumPentVerts {
			var vec Point2D
			_ijkToHex2d(&fijk.coord, &vec)
			_hex2dToGeo(&vec, fijk.face, adjRes, true, &g.verts[g.numVerts])
			g.numVerts++
		}

		lastFijk = fijk
	}
}

// pentVertsCII and pentVertsCIII are a pentagon's boundary vertices,
// listed ccw from the i-axis, as ijk+ offsets from the cell center in a
// substrate grid: pentVertsCII for a Class II resolution (aperture
// sequence 33r — the first 3 gets the vertices, the r3 gets back to
// Class II), pentVertsCIII for Class III (33r7r, with the extra r7
// stepping back up to icosahedral Class II).
var pentVertsCII = []CubeCoord{{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}}
var pentVertsCIII = []CubeCoord{{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}}

// hexVertsCII and hexVertsCIII are the hexagon equivalent of
// pentVertsCII/pentVertsCIII — one extra vertex, same substrate scheme.
var hexVertsCII = []CubeCoord{{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}, {2, 0, 1}}
var hexVertsCIII = []CubeCoord{{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}, {5, 0, 1}}

// substrateVerts walks fijk's center into the aperture-33r (or, for Class
// III, 33r7r) substrate grid shared by pentagons and hexagons alike, then
// translates vertsCII/vertsCIII's offsets onto it to produce the cell's
// boundary vertices as substrate FaceCoord addresses. *res is advanced to
// the substrate resolution this produced.
func substrateVerts(fijk *FaceCoord, res *int, vertsCII, vertsCIII []CubeCoord) []FaceCoord {
	verts := vertsCII
	if isResClassIII(*res) {
		verts = vertsCIII
	}

	// composed for speed rather than computed as a single aperture
	_downAp3(&fijk.coord)
	_downAp3r(&fijk.coord)

	if isResClassIII(*res) {
		_downAp7r(&fijk.coord)
		*res++
	}

	result := make([]FaceCoord, len(verts))
	for v, offset := range verts {
		result[v].face = fijk.face
		_ijkAdd(&fijk.coord, &offset, &result[v].coord)
		_ijkNormalize(&result[v].coord)
	}
	return result
}

// faceIjkPentToVerts gets the vertices of a pentagon cell as substrate
// FaceCoord addresses, adjusting *res to the substrate resolution used.
func faceIjkPentToVerts(fijk *FaceCoord, res *int) []FaceCoord {
	return substrateVerts(fijk, res, pentVertsCII, pentVertsCIII)
}

// _faceIjkToGeoBoundary Generates the cell boundary in spherical coordinates
// for a cell given by a FaceCoord address at a specified resolution.
func _faceIjkToGeoBoundary(h *FaceCoord, res int, start int, length int, g *CellBoundary) {
	adjRes := res
	centerIJK := *h
	fijkVerts := faceIjkToVerts(&centerIJK, &adjRes)

	// If we're returning the entire loop, we need one more iteration in case
	// of a distortion vertex on the last edge
	additionalIteration := 0
	if length == NumHexVerts {
		additionalIteration = 1
	}

	// convert each vertex to lat/lon
	// adjust the face of each vertex as appropriate and introduce
	// edge-crossing vertices as needed
	g.numVerts = 0
	lastFace := -1
	lastOverage := overageNone
	for vert := start; vert < start+length+additionalIteration; vert++ {
		v := vert % NumHexVerts

		fijk := fijkVerts[v]

		overage := _adjustOverageClassII(&fijk, adjRes, false, true)

		/*
		   Check for edge-crossing. Each face of the underlying icosahedron is a
		   different projection plane. So if an edge of the hexagon crosses an
		   icosahedron edge, an additional vertex must be introduced at that
		   intersection point. Then each half of the cell edge can be projected
		   to geographic coordinates using the appropriate icosahedron face
		   projection. Note that Class II cell edges have vertices on the face
		   edge, with no edge line intersections.
		*/
		if isResClassIII(res) && vert > start && fijk.face != lastFace && lastOverage != overageFaceEdge {
			// find hex2d of the two vertexes on original face
			lastV := (v + 5) % NumHexVerts
			var orig2d0 Point2D
			_ijkToHex2d(&fijkVerts[lastV].coord, &orig2d0)

			var orig2d1 Point2D
			_ijkToHex2d(&fijkVerts[v].coord, &orig2d1)

			// find the appropriate icosa face edge vertexes
			maxDim := maxDimByCIIres[adjRes]
			v0 := Point2D{3.0 * float64(maxDim), 0.0}
			v1 := Point2D{-1.5 * float64(maxDim), 3.0 * sqrt3Over2 * float64(maxDim)}
			v2 := Point2D{-1.5 * float64(maxDim), -3.0 * sqrt3Over2 * float64(maxDim)}

			face2 := lastFace
			if lastFace == centerIJK.face {
				face2 = fijk.face
			}

			var edge0 *Point2D
			var edge1 *Point2D
			switch adjacentFaceDir[centerIJK.face][face2] {
			case quadrantIJ:
				edge0 = &v0
				edge1 = &v1
			case quadrantJK:
				edge0 = &v1
				edge1 = &v2
			// case quadrantKI:
			default:
				edge0 = &v2
				edge1 = &v0
			}

			// find the intersection and add the lat/lon point to the result
			var inter Point2D
			_v2dIntersect(&orig2d0, &orig2d1, edge0, edge1, &inter)
			/*
			   If a point of intersection occurs at a hexagon vertex, then each
			   adjacent hexagon edge will lie completely on a single icosahedron
			   face, and no additional vertex is required.
			*/
			isIntersectionAtVertex := _v2dEquals(&orig2d0, &inter) || _v2dEquals(&orig2d1, &inter)
			if !isIntersectionAtVertex {
				_hex2dToGeo(&inter, centerIJK.face, adjRes, true, &g.verts[g.numVerts])
				g.numVerts++
			}
		}

		// convert vertex to lat/lon and add to the result
		// vert == start + NumHexVerts is only used to test for possible
		// intersection on last edge
		if vert < start+NumHexVerts {
			var vec Point2D
			_ijkToHex2d(&fijk.coord, &vec)
			_hex2dToGeo(&vec, fijk.face, adjRes, true, &g.verts[g.numVerts])
			g.numVerts++
		}

		lastFace = fijk.face
		lastOverage = overage
	}
}

// faceIjkToVerts gets the vertices of a hexagon cell as substrate
// FaceCoord addresses, adjusting *res to the substrate resolution used.
func faceIjkToVerts(fijk *FaceCoord, res *int) []FaceCoord {
	return substrateVerts(fijk, res, hexVertsCII, hexVertsCIII)
}

// _adjustOverageClassII adjusts a FaceCoord address in place so that the
// resulting cell address is relative to the correct icosahedral face.
//
// Return overageNone(0) if on original face (no overage)
//        overageFaceEdge(1) if on face edge (only occurs on substrate grids)
//        overageNewFace(2) if overage on new face interior
func _adjustOverageClassII(fijk *FaceCoord, res int, pentLeading4 bool, substrate bool) Overage {
	overage := overageNone

	ijk := &fijk.coord

	// get the maximum dimension value; scale if a substrate grid
	maxDim := maxDimByCIIres[res]
	if substrate {
		maxDim *= 3
	}

	// check for overage
	if substrate && ijk.i+ijk.j+ijk.k == maxDim { // on edge
		overage = overageFaceEdge
	} else if ijk.i+ijk.j+ijk.k > maxDim { // overage
		overage = overageNewFace

		var fijkOrient *FaceOrientIJK
		if ijk.k > 0 {
			if ijk.j > 0 { // jk "quadrant"
				fijkOrient = &faceNeighbors[fijk.face][quadrantJK]
			} else { // ik "quadrant"
				fijkOrient = &faceNeighbors[fijk.face][quadrantKI]

				// adjust for the pentagonal missing sequence
				if pentLeading4 {
					// translate origin to center of pentagon
					var origin CubeCoord
					_setIJK(&origin, maxDim, 0, 0)
					var tmp CubeCoord
					_ijkSub(ijk, &origin, &tmp)
					// rotate to adjust for the missing sequence
					_ijkRotate60cw(&tmp)
					// translate the origin back to the center of the triangle
					_ijkAdd(&tmp, &origin, ijk)
				}
			}
		} else { // ij "quadrant"
			fijkOrient = &faceNeighbors[fijk.face][quadrantIJ]
		}

		fijk.face = fijkOrient.face

		// rotate and translate for adjacent face
		for i := 0; i < fijkOrient.ccwRot60; i++ {
			_ijkRotate60ccw(ijk)
		}

		transVec := fijkOrient.translate
		unitScale := unitScaleByCIIres[res]
		if substrate {
			unitScale *= 3
		}
		_ijkScale(&transVec, unitScale)
		_ijkAdd(ijk, &transVec, ijk)
		_ijkNormalize(ijk)

		// overage points on pentagon boundaries can end up on edges
		if substrate && ijk.i+ijk.j+ijk.k == maxDim { // on edge
			overage = overageFaceEdge
		}
	}

	return overage
}

// _adjustPentVertOverage adjusts a FaceCoord address for a pentagon vertex in a substrate grid in place so that the resulting cell address is relative to the correct icosahedral face.
func _adjustPentVertOverage(fijk *FaceCoord, res int) Overage {
	var overage Overage
	for {
		overage = _adjustOverageClassII(fijk, res, false, true)
		if overage != overageNewFace {
			break
		}
	}
	return overage
}
