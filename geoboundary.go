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

// maxBoundaryVerts bounds how many vertices a cell boundary can ever need:
// a pentagon's 5 original vertices plus up to 5 icosahedral edge-crossing
// vertices introduced when its Class III distortion straddles two faces.
const maxBoundaryVerts = 2 * NumPentVerts

// CellBoundary is the ordered loop of vertices, in latitude/longitude,
// bounding a cell on the sphere.
type CellBoundary struct {
	numVerts int
	verts    [maxBoundaryVerts]LatLng
}

// Len reports how many vertices this boundary actually uses.
func (b *CellBoundary) Len() int {
	return b.numVerts
}

// Vertex returns the i-th boundary vertex in ccw order.
func (b *CellBoundary) Vertex(i int) LatLng {
	return b.verts[i]
}
