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

// PlanarCoord is a two-axis (i, j) planar hexagon coordinate, the flattened
// form of a CubeCoord with its k-axis dropped. Each axis is spaced 120
// degrees apart, the same as the full three-axis system.
type PlanarCoord struct {
	i, j int
}

// Expand lifts a planar (i, j) coordinate back into the three-axis ijk+
// system by reintroducing k at zero and renormalizing so the axes sum to
// the canonical non-negative form.
func (p *PlanarCoord) Expand() CubeCoord {
	cube := CubeCoord{i: p.i, j: p.j, k: 0}
	cube.Normalize()
	return cube
}
