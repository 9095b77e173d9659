/*
 * kpath.go, part of openmx.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package openmx

import "gonum.org/v1/gonum/spatial/r3"

//KPathSegment is a straight line in reciprocal space, sampled with Points k-points.
//Start and End are in reduced (fractional) reciprocal-lattice coordinates.
//Labels name the high-symmetry points at each end, "g" standing for Gamma.
type KPathSegment struct {
	Points int
	Start  r3.Vec
	End    r3.Vec
	Labels [2]string
}

//The segments are not meant to form a continuous line,
//the last one goes from Gamma to (1,1,0).
var defaultKPath = [...]KPathSegment{
	{20, r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 0, Z: 0}, [2]string{"g", "X"}},
	{20, r3.Vec{X: 1, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 0.5, Z: 0}, [2]string{"X", "W"}},
	{20, r3.Vec{X: 1, Y: 0.5, Z: 0}, r3.Vec{X: 0.5, Y: 0.5, Z: 0}, [2]string{"W", "L"}},
	{20, r3.Vec{X: 0.5, Y: 0.5, Z: 0}, r3.Vec{X: 0, Y: 0, Z: 0}, [2]string{"L", "g"}},
	{20, r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 1, Z: 0}, [2]string{"g", "X"}},
}

//DefaultKPath returns the band-structure path used when none is given.
//Each call returns a new slice, which the caller can modify.
func DefaultKPath() []KPathSegment {
	ret := make([]KPathSegment, len(defaultKPath))
	copy(ret, defaultKPath[:])
	return ret
}
