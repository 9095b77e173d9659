/*
 * kpath_test.go, part of openmx.
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

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDefaultKPath(Te *testing.T) {
	path := DefaultKPath()
	if len(path) != 5 {
		Te.Fatalf("expected 5 segments, got %d", len(path))
	}
	for i, s := range path {
		if s.Points != 20 {
			Te.Errorf("segment %d: %d points", i, s.Points)
		}
	}
	labels := [][2]string{{"g", "X"}, {"X", "W"}, {"W", "L"}, {"L", "g"}, {"g", "X"}}
	for i, l := range labels {
		if path[i].Labels != l {
			Te.Errorf("segment %d: labels %v, expected %v", i, path[i].Labels, l)
		}
	}
	if path[1].End != (r3.Vec{X: 1, Y: 0.5}) {
		Te.Errorf("wrong end for X-W: %v", path[1].End)
	}
	//the last segment doesn't start where the previous ended.
	if path[4].Start != path[3].End || path[4].End != (r3.Vec{X: 1, Y: 1}) {
		Te.Errorf("wrong last segment %+v", path[4])
	}
}

func TestDefaultKPathCopy(Te *testing.T) {
	p := DefaultKPath()
	p[0].Points = 3
	p[0].Labels[0] = "Z"
	if q := DefaultKPath(); q[0].Points != 20 || q[0].Labels[0] != "g" {
		Te.Errorf("default path modified: %+v", q[0])
	}
}
