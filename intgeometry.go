// Copyright (C) 2025, VigilantDoomer
//
// This file is part of VigilantGen program.
//
// VigilantGen is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantGen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantGen.  If not, see <https://www.gnu.org/licenses/>.

// intgeometry
package main

import (
	"fmt"
)

// Map editing happens on the integer grid: every coordinate a layout produces
// is an exact integer, and vertices are the same vertex only when both
// coordinates are equal.

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Axis-aligned rectangle, origin at bottom-left corner
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y }
func (r Rect) Top() int    { return r.Y + r.Height }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Corners in counter-clockwise order starting from bottom-left
func (r Rect) Corners() []Point {
	return []Point{
		Point{r.Left(), r.Bottom()},
		Point{r.Right(), r.Bottom()},
		Point{r.Right(), r.Top()},
		Point{r.Left(), r.Top()},
	}
}

// Overlaps reports whether two rectangles share a region of positive area.
// Rectangles that only touch along an edge or at a corner do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Bottom() < o.Top() && o.Bottom() < r.Top()
}

// Key by unordered vertex pair, so that both directions of traversal of the
// same edge find the same linedef
type EdgeKey struct {
	A, B Point
}

func MakeEdgeKey(a, b Point) EdgeKey {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Twice the signed area of polygon. Positive for counter-clockwise order
func SignedArea2(points []Point) int {
	area := 0
	for i := range points {
		j := (i + 1) % len(points)
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return area
}

// Whether point p lies on the closed segment a-b. Exact for integer
// coordinates
func PointOnSegment(p, a, b Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// Whether segment c-d lies entirely within segment a-b
func SegmentWithin(c, d, a, b Point) bool {
	return PointOnSegment(c, a, b) && PointOnSegment(d, a, b)
}

// Removes consecutive duplicate points, and the closing point if it repeats
// the first one
func CollapseDuplicates(points []Point) []Point {
	res := make([]Point, 0, len(points))
	for _, p := range points {
		if len(res) > 0 && res[len(res)-1] == p {
			continue
		}
		res = append(res, p)
	}
	if len(res) > 1 && res[len(res)-1] == res[0] {
		res = res[:len(res)-1]
	}
	return res
}

// Bounding box of the points. ok is false for empty input
func PointsBounds(points []Point) (minP, maxP Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, false
	}
	minP, maxP = points[0], points[0]
	for _, p := range points[1:] {
		minP.X = min(minP.X, p.X)
		minP.Y = min(minP.Y, p.Y)
		maxP.X = max(maxP.X, p.X)
		maxP.Y = max(maxP.Y, p.Y)
	}
	return minP, maxP, true
}
