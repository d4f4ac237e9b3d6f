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
package main

import (
	"fmt"
	"sort"
)

type Side int

// Room sides. Cut offsets on top and bottom are measured from the left edge,
// on left and right from the bottom edge
const (
	SIDE_TOP Side = iota
	SIDE_BOTTOM
	SIDE_LEFT
	SIDE_RIGHT
)

func (s Side) String() string {
	switch s {
	case SIDE_TOP:
		return "top"
	case SIDE_BOTTOM:
		return "bottom"
	case SIDE_LEFT:
		return "left"
	case SIDE_RIGHT:
		return "right"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

func ParseSide(s string) (Side, error) {
	switch s {
	case "top", "north":
		return SIDE_TOP, nil
	case "bottom", "south":
		return SIDE_BOTTOM, nil
	case "left", "west":
		return SIDE_LEFT, nil
	case "right", "east":
		return SIDE_RIGHT, nil
	}
	return SIDE_TOP, fmt.Errorf("%w: unknown side '%s'", ErrLevelDescription, s)
}

type RoomKind int

const (
	ROOM_PLAIN RoomKind = iota
	ROOM_CORRIDOR
	ROOM_LAWN
)

func (k RoomKind) String() string {
	switch k {
	case ROOM_CORRIDOR:
		return "Corridor"
	case ROOM_LAWN:
		return "Lawn"
	}
	return "Room"
}

// Room is an axis-aligned rectangle that becomes one sector. Connectors
// touching its edges insert cut points, so that the edge is split into
// separate linedefs exactly where the connector begins and ends
type Room struct {
	Kind          RoomKind
	X, Y          int
	Width, Height int
	FloorTex      string
	CeilTex       string
	WallTex       string
	FloorHeight   int
	CeilHeight    int
	Light         int
	Tag           int
	Special       int

	cuts   [4][]int
	sector int // index of emitted sector, -1 before the room is built
}

func NewRoom(x, y, width, height int) *Room {
	return &Room{
		Kind:        ROOM_PLAIN,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		FloorTex:    "FLOOR4_8",
		CeilTex:     "CEIL3_5",
		WallTex:     "STARTAN3",
		FloorHeight: 0,
		CeilHeight:  128,
		Light:       DEFAULT_LIGHT,
		sector:      -1,
	}
}

func NewCorridor(x, y, width, height int) *Room {
	r := NewRoom(x, y, width, height)
	r.Kind = ROOM_CORRIDOR
	r.FloorTex = "FLOOR0_1"
	r.WallTex = "STONE2"
	return r
}

// Lawn is an outdoor area: sky ceiling high enough to see building facades
func NewLawn(x, y, width, height int) *Room {
	r := NewRoom(x, y, width, height)
	r.Kind = ROOM_LAWN
	r.FloorTex = "PYGRASS"
	r.CeilTex = SKY_FLAT
	r.WallTex = "BRICK7"
	r.CeilHeight = 384
	r.Light = 192
	return r
}

func (r *Room) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r *Room) String() string {
	return fmt.Sprintf("%s%s", r.Kind, r.Rect())
}

// Length of the side
func (r *Room) SideLength(side Side) int {
	if side == SIDE_TOP || side == SIDE_BOTTOM {
		return r.Width
	}
	return r.Height
}

// AddCut registers a split point on side. Offsets that are not strictly
// inside the side, and offsets already present, are dropped silently
func (r *Room) AddCut(side Side, offset int) {
	if offset <= 0 || offset >= r.SideLength(side) {
		return
	}
	for _, c := range r.cuts[side] {
		if c == offset {
			return
		}
	}
	r.cuts[side] = append(r.cuts[side], offset)
}

// Cuts of side in ascending order
func (r *Room) Cuts(side Side) []int {
	res := make([]int, len(r.cuts[side]))
	copy(res, r.cuts[side])
	sort.Ints(res)
	return res
}

// Sector returns index of the emitted sector, -1 if the room was not built
func (r *Room) Sector() int {
	return r.sector
}

// Polygon walks the boundary counter-clockwise: bottom left to right, right
// bottom to top, top right to left, left top to bottom. Each side contributes
// its starting corner followed by its cuts
func (r *Room) Polygon() []Point {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	pts := make([]Point, 0, 4+len(r.cuts[0])+len(r.cuts[1])+
		len(r.cuts[2])+len(r.cuts[3]))

	pts = append(pts, Point{x0, y0})
	for _, c := range r.Cuts(SIDE_BOTTOM) {
		pts = append(pts, Point{x0 + c, y0})
	}
	pts = append(pts, Point{x1, y0})
	for _, c := range r.Cuts(SIDE_RIGHT) {
		pts = append(pts, Point{x1, y0 + c})
	}
	pts = append(pts, Point{x1, y1})
	top := r.Cuts(SIDE_TOP)
	for i := len(top) - 1; i >= 0; i-- {
		pts = append(pts, Point{x0 + top[i], y1})
	}
	pts = append(pts, Point{x0, y1})
	left := r.Cuts(SIDE_LEFT)
	for i := len(left) - 1; i >= 0; i-- {
		pts = append(pts, Point{x0, y0 + left[i]})
	}
	return CollapseDuplicates(pts)
}

// World coordinates of the side, in the direction cut offsets grow
func (r *Room) SideSegment(side Side) (Point, Point) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	switch side {
	case SIDE_TOP:
		return Point{x0, y1}, Point{x1, y1}
	case SIDE_BOTTOM:
		return Point{x0, y0}, Point{x1, y0}
	case SIDE_LEFT:
		return Point{x0, y0}, Point{x0, y1}
	default:
		return Point{x1, y0}, Point{x1, y1}
	}
}

// World coordinates of point at offset along side
func (r *Room) SidePoint(side Side, offset int) Point {
	a, _ := r.SideSegment(side)
	if side == SIDE_TOP || side == SIDE_BOTTOM {
		return Point{a.X + offset, a.Y}
	}
	return Point{a.X, a.Y + offset}
}

func (r *Room) attrs() SectorAttrs {
	return SectorAttrs{
		FloorTex:    r.FloorTex,
		CeilTex:     r.CeilTex,
		WallTex:     r.WallTex,
		FloorHeight: r.FloorHeight,
		CeilHeight:  r.CeilHeight,
		Light:       r.Light,
		Tag:         r.Tag,
		Special:     r.Special,
	}
}

// build emits the room's sector
func (r *Room) build(b *MapBuilder) error {
	sec, err := b.DrawPolygon(r.Polygon(), r.attrs())
	if err != nil {
		return fmt.Errorf("room %s: %w", r, err)
	}
	r.sector = sec
	return nil
}
