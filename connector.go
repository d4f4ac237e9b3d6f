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
)

// Connector is a layout feature that joins or decorates rooms. Every
// connector first registers cuts on the rooms it touches (before any room is
// built), and then builds itself once every room sector exists
type Connector interface {
	RegisterCuts() error
	Build(b *MapBuilder) error
	String() string
}

// ConnectorRect is a rectangle squeezed between (or attached to) rooms. One
// of its edges must coincide with an edge of each room it names
type ConnectorRect struct {
	X, Y          int
	Width, Height int
	Room1         *Room
	Room2         *Room
}

func (c *ConnectorRect) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// relationTo finds which side of room the connector is attached to, and the
// span along that side in room-local offsets. The four relations are
// checked in fixed order, first hit wins
func (c *ConnectorRect) relationTo(room *Room) (Side, int, int, bool) {
	cr := c.Rect()
	rr := room.Rect()
	spanX := cr.Left() < rr.Right() && rr.Left() < cr.Right()
	spanY := cr.Bottom() < rr.Top() && rr.Bottom() < cr.Top()
	switch {
	case cr.Left() == rr.Right() && spanY:
		return SIDE_RIGHT, cr.Bottom() - rr.Bottom(), cr.Top() - rr.Bottom(), true
	case cr.Right() == rr.Left() && spanY:
		return SIDE_LEFT, cr.Bottom() - rr.Bottom(), cr.Top() - rr.Bottom(), true
	case cr.Bottom() == rr.Top() && spanX:
		return SIDE_TOP, cr.Left() - rr.Left(), cr.Right() - rr.Left(), true
	case cr.Top() == rr.Bottom() && spanX:
		return SIDE_BOTTOM, cr.Left() - rr.Left(), cr.Right() - rr.Left(), true
	}
	return SIDE_TOP, 0, 0, false
}

func (c *ConnectorRect) registerOn(room *Room) error {
	if room == nil {
		return nil
	}
	side, from, to, ok := c.relationTo(room)
	if !ok {
		return fmt.Errorf("%w: %s does not touch %s", ErrConnectorNotAligned,
			c.Rect(), room)
	}
	room.AddCut(side, from)
	room.AddCut(side, to)
	return nil
}

func (c *ConnectorRect) registerCuts() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: connector %s has no area", ErrGeometry, c.Rect())
	}
	if err := c.registerOn(c.Room1); err != nil {
		return err
	}
	return c.registerOn(c.Room2)
}

// sharedEdge returns the connector edge lying on room's side
func (c *ConnectorRect) sharedEdge(room *Room) (Point, Point, bool) {
	side, from, to, ok := c.relationTo(room)
	if !ok {
		return Point{}, Point{}, false
	}
	return room.SidePoint(side, from), room.SidePoint(side, to), true
}

func (c *ConnectorRect) polygon() []Point {
	return c.Rect().Corners()
}

// Floor of the first room present, 0 when the connector has no rooms
func (c *ConnectorRect) baseFloor() int {
	if c.Room1 != nil {
		return c.Room1.FloorHeight
	}
	if c.Room2 != nil {
		return c.Room2.FloorHeight
	}
	return 0
}

func (c *ConnectorRect) baseLight() int {
	if c.Room1 != nil {
		return c.Room1.Light
	}
	if c.Room2 != nil {
		return c.Room2.Light
	}
	return DEFAULT_LIGHT
}

// Non-zero tag shared by both rooms. Rooms of the same building story share
// a tag that 3D floors get attached to
func (c *ConnectorRect) sharedStoryTag() int {
	if c.Room1 == nil || c.Room2 == nil {
		return 0
	}
	if c.Room1.Tag != 0 && c.Room1.Tag == c.Room2.Tag {
		return c.Room1.Tag
	}
	return 0
}
