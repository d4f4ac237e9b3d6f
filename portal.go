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

const (
	PORTAL_TYPE_VISUAL      = 0
	PORTAL_TYPE_INTERACTIVE = 1 // teleports what crosses it
	PORTAL_TYPE_LINKED      = 3
)

// Portal is a connector sector whose edge against Room1 becomes a line
// portal to another line of the map. Two portals with swapped ids make a
// two-way pair
type Portal struct {
	ConnectorRect
	SourceLineID int
	TargetLineID int
	Type         int
	PlaneAnchor  int
	FloorTex     string
	CeilTex      string
	WallTex      string
}

func NewPortal(x, y, width, height int, room1, room2 *Room, sourceID, targetID int) *Portal {
	return &Portal{
		ConnectorRect: ConnectorRect{
			X: x, Y: y, Width: width, Height: height,
			Room1: room1, Room2: room2,
		},
		SourceLineID: sourceID,
		TargetLineID: targetID,
		Type:         PORTAL_TYPE_INTERACTIVE,
		PlaneAnchor:  1,
		FloorTex:     "FLOOR4_8",
		CeilTex:      "CEIL3_5",
		WallTex:      "STARTAN3",
	}
}

func (p *Portal) String() string {
	return fmt.Sprintf("Portal%s(%d->%d)", p.Rect(), p.SourceLineID,
		p.TargetLineID)
}

func (p *Portal) RegisterCuts() error {
	if p.Room1 == nil {
		return fmt.Errorf("%w: %s needs a room to open from", ErrConnectorNotAligned, p)
	}
	if err := p.registerCuts(); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	return nil
}

func (p *Portal) ceilHeight() int {
	switch {
	case p.Room1 != nil && p.Room2 != nil:
		return max(p.Room1.CeilHeight, p.Room2.CeilHeight)
	case p.Room1 != nil:
		return p.Room1.CeilHeight
	case p.Room2 != nil:
		return p.Room2.CeilHeight
	}
	return p.baseFloor() + DOOR_OPEN_HEIGHT
}

func (p *Portal) Build(b *MapBuilder) error {
	sec, err := b.DrawPolygon(p.polygon(), SectorAttrs{
		FloorTex:    p.FloorTex,
		CeilTex:     p.CeilTex,
		WallTex:     p.WallTex,
		FloorHeight: p.baseFloor(),
		CeilHeight:  p.ceilHeight(),
		Light:       p.baseLight(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	edgeA, edgeB, ok := p.sharedEdge(p.Room1)
	if !ok {
		return fmt.Errorf("%w: %s lost its edge against %s", ErrGeometry, p, p.Room1)
	}
	tagged := 0
	for _, li := range b.SectorLines(sec) {
		p1, p2 := b.LineEndpoints(li)
		if !SegmentWithin(p1, p2, edgeA, edgeB) {
			continue
		}
		own, other, ok := b.faceOf(li, sec)
		if !ok {
			continue
		}
		b.Linedefs[li].ID = p.SourceLineID
		b.Sidedefs[own].Middle = EMPTY_TEXTURE
		b.Sidedefs[other].Middle = EMPTY_TEXTURE
		tagged++
	}
	if tagged == 0 {
		return fmt.Errorf("%w: %s found no line on its edge against %s",
			ErrGeometry, p, p.Room1)
	}
	b.RegisterLinePortal(LinePortalSpec{
		SourceLineID: p.SourceLineID,
		TargetLineID: p.TargetLineID,
		Type:         p.Type,
		PlaneAnchor:  p.PlaneAnchor,
	})
	Log.Verbose(2, "%s: sector %d, %d line(s) with id %d\n", p, sec, tagged,
		p.SourceLineID)
	return nil
}
