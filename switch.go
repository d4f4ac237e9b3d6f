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

const SWITCH_SIZE = 16
const SWITCH_HEIGHT = 64

// Switch is a small alcove cut into a room wall. Its back walls carry the
// switch texture and the action; the opening joins the alcove to the room
type Switch struct {
	X, Y    int
	Room    *Room
	Action  int
	Tag     int
	Texture string
}

func NewSwitch(x, y int, room *Room, action, tag int) *Switch {
	return &Switch{
		X:       x,
		Y:       y,
		Room:    room,
		Action:  action,
		Tag:     tag,
		Texture: SWITCH_TEX,
	}
}

func (s *Switch) rect() *ConnectorRect {
	return &ConnectorRect{
		X: s.X, Y: s.Y, Width: SWITCH_SIZE, Height: SWITCH_SIZE,
		Room1: s.Room,
	}
}

func (s *Switch) String() string {
	return fmt.Sprintf("Switch%s", s.rect().Rect())
}

func (s *Switch) RegisterCuts() error {
	if err := s.rect().registerCuts(); err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	return nil
}

func (s *Switch) Build(b *MapBuilder) error {
	cr := s.rect()
	floor := cr.baseFloor()
	sec, err := b.DrawPolygon(cr.polygon(), SectorAttrs{
		FloorTex:    DOOR_FLOOR_FLAT,
		CeilTex:     "CEIL3_5",
		WallTex:     s.Texture,
		FloorHeight: floor,
		CeilHeight:  floor + SWITCH_HEIGHT,
		Light:       cr.baseLight(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	var edgeA, edgeB Point
	hasOpening := false
	if s.Room != nil {
		edgeA, edgeB, hasOpening = cr.sharedEdge(s.Room)
	}
	openings, backings := 0, 0
	for _, li := range b.SectorLines(sec) {
		p1, p2 := b.LineEndpoints(li)
		if hasOpening && SegmentWithin(p1, p2, edgeA, edgeB) {
			own, other, ok := b.faceOf(li, sec)
			if !ok {
				continue
			}
			b.Sidedefs[own].Middle = EMPTY_TEXTURE
			b.Sidedefs[other].Middle = EMPTY_TEXTURE
			b.Sidedefs[other].Upper = s.Room.WallTex
			openings++
			continue
		}
		ld := &b.Linedefs[li]
		side := ld.Front
		if own, _, ok := b.faceOf(li, sec); ok {
			// something else is behind the alcove
			side = own
		}
		b.Sidedefs[side].Middle = s.Texture
		ld.Action = s.Action
		ld.Tag = s.Tag
		backings++
	}
	if s.Room != nil && openings == 0 {
		return fmt.Errorf("%w: %s has no opening into %s", ErrGeometry, s, s.Room)
	}
	Log.Verbose(2, "%s: sector %d, %d backing face(s), action %d tag %d\n",
		s, sec, backings, s.Action, s.Tag)
	return nil
}
