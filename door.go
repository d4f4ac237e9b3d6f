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
	DOOR_CLOSED = iota
	DOOR_OPEN
)

// Height a door opens to
const DOOR_OPEN_HEIGHT = 128

// Door is a thin sector between two rooms whose ceiling is lowered to the
// floor. Its two faces get the door texture and the action that raises it
type Door struct {
	ConnectorRect
	Texture string
	State   int
	Action  int
	// Tag of the door sector. Zero makes the builder allocate one
	Tag int
}

func NewDoor(x, y, width, height int, room1, room2 *Room) *Door {
	return &Door{
		ConnectorRect: ConnectorRect{
			X: x, Y: y, Width: width, Height: height,
			Room1: room1, Room2: room2,
		},
		Texture: "BIGDOOR2",
		State:   DOOR_CLOSED,
		Action:  ACTION_DR_DOOR,
	}
}

func (d *Door) String() string {
	return fmt.Sprintf("Door%s", d.Rect())
}

func (d *Door) RegisterCuts() error {
	if err := d.registerCuts(); err != nil {
		return fmt.Errorf("%s: %w", d, err)
	}
	return nil
}

func (d *Door) Build(b *MapBuilder) error {
	floor := d.baseFloor()
	ceil := floor
	if d.State == DOOR_OPEN {
		ceil = floor + DOOR_OPEN_HEIGHT
	}
	tag := d.Tag
	if tag == 0 {
		tag = b.alloc.NewSectorTag()
		if story := d.sharedStoryTag(); story != 0 {
			b.RegisterExtra3DFloorTarget(story, tag)
		}
	}
	sec, err := b.DrawPolygon(d.polygon(), SectorAttrs{
		FloorTex:    DOOR_FLOOR_FLAT,
		CeilTex:     DOOR_CEIL_FLAT,
		WallTex:     DOOR_TRACK_TEX,
		FloorHeight: floor,
		CeilHeight:  ceil,
		Light:       d.baseLight(),
		Tag:         tag,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", d, err)
	}
	faces := 0
	for _, li := range b.SectorLines(sec) {
		_, roomSide, ok := b.faceOf(li, sec)
		if !ok {
			continue
		}
		b.Sidedefs[roomSide].Upper = d.Texture
		ld := &b.Linedefs[li]
		if d.Action != ACTION_NONE {
			ld.Action = d.Action
		}
		ld.Tag = tag
		ld.Flags |= LF_UPPER_UNPEGGED
		faces++
	}
	if faces == 0 {
		return fmt.Errorf("%w: %s has no faces", ErrGeometry, d)
	}
	Log.Verbose(2, "%s: sector %d tag %d, %d face(s)\n", d, sec, tag, faces)
	return nil
}
