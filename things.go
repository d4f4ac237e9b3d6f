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

// LevelThing is a thing placed by the layout. A teleport destination with
// non-zero TID gets that thing id in UDMF
type LevelThing struct {
	X, Y  int
	Angle int
	Type  int
	TID   int
	Flags int16
}

func (t LevelThing) String() string {
	return fmt.Sprintf("Thing(type %d at %d,%d)", t.Type, t.X, t.Y)
}

// Furniture presets
var FURNITURE_TYPES = map[string]int{
	"lamp":       THING_TALL_TECH_LAMP,
	"column":     THING_TECH_COLUMN,
	"candle":     THING_CANDLE,
	"candelabra": THING_CANDELABRA,
	"pillar":     THING_TALL_GREEN_PILL,
	"floorlamp":  THING_FLOOR_LAMP,
}

func NewFurniture(kind string, x, y, angle int) (LevelThing, error) {
	typ, ok := FURNITURE_TYPES[kind]
	if !ok {
		return LevelThing{}, fmt.Errorf("%w: unknown furniture '%s'",
			ErrLevelDescription, kind)
	}
	return LevelThing{X: x, Y: y, Angle: angle, Type: typ, Flags: TF_ALL_SKILLS}, nil
}

func NewTeleportDestination(x, y, angle, tid int) LevelThing {
	return LevelThing{
		X:     x,
		Y:     y,
		Angle: angle,
		Type:  THING_TELEPORT_DEST,
		TID:   tid,
		Flags: TF_ALL_SKILLS,
	}
}

func (t LevelThing) build(b *MapBuilder) {
	flags := t.Flags
	if flags == 0 {
		flags = TF_ALL_SKILLS
	}
	b.AddThing(MapThing{
		X:     t.X,
		Y:     t.Y,
		Angle: t.Angle,
		Type:  t.Type,
		Flags: flags,
	})
	if t.Type == THING_TELEPORT_DEST && t.TID != 0 {
		b.RegisterTeleportDestination(t.X, t.Y, t.TID)
	}
}
