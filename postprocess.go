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

// Floor3DSpec asks for control line ControlLineID to turn sectors tagged
// TargetTag into holders of a 3D floor
type Floor3DSpec struct {
	ControlLineID int
	TargetTag     int
	Type          int
	Flags         int
	Alpha         int
}

func (s Floor3DSpec) String() string {
	return fmt.Sprintf("control line %d for tag %d", s.ControlLineID, s.TargetTag)
}

// TeleportDestSpec asks for the teleport destination thing at exactly (X, Y)
// to receive thing id TID
type TeleportDestSpec struct {
	X, Y int
	TID  int
}

func (s TeleportDestSpec) String() string {
	return fmt.Sprintf("tid %d at (%d,%d)", s.TID, s.X, s.Y)
}

// Door actions whose tag must name an existing sector
var doorActions = map[int]bool{
	ACTION_DR_DOOR:        true,
	ACTION_DR_DOOR_BLUE:   true,
	ACTION_DR_DOOR_YELLOW: true,
	ACTION_DR_DOOR_RED:    true,
	ACTION_D1_DOOR_STAY:   true,
	ACTION_S1_DOOR_STAY:   true,
	ACTION_SR_DOOR_CLOSE:  true,
}

func resolve3DFloors(m *UDMFMap, specs []Floor3DSpec) error {
	for _, spec := range specs {
		lines := linesWithID(m.Linedefs, spec.ControlLineID)
		if spec.ControlLineID == 0 || len(lines) == 0 {
			return &UnresolvedSpecError{Kind: "3D floor", Spec: spec.String()}
		}
		for _, i := range lines {
			ld := &m.Linedefs[i]
			ld.Special = SPECIAL_SET_3D_FLOOR
			ld.Args = [5]int{spec.TargetTag, spec.Type, spec.Flags, spec.Alpha, 0}
		}
	}
	return nil
}

func resolveTeleportDestinations(m *UDMFMap, specs []TeleportDestSpec) error {
	for _, spec := range specs {
		found := -1
		matches := 0
		for i := range m.Things {
			t := &m.Things[i]
			if t.Type == THING_TELEPORT_DEST && t.X == spec.X && t.Y == spec.Y {
				found = i
				matches++
			}
		}
		if matches != 1 {
			return &UnresolvedSpecError{
				Kind:    "teleport destination",
				Spec:    spec.String(),
				Matches: matches,
			}
		}
		m.Things[found].ID = spec.TID
	}
	return nil
}

// Door line tags must find their door sector, or the door won't open
func checkDoorTags(m *UDMFMap, lines []MapLinedef) error {
	ids := make(map[int]bool, len(m.Sectors))
	for _, s := range m.Sectors {
		if s.ID != 0 {
			ids[s.ID] = true
		}
	}
	for i, ld := range lines {
		if !doorActions[ld.Action] || ld.Tag == 0 {
			continue
		}
		if !ids[ld.Tag] {
			return &UnresolvedSpecError{
				Kind: "door tag",
				Spec: fmt.Sprintf("%d on linedef %d", ld.Tag, i),
			}
		}
	}
	return nil
}

// ResolveDeferredSpecs consumes every spec recorded while the map was built
func ResolveDeferredSpecs(m *UDMFMap, b *MapBuilder) error {
	if err := checkDoorTags(m, b.Linedefs); err != nil {
		return err
	}
	if err := resolve3DFloors(m, b.floors3d); err != nil {
		return err
	}
	if err := ResolveLinePortals(m, b.portals); err != nil {
		return err
	}
	if err := resolveTeleportDestinations(m, b.teleports); err != nil {
		return err
	}
	Log.Verbose(1, "Resolved %d 3D floor(s), %d line portal(s), %d teleport destination(s)\n",
		len(b.floors3d), len(b.portals), len(b.teleports))
	return nil
}
