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

// linguortals.go
package main

import (
	"fmt"
)

// LinePortalSpec asks for every line carrying id SourceLineID to become a
// portal into the line carrying TargetLineID. Line ids exist only in UDMF,
// so the special is attached when the map is lowered
type LinePortalSpec struct {
	SourceLineID int
	TargetLineID int
	Type         int
	PlaneAnchor  int
}

func (s LinePortalSpec) String() string {
	return fmt.Sprintf("%d->%d (type %d)", s.SourceLineID, s.TargetLineID, s.Type)
}

// linesWithID returns indices of lines carrying id
func linesWithID(lines []UDMFLinedef, id int) []int {
	res := make([]int, 0, 1)
	for i := range lines {
		if lines[i].ID == id {
			res = append(res, i)
		}
	}
	return res
}

// ResolveLinePortals attaches Line_SetPortal to source lines of every spec.
// Source may have been split into several lines, all of them receive the
// special. Both source and target must exist
func ResolveLinePortals(m *UDMFMap, specs []LinePortalSpec) error {
	for _, spec := range specs {
		if spec.SourceLineID == 0 {
			return &UnresolvedSpecError{Kind: "line portal", Spec: spec.String()}
		}
		sources := linesWithID(m.Linedefs, spec.SourceLineID)
		if len(sources) == 0 {
			return &UnresolvedSpecError{Kind: "line portal", Spec: spec.String()}
		}
		if len(linesWithID(m.Linedefs, spec.TargetLineID)) == 0 {
			return &UnresolvedSpecError{
				Kind: "line portal target",
				Spec: spec.String(),
			}
		}
		for _, i := range sources {
			ld := &m.Linedefs[i]
			if ld.Special != 0 && ld.Special != SPECIAL_LINE_SET_PORTAL {
				Log.Printf("Linedef %d with special %d is overridden by portal %s\n",
					i, ld.Special, spec)
			}
			ld.Special = SPECIAL_LINE_SET_PORTAL
			ld.Args = [5]int{spec.TargetLineID, spec.SourceLineID, spec.Type,
				spec.PlaneAnchor, 0}
		}
		Log.Verbose(1, "Line portal %s attached to %d line(s)\n", spec, len(sources))
	}
	return nil
}
