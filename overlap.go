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

// ValidateOverlaps reports every pair of rooms whose footprints share
// positive area. Rooms touching along an edge are fine, that's how rooms
// are meant to meet
func (l *Level) ValidateOverlaps() error {
	var pairs [][2]*Room
	for i := 0; i < len(l.Rooms); i++ {
		for j := i + 1; j < len(l.Rooms); j++ {
			if l.Rooms[i].Rect().Overlaps(l.Rooms[j].Rect()) {
				pairs = append(pairs, [2]*Room{l.Rooms[i], l.Rooms[j]})
			}
		}
	}
	if len(pairs) > 0 {
		return &OverlapError{Pairs: pairs}
	}
	return nil
}
