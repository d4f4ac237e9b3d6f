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
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Tests never parse the command line
	config = DefaultConfig()
	os.Exit(m.Run())
}

// Two rooms joined through a 16 unit wall gap, the shape most connector
// tests start from
func twoRoomsWithGap() (*Level, *Room, *Room) {
	level := NewLevel()
	left := level.AddRoom(NewRoom(0, 0, 256, 256))
	right := level.AddRoom(NewRoom(272, 0, 256, 256))
	return level, left, right
}

// Builds level into a fresh builder, failing the test on error
func mustBuild(t *testing.T, level *Level) *MapBuilder {
	t.Helper()
	b := NewMapBuilder("")
	if err := level.Build(b); err != nil {
		t.Fatalf("Build failed: %s", err.Error())
	}
	return b
}

// Lines separating sectors a and b
func linesBetween(b *MapBuilder, a, c int) []int {
	var res []int
	for _, li := range b.SectorLines(a) {
		if _, other, ok := b.faceOf(li, a); ok && b.Sidedefs[other].Sector == c {
			res = append(res, li)
		}
	}
	return res
}
