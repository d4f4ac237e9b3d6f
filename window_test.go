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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowBetweenRooms(t *testing.T) {
	level, left, right := twoRoomsWithGap()
	right.WallTex = "STONE2"
	level.AddConnector(NewWindow(256, 100, 16, 64, left, right))
	b := mustBuild(t, level)

	require.Len(t, b.Sectors, 3)
	ws := b.Sectors[2]
	assert.Equal(t, 32, ws.FloorHeight)
	assert.Equal(t, 80, ws.CeilHeight)

	for _, room := range []*Room{left, right} {
		faces := linesBetween(b, 2, room.Sector())
		require.Len(t, faces, 1)
		own, other, ok := b.faceOf(faces[0], 2)
		require.True(t, ok)
		assert.Equal(t, EMPTY_TEXTURE, b.Sidedefs[own].Middle)
		assert.Equal(t, EMPTY_TEXTURE, b.Sidedefs[other].Middle)
		assert.Equal(t, "STARTAN3", b.Sidedefs[own].Upper)
		assert.Equal(t, room.WallTex, b.Sidedefs[other].Upper)
		assert.Equal(t, room.WallTex, b.Sidedefs[other].Lower)
		assert.Zero(t, b.Linedefs[faces[0]].Flags&LF_IMPASSABLE)
	}
}

func TestFacadeWindowSpansStory(t *testing.T) {
	level := NewLevel()
	building := level.AddRoom(NewRoom(0, 0, 256, 256))
	building.Tag = 5
	building.CeilHeight = 256
	lawn := level.AddRoom(NewLawn(272, 0, 256, 256))
	level.AddConnector(NewWindow(256, 100, 16, 64, building, lawn))
	b := mustBuild(t, level)

	ws := b.Sectors[2]
	assert.Equal(t, building.FloorHeight, ws.FloorHeight)
	assert.Equal(t, 256, ws.CeilHeight)
	assert.Equal(t, 5, ws.Tag)
}
