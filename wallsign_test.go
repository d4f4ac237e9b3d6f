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

// Lines of room with given middle texture
func linesWithMiddle(b *MapBuilder, room *Room, tex string) []int {
	var res []int
	for _, li := range b.SectorLines(room.Sector()) {
		ld := b.Linedefs[li]
		if b.Sidedefs[ld.Front].Middle == tex {
			res = append(res, li)
		}
	}
	return res
}

func TestWallSign(t *testing.T) {
	level := NewLevel()
	room := level.AddRoom(NewRoom(0, 0, 512, 128))
	level.AddConnector(NewWallSign(room, SIDE_TOP, 64, 128, "MARBFAC2"))
	b := mustBuild(t, level)

	assert.Equal(t, []int{64, 192}, room.Cuts(SIDE_TOP))
	signs := linesWithMiddle(b, room, "MARBFAC2")
	require.Len(t, signs, 1)
	p1, p2 := b.LineEndpoints(signs[0])
	assert.ElementsMatch(t, []Point{{64, 128}, {192, 128}}, []Point{p1, p2})
	sd := b.Sidedefs[b.Linedefs[signs[0]].Front]
	assert.Zero(t, sd.ScaleX, "texture size is unknown")
	assert.Len(t, b.Sectors, 1)
}

func TestWallSignScalesImportedTexture(t *testing.T) {
	level := NewLevel()
	room := level.AddRoom(NewRoom(0, 0, 512, 128))
	level.AddConnector(NewWallSign(room, SIDE_LEFT, 0, 128, "SIGN01"))
	b := NewMapBuilder("")
	require.NoError(t, b.Textures().ImportBytes("SIGN01", makePNG(t, 64, 32)))
	require.NoError(t, level.Build(b))

	signs := linesWithMiddle(b, room, "SIGN01")
	require.Len(t, signs, 1)
	sd := b.Sidedefs[b.Linedefs[signs[0]].Front]
	assert.Equal(t, 0.5, sd.ScaleX)
	assert.Equal(t, 0.25, sd.ScaleY)

	m, err := LowerToUDMF(b)
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.Sidedefs[b.Linedefs[signs[0]].Front].ScaleXMid)
}

func TestWallSignMustFitSide(t *testing.T) {
	room := NewRoom(0, 0, 256, 128)
	for _, sign := range []*WallSign{
		NewWallSign(room, SIDE_TOP, 200, 128, "X"),
		NewWallSign(room, SIDE_TOP, -8, 64, "X"),
		NewWallSign(room, SIDE_TOP, 8, 0, "X"),
		NewWallSign(nil, SIDE_TOP, 8, 64, "X"),
	} {
		assert.ErrorIs(t, sign.RegisterCuts(), ErrConnectorNotAligned)
	}
}

func TestWallSignOverOpeningFails(t *testing.T) {
	level, left, right := twoRoomsWithGap()
	level.AddConnector(NewDoor(256, 100, 16, 64, left, right))
	level.AddConnector(NewWallSign(left, SIDE_RIGHT, 100, 64, "MARBFAC2"))
	err := level.Build(NewMapBuilder(""))
	assert.ErrorIs(t, err, ErrGeometry)
}

func TestExitLine(t *testing.T) {
	level := NewLevel()
	room := level.AddRoom(NewRoom(0, 0, 256, 256))
	level.AddConnector(NewExitLine(room, SIDE_BOTTOM, 0, 64))
	b := mustBuild(t, level)

	exits := linesWithMiddle(b, room, SWITCH_TEX)
	require.Len(t, exits, 1)
	assert.Equal(t, ACTION_S1_EXIT, b.Linedefs[exits[0]].Action)

	m, err := LowerToUDMF(b)
	require.NoError(t, err)
	ld := m.Linedefs[exits[0]]
	assert.Equal(t, SPECIAL_EXIT_NORMAL, ld.Special)
	assert.True(t, ld.PlayerUse)
	assert.False(t, ld.RepeatSpecial)
}
