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

func TestRoomPolygonWithoutCuts(t *testing.T) {
	r := NewRoom(0, 0, 100, 100)
	assert.Equal(t, []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, r.Polygon())
	assert.Equal(t, -1, r.Sector())
}

func TestRoomCuts(t *testing.T) {
	r := NewRoom(0, 0, 100, 100)
	r.AddCut(SIDE_TOP, 60)
	r.AddCut(SIDE_TOP, 30)
	r.AddCut(SIDE_TOP, 30)  // duplicate
	r.AddCut(SIDE_TOP, 0)   // corner
	r.AddCut(SIDE_TOP, 100) // corner
	r.AddCut(SIDE_TOP, 140) // outside
	r.AddCut(SIDE_RIGHT, 40)
	assert.Equal(t, []int{30, 60}, r.Cuts(SIDE_TOP))

	poly := r.Polygon()
	assert.Equal(t, []Point{
		{0, 0}, {100, 0}, {100, 40}, {100, 100}, {60, 100}, {30, 100}, {0, 100},
	}, poly)
	assert.Greater(t, SignedArea2(poly), 0)
}

func TestRoomCutsOnEverySideStayCounterClockwise(t *testing.T) {
	r := NewRoom(-50, -50, 200, 120)
	for _, side := range []Side{SIDE_TOP, SIDE_BOTTOM, SIDE_LEFT, SIDE_RIGHT} {
		r.AddCut(side, 20)
		r.AddCut(side, 70)
	}
	poly := r.Polygon()
	assert.Len(t, poly, 12)
	assert.Equal(t, 2*200*120, SignedArea2(poly))
	assert.Contains(t, poly, Point{-50, 20})
	assert.Contains(t, poly, Point{150, 20})
}

func TestRoomSidePoint(t *testing.T) {
	r := NewRoom(10, 20, 100, 50)
	assert.Equal(t, Point{40, 70}, r.SidePoint(SIDE_TOP, 30))
	assert.Equal(t, Point{40, 20}, r.SidePoint(SIDE_BOTTOM, 30))
	assert.Equal(t, Point{10, 50}, r.SidePoint(SIDE_LEFT, 30))
	assert.Equal(t, Point{110, 50}, r.SidePoint(SIDE_RIGHT, 30))
}

func TestRoomPresets(t *testing.T) {
	lawn := NewLawn(0, 0, 10, 10)
	assert.Equal(t, SKY_FLAT, lawn.CeilTex)
	assert.Equal(t, "Lawn(0,0 10x10)", lawn.String())
	corridor := NewCorridor(0, 0, 10, 10)
	assert.Equal(t, ROOM_CORRIDOR, corridor.Kind)
	assert.Equal(t, 128, corridor.CeilHeight)
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("north")
	require.NoError(t, err)
	assert.Equal(t, SIDE_TOP, side)
	side, err = ParseSide("right")
	require.NoError(t, err)
	assert.Equal(t, SIDE_RIGHT, side)
	_, err = ParseSide("up")
	assert.ErrorIs(t, err, ErrLevelDescription)
}

func TestRoomBuildRecordsSector(t *testing.T) {
	b := NewMapBuilder("")
	r := NewRoom(0, 0, 64, 64)
	require.NoError(t, r.build(b))
	assert.Equal(t, 0, r.Sector())
	assert.Len(t, b.SectorLines(0), 4)
	assert.Equal(t, "STARTAN3", b.SectorWall(0))
}
