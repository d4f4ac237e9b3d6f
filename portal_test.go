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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portalPairLevel(withReturn bool) *Level {
	level := NewLevel()
	roomA := level.AddRoom(NewRoom(0, 0, 256, 256))
	roomB := level.AddRoom(NewRoom(1000, 0, 256, 256))
	level.AddConnector(NewPortal(-16, 64, 16, 64, roomA, nil, 100, 101))
	if withReturn {
		level.AddConnector(NewPortal(1256, 64, 16, 64, roomB, nil, 101, 100))
	}
	return level
}

func TestPortalTagsEdgeLine(t *testing.T) {
	b := mustBuild(t, portalPairLevel(true))
	tagged := 0
	for li, ld := range b.Linedefs {
		if ld.ID != 100 {
			continue
		}
		tagged++
		assert.True(t, ld.TwoSided())
		p1, p2 := b.LineEndpoints(li)
		assert.True(t, SegmentWithin(p1, p2, Point{0, 64}, Point{0, 128}))
		assert.Equal(t, EMPTY_TEXTURE, b.Sidedefs[ld.Front].Middle)
		assert.Equal(t, EMPTY_TEXTURE, b.Sidedefs[ld.Back].Middle)
	}
	assert.Equal(t, 1, tagged)
	assert.Equal(t, 2, b.DeferredSpecCount())
}

func TestTwoWayPortalLowering(t *testing.T) {
	b := mustBuild(t, portalPairLevel(true))
	m, err := LowerToUDMF(b)
	require.NoError(t, err)

	found := map[int][5]int{}
	for _, ld := range m.Linedefs {
		if ld.Special == SPECIAL_LINE_SET_PORTAL {
			found[ld.ID] = ld.Args
		}
	}
	require.Len(t, found, 2)
	assert.Equal(t, [5]int{101, 100, PORTAL_TYPE_INTERACTIVE, 1, 0}, found[100])
	assert.Equal(t, [5]int{100, 101, PORTAL_TYPE_INTERACTIVE, 1, 0}, found[101])
}

func TestPortalEdgeSplitByCut(t *testing.T) {
	level := portalPairLevel(true)
	roomA := level.Rooms[0]
	level.AddConnector(NewWallSign(roomA, SIDE_LEFT, 96, 64, "MARBFAC2"))
	b := mustBuild(t, level)

	var tagged []int
	for li, ld := range b.Linedefs {
		if ld.ID == 100 {
			assert.True(t, ld.TwoSided())
			tagged = append(tagged, li)
		}
	}
	require.Len(t, tagged, 2)
	for _, li := range tagged {
		p1, p2 := b.LineEndpoints(li)
		assert.True(t, SegmentWithin(p1, p2, Point{0, 64}, Point{0, 128}))
	}
	signs := linesWithMiddle(b, roomA, "MARBFAC2")
	require.Len(t, signs, 1)
	p1, p2 := b.LineEndpoints(signs[0])
	assert.ElementsMatch(t, []Point{{0, 128}, {0, 160}}, []Point{p1, p2})

	m, err := LowerToUDMF(b)
	require.NoError(t, err)
	portals := 0
	for _, ld := range m.Linedefs {
		if ld.ID == 100 {
			assert.Equal(t, SPECIAL_LINE_SET_PORTAL, ld.Special)
			assert.Equal(t, [5]int{101, 100, PORTAL_TYPE_INTERACTIVE, 1, 0}, ld.Args)
			portals++
		}
	}
	assert.Equal(t, 2, portals)
}

func TestPortalWithoutTargetIsUnresolved(t *testing.T) {
	b := mustBuild(t, portalPairLevel(false))
	_, err := LowerToUDMF(b)
	require.ErrorIs(t, err, ErrUnresolvedSpec)
	var unresolved *UnresolvedSpecError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "line portal target", unresolved.Kind)
}

func TestPortalNeedsRoom(t *testing.T) {
	p := NewPortal(0, 0, 16, 64, nil, nil, 1, 2)
	assert.ErrorIs(t, p.RegisterCuts(), ErrConnectorNotAligned)
}

func TestPortalIdsAreReserved(t *testing.T) {
	level := portalPairLevel(true)
	a := NewAllocator()
	level.seed(a)
	assert.Equal(t, 102, a.NewLineID())
}
