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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostelTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="10">
 <objectgroup id="1" name="rooms">
  <object id="1" name="a" x="0" y="0" width="256" height="256">
   <properties>
    <property name="tag" value="5"/>
    <property name="wall_tex" value="BROWN96"/>
   </properties>
  </object>
  <object id="2" name="b" x="272" y="0" width="256" height="256">
   <properties>
    <property name="kind" value="corridor"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="connectors">
  <object id="3" name="door" x="256" y="96" width="16" height="64">
   <properties>
    <property name="room1" value="a"/>
    <property name="room2" value="b"/>
    <property name="tag" value="7"/>
   </properties>
  </object>
  <object id="4" name="switch" x="120" y="-16">
   <properties>
    <property name="room" value="a"/>
    <property name="action" value="42"/>
    <property name="tag" value="7"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="polygons">
  <object id="5" x="528" y="0">
   <properties>
    <property name="ceil_height" value="96"/>
   </properties>
   <polygon points="0,0 64,128 0,256"/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="things">
  <object id="6" name="player" x="128" y="128">
   <properties>
    <property name="angle" value="90"/>
   </properties>
  </object>
  <object id="7" name="lamp" x="32" y="32">
   <properties>
    <property name="furniture" value="lamp"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="overlays">
  <object id="8" name="upstairs" x="0" y="0" width="16" height="16">
   <properties>
    <property name="tag" value="5"/>
    <property name="heights" value="64, 128"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func writeTMX(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hostel.tmx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTMXToLevel(t *testing.T) {
	level, mapName, err := LoadLevelFile(writeTMX(t, hostelTMX))
	require.NoError(t, err)
	assert.Empty(t, mapName)

	require.Len(t, level.Rooms, 2)
	a, b := level.Rooms[0], level.Rooms[1]
	assert.Equal(t, Rect{X: 0, Y: -256, Width: 256, Height: 256}, a.Rect())
	assert.Equal(t, 5, a.Tag)
	assert.Equal(t, "BROWN96", a.WallTex)
	assert.Equal(t, ROOM_CORRIDOR, b.Kind)

	require.Len(t, level.Connectors, 2)
	door, ok := level.Connectors[0].(*Door)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 256, Y: -160, Width: 16, Height: 64}, door.Rect())
	assert.Equal(t, 7, door.Tag)
	sw, ok := level.Connectors[1].(*Switch)
	require.True(t, ok)
	assert.Equal(t, 0, sw.Y, "switch sits on the top wall of room a")
	assert.Equal(t, ACTION_SR_DOOR_CLOSE, sw.Action)

	require.Len(t, level.Polygons, 1)
	assert.Equal(t, []Point{{528, 0}, {592, -128}, {528, -256}}, level.Polygons[0].Points)
	assert.Equal(t, 96, level.Polygons[0].Attrs.CeilHeight)

	require.NotNil(t, level.PlayerStart)
	assert.Equal(t, 128, level.PlayerStart.X)
	assert.Equal(t, -128, level.PlayerStart.Y)
	assert.Equal(t, 90, level.PlayerStart.Angle)
	require.Len(t, level.Things, 1)
	assert.Equal(t, THING_TALL_TECH_LAMP, level.Things[0].Type)

	require.Len(t, level.Overlays, 1)
	assert.Equal(t, []int{64, 128}, level.Overlays[0].Heights)
}

func TestTMXLevelCompiles(t *testing.T) {
	level, _, err := LoadLevelFile(writeTMX(t, hostelTMX))
	require.NoError(t, err)
	b := mustBuild(t, level)
	// rooms, polygon, door, switch, and two 3D floor controls for the story
	assert.Len(t, b.Sectors, 7)
	_, err = LowerToUDMF(b)
	assert.NoError(t, err)
}

func TestTMXBadNumber(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="rooms">
  <object id="1" name="a" x="0" y="0" width="64" height="64">
   <properties>
    <property name="tag" value="five"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	_, _, err := LoadLevelFile(writeTMX(t, bad))
	assert.ErrorIs(t, err, ErrLevelDescription)
}

func TestTMXLongTextureName(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="rooms">
  <object id="1" name="a" x="0" y="0" width="64" height="64">
   <properties>
    <property name="wall_tex" value="STARTAN3LONG"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	_, _, err := LoadLevelFile(writeTMX(t, bad))
	assert.ErrorIs(t, err, ErrLevelDescription)
	assert.ErrorIs(t, err, ErrNameTooLong)
}
