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

func TestFurniture(t *testing.T) {
	for kind, typ := range FURNITURE_TYPES {
		th, err := NewFurniture(kind, 1, 2, 45)
		require.NoError(t, err)
		assert.Equal(t, typ, th.Type)
		assert.Equal(t, TF_ALL_SKILLS, th.Flags)
	}
	_, err := NewFurniture("sofa", 0, 0, 0)
	assert.ErrorIs(t, err, ErrLevelDescription)
}

func TestThingBuild(t *testing.T) {
	b := NewMapBuilder("")
	LevelThing{X: 5, Y: 6, Type: 3001}.build(b)
	NewTeleportDestination(10, 20, 0, 4).build(b)
	NewTeleportDestination(30, 40, 0, 0).build(b)
	require.Len(t, b.Things, 3)
	assert.Equal(t, TF_ALL_SKILLS, b.Things[0].Flags, "no flags means every skill")
	assert.Equal(t, []TeleportDestSpec{{X: 10, Y: 20, TID: 4}}, b.teleports)
}
