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

func TestOverlappingRooms(t *testing.T) {
	level := NewLevel()
	level.AddRoom(NewRoom(0, 0, 100, 100))
	level.AddRoom(NewRoom(50, 50, 100, 100))
	err := level.ValidateOverlaps()
	require.ErrorIs(t, err, ErrOverlap)
	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Len(t, overlap.Pairs, 1)
	assert.Contains(t, err.Error(), "Room(0,0 100x100)")
	assert.Contains(t, err.Error(), "Room(50,50 100x100)")
}

func TestTouchingRoomsDoNotOverlap(t *testing.T) {
	level := NewLevel()
	level.AddRoom(NewRoom(0, 0, 100, 100))
	level.AddRoom(NewRoom(100, 0, 100, 100))
	level.AddRoom(NewRoom(0, 100, 100, 100))
	assert.NoError(t, level.ValidateOverlaps())
}

func TestEveryOverlappingPairIsReported(t *testing.T) {
	level := NewLevel()
	level.AddRoom(NewRoom(0, 0, 100, 100))
	level.AddRoom(NewRoom(50, 0, 100, 100))
	level.AddRoom(NewRoom(120, 0, 100, 100))
	var overlap *OverlapError
	require.True(t, errors.As(level.ValidateOverlaps(), &overlap))
	assert.Len(t, overlap.Pairs, 2)
}
