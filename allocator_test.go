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
)

func TestAllocatorSequences(t *testing.T) {
	a := NewAllocator()
	assert.Equal(t, 1, a.NewSectorTag())
	assert.Equal(t, 2, a.NewSectorTag())
	assert.Equal(t, 1, a.NewLineID())
}

func TestAllocatorReserve(t *testing.T) {
	a := NewAllocator()
	a.ReserveTag(10)
	a.ReserveTag(4) // below, no effect
	a.ReserveTag(0)
	assert.Equal(t, 11, a.NewSectorTag())
	a.ReserveLineID(100)
	assert.Equal(t, 101, a.NewLineID())
}

func TestLevelSeedsAllocator(t *testing.T) {
	level, left, right := twoRoomsWithGap()
	left.Tag = 3
	door := NewDoor(256, 100, 16, 64, left, right)
	door.Tag = 8
	level.AddConnector(door)
	level.AddOverlay(NewStoryOverlay(12, 64))
	a := NewAllocator()
	level.seed(a)
	assert.Equal(t, 13, a.NewSectorTag())

	// Tags handed out by the layout itself are reserved as well
	level = NewLevel()
	assert.Equal(t, 1, level.GetNewTag())
	assert.Equal(t, 2, level.GetNewTag())
	a = NewAllocator()
	level.seed(a)
	assert.Equal(t, 3, a.NewSectorTag())
}
