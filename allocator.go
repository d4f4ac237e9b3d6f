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

// Allocator hands out sector tags and line ids. It belongs to one MapBuilder
// and is seeded above every tag and id the layout already uses, so that the
// same layout compiled twice gets the same numbers
type Allocator struct {
	nextTag    int
	nextLineID int
}

func NewAllocator() *Allocator {
	return &Allocator{
		nextTag:    1,
		nextLineID: 1,
	}
}

// ReserveTag makes sure tag is never handed out
func (a *Allocator) ReserveTag(tag int) {
	if tag >= a.nextTag {
		a.nextTag = tag + 1
	}
}

// ReserveLineID makes sure id is never handed out
func (a *Allocator) ReserveLineID(id int) {
	if id >= a.nextLineID {
		a.nextLineID = id + 1
	}
}

func (a *Allocator) NewSectorTag() int {
	tag := a.nextTag
	a.nextTag++
	return tag
}

func (a *Allocator) NewLineID() int {
	id := a.nextLineID
	a.nextLineID++
	return id
}
