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
	"fmt"
)

// Window is an opening in the wall between two rooms: a sector whose floor
// is raised by the sill and whose ceiling is lowered to the top of the window
type Window struct {
	ConnectorRect
	Sill         int
	WindowHeight int
	FloorTex     string
	CeilTex      string
	WallTex      string
}

func NewWindow(x, y, width, height int, room1, room2 *Room) *Window {
	return &Window{
		ConnectorRect: ConnectorRect{
			X: x, Y: y, Width: width, Height: height,
			Room1: room1, Room2: room2,
		},
		Sill:         32,
		WindowHeight: 48,
		FloorTex:     "FLAT1",
		CeilTex:      "FLAT1",
		WallTex:      "STARTAN3",
	}
}

func (w *Window) String() string {
	return fmt.Sprintf("Window%s", w.Rect())
}

func (w *Window) RegisterCuts() error {
	if err := w.registerCuts(); err != nil {
		return fmt.Errorf("%s: %w", w, err)
	}
	return nil
}

// Facade window: a tagged building room looks out onto sky-ceiling lawn.
// Returns the building room
func (w *Window) facadeRoom() (*Room, bool) {
	r1, r2 := w.Room1, w.Room2
	if r1 == nil || r2 == nil {
		return nil, false
	}
	if r1.Tag != 0 && r1.Tag != r2.Tag && r2.CeilTex == SKY_FLAT {
		return r1, true
	}
	if r2.Tag != 0 && r2.Tag != r1.Tag && r1.CeilTex == SKY_FLAT {
		return r2, true
	}
	return nil, false
}

func (w *Window) Build(b *MapBuilder) error {
	base := w.baseFloor()
	floor := base + w.Sill
	ceil := floor + w.WindowHeight
	tag := w.sharedStoryTag()
	if inside, ok := w.facadeRoom(); ok {
		// Spans the whole height of the story, so that 3D floors of the
		// building can be seen through the facade
		floor = inside.FloorHeight
		ceil = inside.CeilHeight
		tag = inside.Tag
	}
	sec, err := b.DrawPolygon(w.polygon(), SectorAttrs{
		FloorTex:    w.FloorTex,
		CeilTex:     w.CeilTex,
		WallTex:     w.WallTex,
		FloorHeight: floor,
		CeilHeight:  ceil,
		Light:       w.baseLight(),
		Tag:         tag,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", w, err)
	}
	faces := 0
	for _, li := range b.SectorLines(sec) {
		own, other, ok := b.faceOf(li, sec)
		if !ok {
			continue
		}
		ownSide := &b.Sidedefs[own]
		otherSide := &b.Sidedefs[other]
		ownSide.Middle = EMPTY_TEXTURE
		otherSide.Middle = EMPTY_TEXTURE
		ownSide.Upper = w.WallTex
		ownSide.Lower = w.WallTex
		roomWall := b.SectorWall(otherSide.Sector)
		otherSide.Upper = roomWall
		otherSide.Lower = roomWall
		faces++
	}
	if faces == 0 {
		return fmt.Errorf("%w: %s has no faces", ErrGeometry, w)
	}
	Log.Verbose(2, "%s: sector %d floor %d ceiling %d, %d face(s)\n", w,
		sec, floor, ceil, faces)
	return nil
}
