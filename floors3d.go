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

const CONTROL_SECTOR_SIZE = 64
const CONTROL_SECTOR_GAP = 32
const CONTROL_MARGIN = 256 // distance between the map and control sectors

// Sector_Set3dFloor type argument
const FLOOR3D_TYPE_SOLID = 1

const FLOOR3D_ALPHA_OPAQUE = 255

// StoryOverlay puts floor slabs at each of Heights into every sector tagged
// Tag, which turns one tall room into a stack of stories. Doors created
// between two rooms of the story get the same slabs
type StoryOverlay struct {
	Tag       int
	Heights   []int
	Thickness int
	FloorTex  string // walked on
	CeilTex   string // seen from below
	WallTex   string
	Alpha     int
	Flags     int
}

func NewStoryOverlay(tag int, heights ...int) *StoryOverlay {
	return &StoryOverlay{
		Tag:       tag,
		Heights:   heights,
		Thickness: 16,
		FloorTex:  "FLOOR4_8",
		CeilTex:   "CEIL3_5",
		WallTex:   "STARTAN3",
		Alpha:     FLOOR3D_ALPHA_OPAQUE,
	}
}

func (o *StoryOverlay) String() string {
	return fmt.Sprintf("StoryOverlay(tag %d at %v)", o.Tag, o.Heights)
}

// Applies the overlay to its story tag, and to door tags registered as extra
// targets of that tag
func (o *StoryOverlay) apply(b *MapBuilder) error {
	tags := append([]int{o.Tag}, b.Extra3DFloorTargets(o.Tag)...)
	for _, tag := range tags {
		for _, z := range o.Heights {
			err := b.Add3DFloorPlatform(tag, z, o.Thickness, o.FloorTex,
				o.CeilTex, o.WallTex, o.Alpha, o.Flags)
			if err != nil {
				return fmt.Errorf("%s: %w", o, err)
			}
		}
	}
	return nil
}

// Control sectors go in a row below the map. The row origin is fixed on the
// first call, when every room has already been drawn
func (b *MapBuilder) nextControlSpot() Point {
	if b.controlOrigin == nil {
		minP, _, ok := PointsBounds(b.Vertices)
		if !ok {
			minP = Point{0, 0}
		}
		b.controlOrigin = &Point{
			X: minP.X,
			Y: minP.Y - CONTROL_MARGIN - CONTROL_SECTOR_SIZE,
		}
	}
	p := Point{
		X: b.controlOrigin.X + b.controlCount*(CONTROL_SECTOR_SIZE+CONTROL_SECTOR_GAP),
		Y: b.controlOrigin.Y,
	}
	b.controlCount++
	return p
}

// Add3DFloorPlatform draws an off-map control sector spanning z to
// z+thickness, gives its first line a fresh id and records a spec that turns
// that line into Sector_Set3dFloor for targetTag when UDMF map is written
func (b *MapBuilder) Add3DFloorPlatform(targetTag, z, thickness int,
	floorTex, ceilTex, wallTex string, alpha, flags int) error {
	if targetTag == 0 {
		return fmt.Errorf("%w: 3D floor at z=%d targets tag 0", ErrGeometry, z)
	}
	if thickness <= 0 {
		return fmt.Errorf("%w: 3D floor at z=%d has thickness %d", ErrGeometry,
			z, thickness)
	}
	spot := b.nextControlSpot()
	sec, err := b.DrawPolygon(Rect{
		X: spot.X, Y: spot.Y,
		Width: CONTROL_SECTOR_SIZE, Height: CONTROL_SECTOR_SIZE,
	}.Corners(), SectorAttrs{
		// control sector's ceiling is the top of the slab
		FloorTex:    ceilTex,
		CeilTex:     floorTex,
		WallTex:     wallTex,
		FloorHeight: z,
		CeilHeight:  z + thickness,
		Light:       DEFAULT_LIGHT,
	})
	if err != nil {
		return err
	}
	lines := b.SectorLines(sec)
	id := b.alloc.NewLineID()
	b.Linedefs[lines[0]].ID = id
	b.floors3d = append(b.floors3d, Floor3DSpec{
		ControlLineID: id,
		TargetTag:     targetTag,
		Type:          FLOOR3D_TYPE_SOLID,
		Flags:         flags,
		Alpha:         alpha,
	})
	Log.Verbose(2, "3D floor for tag %d at z=%d: control sector %d, line id %d\n",
		targetTag, z, sec, id)
	return nil
}
