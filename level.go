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

// FreePolygon is a sector drawn from arbitrary outline rather than a room
// rectangle. It is drawn after rooms, so it may share edges with them, but
// connectors can't cut it
type FreePolygon struct {
	Points []Point
	Attrs  SectorAttrs
}

// Level is the layout: ordered rooms, connectors, and whatever is placed on
// top of them. Build compiles it into a MapBuilder
type Level struct {
	Rooms       []*Room
	Connectors  []Connector
	Polygons    []FreePolygon
	Things      []LevelThing
	Overlays    []*StoryOverlay
	PlayerStart *LevelThing

	nextTag int
}

func NewLevel() *Level {
	return &Level{nextTag: 1}
}

func (l *Level) AddRoom(r *Room) *Room {
	l.Rooms = append(l.Rooms, r)
	return r
}

func (l *Level) AddConnector(c Connector) Connector {
	l.Connectors = append(l.Connectors, c)
	return c
}

func (l *Level) AddPolygon(points []Point, attrs SectorAttrs) {
	l.Polygons = append(l.Polygons, FreePolygon{Points: points, Attrs: attrs})
}

func (l *Level) AddThing(t LevelThing) {
	l.Things = append(l.Things, t)
}

func (l *Level) AddOverlay(o *StoryOverlay) *StoryOverlay {
	l.Overlays = append(l.Overlays, o)
	return o
}

func (l *Level) SetPlayerStart(x, y, angle int) {
	l.PlayerStart = &LevelThing{
		X:     x,
		Y:     y,
		Angle: angle,
		Type:  THING_PLAYER1_START,
		Flags: TF_ALL_SKILLS,
	}
}

// GetNewTag hands out a tag for layout code to share between rooms and
// features. Tags handed out here never collide with tags the builder
// allocates
func (l *Level) GetNewTag() int {
	if l.nextTag < 1 {
		l.nextTag = 1
	}
	tag := l.nextTag
	l.nextTag++
	return tag
}

// Tags and line ids the layout already uses are reserved in allocator
func (l *Level) seed(a *Allocator) {
	if l.nextTag > 1 {
		a.ReserveTag(l.nextTag - 1)
	}
	for _, r := range l.Rooms {
		a.ReserveTag(r.Tag)
	}
	for _, p := range l.Polygons {
		a.ReserveTag(p.Attrs.Tag)
	}
	for _, o := range l.Overlays {
		a.ReserveTag(o.Tag)
	}
	for _, c := range l.Connectors {
		switch conn := c.(type) {
		case *Door:
			a.ReserveTag(conn.Tag)
		case *Switch:
			a.ReserveTag(conn.Tag)
		case *Portal:
			a.ReserveLineID(conn.SourceLineID)
			a.ReserveLineID(conn.TargetLineID)
		}
	}
}

// Build compiles the layout in fixed phases: every connector registers its
// cuts, then every room is drawn, then free polygons, then every connector is
// built, then things and story overlays are placed. A layout may be built
// more than once, each time into a fresh builder
func (l *Level) Build(b *MapBuilder) error {
	mlog := CreateMiniLogger()
	defer Log.Merge(mlog, "Build log:\n")
	l.seed(b.Allocator())

	for _, c := range l.Connectors {
		if err := c.RegisterCuts(); err != nil {
			return err
		}
	}
	mlog.Verbose(1, "Registered cuts of %d connector(s)\n", len(l.Connectors))

	for _, r := range l.Rooms {
		if err := r.build(b); err != nil {
			return err
		}
	}
	for i, p := range l.Polygons {
		if _, err := b.DrawPolygon(p.Points, p.Attrs); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	mlog.Verbose(1, "Drew %d room(s) and %d polygon(s)\n", len(l.Rooms),
		len(l.Polygons))

	for _, c := range l.Connectors {
		if err := c.Build(b); err != nil {
			return err
		}
	}
	mlog.Verbose(1, "Built %d connector(s)\n", len(l.Connectors))

	for _, t := range l.Things {
		t.build(b)
	}
	if l.PlayerStart != nil {
		b.AddPlayerStart(l.PlayerStart.X, l.PlayerStart.Y, l.PlayerStart.Angle)
	} else {
		mlog.Printf("Warning: layout has no player start.\n")
	}
	for _, o := range l.Overlays {
		if err := o.apply(b); err != nil {
			return err
		}
	}
	mlog.Verbose(1, "Placed %d thing(s) and %d story overlay(s)\n",
		len(b.Things), len(l.Overlays))
	mlog.Verbose(1, "Map has %d sectors, %d linedefs, %d sidedefs, %d vertices\n",
		len(b.Sectors), len(b.Linedefs), len(b.Sidedefs), len(b.Vertices))
	return nil
}
