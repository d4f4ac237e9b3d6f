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

// WallSign puts a texture on a stretch of room wall. It emits no sector: the
// room side is cut at both ends of the stretch so the stretch becomes
// separate linedef(s)
type WallSign struct {
	Room    *Room
	Side    Side
	Offset  int
	Span    int
	Texture string
	// Scale mid texture to fit span and wall height, when the texture was
	// imported and its dimensions are known. UDMF only
	ScaleToFit bool
}

func NewWallSign(room *Room, side Side, offset, span int, texture string) *WallSign {
	return &WallSign{
		Room:       room,
		Side:       side,
		Offset:     offset,
		Span:       span,
		Texture:    texture,
		ScaleToFit: true,
	}
}

func (w *WallSign) String() string {
	return fmt.Sprintf("WallSign(%s %s %d+%d)", w.Room, w.Side, w.Offset, w.Span)
}

func (w *WallSign) RegisterCuts() error {
	return registerSpanCuts(w.Room, w.Side, w.Offset, w.Span, w)
}

func registerSpanCuts(room *Room, side Side, offset, span int, owner fmt.Stringer) error {
	if room == nil {
		return fmt.Errorf("%w: %s has no room", ErrConnectorNotAligned, owner)
	}
	if span <= 0 || offset < 0 || offset+span > room.SideLength(side) {
		return fmt.Errorf("%w: %s does not fit on %s side of length %d",
			ErrConnectorNotAligned, owner, side, room.SideLength(side))
	}
	room.AddCut(side, offset)
	room.AddCut(side, offset+span)
	return nil
}

// spanLines finds one-sided lines of the room lying within the span
func spanLines(b *MapBuilder, room *Room, side Side, offset, span int) []int {
	a := room.SidePoint(side, offset)
	c := room.SidePoint(side, offset+span)
	res := make([]int, 0, 1)
	for _, li := range b.SectorLines(room.Sector()) {
		if b.Linedefs[li].TwoSided() {
			continue
		}
		p1, p2 := b.LineEndpoints(li)
		if SegmentWithin(p1, p2, a, c) {
			res = append(res, li)
		}
	}
	return res
}

func (w *WallSign) Build(b *MapBuilder) error {
	lines := spanLines(b, w.Room, w.Side, w.Offset, w.Span)
	if len(lines) == 0 {
		return fmt.Errorf("%w: %s found no wall to put texture on", ErrGeometry, w)
	}
	var scaleX, scaleY float64
	if w.ScaleToFit {
		if tw, th, ok := b.Textures().Size(w.Texture); ok {
			wallHeight := w.Room.CeilHeight - w.Room.FloorHeight
			if wallHeight > 0 {
				scaleX = float64(tw) / float64(w.Span)
				scaleY = float64(th) / float64(wallHeight)
			}
		}
	}
	for _, li := range lines {
		sd := &b.Sidedefs[b.Linedefs[li].Front]
		sd.Middle = w.Texture
		sd.ScaleX = scaleX
		sd.ScaleY = scaleY
	}
	Log.Verbose(2, "%s: %d line(s)\n", w, len(lines))
	return nil
}

// ExitLine is a stretch of room wall that ends the level when used
type ExitLine struct {
	Room    *Room
	Side    Side
	Offset  int
	Span    int
	Texture string
	Action  int
}

func NewExitLine(room *Room, side Side, offset, span int) *ExitLine {
	return &ExitLine{
		Room:    room,
		Side:    side,
		Offset:  offset,
		Span:    span,
		Texture: SWITCH_TEX,
		Action:  ACTION_S1_EXIT,
	}
}

func (e *ExitLine) String() string {
	return fmt.Sprintf("ExitLine(%s %s %d+%d)", e.Room, e.Side, e.Offset, e.Span)
}

func (e *ExitLine) RegisterCuts() error {
	return registerSpanCuts(e.Room, e.Side, e.Offset, e.Span, e)
}

func (e *ExitLine) Build(b *MapBuilder) error {
	lines := spanLines(b, e.Room, e.Side, e.Offset, e.Span)
	if len(lines) == 0 {
		return fmt.Errorf("%w: %s found no wall to put exit on", ErrGeometry, e)
	}
	for _, li := range lines {
		ld := &b.Linedefs[li]
		b.Sidedefs[ld.Front].Middle = e.Texture
		ld.Action = e.Action
	}
	Log.Verbose(2, "%s: %d line(s), action %d\n", e, len(lines), e.Action)
	return nil
}
