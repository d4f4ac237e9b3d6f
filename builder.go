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
	"sort"
)

// Sidedef/sector index of "nothing"
const SIDE_NONE = -1

// Attributes of a sector drawn with MapBuilder.DrawPolygon. WallTex is put on
// every new one-sided line, and on upper/lower slots of lines that become
// two-sided because of this sector
type SectorAttrs struct {
	FloorTex    string
	CeilTex     string
	WallTex     string
	FloorHeight int
	CeilHeight  int
	Light       int
	Tag         int
	Special     int
}

// Editor records. They hold what the Doom format holds, plus ID on lines and
// things which only UDMF can store

type MapSector struct {
	FloorHeight int
	CeilHeight  int
	FloorTex    string
	CeilTex     string
	Light       int
	Special     int
	Tag         int
}

type MapSidedef struct {
	XOffset int
	YOffset int
	Upper   string
	Lower   string
	Middle  string
	Sector  int
	// Mid texture scale, UDMF only. Zero means unscaled
	ScaleX float64
	ScaleY float64
}

type MapLinedef struct {
	V1, V2 int
	Flags  uint16
	Action int
	Tag    int
	Front  int
	Back   int // SIDE_NONE for one-sided line
	ID     int
}

func (ld *MapLinedef) TwoSided() bool {
	return ld.Back != SIDE_NONE
}

type MapThing struct {
	X, Y  int
	Angle int
	Type  int
	Flags int16
	ID    int
}

// MapBuilder accumulates the map in editor records. Sectors, lines and sides
// are only ever appended, so an index handed out stays valid
type MapBuilder struct {
	MapName  string
	Vertices []Point
	Linedefs []MapLinedef
	Sidedefs []MapSidedef
	Sectors  []MapSector
	Things   []MapThing

	vertexIndex map[Point]int
	edgeIndex   map[EdgeKey]int
	sectorLines [][]int  // linedefs touching each sector
	sectorWall  []string // wall texture each sector was drawn with

	alloc    *Allocator
	textures *TextureRegistry

	// Deferred specs, resolved when the map is lowered to UDMF
	floors3d       []Floor3DSpec
	portals        []LinePortalSpec
	teleports      []TeleportDestSpec
	extra3DTargets map[int][]int

	controlOrigin *Point // where off-map control sectors are placed
	controlCount  int
}

func NewMapBuilder(mapName string) *MapBuilder {
	if mapName == "" {
		mapName = DEFAULT_MAP_NAME
	}
	return &MapBuilder{
		MapName:        mapName,
		vertexIndex:    make(map[Point]int),
		edgeIndex:      make(map[EdgeKey]int),
		alloc:          NewAllocator(),
		textures:       NewTextureRegistry(),
		extra3DTargets: make(map[int][]int),
	}
}

func (b *MapBuilder) Allocator() *Allocator {
	return b.alloc
}

func (b *MapBuilder) addVertex(p Point) int {
	if idx, ok := b.vertexIndex[p]; ok {
		return idx
	}
	idx := len(b.Vertices)
	b.Vertices = append(b.Vertices, p)
	b.vertexIndex[p] = idx
	return idx
}

func texOrEmpty(name string) string {
	if name == "" {
		return EMPTY_TEXTURE
	}
	return name
}

// DrawPolygon emits a new sector bounded by points, and returns its index.
// Either winding is accepted. Every edge becomes a linedef whose front side
// faces the sector interior; an edge already drawn by another sector turns
// into a two-sided line instead, with the new sector on its back side.
// Edges are split at existing vertices they pass through, and an edge that
// still runs along part of an existing line is an error. Nothing is modified
// when error is returned
func (b *MapBuilder) DrawPolygon(points []Point, attrs SectorAttrs) (int, error) {
	pts := CollapseDuplicates(points)
	if len(pts) < 3 {
		return -1, fmt.Errorf("%w: %d distinct points", ErrBadPolygon, len(pts))
	}
	area := SignedArea2(pts)
	if area == 0 {
		return -1, fmt.Errorf("%w: polygon %v has no area", ErrBadPolygon, pts)
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	pts = b.splitAtVertices(pts)

	// Validate all edges before touching anything
	seen := make(map[EdgeKey]bool, len(pts))
	for i := range pts {
		a, c := pts[i], pts[(i+1)%len(pts)]
		key := MakeEdgeKey(a, c)
		if seen[key] {
			return -1, fmt.Errorf("%w: edge %v-%v used twice", ErrBadPolygon, a, c)
		}
		seen[key] = true
		idx, ok := b.edgeIndex[key]
		if !ok {
			if li, found := b.overlappingLine(a, c); found {
				return -1, fmt.Errorf("%w: edge %v-%v runs along part of linedef %d",
					ErrGeometry, a, c, li)
			}
			continue
		}
		ld := &b.Linedefs[idx]
		if ld.TwoSided() {
			return -1, fmt.Errorf("%w: edge %v-%v would have three sectors",
				ErrGeometry, a, c)
		}
		if b.Vertices[ld.V1] == c {
			// Existing line runs the same way, meaning both sectors are on
			// the same side of it
			return -1, fmt.Errorf("%w: sector overlaps sector %d at edge %v-%v",
				ErrGeometry, b.Sidedefs[ld.Front].Sector, a, c)
		}
	}

	sec := len(b.Sectors)
	b.Sectors = append(b.Sectors, MapSector{
		FloorHeight: attrs.FloorHeight,
		CeilHeight:  attrs.CeilHeight,
		FloorTex:    texOrEmpty(attrs.FloorTex),
		CeilTex:     texOrEmpty(attrs.CeilTex),
		Light:       attrs.Light,
		Special:     attrs.Special,
		Tag:         attrs.Tag,
	})
	wall := texOrEmpty(attrs.WallTex)
	b.sectorWall = append(b.sectorWall, wall)
	lines := make([]int, 0, len(pts))

	for i := range pts {
		a, c := pts[i], pts[(i+1)%len(pts)]
		key := MakeEdgeKey(a, c)
		if idx, ok := b.edgeIndex[key]; ok {
			b.promoteTwoSided(idx, sec, wall)
			lines = append(lines, idx)
			continue
		}
		// Interior of counter-clockwise polygon is to the left of a->c,
		// which is to the right (front) of c->a
		side := len(b.Sidedefs)
		b.Sidedefs = append(b.Sidedefs, MapSidedef{
			Upper:  EMPTY_TEXTURE,
			Lower:  EMPTY_TEXTURE,
			Middle: wall,
			Sector: sec,
		})
		idx := len(b.Linedefs)
		b.Linedefs = append(b.Linedefs, MapLinedef{
			V1:    b.addVertex(c),
			V2:    b.addVertex(a),
			Flags: LF_IMPASSABLE,
			Front: side,
			Back:  SIDE_NONE,
		})
		b.edgeIndex[key] = idx
		lines = append(lines, idx)
	}
	b.sectorLines = append(b.sectorLines, lines)
	return sec, nil
}

// splitAtVertices inserts every existing vertex that lies strictly inside an
// edge of the polygon. A wall that was cut by the neighbour is then matched
// piece by piece
func (b *MapBuilder) splitAtVertices(pts []Point) []Point {
	res := make([]Point, 0, len(pts))
	for i := range pts {
		a, c := pts[i], pts[(i+1)%len(pts)]
		res = append(res, a)
		var inner []Point
		for _, v := range b.Vertices {
			if v != a && v != c && PointOnSegment(v, a, c) {
				inner = append(inner, v)
			}
		}
		sort.Slice(inner, func(x, y int) bool {
			return axisDistance(a, inner[x]) < axisDistance(a, inner[y])
		})
		res = append(res, inner...)
	}
	return res
}

func axisDistance(a, p Point) int {
	return abs(p.X-a.X) + abs(p.Y-a.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// overlappingLine finds a linedef lying on the same line as a-c and sharing
// a stretch of positive length with it
func (b *MapBuilder) overlappingLine(a, c Point) (int, bool) {
	for li := range b.Linedefs {
		p1, p2 := b.LineEndpoints(li)
		if !collinear(p1, a, c) || !collinear(p2, a, c) {
			continue
		}
		lo1, hi1 := projectSpan(a, c, a, c)
		lo2, hi2 := projectSpan(a, c, p1, p2)
		if max(lo1, lo2) < min(hi1, hi2) {
			return li, true
		}
	}
	return -1, false
}

func collinear(p, a, c Point) bool {
	return (c.X-a.X)*(p.Y-a.Y)-(c.Y-a.Y)*(p.X-a.X) == 0
}

// Span of segment p-q along the dominant axis of a-c
func projectSpan(a, c, p, q Point) (int, int) {
	if abs(c.X-a.X) >= abs(c.Y-a.Y) {
		return min(p.X, q.X), max(p.X, q.X)
	}
	return min(p.Y, q.Y), max(p.Y, q.Y)
}

// Line becomes two-sided: middle texture of the front moves into the upper
// and lower slots, and the line no longer blocks
func (b *MapBuilder) promoteTwoSided(idx, sec int, wall string) {
	ld := &b.Linedefs[idx]
	front := &b.Sidedefs[ld.Front]
	if front.Upper == EMPTY_TEXTURE {
		front.Upper = front.Middle
	}
	if front.Lower == EMPTY_TEXTURE {
		front.Lower = front.Middle
	}
	front.Middle = EMPTY_TEXTURE
	ld.Back = len(b.Sidedefs)
	b.Sidedefs = append(b.Sidedefs, MapSidedef{
		Upper:  wall,
		Lower:  wall,
		Middle: EMPTY_TEXTURE,
		Sector: sec,
	})
	ld.Flags = (ld.Flags | LF_TWOSIDED) &^ LF_IMPASSABLE
}

// Linedefs touching sector, on either side
func (b *MapBuilder) SectorLines(sector int) []int {
	if sector < 0 || sector >= len(b.sectorLines) {
		return nil
	}
	return b.sectorLines[sector]
}

func (b *MapBuilder) LineEndpoints(li int) (Point, Point) {
	ld := &b.Linedefs[li]
	return b.Vertices[ld.V1], b.Vertices[ld.V2]
}

// faceOf tells, for a linedef touching sector, which of its sidedefs belongs
// to the sector and which to the neighbour on the other side. ok is false
// unless the line separates sector from a different sector. Orientation of
// the line doesn't matter
func (b *MapBuilder) faceOf(li, sector int) (own int, other int, ok bool) {
	ld := &b.Linedefs[li]
	if !ld.TwoSided() {
		return SIDE_NONE, SIDE_NONE, false
	}
	fs := b.Sidedefs[ld.Front].Sector
	bs := b.Sidedefs[ld.Back].Sector
	if fs == bs {
		return SIDE_NONE, SIDE_NONE, false
	}
	if fs == sector {
		return ld.Front, ld.Back, true
	}
	if bs == sector {
		return ld.Back, ld.Front, true
	}
	return SIDE_NONE, SIDE_NONE, false
}

// Wall texture the sector was drawn with
func (b *MapBuilder) SectorWall(sector int) string {
	return b.sectorWall[sector]
}

func (b *MapBuilder) AddThing(t MapThing) int {
	idx := len(b.Things)
	b.Things = append(b.Things, t)
	return idx
}

func (b *MapBuilder) AddPlayerStart(x, y, angle int) {
	b.AddThing(MapThing{
		X:     x,
		Y:     y,
		Angle: angle,
		Type:  THING_PLAYER1_START,
		Flags: TF_ALL_SKILLS,
	})
}

// ImportTexture bundles an image file into the wad as texture name
func (b *MapBuilder) ImportTexture(name, path string) error {
	return b.textures.Import(name, path)
}

func (b *MapBuilder) Textures() *TextureRegistry {
	return b.textures
}

// Door tags created inside a story need the story's 3D floors as well
func (b *MapBuilder) RegisterExtra3DFloorTarget(storyTag, tag int) {
	for _, t := range b.extra3DTargets[storyTag] {
		if t == tag {
			return
		}
	}
	b.extra3DTargets[storyTag] = append(b.extra3DTargets[storyTag], tag)
}

func (b *MapBuilder) Extra3DFloorTargets(storyTag int) []int {
	return b.extra3DTargets[storyTag]
}

func (b *MapBuilder) RegisterLinePortal(spec LinePortalSpec) {
	b.portals = append(b.portals, spec)
}

func (b *MapBuilder) RegisterTeleportDestination(x, y, tid int) {
	b.teleports = append(b.teleports, TeleportDestSpec{X: x, Y: y, TID: tid})
}

// Number of deferred specs awaiting UDMF lowering
func (b *MapBuilder) DeferredSpecCount() int {
	return len(b.floors3d) + len(b.portals) + len(b.teleports)
}
