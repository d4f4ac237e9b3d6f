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

// lumpwrite
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Converts a typed array of structures that represent game data into lump
// bytes in file endianness
func ConvertGenericLump(data interface{}, s string) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("converting %s: %w", s, err)
	}
	Log.Verbose(1, "Lump %s has its size set to %d bytes.\n", s, buf.Len())
	return buf.Bytes(), nil
}

func toInt16(v int, what string) (int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %s %d doesn't fit Doom format", ErrGeometry, what, v)
	}
	return int16(v), nil
}

func toUint16(v int, what string) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %s %d doesn't fit Doom format", ErrGeometry, what, v)
	}
	return uint16(v), nil
}

func toName(name, what string) ([8]byte, error) {
	if err := CheckName(name, what); err != nil {
		return [8]byte{}, err
	}
	return ByteName(name), nil
}

func sideIndex(v int) (uint16, error) {
	if v == SIDE_NONE {
		return SIDEDEF_NONE, nil
	}
	if v < 0 || v >= int(SIDEDEF_NONE) {
		return 0, fmt.Errorf("%w: sidedef index %d doesn't fit Doom format", ErrGeometry, v)
	}
	return uint16(v), nil
}

// Packs editor records into Doom-format lumps. Line and thing ids have no
// place in this format and are dropped
func (b *MapBuilder) DoomLumps() ([]WadLump, error) {
	things := make([]Thing, len(b.Things))
	for i, t := range b.Things {
		var err [4]error
		things[i].XPos, err[0] = toInt16(t.X, "thing x")
		things[i].YPos, err[1] = toInt16(t.Y, "thing y")
		things[i].Angle, err[2] = toInt16(t.Angle, "thing angle")
		things[i].Type, err[3] = toInt16(t.Type, "thing type")
		things[i].Flags = t.Flags
		for _, e := range err {
			if e != nil {
				return nil, e
			}
		}
	}
	lines := make([]Linedef, len(b.Linedefs))
	for i, ld := range b.Linedefs {
		var err [6]error
		lines[i].StartVertex, err[0] = toUint16(ld.V1, "vertex index")
		lines[i].EndVertex, err[1] = toUint16(ld.V2, "vertex index")
		lines[i].Flags = ld.Flags
		lines[i].Action, err[2] = toUint16(ld.Action, "linedef action")
		lines[i].Tag, err[3] = toUint16(ld.Tag, "linedef tag")
		lines[i].FrontSdef, err[4] = sideIndex(ld.Front)
		lines[i].BackSdef, err[5] = sideIndex(ld.Back)
		for _, e := range err {
			if e != nil {
				return nil, e
			}
		}
	}
	sides := make([]Sidedef, len(b.Sidedefs))
	for i, sd := range b.Sidedefs {
		var err [6]error
		sides[i].XOffset, err[0] = toInt16(sd.XOffset, "sidedef x offset")
		sides[i].YOffset, err[1] = toInt16(sd.YOffset, "sidedef y offset")
		sides[i].UpName, err[2] = toName(sd.Upper, "upper texture")
		sides[i].LoName, err[3] = toName(sd.Lower, "lower texture")
		sides[i].MidName, err[4] = toName(sd.Middle, "middle texture")
		sides[i].Sector, err[5] = toUint16(sd.Sector, "sector index")
		for _, e := range err {
			if e != nil {
				return nil, e
			}
		}
	}
	verts := make([]Vertex, len(b.Vertices))
	for i, v := range b.Vertices {
		var err [2]error
		verts[i].XPos, err[0] = toInt16(v.X, "vertex x")
		verts[i].YPos, err[1] = toInt16(v.Y, "vertex y")
		for _, e := range err {
			if e != nil {
				return nil, e
			}
		}
	}
	sectors := make([]Sector, len(b.Sectors))
	for i, s := range b.Sectors {
		var err [7]error
		sectors[i].FloorHeight, err[0] = toInt16(s.FloorHeight, "floor height")
		sectors[i].CeilHeight, err[1] = toInt16(s.CeilHeight, "ceiling height")
		sectors[i].FloorName, err[2] = toName(s.FloorTex, "floor flat")
		sectors[i].CeilName, err[3] = toName(s.CeilTex, "ceiling flat")
		sectors[i].LightLevel, err[4] = toUint16(s.Light, "light level")
		sectors[i].Special, err[5] = toUint16(s.Special, "sector special")
		sectors[i].Tag, err[6] = toUint16(s.Tag, "sector tag")
		for _, e := range err {
			if e != nil {
				return nil, e
			}
		}
	}

	if n := b.DeferredSpecCount(); n > 0 {
		Log.Verbose(1, "Doom format can't express %d cross-reference(s) (3D floors, portals, teleport destination ids), they are dropped.\n", n)
	}

	data := []interface{}{things, lines, sides, verts, sectors}
	lumps := make([]WadLump, 0, len(LUMP_SORT_ORDER)+1)
	lumps = append(lumps, WadLump{Name: b.MapName})
	for i, name := range LUMP_SORT_ORDER {
		raw, err := ConvertGenericLump(data[i], name)
		if err != nil {
			return nil, err
		}
		lumps = append(lumps, WadLump{Name: name, Data: raw})
	}
	return lumps, nil
}

// Lowers the map to UDMF and serializes it into TEXTMAP
func (b *MapBuilder) UDMFLumps() ([]WadLump, error) {
	udmf, err := LowerToUDMF(b)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := udmf.WriteTEXTMAP(&buf); err != nil {
		return nil, err
	}
	Log.Verbose(1, "Lump TEXTMAP has its size set to %d bytes.\n", buf.Len())
	return []WadLump{
		WadLump{Name: b.MapName},
		WadLump{Name: UDMF_LUMP_ORDER[0], Data: buf.Bytes()},
		WadLump{Name: UDMF_LUMP_ORDER[1]},
	}, nil
}

// All lumps of the output wad: the map followed by imported textures
func (b *MapBuilder) Lumps(format int) ([]WadLump, error) {
	var lumps []WadLump
	var err error
	switch format {
	case FORMAT_UDMF:
		lumps, err = b.UDMFLumps()
	case FORMAT_DOOM:
		lumps, err = b.DoomLumps()
	default:
		Log.Panic("Unknown map format %d\n", format)
	}
	if err != nil {
		return nil, err
	}
	return append(lumps, b.textures.Lumps()...), nil
}

// Save compiles the map into wad at path. The destination is left untouched
// when anything fails
func (b *MapBuilder) Save(path string, format int) error {
	lumps, err := b.Lumps(format)
	if err != nil {
		return err
	}
	fileControl := &FileControl{}
	defer fileControl.Shutdown()
	fout, err := fileControl.OpenOutputFile(path)
	if err != nil {
		return fmt.Errorf("creating output file for '%s': %w", path, err)
	}
	if err := WriteWAD(fout, lumps); err != nil {
		return err
	}
	if err := fileControl.Success(); err != nil {
		return err
	}
	Log.Printf("Written %s map %s (%d lumps) to '%s'.\n", FormatName(format),
		b.MapName, len(lumps), path)
	return nil
}
