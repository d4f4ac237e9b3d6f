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

// Wad specifications for Doom-engine family of games, the part of them that
// a map compiler writes: map records, flags and the action/thing numbers the
// layout features use
package main

import (
	"bytes"
	"fmt"
	"regexp"
)

// Both brought in accordance with Prboom-Plus 2.6.1um map name ranges, except
// that E1M0x is possible (when it is probably shouldn't be) since I don't
// want to complicate these regexp's (and E9M97 is perfectly legal, for example)
var MAP_SEQUEL *regexp.Regexp = regexp.MustCompile(`^MAP[0-9][0-9]$`)
var MAP_ExMx *regexp.Regexp = regexp.MustCompile(`^E[1-9]M[0-9][0-9]?$`)

const IWAD_MAGIC_SIG = uint32(0x44415749) // ASCII - 'IWAD'
const PWAD_MAGIC_SIG = uint32(0x44415750) // ASCII - 'PWAD'

// Doom & Heretic thing flag constants
const TF_ROOKIE = int16(0x0001)
const TF_NORMAL = int16(0x0002)
const TF_HARD = int16(0x0004)
const TF_AMBUSH = int16(0x0008)
const TF_MULTIPLAYER_ONLY = int16(0x0010)

// Thing appears on every skill level
const TF_ALL_SKILLS = TF_ROOKIE | TF_NORMAL | TF_HARD

// COMMON linedef flags: for Doom & derivatives
const LF_IMPASSABLE = uint16(0x0001)
const LF_BLOCK_MONSTER = uint16(0x0002)
const LF_TWOSIDED = uint16(0x0004)
const LF_UPPER_UNPEGGED = uint16(0x0008)
const LF_LOWER_UNPEGGED = uint16(0x0010)
const LF_SECRET = uint16(0x0020) // shown as 1-sided on automap
const LF_BLOCK_SOUND = uint16(0x0040)
const LF_NEVER_ON_AUTOMAP = uint16(0x0080)
const LF_ALWAYS_ON_AUTOMAP = uint16(0x0100)

const SIDEDEF_NONE = uint16(0xFFFF)

const DOOM_THING_SIZE = 10   // Size of "Thing" struct
const DOOM_LINEDEF_SIZE = 14 // Size of "Linedef" struct
const DOOM_SIDEDEF_SIZE = 30 // Size of "Sidedef" struct
const DOOM_VERTEX_SIZE = 4   // Size of "Vertex" struct
const DOOM_SECTOR_SIZE = 26  // Size of "Sector" struct

// Doom linedef actions ("legacy" actions) produced by layout features. Any of
// these is translated to ZDoom special when UDMF map is written, see
// udmf_lower.go
const (
	ACTION_NONE           = 0
	ACTION_DR_DOOR        = 1
	ACTION_S1_EXIT        = 11
	ACTION_DR_DOOR_BLUE   = 26
	ACTION_DR_DOOR_YELLOW = 27
	ACTION_DR_DOOR_RED    = 28
	ACTION_D1_DOOR_STAY   = 31
	ACTION_W1_TELEPORT    = 39
	ACTION_SR_DOOR_CLOSE  = 42
	ACTION_W1_EXIT        = 52
	ACTION_SR_LIFT        = 62
	ACTION_WR_TELEPORT    = 97
	ACTION_S1_DOOR_STAY   = 103
)

// Thing types
const (
	THING_PLAYER1_START   = 1
	THING_TELEPORT_DEST   = 14
	THING_CANDLE          = 34
	THING_CANDELABRA      = 35
	THING_TECH_COLUMN     = 48
	THING_TALL_GREEN_PILL = 30
	THING_TALL_TECH_LAMP  = 85
	THING_FLOOR_LAMP      = 2028
)

// Stock textures and flats used by layout features
const (
	EMPTY_TEXTURE   = "-"
	SKY_FLAT        = "F_SKY1"
	DOOR_FLOOR_FLAT = "FLOOR4_8"
	DOOR_CEIL_FLAT  = "FLAT20"
	DOOR_TRACK_TEX  = "DOORTRAK"
	SWITCH_TEX      = "SW1STRTN"
)

const DEFAULT_LIGHT = 160

// Wad header, 12 bytes.
type WadHeader struct {
	MagicSig       uint32
	LumpCount      uint32 // vanilla treats this as signed int32
	DirectoryStart uint32 // vanilla treats this as signed int32
}

// Lump entries listed one after another comprise the directory,
// the first such lump entry is found at WadHeader.DirectoryStart offset into
// the wad file.
// Each lump entry is 16 bytes long
type LumpEntry struct {
	FilePos uint32 // vanilla treats this as signed int32
	Size    uint32 // vanilla treats this as signed int32
	Name    [8]byte
}

// This is Doom/Heretic/Strife thing. Not Hexen thing
type Thing struct {
	XPos  int16
	YPos  int16
	Angle int16
	Type  int16
	Flags int16
}

// Doom/Heretic linedef format
type Linedef struct {
	// Vanilla treats ALL fields as signed int16
	StartVertex uint16
	EndVertex   uint16
	Flags       uint16
	Action      uint16
	Tag         uint16
	FrontSdef   uint16 // Front Sidedef number
	BackSdef    uint16 // Back Sidedef number (0xFFFF special value for one-sided line)
}

// Sidedef format - common to all? except doom64 which is not considered for support
type Sidedef struct {
	XOffset int16
	YOffset int16
	UpName  [8]byte // name of upper texture
	LoName  [8]byte // name of lower texture
	MidName [8]byte // name of middle texture
	Sector  uint16  // sector number; vanilla treats this as signed int16
}

// A Vertex is a coordinate on the map
type Vertex struct {
	XPos int16
	YPos int16
}

type Sector struct {
	FloorHeight int16
	CeilHeight  int16
	FloorName   [8]byte
	CeilName    [8]byte
	LightLevel  uint16
	Special     uint16
	Tag         uint16
}

// Returns whether the string in lumpName represents Doom level marker,
// i.e. MAP02, E3M1
func IsALevel(lumpName []byte) bool {
	return MAP_SEQUEL.Match(lumpName) || MAP_ExMx.Match(lumpName)
}

// Packs texture, flat or lump name into zero-padded 8 byte field. Callers
// check the length with CheckName first
func ByteName(name string) [8]byte {
	var res [8]byte
	copy(res[:], bytes.ToUpper([]byte(name)))
	return res
}

// CheckName rejects names that don't fit an 8 byte field
func CheckName(name, what string) error {
	if len(name) > 8 {
		return fmt.Errorf("%w: %s '%s'", ErrNameTooLong, what, name)
	}
	return nil
}

// Returns the part of byte slice before the terminating zero
func ByteSliceBeforeTerm(s []byte) []byte {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
