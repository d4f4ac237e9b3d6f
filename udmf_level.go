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
	"bufio"
	"io"
	"strconv"
)

const UDMF_NAMESPACE = "zdoom"

// UDMF records. Only the fields a compiled layout can set are present

type UDMFVertex struct {
	X, Y int
}

type UDMFLinedef struct {
	V1, V2        int
	SideFront     int
	SideBack      int // SIDE_NONE for one-sided
	ID            int
	Special       int
	Args          [5]int
	Blocking      bool
	BlockMonsters bool
	TwoSided      bool
	DontPegTop    bool
	DontPegBottom bool
	Secret        bool
	BlockSound    bool
	DontDraw      bool
	Mapped        bool
	PlayerCross   bool
	PlayerUse     bool
	MonsterCross  bool
	MonsterUse    bool
	RepeatSpecial bool
}

type UDMFSidedef struct {
	Sector        int
	TextureTop    string
	TextureBottom string
	TextureMiddle string
	OffsetX       int
	OffsetY       int
	ScaleXMid     float64
	ScaleYMid     float64
}

type UDMFSector struct {
	HeightFloor    int
	HeightCeiling  int
	TextureFloor   string
	TextureCeiling string
	LightLevel     int
	Special        int
	ID             int
}

type UDMFThing struct {
	X, Y   int
	Angle  int
	Type   int
	ID     int
	Skill1 bool
	Skill2 bool
	Skill3 bool
	Skill4 bool
	Skill5 bool
	Ambush bool
	Single bool
	Coop   bool
	Dm     bool
}

type UDMFMap struct {
	Namespace string
	Vertices  []UDMFVertex
	Linedefs  []UDMFLinedef
	Sidedefs  []UDMFSidedef
	Sectors   []UDMFSector
	Things    []UDMFThing
}

// TEXTMAP printer. Fields at their default value are omitted, except the
// ones engines require to be present
type textmapWriter struct {
	w    *bufio.Writer
	crlf bool
}

func (t *textmapWriter) block(kind string, idx int) {
	WriterPrintfln(t.w, t.crlf, "%s // %d", kind, idx)
	WriterPrintfln(t.w, t.crlf, "{")
}

func (t *textmapWriter) end() {
	WriterPrintfln(t.w, t.crlf, "}")
	WriterPrintfln(t.w, t.crlf, "")
}

func (t *textmapWriter) integer(key string, v int) {
	WriterPrintfln(t.w, t.crlf, "%s = %d;", key, v)
}

func (t *textmapWriter) integerNZ(key string, v int) {
	if v != 0 {
		t.integer(key, v)
	}
}

func (t *textmapWriter) decimal(key string, v float64) {
	WriterPrintfln(t.w, t.crlf, "%s = %s;", key, strconv.FormatFloat(v, 'f', 3, 64))
}

func (t *textmapWriter) str(key string, v string) {
	WriterPrintfln(t.w, t.crlf, "%s = %s;", key, strconv.Quote(v))
}

func (t *textmapWriter) flag(key string, v bool) {
	if v {
		WriterPrintfln(t.w, t.crlf, "%s = true;", key)
	}
}

func (m *UDMFMap) WriteTEXTMAP(w io.Writer) error {
	t := &textmapWriter{w: bufio.NewWriter(w)}
	t.str("namespace", m.Namespace)
	WriterPrintfln(t.w, t.crlf, "")

	for i, v := range m.Vertices {
		t.block("vertex", i)
		t.decimal("x", float64(v.X))
		t.decimal("y", float64(v.Y))
		t.end()
	}

	for i, ld := range m.Linedefs {
		t.block("linedef", i)
		t.integerNZ("id", ld.ID)
		t.integer("v1", ld.V1)
		t.integer("v2", ld.V2)
		t.integer("sidefront", ld.SideFront)
		if ld.SideBack != SIDE_NONE {
			t.integer("sideback", ld.SideBack)
		}
		t.integerNZ("special", ld.Special)
		for j, arg := range ld.Args {
			t.integerNZ("arg"+strconv.Itoa(j), arg)
		}
		t.flag("blocking", ld.Blocking)
		t.flag("blockmonsters", ld.BlockMonsters)
		t.flag("twosided", ld.TwoSided)
		t.flag("dontpegtop", ld.DontPegTop)
		t.flag("dontpegbottom", ld.DontPegBottom)
		t.flag("secret", ld.Secret)
		t.flag("blocksound", ld.BlockSound)
		t.flag("dontdraw", ld.DontDraw)
		t.flag("mapped", ld.Mapped)
		t.flag("playercross", ld.PlayerCross)
		t.flag("playeruse", ld.PlayerUse)
		t.flag("monstercross", ld.MonsterCross)
		t.flag("monsteruse", ld.MonsterUse)
		t.flag("repeatspecial", ld.RepeatSpecial)
		t.end()
	}

	for i, sd := range m.Sidedefs {
		t.block("sidedef", i)
		t.integer("sector", sd.Sector)
		t.str("texturetop", sd.TextureTop)
		t.str("texturebottom", sd.TextureBottom)
		t.str("texturemiddle", sd.TextureMiddle)
		t.integerNZ("offsetx", sd.OffsetX)
		t.integerNZ("offsety", sd.OffsetY)
		if sd.ScaleXMid != 0 && sd.ScaleXMid != 1 {
			t.decimal("scalex_mid", sd.ScaleXMid)
		}
		if sd.ScaleYMid != 0 && sd.ScaleYMid != 1 {
			t.decimal("scaley_mid", sd.ScaleYMid)
		}
		t.end()
	}

	for i, s := range m.Sectors {
		t.block("sector", i)
		t.integer("heightfloor", s.HeightFloor)
		t.integer("heightceiling", s.HeightCeiling)
		t.str("texturefloor", s.TextureFloor)
		t.str("textureceiling", s.TextureCeiling)
		t.integer("lightlevel", s.LightLevel)
		t.integerNZ("special", s.Special)
		t.integerNZ("id", s.ID)
		t.end()
	}

	for i, th := range m.Things {
		t.block("thing", i)
		t.integerNZ("id", th.ID)
		t.decimal("x", float64(th.X))
		t.decimal("y", float64(th.Y))
		t.integer("angle", th.Angle)
		t.integer("type", th.Type)
		t.flag("skill1", th.Skill1)
		t.flag("skill2", th.Skill2)
		t.flag("skill3", th.Skill3)
		t.flag("skill4", th.Skill4)
		t.flag("skill5", th.Skill5)
		t.flag("ambush", th.Ambush)
		t.flag("single", th.Single)
		t.flag("coop", th.Coop)
		t.flag("dm", th.Dm)
		t.end()
	}
	return t.w.Flush()
}
