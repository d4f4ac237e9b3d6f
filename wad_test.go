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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoomStructSizes(t *testing.T) {
	if binary.Size(Thing{}) != DOOM_THING_SIZE {
		t.Errorf("Thing is %d bytes, expected %d\n", binary.Size(Thing{}), DOOM_THING_SIZE)
	}
	if binary.Size(Linedef{}) != DOOM_LINEDEF_SIZE {
		t.Errorf("Linedef is %d bytes, expected %d\n", binary.Size(Linedef{}), DOOM_LINEDEF_SIZE)
	}
	if binary.Size(Sidedef{}) != DOOM_SIDEDEF_SIZE {
		t.Errorf("Sidedef is %d bytes, expected %d\n", binary.Size(Sidedef{}), DOOM_SIDEDEF_SIZE)
	}
	if binary.Size(Vertex{}) != DOOM_VERTEX_SIZE {
		t.Errorf("Vertex is %d bytes, expected %d\n", binary.Size(Vertex{}), DOOM_VERTEX_SIZE)
	}
	if binary.Size(Sector{}) != DOOM_SECTOR_SIZE {
		t.Errorf("Sector is %d bytes, expected %d\n", binary.Size(Sector{}), DOOM_SECTOR_SIZE)
	}
	if binary.Size(WadHeader{}) != WAD_HEADER_SIZE {
		t.Errorf("WadHeader size mismatch\n")
	}
	if binary.Size(LumpEntry{}) != LUMP_ENTRY_SIZE {
		t.Errorf("LumpEntry size mismatch\n")
	}
}

func lumpNames(entries []LumpEntry) []string {
	res := make([]string, len(entries))
	for i, e := range entries {
		res[i] = string(ByteSliceBeforeTerm(e.Name[:]))
	}
	return res
}

func TestWriteWADRoundTrip(t *testing.T) {
	lumps := []WadLump{
		{Name: "MAP01"},
		{Name: "TEXTMAP", Data: []byte("namespace = \"zdoom\";\n")},
		{Name: "ENDMAP"},
		{Name: "DATA", Data: []byte{1, 2, 3}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteWAD(&buf, lumps))
	r := bytes.NewReader(buf.Bytes())
	header, entries, err := ReadWADDirectory(r)
	require.NoError(t, err)
	assert.Equal(t, PWAD_MAGIC_SIG, header.MagicSig)
	assert.Equal(t, []string{"MAP01", "TEXTMAP", "ENDMAP", "DATA"}, lumpNames(entries))
	assert.Zero(t, entries[0].FilePos)
	assert.Zero(t, entries[0].Size)
	assert.Equal(t, uint32(WAD_HEADER_SIZE), entries[1].FilePos)
	for i, e := range entries {
		data, err := ReadLump(r, e)
		require.NoError(t, err)
		if len(lumps[i].Data) == 0 {
			assert.Empty(t, data)
		} else {
			assert.Equal(t, lumps[i].Data, data)
		}
	}
	assert.Equal(t, WAD_HEADER_SIZE+3+len(lumps[1].Data)+4*LUMP_ENTRY_SIZE, buf.Len())
}

func TestWriteWADRejectsBadLumpName(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteWAD(&buf, []WadLump{{Name: "NINECHARS"}}))
	assert.Error(t, WriteWAD(&buf, []WadLump{{Name: ""}}))
}

func TestReadWADDirectoryRejectsGarbage(t *testing.T) {
	_, _, err := ReadWADDirectory(bytes.NewReader([]byte("NOTAWADFILE!")))
	assert.Error(t, err)
}

func readWAD(t *testing.T, path string) (*bytes.Reader, []LumpEntry) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	r := bytes.NewReader(data)
	_, entries, err := ReadWADDirectory(r)
	require.NoError(t, err)
	return r, entries
}

func TestReadWADDirectoryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWAD(&buf, []WadLump{{Name: "MAP01"}, {Name: "THINGS", Data: []byte{1, 2}}}))
	raw := buf.Bytes()
	_, _, err := ReadWADDirectory(bytes.NewReader(raw[:len(raw)-8]))
	assert.Error(t, err)
}

func TestSaveDoomFormat(t *testing.T) {
	b := mustBuild(t, DemoLevel())
	path := filepath.Join(t.TempDir(), "demo.wad")
	require.NoError(t, b.Save(path, FORMAT_DOOM))

	r, entries := readWAD(t, path)
	assert.Equal(t, []string{"MAP01", "THINGS", "LINEDEFS", "SIDEDEFS",
		"VERTEXES", "SECTORS"}, lumpNames(entries))
	assert.Equal(t, uint32(len(b.Things)*DOOM_THING_SIZE), entries[1].Size)
	assert.Equal(t, uint32(len(b.Linedefs)*DOOM_LINEDEF_SIZE), entries[2].Size)
	assert.Equal(t, uint32(len(b.Sidedefs)*DOOM_SIDEDEF_SIZE), entries[3].Size)
	assert.Equal(t, uint32(len(b.Vertices)*DOOM_VERTEX_SIZE), entries[4].Size)
	assert.Equal(t, uint32(len(b.Sectors)*DOOM_SECTOR_SIZE), entries[5].Size)

	raw, err := ReadLump(r, entries[5])
	require.NoError(t, err)
	sectors := make([]Sector, len(b.Sectors))
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, sectors))
	assert.Equal(t, "FLOOR0_1", string(ByteSliceBeforeTerm(sectors[0].FloorName[:])))
	assert.Equal(t, uint16(1), sectors[3].Tag)

	raw, err = ReadLump(r, entries[2])
	require.NoError(t, err)
	lines := make([]Linedef, len(b.Linedefs))
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, lines))
	oneSided := 0
	for _, ld := range lines {
		if ld.BackSdef == SIDEDEF_NONE {
			oneSided++
		}
	}
	assert.NotZero(t, oneSided)
}

func TestDoomLumpsRejectLongTextureName(t *testing.T) {
	level := NewLevel()
	room := level.AddRoom(NewRoom(0, 0, 64, 64))
	room.WallTex = "STARTAN3LONG"
	b := mustBuild(t, level)
	_, err := b.DoomLumps()
	assert.ErrorIs(t, err, ErrNameTooLong)

	room.WallTex = "STARTAN3"
	room.FloorTex = "FLOOR4_8X"
	b = mustBuild(t, level)
	_, err = b.DoomLumps()
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestSaveUDMFWithTextures(t *testing.T) {
	b := mustBuild(t, DemoLevel())
	require.NoError(t, b.Textures().ImportBytes("SIGN01", makePNG(t, 16, 16)))
	path := filepath.Join(t.TempDir(), "demo.wad")
	require.NoError(t, b.Save(path, FORMAT_UDMF))

	r, entries := readWAD(t, path)
	assert.Equal(t, []string{"MAP01", "TEXTMAP", "ENDMAP", TX_START, "SIGN01", TX_END},
		lumpNames(entries))
	textmap, err := ReadLump(r, entries[1])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(textmap, []byte("namespace = \"zdoom\";")))
	assert.Contains(t, string(textmap), "special = 156;")
	png, err := ReadLump(r, entries[4])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))
}

func TestFailedSaveKeepsDestination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.wad")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	// coordinates beyond 16 bits can't be stored in Doom format
	b := NewMapBuilder("")
	_, err := b.DrawPolygon(square(0, 0, 40000), wallAttrs("STARTAN3"))
	require.NoError(t, err)
	assert.ErrorIs(t, b.Save(path, FORMAT_DOOM), ErrGeometry)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), data)
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestSaveReplacesDestination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.wad")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	b := mustBuild(t, DemoLevel())
	require.NoError(t, b.Save(path, FORMAT_UDMF))
	_, entries := readWAD(t, path)
	assert.Len(t, entries, 3)
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
