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
	"fmt"
	"io"
)

// Lumps of Doom-format map in the order engines expect them. Nodes, reject and
// blockmap are left for a nodebuilder to create
var LUMP_SORT_ORDER = []string{"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SECTORS"}

// Lumps of UDMF map following the map marker
var UDMF_LUMP_ORDER = []string{"TEXTMAP", "ENDMAP"}

const WAD_HEADER_SIZE = 12
const LUMP_ENTRY_SIZE = 16

// Marker lumps delimiting ZDoom's texture namespace
const TX_START = "TX_START"
const TX_END = "TX_END"

// WadLump is a lump ready to be written: name plus content already converted
// to file endianness
type WadLump struct {
	Name string
	Data []byte
}

// Converts lump name into directory field. Lump names are at most 8 chars
func LumpName(name string) ([8]byte, error) {
	var res [8]byte
	if len(name) == 0 || len(name) > 8 {
		return res, fmt.Errorf("invalid lump name '%s'", name)
	}
	copy(res[:], []byte(name))
	return res, nil
}

// WriteWAD writes a PWAD: header, every lump's data in order, directory at
// the end
func WriteWAD(w io.Writer, lumps []WadLump) error {
	le := make([]LumpEntry, len(lumps))
	curPos := uint32(WAD_HEADER_SIZE)
	for i, lump := range lumps {
		name, err := LumpName(lump.Name)
		if err != nil {
			return err
		}
		le[i] = LumpEntry{
			FilePos: curPos,
			Size:    uint32(len(lump.Data)),
			Name:    name,
		}
		if len(lump.Data) == 0 {
			// vanilla convention for markers
			le[i].FilePos = 0
		}
		curPos += uint32(len(lump.Data))
	}
	header := WadHeader{
		MagicSig:       PWAD_MAGIC_SIG,
		LumpCount:      uint32(len(lumps)),
		DirectoryStart: curPos,
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("writing wad header: %w", err)
	}
	for _, lump := range lumps {
		if len(lump.Data) == 0 {
			continue
		}
		if _, err := w.Write(lump.Data); err != nil {
			return fmt.Errorf("writing lump %s: %w", lump.Name, err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, le); err != nil {
		return fmt.Errorf("writing wad directory: %w", err)
	}
	return nil
}

// ReadWADDirectory reads back the header and directory of a wad
func ReadWADDirectory(r io.ReaderAt) (WadHeader, []LumpEntry, error) {
	var header WadHeader
	hbuf := make([]byte, WAD_HEADER_SIZE)
	if _, err := r.ReadAt(hbuf, 0); err != nil {
		return header, nil, fmt.Errorf("reading wad header: %w", err)
	}
	if err := binary.Read(bytes.NewReader(hbuf), binary.LittleEndian, &header); err != nil {
		return header, nil, fmt.Errorf("decoding wad header: %w", err)
	}
	if header.MagicSig != PWAD_MAGIC_SIG && header.MagicSig != IWAD_MAGIC_SIG {
		return header, nil, fmt.Errorf("not a wad file: signature %08X", header.MagicSig)
	}
	dbuf := make([]byte, int(header.LumpCount)*LUMP_ENTRY_SIZE)
	if _, err := r.ReadAt(dbuf, int64(header.DirectoryStart)); err != nil {
		return header, nil, fmt.Errorf("reading wad directory: %w", err)
	}
	le := make([]LumpEntry, header.LumpCount)
	if err := binary.Read(bytes.NewReader(dbuf), binary.LittleEndian, le); err != nil {
		return header, nil, fmt.Errorf("decoding wad directory: %w", err)
	}
	return header, le, nil
}

// ReadLump returns content of lump described by entry
func ReadLump(r io.ReaderAt, entry LumpEntry) ([]byte, error) {
	if entry.Size == 0 {
		return make([]byte, 0), nil
	}
	ret := make([]byte, entry.Size)
	_, err := r.ReadAt(ret, int64(entry.FilePos))
	if err != nil {
		return nil, err
	}
	return ret, nil
}
