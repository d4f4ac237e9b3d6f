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
	"os"
	"path/filepath"
	"strings"
)

const VERSION = "0.1"

/*
filename.yaml | filename.yml | filename.tmx
	Level description to compile. When omitted, the built-in demo
	layout is compiled instead.

-o <file> Output wad. Defaults to the input name with .wad extension
	(demo.wad for the demo layout).

-f= Output map format.
	udmf ZDoom-namespace TEXTMAP (default)
	doom Binary Doom-format lumps
	-fu and -fd are the short forms.

-m= Map lump name, MAPxx or ExMy (default MAP01).

-c Check that room footprints do not overlap (default: disabled).

-t NAME=path Import an image as texture NAME. May be repeated.

-v Add verbosity to text output. Use multiple times for increased verbosity.

*/

const (
	FORMAT_UDMF = iota
	FORMAT_DOOM
)

const DEFAULT_MAP_NAME = "MAP01"

// Texture requested with -t on the command line
type TextureImport struct {
	Name string
	Path string
}

type ProgramConfig struct {
	InputFileName  string
	OutputFileName string
	MapName        string
	MapNameGiven   bool // -m was on the command line
	Format         int
	CheckOverlaps  bool
	Textures       []TextureImport
	VerbosityLevel int
}

var config *ProgramConfig

func DefaultConfig() *ProgramConfig {
	return &(ProgramConfig{
		InputFileName:  "",
		OutputFileName: "",
		MapName:        DEFAULT_MAP_NAME,
		Format:         FORMAT_UDMF,
		CheckOverlaps:  false,
		VerbosityLevel: 0,
	})
}

func init() {
	// Initialize with defaults. Command line is parsed by Configure, called
	// from main, so that tests get the defaults too
	config = DefaultConfig()
}

// Configure prints the banner and parses the command line into global
// config. Returns false if the program should exit with error
func Configure() bool {
	Log.Printf("VigilantGen ver %s\n", VERSION)
	Log.Printf("Copyright (c)   2025 VigilantDoomer\n")
	Log.Printf("Map layouts are compiled into the sector/linedef model that\n")
	Log.Printf("DEU by Raphael Quinet and omgifol by Fredrik Johansson made\n")
	Log.Printf("familiar, and is distributed under the terms of \n")
	Log.Printf(" GNU General Public License v2.\n")
	Log.Printf("\n")
	config = DefaultConfig()
	if !(config.FromCommandLine(os.Args[1:])) {
		Log.Printf("\n")
		PrintHelp()
		return false
	}
	if config.OutputFileName == "" {
		config.OutputFileName = DefaultOutputName(config.InputFileName)
	}
	return true
}

// ChooseMapName picks the map lump name: -m wins, then the name the level
// description sets, then the default
func (c *ProgramConfig) ChooseMapName(descMapName string) string {
	if c.MapNameGiven || descMapName == "" {
		return c.MapName
	}
	return descMapName
}

// DefaultOutputName derives output wad name from the level description name
func DefaultOutputName(input string) string {
	if input == "" {
		return "demo.wad"
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".wad"
}

func FormatName(format int) string {
	switch format {
	case FORMAT_UDMF:
		return "udmf"
	case FORMAT_DOOM:
		return "doom"
	default:
		return "unknown"
	}
}

func PrintHelp() {
	Log.Printf("Usage: vigilantgen {-options} [level.yaml|level.tmx] {-o output.wad}\n")
	Log.Printf("\n")
	Log.Printf("-x+ turn on option -x- turn off option")
	Log.Printf("\n")
	Log.Printf("-f= Output map format.\n")
	Log.Printf("	udmf ZDoom-namespace TEXTMAP (default)\n")
	Log.Printf("	doom Binary Doom-format lumps\n")
	Log.Printf("	-fu and -fd are the short forms.\n")
	Log.Printf("\n")
	Log.Printf("-m= Map lump name, MAPxx or ExMy (default MAP01).\n")
	Log.Printf("\n")
	Log.Printf("-c Check that room footprints do not overlap (default: disabled).\n")
	Log.Printf("\n")
	Log.Printf("-t NAME=path Import an image as texture NAME. May be repeated.\n")
	Log.Printf("\n")
	Log.Printf("-v Add verbosity to text output. Use multiple times for increased verbosity.\n")
	Log.Printf("\n")
	Log.Printf("Example (1): vigilantgen -o demo.wad\n")
	Log.Printf("	Compiles the built-in demo layout into UDMF map MAP01.\n")
	Log.Printf("Example (2): vigilantgen -fd -m=E1M1 -c hostel.yaml -t SIGN01=sign.png\n")
	Log.Printf("	Compiles 'hostel.yaml' into Doom-format map E1M1 of 'hostel.wad',\n")
	Log.Printf("	refusing overlapping rooms, and bundles sign.png as texture SIGN01.\n")
	Log.Printf("\n")
}
