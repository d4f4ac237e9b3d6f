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

// VigilantGen compiles room-and-connector layouts into Doom maps
package main

import (
	"os"
	"path/filepath"
	"time"
)

func main() {
	timeStart := time.Now()

	// before config can be legitimately accessed, must call Configure()
	if !Configure() {
		os.Exit(1)
	}
	if !run() {
		Log.Sync()
		os.Exit(1)
	}
	Log.Printf("Total time: %s\n", time.Since(timeStart))
}

// run compiles the level config points to. Returns false on failure, after
// reporting the reason
func run() bool {
	var level *Level
	mapName := config.MapName
	if config.InputFileName == "" {
		Log.Printf("No level description given, compiling the demo layout.\n")
		level = DemoLevel()
	} else {
		var err error
		var descMapName string
		level, descMapName, err = LoadLevelFile(config.InputFileName)
		if err != nil {
			Log.Error("%s\n", err.Error())
			return false
		}
		mapName = config.ChooseMapName(descMapName)
	}
	Log.Verbose(1, "Layout has %d room(s), %d connector(s)\n", len(level.Rooms),
		len(level.Connectors))

	if config.CheckOverlaps {
		if err := level.ValidateOverlaps(); err != nil {
			Log.Error("%s\n", err.Error())
			return false
		}
	}

	builder := NewMapBuilder(mapName)
	for _, tex := range config.Textures {
		if err := builder.ImportTexture(tex.Name, tex.Path); err != nil {
			Log.Error("%s\n", err.Error())
			return false
		}
	}
	if err := level.Build(builder); err != nil {
		Log.Error("Couldn't build map %s: %s\n", mapName, err.Error())
		return false
	}

	outFileName, _ := filepath.Abs(config.OutputFileName)
	if err := builder.Save(outFileName, config.Format); err != nil {
		Log.Error("Couldn't write map %s: %s\n", mapName, err.Error())
		return false
	}
	if config.Format == FORMAT_DOOM {
		Log.Printf("Doom format map has no nodes yet, run a nodebuilder on it before playing.\n")
	}
	return true
}
