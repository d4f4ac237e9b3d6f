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
	"path/filepath"
	"strings"
)

const ( // which modifier expects the next argument
	MODIFIER_NONE = iota
	MODIFIER_OUTPUT
	MODIFIER_TEXTURE
)

// Inspired by from zokumbsp's parser
func (c *ProgramConfig) FromCommandLine(args []string) bool {
	files := make([]string, 0)
	modifier := MODIFIER_NONE
	outputModifierUsed := false
	for _, arg := range args {
		if len(arg) < 1 {
			break
		}

		if modifier == MODIFIER_OUTPUT {
			c.OutputFileName = arg
			modifier = MODIFIER_NONE
			continue
		}

		if modifier == MODIFIER_TEXTURE {
			if !c.parseTextureImport(arg) {
				return false
			}
			modifier = MODIFIER_NONE
			continue
		}

		if arg[0] != '-' {
			files = append(files, arg)
			if len(files) > 1 {
				// One level description compiles into one map
				Log.Error("This program doesn't support specifying more than one input file - aborting.\n")
				return false
			}
			if !IsLevelDescription(arg) {
				Log.Error("Input file '%s' is neither yaml nor tmx level description - aborting.\n", arg)
				return false
			}
			c.InputFileName = files[0]
			continue
		}

		if len(arg) < 2 {
			continue
		}
		switch arg[1] {
		case 'c':
			{
				enabled, rest := isEnabled([]byte(arg)[2:])
				c.CheckOverlaps = enabled
				if len(rest) > 0 {
					Log.Error("Syntax error: -c parameter is followed by garbage; expected -c, -c+ or -c-, no other variants allowed.\n")
				}
			}
		case 'f':
			{
				if !c.parseFormat([]byte(arg)[2:]) {
					return false
				}
			}
		case 'm':
			{
				name, ok := readValue([]byte(arg)[2:])
				name = strings.ToUpper(name)
				if !ok || !IsALevel([]byte(name)) {
					Log.Error("Map name must be given as -m=MAPxx or -m=ExMy, got '%s' - aborting.\n", arg)
					return false
				}
				c.MapName = name
				c.MapNameGiven = true
			}
		case 'v':
			{
				// "count" type: -v, -vv, -vvv, etc.
				vs := 0
				barg := []byte(arg)[1:]
				for i := 0; i < len(arg)-1; i++ {
					if barg[i] == 'v' {
						vs++
					} else {
						break
					}
				}
				c.VerbosityLevel += vs
			}
		case 'o':
			{
				if len(arg) != 2 {
					Log.Error("Unrecognized modified '%s' (expected '-o <file>', space between '-o' and file name) - aborting.\n",
						arg)
					return false
				}
				if outputModifierUsed {
					Log.Error("Can't specify output file twice, only one output file is supported - aborting.\n")
					return false
				}
				modifier = MODIFIER_OUTPUT
				outputModifierUsed = true
			}
		case 't':
			{
				if len(arg) != 2 {
					Log.Error("Unrecognized modified '%s' (expected '-t NAME=path') - aborting.\n",
						arg)
					return false
				}
				modifier = MODIFIER_TEXTURE
			}
		default:
			{
				Log.Error("Unrecognised argument '%s' - aborting.\n", arg)
				return false
			}
		}
	}
	if modifier == MODIFIER_OUTPUT {
		Log.Error("Modifier '-o' was present without a file name following it - aborting.\n")
		return false
	}
	if modifier == MODIFIER_TEXTURE {
		Log.Error("Modifier '-t' was present without NAME=path following it - aborting.\n")
		return false
	}
	return true
}

// -fu, -fd, -f=udmf, -f=doom
func (c *ProgramConfig) parseFormat(p []byte) bool {
	var name string
	if len(p) == 1 {
		name = string(p)
	} else {
		v, ok := readValue(p)
		if !ok {
			Log.Error("Expected -f=udmf or -f=doom, got '-f%s' - aborting.\n", string(p))
			return false
		}
		name = strings.ToLower(v)
	}
	switch name {
	case "u", "udmf":
		{
			c.Format = FORMAT_UDMF
		}
	case "d", "doom":
		{
			c.Format = FORMAT_DOOM
		}
	default:
		{
			Log.Error("Unknown output format '%s' - aborting.\n", name)
			return false
		}
	}
	return true
}

func (c *ProgramConfig) parseTextureImport(arg string) bool {
	eq := strings.IndexByte(arg, '=')
	if eq <= 0 || eq == len(arg)-1 {
		Log.Error("Expected NAME=path after '-t', got '%s' - aborting.\n", arg)
		return false
	}
	name := strings.ToUpper(arg[:eq])
	if len(name) > 8 {
		Log.Error("Texture name '%s' is longer than 8 characters - aborting.\n", name)
		return false
	}
	c.Textures = append(c.Textures, TextureImport{
		Name: name,
		Path: arg[eq+1:],
	})
	return true
}

// IsLevelDescription tells whether file name has an extension of one of the
// supported level description formats
func IsLevelDescription(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml", ".tmx":
		return true
	}
	return false
}

func isEnabled(arg []byte) (bool, []byte) {
	if len(arg) == 0 {
		return true, arg
	}
	if arg[0] == '+' {
		return true, arg[1:]
	} else if arg[0] == '-' {
		return false, arg[1:]
	} else {
		return true, arg
	}
}

// a=<value>, value is everything after '='
func readValue(arg []byte) (string, bool) {
	if len(arg) < 2 || arg[0] != '=' {
		return "", false
	}
	v := bytes.TrimSpace(arg[1:])
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}
