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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level description, as read from yaml (or converted from Tiled map). Rooms
// are referenced from connectors by id

type LevelDesc struct {
	Map         string        `yaml:"map"`
	Rooms       []RoomDesc    `yaml:"rooms"`
	Connectors  []ConnDesc    `yaml:"connectors"`
	Polygons    []PolygonDesc `yaml:"polygons"`
	Things      []ThingDesc   `yaml:"things"`
	Overlays    []OverlayDesc `yaml:"overlays"`
	PlayerStart *ThingDesc    `yaml:"player"`
}

type RoomDesc struct {
	ID          string `yaml:"id"`
	Kind        string `yaml:"kind"` // room, corridor, lawn
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	FloorTex    string `yaml:"floor_tex"`
	CeilTex     string `yaml:"ceil_tex"`
	WallTex     string `yaml:"wall_tex"`
	FloorHeight *int   `yaml:"floor_height"`
	CeilHeight  *int   `yaml:"ceil_height"`
	Light       *int   `yaml:"light"`
	Tag         int    `yaml:"tag"`
	Special     int    `yaml:"special"`
}

type ConnDesc struct {
	Type    string `yaml:"type"` // door, window, switch, portal, sign, exit
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Room1   string `yaml:"room1"`
	Room2   string `yaml:"room2"`
	Room    string `yaml:"room"`
	Texture string `yaml:"texture"`
	Action  *int   `yaml:"action"`
	Tag     int    `yaml:"tag"`
	// door
	Open bool `yaml:"open"`
	// window
	Sill         *int `yaml:"sill"`
	WindowHeight *int `yaml:"window_height"`
	// portal
	SourceID    int  `yaml:"source_id"`
	TargetID    int  `yaml:"target_id"`
	PortalType  *int `yaml:"portal_type"`
	PlaneAnchor *int `yaml:"plane_anchor"`
	// sign, exit
	Side   string `yaml:"side"`
	Offset int    `yaml:"offset"`
	Span   int    `yaml:"span"`
}

type PolygonDesc struct {
	Points      [][2]int `yaml:"points"`
	FloorTex    string   `yaml:"floor_tex"`
	CeilTex     string   `yaml:"ceil_tex"`
	WallTex     string   `yaml:"wall_tex"`
	FloorHeight int      `yaml:"floor_height"`
	CeilHeight  int      `yaml:"ceil_height"`
	Light       *int     `yaml:"light"`
	Tag         int      `yaml:"tag"`
}

type ThingDesc struct {
	Type      int    `yaml:"type"`
	Furniture string `yaml:"furniture"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Angle     int    `yaml:"angle"`
	TID       int    `yaml:"tid"`
}

type OverlayDesc struct {
	Tag       int    `yaml:"tag"`
	Heights   []int  `yaml:"heights"`
	Thickness int    `yaml:"thickness"`
	FloorTex  string `yaml:"floor_tex"`
	CeilTex   string `yaml:"ceil_tex"`
	WallTex   string `yaml:"wall_tex"`
	Alpha     *int   `yaml:"alpha"`
}

// ParseLevelYAML decodes a level description. Unknown keys are rejected, so
// typos don't silently fall back to defaults
func ParseLevelYAML(data []byte) (*LevelDesc, error) {
	desc := &LevelDesc{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(desc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLevelDescription, err.Error())
	}
	return desc, nil
}

// LoadLevelFile reads level description in yaml or Tiled tmx format. Map
// name is empty unless the description sets one
func LoadLevelFile(path string) (*Level, string, error) {
	var desc *LevelDesc
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmx":
		desc, err = LoadTMXLevelDesc(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			desc, err = ParseLevelYAML(data)
		}
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading '%s': %w", path, err)
	}
	level, err := desc.ToLevel()
	if err != nil {
		return nil, "", fmt.Errorf("loading '%s': %w", path, err)
	}
	return level, strings.ToUpper(desc.Map), nil
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func orDefaultTex(v, def string) string {
	if v == "" {
		return def
	}
	return strings.ToUpper(v)
}

func (rd *RoomDesc) toRoom() (*Room, error) {
	var r *Room
	switch strings.ToLower(rd.Kind) {
	case "", "room":
		r = NewRoom(rd.X, rd.Y, rd.Width, rd.Height)
	case "corridor":
		r = NewCorridor(rd.X, rd.Y, rd.Width, rd.Height)
	case "lawn":
		r = NewLawn(rd.X, rd.Y, rd.Width, rd.Height)
	default:
		return nil, fmt.Errorf("%w: room '%s' has unknown kind '%s'",
			ErrLevelDescription, rd.ID, rd.Kind)
	}
	if rd.Width <= 0 || rd.Height <= 0 {
		return nil, fmt.Errorf("%w: room '%s' has no area", ErrLevelDescription, rd.ID)
	}
	r.FloorTex = orDefaultTex(rd.FloorTex, r.FloorTex)
	r.CeilTex = orDefaultTex(rd.CeilTex, r.CeilTex)
	r.WallTex = orDefaultTex(rd.WallTex, r.WallTex)
	r.FloorHeight = orDefault(rd.FloorHeight, r.FloorHeight)
	r.CeilHeight = orDefault(rd.CeilHeight, r.CeilHeight)
	r.Light = orDefault(rd.Light, r.Light)
	r.Tag = rd.Tag
	r.Special = rd.Special
	return r, nil
}

func (cd *ConnDesc) toConnector(rooms map[string]*Room) (Connector, error) {
	lookup := func(id string) (*Room, error) {
		if id == "" {
			return nil, nil
		}
		r, ok := rooms[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s connector names unknown room '%s'",
				ErrLevelDescription, cd.Type, id)
		}
		return r, nil
	}
	room1, err := lookup(cd.Room1)
	if err != nil {
		return nil, err
	}
	room2, err := lookup(cd.Room2)
	if err != nil {
		return nil, err
	}
	room, err := lookup(cd.Room)
	if err != nil {
		return nil, err
	}
	if room == nil {
		room = room1
	}

	switch strings.ToLower(cd.Type) {
	case "door":
		d := NewDoor(cd.X, cd.Y, cd.Width, cd.Height, room1, room2)
		d.Texture = orDefaultTex(cd.Texture, d.Texture)
		d.Action = orDefault(cd.Action, d.Action)
		d.Tag = cd.Tag
		if cd.Open {
			d.State = DOOR_OPEN
		}
		return d, nil
	case "window":
		w := NewWindow(cd.X, cd.Y, cd.Width, cd.Height, room1, room2)
		w.Sill = orDefault(cd.Sill, w.Sill)
		w.WindowHeight = orDefault(cd.WindowHeight, w.WindowHeight)
		w.WallTex = orDefaultTex(cd.Texture, w.WallTex)
		return w, nil
	case "switch":
		s := NewSwitch(cd.X, cd.Y, room, orDefault(cd.Action, ACTION_SR_DOOR_CLOSE), cd.Tag)
		s.Texture = orDefaultTex(cd.Texture, s.Texture)
		return s, nil
	case "portal":
		p := NewPortal(cd.X, cd.Y, cd.Width, cd.Height, room1, room2,
			cd.SourceID, cd.TargetID)
		p.Type = orDefault(cd.PortalType, p.Type)
		p.PlaneAnchor = orDefault(cd.PlaneAnchor, p.PlaneAnchor)
		return p, nil
	case "sign", "wallsign":
		side, err := ParseSide(strings.ToLower(cd.Side))
		if err != nil {
			return nil, err
		}
		if cd.Texture == "" {
			return nil, fmt.Errorf("%w: wall sign without texture", ErrLevelDescription)
		}
		return NewWallSign(room, side, cd.Offset, cd.Span, strings.ToUpper(cd.Texture)), nil
	case "exit":
		side, err := ParseSide(strings.ToLower(cd.Side))
		if err != nil {
			return nil, err
		}
		e := NewExitLine(room, side, cd.Offset, cd.Span)
		e.Texture = orDefaultTex(cd.Texture, e.Texture)
		e.Action = orDefault(cd.Action, e.Action)
		return e, nil
	}
	return nil, fmt.Errorf("%w: unknown connector type '%s'", ErrLevelDescription, cd.Type)
}

func (td *ThingDesc) toThing() (LevelThing, error) {
	if td.Furniture != "" {
		return NewFurniture(strings.ToLower(td.Furniture), td.X, td.Y, td.Angle)
	}
	if td.Type == THING_TELEPORT_DEST {
		return NewTeleportDestination(td.X, td.Y, td.Angle, td.TID), nil
	}
	if td.Type <= 0 {
		return LevelThing{}, fmt.Errorf("%w: thing at %d,%d has no type",
			ErrLevelDescription, td.X, td.Y)
	}
	return LevelThing{
		X: td.X, Y: td.Y, Angle: td.Angle, Type: td.Type, TID: td.TID,
		Flags: TF_ALL_SKILLS,
	}, nil
}

// Texture and flat names must fit Doom's 8 byte fields
func (desc *LevelDesc) checkNames() error {
	type named struct{ name, what string }
	var names []named
	for _, rd := range desc.Rooms {
		names = append(names, named{rd.FloorTex, "floor flat of room " + rd.ID},
			named{rd.CeilTex, "ceiling flat of room " + rd.ID},
			named{rd.WallTex, "wall texture of room " + rd.ID})
	}
	for _, cd := range desc.Connectors {
		names = append(names, named{cd.Texture, cd.Type + " texture"})
	}
	for _, pd := range desc.Polygons {
		names = append(names, named{pd.FloorTex, "polygon floor flat"},
			named{pd.CeilTex, "polygon ceiling flat"},
			named{pd.WallTex, "polygon wall texture"})
	}
	for _, od := range desc.Overlays {
		names = append(names, named{od.FloorTex, "overlay floor flat"},
			named{od.CeilTex, "overlay ceiling flat"},
			named{od.WallTex, "overlay wall texture"})
	}
	for _, n := range names {
		if err := CheckName(n.name, n.what); err != nil {
			return fmt.Errorf("%w: %w", ErrLevelDescription, err)
		}
	}
	return nil
}

// ToLevel builds the layout the description describes
func (desc *LevelDesc) ToLevel() (*Level, error) {
	if desc.Map != "" && !IsALevel([]byte(strings.ToUpper(desc.Map))) {
		return nil, fmt.Errorf("%w: map name '%s' is neither MAPxx nor ExMy",
			ErrLevelDescription, desc.Map)
	}
	if err := desc.checkNames(); err != nil {
		return nil, err
	}
	level := NewLevel()
	rooms := make(map[string]*Room, len(desc.Rooms))
	for i := range desc.Rooms {
		rd := &desc.Rooms[i]
		r, err := rd.toRoom()
		if err != nil {
			return nil, err
		}
		if rd.ID != "" {
			if _, dup := rooms[rd.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate room id '%s'", ErrLevelDescription, rd.ID)
			}
			rooms[rd.ID] = r
		}
		level.AddRoom(r)
	}
	for i := range desc.Connectors {
		c, err := desc.Connectors[i].toConnector(rooms)
		if err != nil {
			return nil, err
		}
		level.AddConnector(c)
	}
	for _, pd := range desc.Polygons {
		points := make([]Point, len(pd.Points))
		for j, p := range pd.Points {
			points[j] = Point{p[0], p[1]}
		}
		level.AddPolygon(points, SectorAttrs{
			FloorTex:    orDefaultTex(pd.FloorTex, "FLOOR4_8"),
			CeilTex:     orDefaultTex(pd.CeilTex, "CEIL3_5"),
			WallTex:     orDefaultTex(pd.WallTex, "STARTAN3"),
			FloorHeight: pd.FloorHeight,
			CeilHeight:  pd.CeilHeight,
			Light:       orDefault(pd.Light, DEFAULT_LIGHT),
			Tag:         pd.Tag,
		})
	}
	for i := range desc.Things {
		t, err := desc.Things[i].toThing()
		if err != nil {
			return nil, err
		}
		level.AddThing(t)
	}
	for _, od := range desc.Overlays {
		o := NewStoryOverlay(od.Tag, od.Heights...)
		if od.Thickness > 0 {
			o.Thickness = od.Thickness
		}
		o.FloorTex = orDefaultTex(od.FloorTex, o.FloorTex)
		o.CeilTex = orDefaultTex(od.CeilTex, o.CeilTex)
		o.WallTex = orDefaultTex(od.WallTex, o.WallTex)
		o.Alpha = orDefault(od.Alpha, o.Alpha)
		level.AddOverlay(o)
	}
	if desc.PlayerStart != nil {
		level.SetPlayerStart(desc.PlayerStart.X, desc.PlayerStart.Y,
			desc.PlayerStart.Angle)
	}
	return level, nil
}
