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
	"math"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled object groups a level is drawn in. Tiled's Y axis points down, map
// Y axis points up, so Y coordinates are mirrored
const (
	TMX_GROUP_ROOMS      = "rooms"
	TMX_GROUP_CONNECTORS = "connectors"
	TMX_GROUP_POLYGONS   = "polygons"
	TMX_GROUP_THINGS     = "things"
	TMX_GROUP_OVERLAYS   = "overlays"
)

// Name of the object in things group that marks player start
const TMX_PLAYER_START = "player"

func tmxCoord(v float64) int {
	return int(math.Round(v))
}

// Optional integer property. Absent and empty properties yield nil
func tmxOptInt(o *tiled.Object, key string) (*int, error) {
	s := strings.TrimSpace(o.Properties.GetString(key))
	if s == "" {
		// property typed as int in Tiled
		if v := o.Properties.GetInt(key); v != 0 {
			return &v, nil
		}
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: object '%s' property %s='%s' is not a number",
			ErrLevelDescription, o.Name, key, s)
	}
	return &v, nil
}

func tmxInt(o *tiled.Object, key string) (int, error) {
	v, err := tmxOptInt(o, key)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}

// Rectangle object in map coordinates
func tmxRect(o *tiled.Object) (x, y, w, h int) {
	w = tmxCoord(o.Width)
	h = tmxCoord(o.Height)
	x = tmxCoord(o.X)
	y = -tmxCoord(o.Y + o.Height)
	return
}

func tmxRoom(o *tiled.Object) (RoomDesc, error) {
	rd := RoomDesc{
		ID:       o.Name,
		Kind:     o.Properties.GetString("kind"),
		FloorTex: o.Properties.GetString("floor_tex"),
		CeilTex:  o.Properties.GetString("ceil_tex"),
		WallTex:  o.Properties.GetString("wall_tex"),
	}
	rd.X, rd.Y, rd.Width, rd.Height = tmxRect(o)
	var err [5]error
	rd.FloorHeight, err[0] = tmxOptInt(o, "floor_height")
	rd.CeilHeight, err[1] = tmxOptInt(o, "ceil_height")
	rd.Light, err[2] = tmxOptInt(o, "light")
	rd.Tag, err[3] = tmxInt(o, "tag")
	rd.Special, err[4] = tmxInt(o, "special")
	for _, e := range err {
		if e != nil {
			return rd, e
		}
	}
	return rd, nil
}

func tmxConnector(o *tiled.Object) (ConnDesc, error) {
	cd := ConnDesc{
		Type:    o.Properties.GetString("type"),
		Room1:   o.Properties.GetString("room1"),
		Room2:   o.Properties.GetString("room2"),
		Room:    o.Properties.GetString("room"),
		Texture: o.Properties.GetString("texture"),
		Side:    o.Properties.GetString("side"),
		Open:    o.Properties.GetBool("open"),
	}
	if cd.Type == "" {
		// name the object after its type
		cd.Type = o.Name
	}
	cd.X, cd.Y, cd.Width, cd.Height = tmxRect(o)
	var err [11]error
	cd.Action, err[0] = tmxOptInt(o, "action")
	cd.Tag, err[1] = tmxInt(o, "tag")
	cd.Sill, err[2] = tmxOptInt(o, "sill")
	cd.WindowHeight, err[3] = tmxOptInt(o, "window_height")
	cd.SourceID, err[4] = tmxInt(o, "source_id")
	cd.TargetID, err[5] = tmxInt(o, "target_id")
	cd.PortalType, err[6] = tmxOptInt(o, "portal_type")
	cd.PlaneAnchor, err[7] = tmxOptInt(o, "plane_anchor")
	cd.Offset, err[8] = tmxInt(o, "offset")
	cd.Span, err[9] = tmxInt(o, "span")
	if strings.EqualFold(cd.Type, "switch") {
		// switch is positioned by its top-left corner only
		cd.Width, cd.Height = SWITCH_SIZE, SWITCH_SIZE
		cd.Y = -tmxCoord(o.Y + SWITCH_SIZE)
	}
	for _, e := range err {
		if e != nil {
			return cd, e
		}
	}
	return cd, nil
}

func tmxPolygons(o *tiled.Object) ([]PolygonDesc, error) {
	res := make([]PolygonDesc, 0, len(o.Polygons))
	for _, poly := range o.Polygons {
		if poly.Points == nil {
			continue
		}
		pd := PolygonDesc{
			FloorTex: o.Properties.GetString("floor_tex"),
			CeilTex:  o.Properties.GetString("ceil_tex"),
			WallTex:  o.Properties.GetString("wall_tex"),
		}
		for _, point := range *poly.Points {
			pd.Points = append(pd.Points, [2]int{
				tmxCoord(o.X + point.X),
				-tmxCoord(o.Y + point.Y),
			})
		}
		var err [4]error
		pd.FloorHeight, err[0] = tmxInt(o, "floor_height")
		pd.CeilHeight, err[1] = tmxInt(o, "ceil_height")
		pd.Light, err[2] = tmxOptInt(o, "light")
		pd.Tag, err[3] = tmxInt(o, "tag")
		for _, e := range err {
			if e != nil {
				return nil, e
			}
		}
		res = append(res, pd)
	}
	return res, nil
}

func tmxThing(o *tiled.Object) (ThingDesc, error) {
	td := ThingDesc{
		Furniture: o.Properties.GetString("furniture"),
		X:         tmxCoord(o.X),
		Y:         -tmxCoord(o.Y),
	}
	var err [3]error
	td.Type, err[0] = tmxInt(o, "type")
	td.Angle, err[1] = tmxInt(o, "angle")
	td.TID, err[2] = tmxInt(o, "tid")
	for _, e := range err {
		if e != nil {
			return td, e
		}
	}
	return td, nil
}

func tmxOverlay(o *tiled.Object) (OverlayDesc, error) {
	od := OverlayDesc{
		FloorTex: o.Properties.GetString("floor_tex"),
		CeilTex:  o.Properties.GetString("ceil_tex"),
		WallTex:  o.Properties.GetString("wall_tex"),
	}
	var err [3]error
	od.Tag, err[0] = tmxInt(o, "tag")
	od.Thickness, err[1] = tmxInt(o, "thickness")
	od.Alpha, err[2] = tmxOptInt(o, "alpha")
	for _, e := range err {
		if e != nil {
			return od, e
		}
	}
	for _, s := range strings.Split(o.Properties.GetString("heights"), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		z, e := strconv.Atoi(s)
		if e != nil {
			return od, fmt.Errorf("%w: overlay '%s' height '%s' is not a number",
				ErrLevelDescription, o.Name, s)
		}
		od.Heights = append(od.Heights, z)
	}
	return od, nil
}

// TMXToLevelDesc converts object groups of a Tiled map into level
// description. Tile layers are ignored
func TMXToLevelDesc(levelMap *tiled.Map) (*LevelDesc, error) {
	desc := &LevelDesc{}
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch strings.ToLower(og.Name) {
			case TMX_GROUP_ROOMS:
				rd, err := tmxRoom(o)
				if err != nil {
					return nil, err
				}
				desc.Rooms = append(desc.Rooms, rd)
			case TMX_GROUP_CONNECTORS:
				cd, err := tmxConnector(o)
				if err != nil {
					return nil, err
				}
				desc.Connectors = append(desc.Connectors, cd)
			case TMX_GROUP_POLYGONS:
				pds, err := tmxPolygons(o)
				if err != nil {
					return nil, err
				}
				desc.Polygons = append(desc.Polygons, pds...)
			case TMX_GROUP_THINGS:
				td, err := tmxThing(o)
				if err != nil {
					return nil, err
				}
				if strings.EqualFold(o.Name, TMX_PLAYER_START) {
					start := td
					desc.PlayerStart = &start
					continue
				}
				desc.Things = append(desc.Things, td)
			case TMX_GROUP_OVERLAYS:
				od, err := tmxOverlay(o)
				if err != nil {
					return nil, err
				}
				desc.Overlays = append(desc.Overlays, od)
			default:
				Log.Verbose(1, "Ignoring object '%s' of unknown group '%s'\n",
					o.Name, og.Name)
			}
		}
	}
	return desc, nil
}

func LoadTMXLevelDesc(path string) (*LevelDesc, error) {
	levelMap, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLevelDescription, err.Error())
	}
	return TMXToLevelDesc(levelMap)
}
