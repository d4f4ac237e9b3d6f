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
)

// ZDoom specials
const (
	SPECIAL_DOOR_CLOSE        = 10
	SPECIAL_DOOR_OPEN         = 11
	SPECIAL_DOOR_RAISE        = 12
	SPECIAL_DOOR_LOCKED_RAISE = 13
	SPECIAL_PLAT_DOWN_WAIT_UP = 62 // Plat_DownWaitUpStayLip
	SPECIAL_TELEPORT          = 70
	SPECIAL_LINE_SET_PORTAL   = 156
	SPECIAL_SET_3D_FLOOR      = 160
	SPECIAL_EXIT_NORMAL       = 243
)

// How the special is triggered
const (
	TRIGGER_PLAYER_USE = 1 << iota
	TRIGGER_PLAYER_CROSS
	TRIGGER_MONSTER_USE
	TRIGGER_MONSTER_CROSS
	TRIGGER_REPEAT
)

// ArgTag is the position in Args that receives linedef tag
const ARG_NO_TAG = -1

// ActionRemap is how a Doom action is expressed in UDMF
type ActionRemap struct {
	Special int
	Args    [5]int
	ArgTag  int
	Trigger int
}

// Doom actions the layout features produce. Anything else has no translation
var LEGACY_ACTION_REMAP = map[int]ActionRemap{
	ACTION_DR_DOOR: ActionRemap{
		Special: SPECIAL_DOOR_RAISE,
		Args:    [5]int{0, 16, 150, 0, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE | TRIGGER_MONSTER_USE | TRIGGER_REPEAT,
	},
	ACTION_DR_DOOR_BLUE: ActionRemap{
		Special: SPECIAL_DOOR_LOCKED_RAISE,
		Args:    [5]int{0, 16, 150, 2, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE | TRIGGER_REPEAT,
	},
	ACTION_DR_DOOR_YELLOW: ActionRemap{
		Special: SPECIAL_DOOR_LOCKED_RAISE,
		Args:    [5]int{0, 16, 150, 3, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE | TRIGGER_REPEAT,
	},
	ACTION_DR_DOOR_RED: ActionRemap{
		Special: SPECIAL_DOOR_LOCKED_RAISE,
		Args:    [5]int{0, 16, 150, 1, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE | TRIGGER_REPEAT,
	},
	ACTION_D1_DOOR_STAY: ActionRemap{
		Special: SPECIAL_DOOR_OPEN,
		Args:    [5]int{0, 16, 0, 0, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE,
	},
	ACTION_S1_DOOR_STAY: ActionRemap{
		Special: SPECIAL_DOOR_OPEN,
		Args:    [5]int{0, 16, 0, 0, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE,
	},
	ACTION_SR_DOOR_CLOSE: ActionRemap{
		Special: SPECIAL_DOOR_CLOSE,
		Args:    [5]int{0, 16, 0, 0, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE | TRIGGER_REPEAT,
	},
	ACTION_S1_EXIT: ActionRemap{
		Special: SPECIAL_EXIT_NORMAL,
		ArgTag:  ARG_NO_TAG,
		Trigger: TRIGGER_PLAYER_USE,
	},
	ACTION_W1_EXIT: ActionRemap{
		Special: SPECIAL_EXIT_NORMAL,
		ArgTag:  ARG_NO_TAG,
		Trigger: TRIGGER_PLAYER_CROSS,
	},
	ACTION_W1_TELEPORT: ActionRemap{
		Special: SPECIAL_TELEPORT,
		ArgTag:  1,
		Trigger: TRIGGER_PLAYER_CROSS | TRIGGER_MONSTER_CROSS,
	},
	ACTION_WR_TELEPORT: ActionRemap{
		Special: SPECIAL_TELEPORT,
		ArgTag:  1,
		Trigger: TRIGGER_PLAYER_CROSS | TRIGGER_MONSTER_CROSS | TRIGGER_REPEAT,
	},
	ACTION_SR_LIFT: ActionRemap{
		Special: SPECIAL_PLAT_DOWN_WAIT_UP,
		Args:    [5]int{0, 32, 105, 0, 0},
		ArgTag:  0,
		Trigger: TRIGGER_PLAYER_USE | TRIGGER_REPEAT,
	},
}

// Line flags are carried over; the action, if any, is replaced by special,
// args and trigger flags per LEGACY_ACTION_REMAP
func lowerLinedef(ld MapLinedef) (UDMFLinedef, error) {
	res := UDMFLinedef{
		V1:            ld.V1,
		V2:            ld.V2,
		SideFront:     ld.Front,
		SideBack:      ld.Back,
		ID:            ld.ID,
		Blocking:      ld.Flags&LF_IMPASSABLE != 0,
		BlockMonsters: ld.Flags&LF_BLOCK_MONSTER != 0,
		TwoSided:      ld.Flags&LF_TWOSIDED != 0,
		DontPegTop:    ld.Flags&LF_UPPER_UNPEGGED != 0,
		DontPegBottom: ld.Flags&LF_LOWER_UNPEGGED != 0,
		Secret:        ld.Flags&LF_SECRET != 0,
		BlockSound:    ld.Flags&LF_BLOCK_SOUND != 0,
		DontDraw:      ld.Flags&LF_NEVER_ON_AUTOMAP != 0,
		Mapped:        ld.Flags&LF_ALWAYS_ON_AUTOMAP != 0,
	}
	if ld.Action == ACTION_NONE {
		return res, nil
	}
	remap, ok := LEGACY_ACTION_REMAP[ld.Action]
	if !ok {
		return res, fmt.Errorf("%w: action %d", ErrUnmappedAction, ld.Action)
	}
	res.Special = remap.Special
	res.Args = remap.Args
	if remap.ArgTag != ARG_NO_TAG {
		res.Args[remap.ArgTag] = ld.Tag
	}
	res.PlayerUse = remap.Trigger&TRIGGER_PLAYER_USE != 0
	res.PlayerCross = remap.Trigger&TRIGGER_PLAYER_CROSS != 0
	res.MonsterUse = remap.Trigger&TRIGGER_MONSTER_USE != 0
	res.MonsterCross = remap.Trigger&TRIGGER_MONSTER_CROSS != 0
	res.RepeatSpecial = remap.Trigger&TRIGGER_REPEAT != 0
	return res, nil
}

func lowerThing(t MapThing) UDMFThing {
	return UDMFThing{
		X:      t.X,
		Y:      t.Y,
		Angle:  t.Angle,
		Type:   t.Type,
		ID:     t.ID,
		Skill1: t.Flags&TF_ROOKIE != 0,
		Skill2: t.Flags&TF_ROOKIE != 0,
		Skill3: t.Flags&TF_NORMAL != 0,
		Skill4: t.Flags&TF_HARD != 0,
		Skill5: t.Flags&TF_HARD != 0,
		Ambush: t.Flags&TF_AMBUSH != 0,
		Single: t.Flags&TF_MULTIPLAYER_ONLY == 0,
		Coop:   true,
		Dm:     true,
	}
}

// LowerToUDMF converts the map into UDMF records and resolves every deferred
// spec against them. The builder itself is not modified, so lowering the same
// map twice gives the same result
func LowerToUDMF(b *MapBuilder) (*UDMFMap, error) {
	m := &UDMFMap{
		Namespace: UDMF_NAMESPACE,
		Vertices:  make([]UDMFVertex, len(b.Vertices)),
		Linedefs:  make([]UDMFLinedef, len(b.Linedefs)),
		Sidedefs:  make([]UDMFSidedef, len(b.Sidedefs)),
		Sectors:   make([]UDMFSector, len(b.Sectors)),
		Things:    make([]UDMFThing, len(b.Things)),
	}
	for i, v := range b.Vertices {
		m.Vertices[i] = UDMFVertex{X: v.X, Y: v.Y}
	}
	for i, ld := range b.Linedefs {
		lowered, err := lowerLinedef(ld)
		if err != nil {
			return nil, fmt.Errorf("linedef %d: %w", i, err)
		}
		m.Linedefs[i] = lowered
	}
	for i, sd := range b.Sidedefs {
		m.Sidedefs[i] = UDMFSidedef{
			Sector:        sd.Sector,
			TextureTop:    sd.Upper,
			TextureBottom: sd.Lower,
			TextureMiddle: sd.Middle,
			OffsetX:       sd.XOffset,
			OffsetY:       sd.YOffset,
			ScaleXMid:     sd.ScaleX,
			ScaleYMid:     sd.ScaleY,
		}
	}
	for i, s := range b.Sectors {
		m.Sectors[i] = UDMFSector{
			HeightFloor:    s.FloorHeight,
			HeightCeiling:  s.CeilHeight,
			TextureFloor:   s.FloorTex,
			TextureCeiling: s.CeilTex,
			LightLevel:     s.Light,
			Special:        s.Special,
			ID:             s.Tag,
		}
	}
	for i, t := range b.Things {
		m.Things[i] = lowerThing(t)
	}
	if err := ResolveDeferredSpecs(m, b); err != nil {
		return nil, err
	}
	return m, nil
}
