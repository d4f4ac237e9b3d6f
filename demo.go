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

// DemoLevel is the layout compiled when no level description is given: a
// hostel room joined to a corridor by a door and a window, a lawn outside
// the corridor, and a few features on top of that
func DemoLevel() *Level {
	level := NewLevel()

	roomA := level.AddRoom(NewRoom(0, 0, 384, 384))
	roomA.FloorTex = "FLOOR0_1"
	roomA.WallTex = "BROWN96"

	// 16 unit wall between room and corridor
	corridor := NewCorridor(400, 0, 768, 384)
	corridor.FloorTex = "CEIL5_2"
	level.AddRoom(corridor)

	gateTag := level.GetNewTag()
	door := NewDoor(384, 160, 16, 64, roomA, corridor)
	door.Tag = gateTag
	level.AddConnector(door)

	window := NewWindow(384, 256, 16, 64, roomA, corridor)
	window.Sill = 48
	window.WindowHeight = 64
	level.AddConnector(window)

	lawn := NewLawn(400, -784, 768, 768)
	lawn.FloorTex = "RROCK19"
	level.AddRoom(lawn)

	lawnDoor := NewDoor(752, -16, 64, 16, corridor, lawn)
	lawnDoor.Texture = "SP_DUDE4"
	level.AddConnector(lawnDoor)

	// Switch in the room's north wall closes the corridor door again
	level.AddConnector(NewSwitch(176, 384, roomA, ACTION_SR_DOOR_CLOSE, gateTag))

	// Two-way portal between the room's west wall and the lawn's east wall
	level.AddConnector(NewPortal(-16, 64, 16, 64, roomA, nil, 100, 101))
	level.AddConnector(NewPortal(1168, -400, 16, 64, lawn, nil, 101, 100))

	level.AddConnector(NewWallSign(corridor, SIDE_TOP, 320, 128, "MARBFAC2"))
	level.AddConnector(NewExitLine(lawn, SIDE_BOTTOM, 352, 64))

	lamp, _ := NewFurniture("lamp", 64, 320, 0)
	level.AddThing(lamp)
	floorLamp, _ := NewFurniture("floorlamp", 1100, 320, 0)
	level.AddThing(floorLamp)
	level.AddThing(NewTeleportDestination(784, -392, 90, 1))

	level.SetPlayerStart(192, 192, 90)
	return level
}
