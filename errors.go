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
	"errors"
	"fmt"
	"strings"
)

var (
	// Connector rectangle shares no edge with a room it names
	ErrConnectorNotAligned = errors.New("connector is not aligned with room edge")
	// Sector/linedef construction produced something the map format can't
	// represent, or a feature couldn't find the lines it must wire
	ErrGeometry = errors.New("geometry construction failed")
	// Polygon with fewer than 3 distinct points or a zero-length edge
	ErrBadPolygon = errors.New("malformed polygon")
	// Doom action that has no ZDoom special equivalent in the remap table
	ErrUnmappedAction = errors.New("action has no UDMF equivalent")
	// Deferred cross-reference matched nothing
	ErrUnresolvedSpec = errors.New("unresolved cross-reference")
	// Two room footprints share positive area
	ErrOverlap = errors.New("room footprints overlap")
	// Texture, flat or lump name longer than 8 characters
	ErrNameTooLong = errors.New("name is longer than 8 characters")
	// Level description could not be understood
	ErrLevelDescription = errors.New("bad level description")
)

// UnresolvedSpecError names the deferred record that could not be resolved
// when UDMF map was lowered
type UnresolvedSpecError struct {
	Kind    string // "3D floor", "line portal", "teleport destination", "door tag"
	Spec    string // description of the record
	Matches int    // how many candidates were found, 0 or more than allowed
}

func (e *UnresolvedSpecError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("%s %s: no match found", e.Kind, e.Spec)
	}
	return fmt.Sprintf("%s %s: %d candidates where one expected", e.Kind,
		e.Spec, e.Matches)
}

func (e *UnresolvedSpecError) Unwrap() error {
	return ErrUnresolvedSpec
}

// OverlapError lists every pair of rooms whose footprints overlap
type OverlapError struct {
	Pairs [][2]*Room
}

func (e *OverlapError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d overlapping room pair(s):", len(e.Pairs)))
	for _, pair := range e.Pairs {
		sb.WriteString(fmt.Sprintf(" %s and %s;", pair[0], pair[1]))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}
