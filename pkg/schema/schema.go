// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schema defines the in-memory route-network/mission model and the
// identifier-resolution lookups over it. The tree backbone (RouteNetwork
// owns Segments/Zones/Checkpoints/Obstacles, a Segment owns its Lanes, a
// Lane owns its Waypoints, a Zone owns its PerimeterPoints and Spots, a Spot
// owns its two Waypoints) is built once during parsing. Segments, Zones,
// Lanes, Waypoints, PerimeterPoints and Spots are pre-sized slices, so the
// non-owning references layered on top (Waypoint.Exits,
// Checkpoint.Waypoint, the Parent* back-references) can simply be ordinary
// pointers into those slices: nothing is appended to them once their
// declared count has been reached, so the addresses taken from them never
// move. Checkpoints and Obstacles grow by append, and no reference into
// them is kept.
package schema

import "fmt"

// BoundaryType is a lane edge marking.
type BoundaryType int

const (
	BoundaryUnspecified BoundaryType = iota
	BoundaryDoubleYellow
	BoundarySolidWhite
	BoundaryBrokenWhite
	BoundarySolidYellow
)

func (b BoundaryType) String() string {
	switch b {
	case BoundaryDoubleYellow:
		return "double_yellow"
	case BoundarySolidWhite:
		return "solid_white"
	case BoundaryBrokenWhite:
		return "broken_white"
	case BoundarySolidYellow:
		return "solid_yellow"
	default:
		return ""
	}
}

// ParseBoundary maps one of the four RND boundary keywords to a
// BoundaryType. ok is false for any other keyword.
func ParseBoundary(s string) (BoundaryType, bool) {
	switch s {
	case "double_yellow":
		return BoundaryDoubleYellow, true
	case "solid_white":
		return BoundarySolidWhite, true
	case "broken_white":
		return BoundaryBrokenWhite, true
	case "solid_yellow":
		return BoundarySolidYellow, true
	default:
		return BoundaryUnspecified, false
	}
}

// WaypointType tags which container owns a Waypoint.
type WaypointType int

const (
	WaypointLane WaypointType = iota + 1
	WaypointPerimeter
	WaypointSpot
)

// Waypoint is a geographic point. Exactly one of ParentLane, ParentZone,
// ParentSpot is set, selected by Type. IsStop is only meaningful for
// WaypointLane; Exits is only populated for WaypointLane and
// WaypointPerimeter (spots carry no exits in the source format).
type Waypoint struct {
	ID     int
	Type   WaypointType
	Lat    float64
	Lon    float64
	IsStop bool
	Exits  []*Waypoint

	ParentLane *Lane
	ParentZone *Zone
	ParentSpot *Spot
}

// Lane is owned by exactly one Segment.
type Lane struct {
	ID            int
	LaneWidth     *int // nil means unset
	LeftBoundary  BoundaryType
	RightBoundary BoundaryType
	Waypoints     []Waypoint

	ParentSegment *Segment
}

// Segment is owned by exactly one RouteNetwork.
type Segment struct {
	ID       int
	Name     string
	Lanes    []Lane
	MinSpeed int
	MaxSpeed int
}

// Spot is a two-waypoint parking location, owned by exactly one Zone.
type Spot struct {
	ID           int
	SpotWidth    *int // nil means unset
	Waypoints    [2]Waypoint
	CheckpointID *int // nil means the spot is not a checkpoint

	ParentZone *Zone
}

// Zone is owned by exactly one RouteNetwork.
type Zone struct {
	ID              int
	Name            string
	PerimeterPoints []Waypoint
	Spots           []Spot
	MinSpeed        int
	MaxSpeed        int
}

// Checkpoint is a uniquely-id'd waypoint tag, owned by the RouteNetwork.
type Checkpoint struct {
	ID       int
	Waypoint *Waypoint
}

// Obstacle is a plain record not referenced by any graph edge.
type Obstacle struct {
	ID     int
	Lat    float64
	Lon    float64
	W1     float64
	W2     float64
	Height float64
	Orient float64
}

// RouteNetwork is the root of the static road/zone topology.
type RouteNetwork struct {
	Name            string
	FormatVersion   string
	CreationDate    string
	Valid           bool
	Segments        []Segment
	Zones           []Zone
	Obstacles       []Obstacle
	Checkpoints     []Checkpoint
	MaxCheckpointID int
}

// Speedlimit is a (checkpoint id, min, max) record from a Mission's
// speed_limits section, before it has been projected onto a route region.
type Speedlimit struct {
	ID       int
	MinSpeed int
	MaxSpeed int
}

// Mission is an ordered checkpoint list plus speed bounds over a route.
// CheckpointIDs holds the ids exactly as declared in the MDF; Checkpoints
// holds the compacted list of resolved waypoints produced by
// LinkMissionRoute (populated only after a successful/partial link).
type Mission struct {
	Name          string
	RouteName     string
	FormatVersion string
	CreationDate  string
	Valid         bool
	CheckpointIDs []int
	Checkpoints   []*Waypoint
	SpeedLimits   []Speedlimit

	Route *RouteNetwork
}

// WaypointString renders the dotted identifier of w using its Type and
// parent back-reference: "seg.lane.pt" for a lane waypoint, "zone.0.pt" for
// a perimeter point, "zone.spot.pt" for a spot waypoint.
func WaypointString(w *Waypoint) string {
	switch w.Type {
	case WaypointLane:
		return fmt.Sprintf("%d.%d.%d", w.ParentLane.ParentSegment.ID, w.ParentLane.ID, w.ID)
	case WaypointPerimeter:
		return fmt.Sprintf("%d.0.%d", w.ParentZone.ID, w.ID)
	case WaypointSpot:
		return fmt.Sprintf("%d.%d.%d", w.ParentSpot.ParentZone.ID, w.ParentSpot.ID, w.ID)
	default:
		return ""
	}
}
