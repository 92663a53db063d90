// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

import "testing"

func buildTestRoute() *RouteNetwork {
	route := &RouteNetwork{
		Name:     "test",
		Segments: make([]Segment, 1),
		Zones:    make([]Zone, 1),
	}

	seg := &route.Segments[0]
	seg.ID = 1
	seg.Lanes = make([]Lane, 1)
	lane := &seg.Lanes[0]
	lane.ID = 1
	lane.ParentSegment = seg
	lane.Waypoints = make([]Waypoint, 2)
	for i := range lane.Waypoints {
		w := &lane.Waypoints[i]
		w.ID = i + 1
		w.Type = WaypointLane
		w.ParentLane = lane
	}

	zone := &route.Zones[0]
	zone.ID = 2
	zone.PerimeterPoints = make([]Waypoint, 1)
	zone.PerimeterPoints[0] = Waypoint{ID: 1, Type: WaypointPerimeter, ParentZone: zone}
	zone.Spots = make([]Spot, 1)
	spot := &zone.Spots[0]
	spot.ID = 1
	spot.ParentZone = zone
	spot.Waypoints[0] = Waypoint{ID: 1, Type: WaypointSpot, ParentSpot: spot}
	spot.Waypoints[1] = Waypoint{ID: 2, Type: WaypointSpot, ParentSpot: spot}

	return route
}

func TestFindWaypointByIDLane(t *testing.T) {
	route := buildTestRoute()
	w := FindWaypointByID(route, 1, 1, 2)
	if w == nil {
		t.Fatal("expected to find lane waypoint 1.1.2")
	}
	if got := WaypointString(w); got != "1.1.2" {
		t.Errorf("WaypointString = %q, want 1.1.2", got)
	}
}

func TestFindWaypointByIDPerimeter(t *testing.T) {
	route := buildTestRoute()
	w := FindWaypointByID(route, 2, 0, 1)
	if w == nil {
		t.Fatal("expected to find perimeter point 2.0.1")
	}
	if got := WaypointString(w); got != "2.0.1" {
		t.Errorf("WaypointString = %q, want 2.0.1", got)
	}
}

func TestFindWaypointByIDSpot(t *testing.T) {
	route := buildTestRoute()
	w := FindWaypointByID(route, 2, 1, 2)
	if w == nil {
		t.Fatal("expected to find spot waypoint 2.1.2")
	}
	if got := WaypointString(w); got != "2.1.2" {
		t.Errorf("WaypointString = %q, want 2.1.2", got)
	}
}

func TestFindWaypointByIDMisses(t *testing.T) {
	route := buildTestRoute()
	if w := FindWaypointByID(route, 1, 9, 1); w != nil {
		t.Errorf("expected nil for unknown lane, got %v", w)
	}
	if w := FindWaypointByID(route, 9, 1, 1); w != nil {
		t.Errorf("expected nil for unknown segment/zone, got %v", w)
	}
}

func TestAddCheckpointTracksTrueMax(t *testing.T) {
	route := buildTestRoute()
	w := &route.Segments[0].Lanes[0].Waypoints[0]

	AddCheckpoint(route, 5, w)
	AddCheckpoint(route, 2, w)
	AddCheckpoint(route, 9, w)
	AddCheckpoint(route, 3, w)

	if route.MaxCheckpointID != 9 {
		t.Errorf("MaxCheckpointID = %d, want 9 (true running max, not last write)", route.MaxCheckpointID)
	}
	if len(route.Checkpoints) != 4 {
		t.Errorf("len(Checkpoints) = %d, want 4", len(route.Checkpoints))
	}
}

func TestAddExit(t *testing.T) {
	route := buildTestRoute()
	from := &route.Segments[0].Lanes[0].Waypoints[0]
	to := &route.Segments[0].Lanes[0].Waypoints[1]

	AddExit(from, to)
	if len(from.Exits) != 1 || from.Exits[0] != to {
		t.Errorf("AddExit did not record exit edge")
	}
}
