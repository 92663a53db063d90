// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

import "github.com/oygx210/navguide/pkg/rndlog"

// FindSegmentByID performs a linear scan for a Segment with the given id.
func FindSegmentByID(route *RouteNetwork, id int) *Segment {
	for i := range route.Segments {
		if route.Segments[i].ID == id {
			return &route.Segments[i]
		}
	}
	return nil
}

// FindZoneByID performs a linear scan for a Zone with the given id.
func FindZoneByID(route *RouteNetwork, id int) *Zone {
	for i := range route.Zones {
		if route.Zones[i].ID == id {
			return &route.Zones[i]
		}
	}
	return nil
}

// FindCheckpointByID performs a linear scan for a Checkpoint with the given id.
func FindCheckpointByID(route *RouteNetwork, id int) *Checkpoint {
	for i := range route.Checkpoints {
		if route.Checkpoints[i].ID == id {
			return &route.Checkpoints[i]
		}
	}
	return nil
}

// FindLocalWaypointByID scans a single container's waypoint slice, used
// while resolving an identifier whose segment/lane (or zone/spot) has
// already been matched to the enclosing scope.
func FindLocalWaypointByID(waypoints []Waypoint, id int) *Waypoint {
	for i := range waypoints {
		if waypoints[i].ID == id {
			return &waypoints[i]
		}
	}
	return nil
}

// FindWaypointByID resolves a 3-tuple identifier (id1.id2.id3) anywhere in
// the route: a segment/lane/waypoint triple, a zone perimeter point
// (id2 == 0), or a zone/spot/waypoint triple. Diagnostics are logged on
// each partial-match failure, mirroring the original resolver's behavior of
// reporting how far the lookup got before failing.
func FindWaypointByID(route *RouteNetwork, id1, id2, id3 int) *Waypoint {
	if segment := FindSegmentByID(route, id1); segment != nil {
		for i := range segment.Lanes {
			if segment.Lanes[i].ID != id2 {
				continue
			}
			lane := &segment.Lanes[i]
			if w := FindLocalWaypointByID(lane.Waypoints, id3); w != nil {
				return w
			}
			rndlog.Warnf("found segment %d and lane %d but not waypoint %d", segment.ID, lane.ID, id3)
			return nil
		}
		rndlog.Warnf("found segment %d but not lane %d", segment.ID, id2)
		return nil
	}

	if zone := FindZoneByID(route, id1); zone != nil {
		if id2 == 0 {
			if w := FindLocalWaypointByID(zone.PerimeterPoints, id3); w != nil {
				return w
			}
			rndlog.Warnf("found zone %d but not waypoint %d", id1, id3)
			return nil
		}
		for i := range zone.Spots {
			if zone.Spots[i].ID != id2 {
				continue
			}
			spot := &zone.Spots[i]
			if spot.Waypoints[0].ID == id3 {
				return &spot.Waypoints[0]
			}
			if spot.Waypoints[1].ID == id3 {
				return &spot.Waypoints[1]
			}
			rndlog.Warnf("found zone %d and spot %d but not waypoint %d", zone.ID, spot.ID, id3)
			return nil
		}
		rndlog.Warnf("found zone %d but not spot %d", zone.ID, id2)
		return nil
	}

	rndlog.Warnf("did not find segment %d nor zone %d", id1, id1)
	return nil
}

// AddCheckpoint appends a Checkpoint record to route and updates
// MaxCheckpointID. The route's Checkpoints slice grows as checkpoint
// directives are encountered during Pass 2, unlike the pre-sized
// owning-tree slices, since no num_checkpoints count is declared up front.
func AddCheckpoint(route *RouteNetwork, id int, waypoint *Waypoint) {
	route.Checkpoints = append(route.Checkpoints, Checkpoint{ID: id, Waypoint: waypoint})
	if id > route.MaxCheckpointID {
		route.MaxCheckpointID = id
	}
}

// AddExit appends to to from's exit list.
func AddExit(from, to *Waypoint) {
	from.Exits = append(from.Exits, to)
}

// SpeedRegion returns the Segment or Zone a waypoint's speed limits are
// declared on: a lane waypoint's enclosing Segment, a spot waypoint's
// enclosing Zone, or a perimeter point's Zone directly. Exactly one return
// value is non-nil for a waypoint with a known Type.
func SpeedRegion(w *Waypoint) (*Segment, *Zone) {
	switch w.Type {
	case WaypointLane:
		return w.ParentLane.ParentSegment, nil
	case WaypointPerimeter:
		return nil, w.ParentZone
	case WaypointSpot:
		return nil, w.ParentSpot.ParentZone
	default:
		return nil, nil
	}
}
