// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package emit writes a RouteNetwork or Mission back out in the RND/MD
// wire grammar (C5), the symmetric counterpart to internal/rnd and
// internal/mission: re-parsing an emitted file reproduces the same graph,
// up to the order of a waypoint's exits.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/oygx210/navguide/pkg/schema"
)

// EmitRoute writes route to w in RND format.
func EmitRoute(w io.Writer, route *schema.RouteNetwork) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "RNDF_name\t%s\n", route.Name)
	fmt.Fprintf(bw, "num_segments\t%d\n", len(route.Segments))
	fmt.Fprintf(bw, "num_zones\t%d\n", len(route.Zones))
	if route.FormatVersion != "" {
		fmt.Fprintf(bw, "format_version\t%s\n", route.FormatVersion)
	}
	if route.CreationDate != "" {
		fmt.Fprintf(bw, "creation_date\t%s\n", route.CreationDate)
	}

	// Only lane waypoints carry a separate "checkpoint" directive; a spot's
	// checkpoint is recorded on the Spot itself (spot.CheckpointID) and a
	// perimeter point is never a checkpoint in this format.
	laneCheckpoints := make(map[*schema.Waypoint][]int)
	for _, cp := range route.Checkpoints {
		if cp.Waypoint.Type == schema.WaypointLane {
			laneCheckpoints[cp.Waypoint] = append(laneCheckpoints[cp.Waypoint], cp.ID)
		}
	}

	for i := range route.Segments {
		emitSegment(bw, &route.Segments[i], laneCheckpoints)
	}
	for i := range route.Zones {
		emitZone(bw, &route.Zones[i])
	}

	if len(route.Obstacles) > 0 {
		fmt.Fprintf(bw, "num_obstacles\t%d\n", len(route.Obstacles))
		for _, o := range route.Obstacles {
			fmt.Fprintf(bw, "%d %f %f %f %f %f %f\n", o.ID, o.Lat, o.Lon, o.W1, o.W2, o.Height, o.Orient)
		}
	}

	fmt.Fprintf(bw, "end_file\n")
	return bw.Flush()
}

func emitSegment(bw *bufio.Writer, seg *schema.Segment, laneCheckpoints map[*schema.Waypoint][]int) {
	fmt.Fprintf(bw, "segment\t%d\n", seg.ID)
	fmt.Fprintf(bw, "num_lanes\t%d\n", len(seg.Lanes))
	if seg.Name != "" {
		fmt.Fprintf(bw, "segment_name\t%s\n", seg.Name)
	}
	for i := range seg.Lanes {
		emitLane(bw, &seg.Lanes[i], laneCheckpoints)
	}
	fmt.Fprintf(bw, "end_segment\n")
}

func emitLane(bw *bufio.Writer, lane *schema.Lane, laneCheckpoints map[*schema.Waypoint][]int) {
	segID := lane.ParentSegment.ID
	fmt.Fprintf(bw, "lane\t%d.%d\n", segID, lane.ID)
	fmt.Fprintf(bw, "num_waypoints\t%d\n", len(lane.Waypoints))
	if lane.LaneWidth != nil {
		fmt.Fprintf(bw, "lane_width\t%d\n", *lane.LaneWidth)
	}
	if lane.LeftBoundary != schema.BoundaryUnspecified {
		fmt.Fprintf(bw, "left_boundary\t%s\n", lane.LeftBoundary)
	}
	if lane.RightBoundary != schema.BoundaryUnspecified {
		fmt.Fprintf(bw, "right_boundary\t%s\n", lane.RightBoundary)
	}

	for i := range lane.Waypoints {
		w := &lane.Waypoints[i]
		for _, cp := range laneCheckpoints[w] {
			fmt.Fprintf(bw, "checkpoint\t%s\t%d\n", schema.WaypointString(w), cp)
		}
	}
	for i := range lane.Waypoints {
		if lane.Waypoints[i].IsStop {
			fmt.Fprintf(bw, "stop\t%d.%d.%d\n", segID, lane.ID, lane.Waypoints[i].ID)
		}
	}
	for i := range lane.Waypoints {
		w := &lane.Waypoints[i]
		for _, entry := range w.Exits {
			fmt.Fprintf(bw, "exit\t%d.%d.%d\t%s\n", segID, lane.ID, w.ID, schema.WaypointString(entry))
		}
	}
	for i := range lane.Waypoints {
		w := &lane.Waypoints[i]
		fmt.Fprintf(bw, "%d.%d.%d\t%.6f\t%.6f\n", segID, lane.ID, w.ID, w.Lat, w.Lon)
	}
	fmt.Fprintf(bw, "end_lane\n")
}

func emitZone(bw *bufio.Writer, zone *schema.Zone) {
	fmt.Fprintf(bw, "zone\t%d\n", zone.ID)
	fmt.Fprintf(bw, "num_spots\t%d\n", len(zone.Spots))
	if zone.Name != "" {
		fmt.Fprintf(bw, "zone_name\t%s\n", zone.Name)
	}

	if len(zone.PerimeterPoints) > 0 {
		fmt.Fprintf(bw, "perimeter\t%d.0\n", zone.ID)
		fmt.Fprintf(bw, "num_perimeterpoints\t%d\n", len(zone.PerimeterPoints))
		for i := range zone.PerimeterPoints {
			w := &zone.PerimeterPoints[i]
			for _, entry := range w.Exits {
				fmt.Fprintf(bw, "exit\t%d.0.%d\t%s\n", zone.ID, w.ID, schema.WaypointString(entry))
			}
		}
		for i := range zone.PerimeterPoints {
			w := &zone.PerimeterPoints[i]
			fmt.Fprintf(bw, "%d.0.%d\t%.6f\t%.6f\n", zone.ID, w.ID, w.Lat, w.Lon)
		}
		fmt.Fprintf(bw, "end_perimeter\n")
	}

	for i := range zone.Spots {
		emitSpot(bw, &zone.Spots[i])
	}
	fmt.Fprintf(bw, "end_zone\n")
}

func emitSpot(bw *bufio.Writer, spot *schema.Spot) {
	zoneID := spot.ParentZone.ID
	fmt.Fprintf(bw, "spot\t%d.%d\n", zoneID, spot.ID)
	if spot.SpotWidth != nil {
		fmt.Fprintf(bw, "spot_width\t%d\n", *spot.SpotWidth)
	}
	if spot.CheckpointID != nil {
		fmt.Fprintf(bw, "checkpoint\t%d.%d.2\t%d\n", zoneID, spot.ID, *spot.CheckpointID)
	}
	fmt.Fprintf(bw, "%d.%d.1\t%.6f\t%.6f\n", zoneID, spot.ID, spot.Waypoints[0].Lat, spot.Waypoints[0].Lon)
	fmt.Fprintf(bw, "%d.%d.2\t%.6f\t%.6f\n", zoneID, spot.ID, spot.Waypoints[1].Lat, spot.Waypoints[1].Lon)
	fmt.Fprintf(bw, "end_spot\n")
}

// EmitMission writes mission to w in MD format.
func EmitMission(w io.Writer, mission *schema.Mission) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "MDF_name\t%s\n", mission.Name)
	fmt.Fprintf(bw, "RNDF\t%s\n", mission.RouteName)
	if mission.FormatVersion != "" {
		fmt.Fprintf(bw, "format_version\t%s\n", mission.FormatVersion)
	}
	if mission.CreationDate != "" {
		fmt.Fprintf(bw, "creation_date\t%s\n", mission.CreationDate)
	}

	fmt.Fprintf(bw, "checkpoints\n")
	fmt.Fprintf(bw, "num_checkpoints\t%d\n", len(mission.CheckpointIDs))
	for _, id := range mission.CheckpointIDs {
		fmt.Fprintf(bw, "%d\n", id)
	}
	fmt.Fprintf(bw, "end_checkpoints\n")

	fmt.Fprintf(bw, "speed_limits\n")
	fmt.Fprintf(bw, "num_speed_limits\t%d\n", len(mission.SpeedLimits))
	for _, sl := range mission.SpeedLimits {
		fmt.Fprintf(bw, "%d\t%d\t%d\n", sl.ID, sl.MinSpeed, sl.MaxSpeed)
	}
	fmt.Fprintf(bw, "end_speed_limits\n")

	fmt.Fprintf(bw, "end_file\n")
	return bw.Flush()
}
