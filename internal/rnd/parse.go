// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rnd implements the two-pass Route Network Definition parser (C3).
// Pass 1 materializes every segment, zone, lane, spot, perimeter, and
// waypoint along with its coordinates; Pass 2 rewinds the stream and
// attaches checkpoints, stop flags, and exit edges now that every possible
// referent exists. Grounded on the scope-stack structure of
// parse_route_network/parse_segment/.../parse_route_pass2 in the original
// mission_parse.c.
package rnd

import (
	"io"
	"strconv"
	"strings"

	"github.com/oygx210/navguide/internal/rndio"
	"github.com/oygx210/navguide/pkg/rndlog"
	"github.com/oygx210/navguide/pkg/schema"
)

type parser struct {
	r     *rndio.Reader
	route *schema.RouteNetwork
}

// Parse reads an RND file from r and returns the populated RouteNetwork.
// On a SyntaxError/SchemaError/ReferenceError/IoError the returned route has
// Valid == false and a partial model; callers must not use it further. If r
// itself cannot be read, the returned route is nil.
func Parse(r io.Reader) (*schema.RouteNetwork, error) {
	rd, err := rndio.NewReader(r)
	if err != nil {
		return nil, schema.NewParseError(schema.KindIO, 0, "%s", err)
	}

	route := &schema.RouteNetwork{}
	p := &parser{r: rd, route: route}

	if err := p.parsePass1(); err != nil {
		return route, err
	}

	rd.Reset()
	if err := p.parsePass2(); err != nil {
		return route, err
	}

	route.Valid = true
	return route, nil
}

func (p *parser) errf(kind schema.ErrorKind, format string, args ...interface{}) error {
	return schema.NewParseError(kind, p.r.Line(), format, args...)
}

// splitDotted splits s on '.' into exactly n integers.
func splitDotted(s string, n int) ([]int, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func (p *parser) parsePass1() error {
	segmentNum := 0
	zoneNum := 0

	for {
		line, ok := p.r.NextLine()
		if !ok {
			break
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "RNDF_name":
			if len(args) == 0 {
				rndlog.Warn("RNDF_name is empty")
			} else {
				p.route.Name = args[0]
			}
		case "num_segments":
			if len(args) == 0 || p.route.Segments != nil {
				return p.errf(schema.KindSchema, "invalid num_segments")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid num_segments %q", args[0])
			}
			p.route.Segments = make([]schema.Segment, n)
		case "num_zones":
			if len(args) == 0 || p.route.Zones != nil {
				return p.errf(schema.KindSchema, "invalid num_zones")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid num_zones %q", args[0])
			}
			p.route.Zones = make([]schema.Zone, n)
		case "format_version":
			if len(args) == 0 {
				rndlog.Warn("format_version is empty")
			} else {
				p.route.FormatVersion = args[0]
			}
		case "creation_date":
			if len(args) == 0 {
				rndlog.Warn("creation_date is empty")
			} else {
				p.route.CreationDate = args[0]
			}
		case "segment":
			if len(args) == 0 || segmentNum >= len(p.route.Segments) {
				return p.errf(schema.KindSchema, "invalid segment (%d >= %d)", segmentNum, len(p.route.Segments))
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid segment id %q", args[0])
			}
			seg := &p.route.Segments[segmentNum]
			seg.ID = id
			if err := p.parseSegment(seg); err != nil {
				return err
			}
			segmentNum++
		case "zone":
			if len(args) == 0 || zoneNum >= len(p.route.Zones) {
				return p.errf(schema.KindSchema, "invalid zone")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid zone id %q", args[0])
			}
			zone := &p.route.Zones[zoneNum]
			zone.ID = id
			if err := p.parseZone(zone); err != nil {
				return err
			}
			zoneNum++
		case "num_obstacles":
			if len(args) == 0 {
				return p.errf(schema.KindSyntax, "invalid number of obstacles")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid number of obstacles %q", args[0])
			}
			obstacles := make([]schema.Obstacle, 0, n)
			for i := 0; i < n; i++ {
				o, err := p.parseObstacle()
				if err != nil {
					return err
				}
				obstacles = append(obstacles, o)
			}
			p.route.Obstacles = obstacles
		case "end_file":
			if segmentNum != len(p.route.Segments) {
				return p.errf(schema.KindSchema, "route definition has too few segments")
			}
			if zoneNum != len(p.route.Zones) {
				return p.errf(schema.KindSchema, "route definition has too few zones")
			}
			return nil
		default:
			return p.errf(schema.KindSyntax, "unknown command %q", cmd)
		}
	}

	return p.errf(schema.KindIO, "premature end of route network definition file")
}

func (p *parser) parseObstacle() (schema.Obstacle, error) {
	line, ok := p.r.NextLine()
	if !ok {
		return schema.Obstacle{}, p.errf(schema.KindIO, "premature end of file reading obstacle")
	}
	fields := rndio.SplitFields(line)
	if len(fields) != 7 {
		return schema.Obstacle{}, p.errf(schema.KindSyntax, "invalid obstacle record %q", line)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return schema.Obstacle{}, p.errf(schema.KindSyntax, "invalid obstacle id %q", fields[0])
	}
	nums := make([]float64, 6)
	for i := 0; i < 6; i++ {
		v, ok := parseFloat(fields[i+1])
		if !ok {
			return schema.Obstacle{}, p.errf(schema.KindSyntax, "invalid obstacle field %q", fields[i+1])
		}
		nums[i] = v
	}
	return schema.Obstacle{ID: id, Lat: nums[0], Lon: nums[1], W1: nums[2], W2: nums[3], Height: nums[4], Orient: nums[5]}, nil
}

func (p *parser) parseSegment(seg *schema.Segment) error {
	laneNum := 0

	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in segment %d", seg.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "segment_name":
			if len(args) == 0 {
				rndlog.Warn("segment_name is empty")
			} else {
				seg.Name = args[0]
			}
		case "num_lanes":
			if len(args) == 0 || seg.Lanes != nil {
				return p.errf(schema.KindSchema, "invalid num_lanes in segment %d", seg.ID)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid num_lanes %q in segment %d", args[0], seg.ID)
			}
			seg.Lanes = make([]schema.Lane, n)
		case "lane":
			if len(args) == 0 || laneNum >= len(seg.Lanes) {
				return p.errf(schema.KindSchema, "invalid lane in segment %d", seg.ID)
			}
			ids, ok := splitDotted(args[0], 2)
			if !ok || ids[0] != seg.ID {
				return p.errf(schema.KindSyntax, "invalid lane id %q in segment %d", args[0], seg.ID)
			}
			lane := &seg.Lanes[laneNum]
			lane.ID = ids[1]
			lane.ParentSegment = seg
			if err := p.parseLane(lane); err != nil {
				return err
			}
			laneNum++
		case "end_segment":
			if laneNum != len(seg.Lanes) {
				return p.errf(schema.KindSchema, "segment %d has too few lanes", seg.ID)
			}
			return nil
		default:
			return p.errf(schema.KindSyntax, "unknown command %q in segment %d", cmd, seg.ID)
		}
	}
}

func (p *parser) parseLane(lane *schema.Lane) error {
	waypointNum := 0
	lane.LeftBoundary = schema.BoundaryUnspecified
	lane.RightBoundary = schema.BoundaryUnspecified

	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in lane %d.%d", lane.ParentSegment.ID, lane.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch {
		case cmd == "num_waypoints":
			if len(args) == 0 || lane.Waypoints != nil {
				return p.errf(schema.KindSchema, "invalid num_waypoints in lane %d.%d", lane.ParentSegment.ID, lane.ID)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid num_waypoints %q in lane %d.%d", args[0], lane.ParentSegment.ID, lane.ID)
			}
			lane.Waypoints = make([]schema.Waypoint, n)
		case cmd == "lane_width":
			if len(args) == 0 {
				return p.errf(schema.KindSyntax, "invalid lane_width in lane %d.%d", lane.ParentSegment.ID, lane.ID)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid lane_width %q in lane %d.%d", args[0], lane.ParentSegment.ID, lane.ID)
			}
			lane.LaneWidth = &n
		case cmd == "left_boundary" || cmd == "right_boundary":
			if len(args) == 0 {
				return p.errf(schema.KindSyntax, "invalid %s in lane %d.%d", cmd, lane.ParentSegment.ID, lane.ID)
			}
			bt, ok := schema.ParseBoundary(args[0])
			if !ok {
				return p.errf(schema.KindSyntax, "invalid boundary %q in lane %d.%d", args[0], lane.ParentSegment.ID, lane.ID)
			}
			if cmd == "left_boundary" {
				lane.LeftBoundary = bt
			} else {
				lane.RightBoundary = bt
			}
		case cmd == "checkpoint" || cmd == "stop" || cmd == "exit":
			// skipped -- processed during pass 2
		case cmd == "end_lane":
			if waypointNum != len(lane.Waypoints) {
				return p.errf(schema.KindSchema, "lane %d.%d has too few waypoints", lane.ParentSegment.ID, lane.ID)
			}
			return nil
		default:
			if ids, ok := splitDotted(cmd, 3); ok {
				if ids[0] != lane.ParentSegment.ID || ids[1] != lane.ID || waypointNum >= len(lane.Waypoints) {
					return p.errf(schema.KindSyntax, "invalid waypoint %q in lane %d.%d", cmd, lane.ParentSegment.ID, lane.ID)
				}
				if len(args) != 2 {
					return p.errf(schema.KindSyntax, "invalid waypoint %q in lane %d.%d", cmd, lane.ParentSegment.ID, lane.ID)
				}
				lat, ok1 := parseFloat(args[0])
				lon, ok2 := parseFloat(args[1])
				if !ok1 || !ok2 {
					return p.errf(schema.KindSyntax, "invalid waypoint %q in lane %d.%d", cmd, lane.ParentSegment.ID, lane.ID)
				}
				w := &lane.Waypoints[waypointNum]
				w.ID = ids[2]
				w.Type = schema.WaypointLane
				w.ParentLane = lane
				w.Lat = lat
				w.Lon = lon
				waypointNum++
				continue
			}
			return p.errf(schema.KindSyntax, "unknown command %q", cmd)
		}
	}
}

func (p *parser) parseZone(zone *schema.Zone) error {
	spotNum := 0

	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in zone %d", zone.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "zone_name":
			if len(args) == 0 {
				rndlog.Warn("zone_name is empty")
			} else {
				zone.Name = args[0]
			}
		case "num_spots":
			if len(args) == 0 || zone.Spots != nil {
				return p.errf(schema.KindSchema, "invalid num_spots in zone %d", zone.ID)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid num_spots %q in zone %d", args[0], zone.ID)
			}
			zone.Spots = make([]schema.Spot, n)
		case "spot":
			if len(args) == 0 || spotNum >= len(zone.Spots) {
				return p.errf(schema.KindSchema, "invalid spot in zone %d", zone.ID)
			}
			ids, ok := splitDotted(args[0], 2)
			if !ok || ids[0] != zone.ID {
				return p.errf(schema.KindSyntax, "invalid spot id %q in zone %d", args[0], zone.ID)
			}
			spot := &zone.Spots[spotNum]
			spot.ID = ids[1]
			spot.ParentZone = zone
			if err := p.parseSpot(spot); err != nil {
				return err
			}
			spotNum++
		case "perimeter":
			if len(args) == 0 || zone.PerimeterPoints != nil {
				return p.errf(schema.KindSchema, "invalid perimeter in zone %d", zone.ID)
			}
			ids, ok := splitDotted(args[0], 2)
			if !ok || ids[0] != zone.ID || ids[1] != 0 {
				return p.errf(schema.KindSyntax, "invalid perimeter id %q in zone %d", args[0], zone.ID)
			}
			if err := p.parsePerimeter(zone); err != nil {
				return err
			}
		case "end_zone":
			if spotNum != len(zone.Spots) {
				return p.errf(schema.KindSchema, "zone %d has too few spots", zone.ID)
			}
			if len(zone.PerimeterPoints) == 0 {
				return p.errf(schema.KindSchema, "zone %d is missing perimeter", zone.ID)
			}
			return nil
		default:
			return p.errf(schema.KindSyntax, "unknown command %q", cmd)
		}
	}
}

func (p *parser) parseSpot(spot *schema.Spot) error {
	waypointNum := 0

	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in spot %d.%d", spot.ParentZone.ID, spot.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch {
		case cmd == "spot_width":
			if len(args) == 0 {
				return p.errf(schema.KindSyntax, "invalid spot_width in spot %d.%d", spot.ParentZone.ID, spot.ID)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid spot_width %q in spot %d.%d", args[0], spot.ParentZone.ID, spot.ID)
			}
			spot.SpotWidth = &n
		case cmd == "checkpoint":
			// skipped -- processed during pass 2
		case cmd == "end_spot":
			if waypointNum != 2 {
				return p.errf(schema.KindSchema, "spot %d.%d has too few waypoints", spot.ParentZone.ID, spot.ID)
			}
			return nil
		default:
			if ids, ok := splitDotted(cmd, 3); ok {
				if ids[0] != spot.ParentZone.ID || ids[1] != spot.ID || waypointNum >= 2 {
					return p.errf(schema.KindSyntax, "invalid waypoint %q in spot %d.%d", cmd, spot.ParentZone.ID, spot.ID)
				}
				if len(args) != 2 {
					return p.errf(schema.KindSyntax, "invalid waypoint %q in spot %d.%d", cmd, spot.ParentZone.ID, spot.ID)
				}
				lat, ok1 := parseFloat(args[0])
				lon, ok2 := parseFloat(args[1])
				if !ok1 || !ok2 {
					return p.errf(schema.KindSyntax, "invalid waypoint %q in spot %d.%d", cmd, spot.ParentZone.ID, spot.ID)
				}
				w := &spot.Waypoints[waypointNum]
				w.ID = ids[2]
				w.Type = schema.WaypointSpot
				w.ParentSpot = spot
				w.Lat = lat
				w.Lon = lon
				waypointNum++
				continue
			}
			return p.errf(schema.KindSyntax, "unknown command %q", cmd)
		}
	}
}

func (p *parser) parsePerimeter(zone *schema.Zone) error {
	declared := -1
	pointNum := 0

	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in perimeter of zone %d", zone.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch {
		case cmd == "num_perimeterpoints":
			if len(args) == 0 || declared >= 0 {
				return p.errf(schema.KindSchema, "invalid num_perimeterpoints in zone %d", zone.ID)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return p.errf(schema.KindSyntax, "invalid num_perimeterpoints %q in zone %d", args[0], zone.ID)
			}
			declared = n
			zone.PerimeterPoints = make([]schema.Waypoint, n)
		case cmd == "exit":
			// skipped -- processed during pass 2
		case cmd == "end_perimeter":
			if pointNum != declared {
				return p.errf(schema.KindSchema, "zone %d has too few perimeter points", zone.ID)
			}
			return nil
		default:
			if ids, ok := splitDotted(cmd, 3); ok {
				if ids[0] != zone.ID || ids[1] != 0 || pointNum >= len(zone.PerimeterPoints) {
					return p.errf(schema.KindSyntax, "invalid perimeter point %q in zone %d", cmd, zone.ID)
				}
				if len(args) != 2 {
					return p.errf(schema.KindSyntax, "invalid perimeter point %q in zone %d", cmd, zone.ID)
				}
				lat, ok1 := parseFloat(args[0])
				lon, ok2 := parseFloat(args[1])
				if !ok1 || !ok2 {
					return p.errf(schema.KindSyntax, "invalid perimeter point %q in zone %d", cmd, zone.ID)
				}
				w := &zone.PerimeterPoints[pointNum]
				w.ID = ids[2]
				w.Type = schema.WaypointPerimeter
				w.ParentZone = zone
				w.Lat = lat
				w.Lon = lon
				pointNum++
				continue
			}
			return p.errf(schema.KindSyntax, "unknown command %q", cmd)
		}
	}
}
