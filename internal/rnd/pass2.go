// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package rnd

import (
	"strconv"
	"strings"

	"github.com/oygx210/navguide/internal/rndio"
	"github.com/oygx210/navguide/pkg/schema"
)

// parsePass2 walks the same structural skeleton as Pass 1 but only reacts
// to checkpoint, stop, and exit directives, since every referent now
// exists.
func (p *parser) parsePass2() error {
	segmentNum := 0
	zoneNum := 0

	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of route network definition file")
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]

		switch cmd {
		case "segment":
			if segmentNum >= len(p.route.Segments) {
				return p.errf(schema.KindSchema, "unexpected segment in pass 2")
			}
			if err := p.parseSegmentPass2(&p.route.Segments[segmentNum]); err != nil {
				return err
			}
			segmentNum++
		case "zone":
			if zoneNum >= len(p.route.Zones) {
				return p.errf(schema.KindSchema, "unexpected zone in pass 2")
			}
			if err := p.parseZonePass2(&p.route.Zones[zoneNum]); err != nil {
				return err
			}
			zoneNum++
		case "end_file":
			return nil
		default:
			// everything else (headers, num_obstacles + its records) was
			// already validated in pass 1; skip it here.
		}
	}
}

func (p *parser) parseSegmentPass2(seg *schema.Segment) error {
	laneNum := 0
	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in segment %d (pass 2)", seg.ID)
		}
		cmd := rndio.SplitFields(line)[0]

		switch cmd {
		case "lane":
			if laneNum >= len(seg.Lanes) {
				return p.errf(schema.KindSchema, "unexpected lane in segment %d (pass 2)", seg.ID)
			}
			if err := p.parseLanePass2(&seg.Lanes[laneNum]); err != nil {
				return err
			}
			laneNum++
		case "end_segment":
			return nil
		default:
			// segment_name/num_lanes already handled in pass 1
		}
	}
}

func (p *parser) parseLanePass2(lane *schema.Lane) error {
	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in lane %d.%d (pass 2)", lane.ParentSegment.ID, lane.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		rest := strings.Join(fields[1:], " ")

		switch cmd {
		case "checkpoint":
			segID, laneID, ptID, checkID, ok := parseTripleAndInt(rest)
			if !ok || segID != lane.ParentSegment.ID || laneID != lane.ID {
				return p.errf(schema.KindSyntax, "invalid checkpoint in lane %d.%d", lane.ParentSegment.ID, lane.ID)
			}
			waypoint := schema.FindLocalWaypointByID(lane.Waypoints, ptID)
			if waypoint == nil {
				return p.errf(schema.KindReference, "unknown waypoint %d.%d.%d", segID, laneID, ptID)
			}
			schema.AddCheckpoint(p.route, checkID, waypoint)
		case "stop":
			segID, laneID, ptID, ok := parseTriple(rest)
			if !ok || segID != lane.ParentSegment.ID || laneID != lane.ID {
				return p.errf(schema.KindSyntax, "invalid stop in lane %d.%d", lane.ParentSegment.ID, lane.ID)
			}
			waypoint := schema.FindLocalWaypointByID(lane.Waypoints, ptID)
			if waypoint == nil {
				return p.errf(schema.KindReference, "unknown waypoint %d.%d.%d", segID, laneID, ptID)
			}
			waypoint.IsStop = true
		case "exit":
			segID, laneID, ptID, entrySeg, entryLane, entryPt, ok := parseTripleAndTriple(rest)
			if !ok || segID != lane.ParentSegment.ID || laneID != lane.ID {
				return p.errf(schema.KindSyntax, "invalid exit in lane %d.%d", lane.ParentSegment.ID, lane.ID)
			}
			waypoint := schema.FindLocalWaypointByID(lane.Waypoints, ptID)
			if waypoint == nil {
				return p.errf(schema.KindReference, "unknown waypoint %d.%d.%d", segID, laneID, ptID)
			}
			entry := schema.FindWaypointByID(p.route, entrySeg, entryLane, entryPt)
			if entry == nil {
				return p.errf(schema.KindReference, "unknown waypoint %d.%d.%d", entrySeg, entryLane, entryPt)
			}
			schema.AddExit(waypoint, entry)
		case "end_lane":
			return nil
		}
	}
}

func (p *parser) parseZonePass2(zone *schema.Zone) error {
	spotNum := 0
	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in zone %d (pass 2)", zone.ID)
		}
		cmd := rndio.SplitFields(line)[0]

		switch cmd {
		case "spot":
			if spotNum >= len(zone.Spots) {
				return p.errf(schema.KindSchema, "unexpected spot in zone %d (pass 2)", zone.ID)
			}
			if err := p.parseSpotPass2(&zone.Spots[spotNum]); err != nil {
				return err
			}
			spotNum++
		case "perimeter":
			if err := p.parsePerimeterPass2(zone); err != nil {
				return err
			}
		case "end_zone":
			return nil
		}
	}
}

func (p *parser) parseSpotPass2(spot *schema.Spot) error {
	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in spot %d.%d (pass 2)", spot.ParentZone.ID, spot.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		rest := strings.Join(fields[1:], " ")

		switch cmd {
		case "checkpoint":
			zoneID, spotID, ptID, checkID, ok := parseTripleAndInt(rest)
			if !ok || zoneID != spot.ParentZone.ID || spotID != spot.ID {
				return p.errf(schema.KindSyntax, "invalid checkpoint in spot %d.%d", spot.ParentZone.ID, spot.ID)
			}
			var waypoint *schema.Waypoint
			if spot.Waypoints[0].ID == ptID {
				waypoint = &spot.Waypoints[0]
			} else if spot.Waypoints[1].ID == ptID {
				waypoint = &spot.Waypoints[1]
			}
			if waypoint == nil {
				return p.errf(schema.KindReference, "unknown waypoint %d.%d.%d", zoneID, spotID, ptID)
			}
			schema.AddCheckpoint(p.route, checkID, waypoint)
			id := checkID
			spot.CheckpointID = &id
		case "end_spot":
			return nil
		}
	}
}

func (p *parser) parsePerimeterPass2(zone *schema.Zone) error {
	for {
		line, ok := p.r.NextLine()
		if !ok {
			return p.errf(schema.KindIO, "premature end of file in perimeter of zone %d (pass 2)", zone.ID)
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		rest := strings.Join(fields[1:], " ")

		switch cmd {
		case "exit":
			zoneID, ptID, entrySeg, entryLane, entryPt, ok := parseDoubleAndTriple(rest)
			if !ok || zoneID != zone.ID {
				return p.errf(schema.KindSyntax, "invalid exit in zone %d", zone.ID)
			}
			waypoint := schema.FindLocalWaypointByID(zone.PerimeterPoints, ptID)
			if waypoint == nil {
				return p.errf(schema.KindReference, "unknown perimeter point %d.0.%d", zoneID, ptID)
			}
			entry := schema.FindWaypointByID(p.route, entrySeg, entryLane, entryPt)
			if entry == nil {
				return p.errf(schema.KindReference, "unknown waypoint %d.%d.%d", entrySeg, entryLane, entryPt)
			}
			schema.AddExit(waypoint, entry)
		case "end_perimeter":
			return nil
		}
	}
}

// parseTriple parses "a.b.c" (possibly with trailing whitespace already
// trimmed) into three ints.
func parseTriple(s string) (a, b, c int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return 0, 0, 0, false
	}
	ids, good := splitDotted(fields[0], 3)
	if !good {
		return 0, 0, 0, false
	}
	return ids[0], ids[1], ids[2], true
}

// parseTripleAndInt parses "a.b.c N".
func parseTripleAndInt(s string) (a, b, c, n int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, 0, 0, false
	}
	ids, good := splitDotted(fields[0], 3)
	if !good {
		return 0, 0, 0, 0, false
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, 0, false
	}
	return ids[0], ids[1], ids[2], v, true
}

// parseTripleAndTriple parses "a.b.c d.e.f".
func parseTripleAndTriple(s string) (a, b, c, d, e, f int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, 0, 0, 0, 0, false
	}
	left, good1 := splitDotted(fields[0], 3)
	right, good2 := splitDotted(fields[1], 3)
	if !good1 || !good2 {
		return 0, 0, 0, 0, 0, 0, false
	}
	return left[0], left[1], left[2], right[0], right[1], right[2], true
}

// parseDoubleAndTriple parses "a.0.b c.d.e" (a perimeter point followed by
// an exit target).
func parseDoubleAndTriple(s string) (a, b, c, d, e int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, 0, 0, 0, false
	}
	left, good1 := splitDotted(fields[0], 3)
	right, good2 := splitDotted(fields[1], 3)
	if !good1 || !good2 || left[1] != 0 {
		return 0, 0, 0, 0, 0, false
	}
	return left[0], left[2], right[0], right[1], right[2], true
}
