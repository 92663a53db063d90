// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package rnd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oygx210/navguide/pkg/schema"
)

const minimalRoute = `RNDF_name	testroute
num_segments	1
num_zones	0
format_version	1.0
creation_date	2024-01-01
segment	1
num_lanes	1
segment_name	mainseg
lane	1.1
num_waypoints	2
1.1.1	37.100000	-122.100000
1.1.2	37.200000	-122.200000
end_lane
end_segment
end_file
`

func TestParseMinimalRoute(t *testing.T) {
	route, err := rndParse(t, minimalRoute)
	require.NoError(t, err)
	require.True(t, route.Valid)
	require.Equal(t, "testroute", route.Name)
	require.Len(t, route.Segments, 1)
	require.Len(t, route.Segments[0].Lanes, 1)
	require.Len(t, route.Segments[0].Lanes[0].Waypoints, 2)
	require.Equal(t, 37.2, route.Segments[0].Lanes[0].Waypoints[1].Lat)
}

const crossSegmentExitRoute = `RNDF_name	crossroute
num_segments	2
num_zones	0
segment	1
num_lanes	1
lane	1.1
num_waypoints	1
exit	1.1.1	2.1.1
1.1.1	37.000000	-122.000000
end_lane
end_segment
segment	2
num_lanes	1
lane	2.1
num_waypoints	1
2.1.1	38.000000	-123.000000
end_lane
end_segment
end_file
`

func TestParseCrossSegmentExit(t *testing.T) {
	route, err := rndParse(t, crossSegmentExitRoute)
	require.NoError(t, err)

	from := &route.Segments[0].Lanes[0].Waypoints[0]
	require.Len(t, from.Exits, 1)
	require.Equal(t, "2.1.1", schema.WaypointString(from.Exits[0]))
}

const zoneRoute = `RNDF_name	zoneroute
num_segments	0
num_zones	1
zone	9
num_spots	1
zone_name	lot
perimeter	9.0
num_perimeterpoints	3
9.0.1	1.000000	1.000000
9.0.2	1.000100	1.000000
9.0.3	1.000100	1.000100
end_perimeter
spot	9.1
checkpoint	9.1.2	42
9.1.1	1.000200	1.000200
9.1.2	1.000300	1.000300
end_spot
end_zone
end_file
`

func TestParseZoneSpotCheckpoint(t *testing.T) {
	route, err := rndParse(t, zoneRoute)
	require.NoError(t, err)
	require.Len(t, route.Zones, 1)
	require.Len(t, route.Zones[0].PerimeterPoints, 3)
	require.Len(t, route.Zones[0].Spots, 1)

	spot := &route.Zones[0].Spots[0]
	require.NotNil(t, spot.CheckpointID)
	require.Equal(t, 42, *spot.CheckpointID)

	cp := schema.FindCheckpointByID(route, 42)
	require.NotNil(t, cp)
	require.Equal(t, "9.1.2", schema.WaypointString(cp.Waypoint))
	require.Equal(t, 42, route.MaxCheckpointID)
}

const tooFewSegmentsRoute = `RNDF_name	badroute
num_segments	2
num_zones	0
segment	1
num_lanes	0
end_segment
end_file
`

func TestParseSegmentCountMismatch(t *testing.T) {
	_, err := rndParse(t, tooFewSegmentsRoute)
	require.Error(t, err)

	perr, ok := err.(*schema.ParseError)
	require.True(t, ok, "expected *schema.ParseError, got %T", err)
	require.Equal(t, schema.KindSchema, perr.Kind)
}

func rndParse(t *testing.T, text string) (*schema.RouteNetwork, error) {
	t.Helper()
	return Parse(strings.NewReader(text))
}
