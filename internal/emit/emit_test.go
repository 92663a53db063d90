// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oygx210/navguide/internal/mission"
	"github.com/oygx210/navguide/internal/rnd"
	"github.com/oygx210/navguide/pkg/schema"
)

const roundTripRoute = `RNDF_name	roundtrip
num_segments	1
num_zones	1
format_version	1.0
creation_date	2024-01-01
segment	1
num_lanes	1
segment_name	mainseg
lane	1.1
lane_width	2
left_boundary	double_yellow
checkpoint	1.1.1	1
stop	1.1.2
exit	1.1.2	1.1.1
num_waypoints	2
1.1.1	37.100000	-122.100000
1.1.2	37.200000	-122.200000
end_lane
end_segment
zone	9
num_spots	1
zone_name	lot
perimeter	9.0
num_perimeterpoints	2
9.0.1	1.000000	1.000000
9.0.2	1.000100	1.000000
end_perimeter
spot	9.1
spot_width	3
checkpoint	9.1.2	2
9.1.1	1.000200	1.000200
9.1.2	1.000300	1.000300
end_spot
end_zone
num_obstacles	1
5 10.000000 20.000000 1.000000 1.000000 2.000000 0.500000
end_file
`

func TestEmitRouteRoundTrip(t *testing.T) {
	route, err := rnd.Parse(strings.NewReader(roundTripRoute))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EmitRoute(&buf, route))

	reparsed, err := rnd.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	require.Equal(t, route.Name, reparsed.Name)
	require.Equal(t, route.FormatVersion, reparsed.FormatVersion)
	require.Equal(t, len(route.Segments), len(reparsed.Segments))
	require.Equal(t, len(route.Zones), len(reparsed.Zones))
	require.Equal(t, len(route.Obstacles), len(reparsed.Obstacles))
	require.Equal(t, len(route.Checkpoints), len(reparsed.Checkpoints))
	require.Equal(t, route.MaxCheckpointID, reparsed.MaxCheckpointID)

	origLane := &route.Segments[0].Lanes[0]
	gotLane := &reparsed.Segments[0].Lanes[0]
	require.Equal(t, *origLane.LaneWidth, *gotLane.LaneWidth)
	require.Equal(t, origLane.LeftBoundary, gotLane.LeftBoundary)
	require.True(t, gotLane.Waypoints[1].IsStop)
	require.Len(t, gotLane.Waypoints[1].Exits, 1)
	require.Equal(t, schema.WaypointString(origLane.Waypoints[1].Exits[0]), schema.WaypointString(gotLane.Waypoints[1].Exits[0]))

	origSpot := &route.Zones[0].Spots[0]
	gotSpot := &reparsed.Zones[0].Spots[0]
	require.Equal(t, *origSpot.SpotWidth, *gotSpot.SpotWidth)
	require.Equal(t, *origSpot.CheckpointID, *gotSpot.CheckpointID)
}

const roundTripMission = `MDF_name	roundtrip
RNDF	roundtrip
checkpoints
num_checkpoints	2
1
2
end_checkpoints
speed_limits
num_speed_limits	1
1	5	15
end_speed_limits
end_file
`

func TestEmitMissionRoundTrip(t *testing.T) {
	m, err := mission.ParseMission(strings.NewReader(roundTripMission))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EmitMission(&buf, m))

	reparsed, err := mission.ParseMission(strings.NewReader(buf.String()))
	require.NoError(t, err)

	require.Equal(t, m.Name, reparsed.Name)
	require.Equal(t, m.RouteName, reparsed.RouteName)
	require.Equal(t, m.CheckpointIDs, reparsed.CheckpointIDs)
	require.Equal(t, m.SpeedLimits, reparsed.SpeedLimits)
}
