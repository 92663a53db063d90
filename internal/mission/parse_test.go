// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package mission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oygx210/navguide/internal/rnd"
	"github.com/oygx210/navguide/pkg/schema"
)

const minimalRoute = `RNDF_name	testroute
num_segments	1
num_zones	0
segment	1
num_lanes	1
lane	1.1
num_waypoints	2
checkpoint	1.1.1	1
checkpoint	1.1.2	2
1.1.1	37.100000	-122.100000
1.1.2	37.200000	-122.200000
end_lane
end_segment
end_file
`

const minimalMission = `MDF_name	testmission
RNDF	testroute
checkpoints
num_checkpoints	2
1
2
end_checkpoints
speed_limits
num_speed_limits	1
1	0	10
end_speed_limits
end_file
`

func TestParseMission(t *testing.T) {
	m, err := ParseMission(strings.NewReader(minimalMission))
	require.NoError(t, err)
	require.True(t, m.Valid)
	require.Equal(t, "testmission", m.Name)
	require.Equal(t, "testroute", m.RouteName)
	require.Equal(t, []int{1, 2}, m.CheckpointIDs)
	require.Len(t, m.SpeedLimits, 1)
	require.Equal(t, schema.Speedlimit{ID: 1, MinSpeed: 0, MaxSpeed: 10}, m.SpeedLimits[0])
}

func TestLinkMissionRouteProjectsSpeedLimits(t *testing.T) {
	route, err := rnd.Parse(strings.NewReader(minimalRoute))
	require.NoError(t, err)

	m, err := ParseMission(strings.NewReader(minimalMission))
	require.NoError(t, err)

	err = LinkMissionRoute(m, route)
	require.NoError(t, err)

	require.Len(t, m.Checkpoints, 2)
	require.Equal(t, route, m.Route)
	require.Equal(t, 0, route.Segments[0].MinSpeed)
	require.Equal(t, 10, route.Segments[0].MaxSpeed)
}

const missionWithMissingCheckpoint = `MDF_name	testmission
RNDF	testroute
checkpoints
num_checkpoints	3
1
2
99
end_checkpoints
speed_limits
num_speed_limits	0
end_speed_limits
end_file
`

func TestLinkMissionRoutePartialOnMissingCheckpoint(t *testing.T) {
	route, err := rnd.Parse(strings.NewReader(minimalRoute))
	require.NoError(t, err)

	m, err := ParseMission(strings.NewReader(missionWithMissingCheckpoint))
	require.NoError(t, err)

	err = LinkMissionRoute(m, route)
	require.Error(t, err)

	linkErrs, ok := err.(*schema.LinkErrors)
	require.True(t, ok, "expected *schema.LinkErrors, got %T", err)
	require.Len(t, linkErrs.Errs, 1)

	// the two resolvable checkpoints still compact into the list even
	// though the third one failed.
	require.Len(t, m.Checkpoints, 2)
}
