// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package mission

import (
	"github.com/oygx210/navguide/pkg/rndlog"
	"github.com/oygx210/navguide/pkg/schema"
)

// LinkMissionRoute resolves mission against route: it compacts
// mission.CheckpointIDs into mission.Checkpoints, zeroes every segment's and
// zone's speed bounds and re-projects them from mission.SpeedLimits, and
// attaches mission.Route. Unlike ParseMission/Parse, a broken reference here
// does not abort the link: every checkpoint id and speed limit id is
// resolved independently and failures accumulate into the returned
// LinkErrors, so a caller can report every problem in one pass instead of
// just the first.
func LinkMissionRoute(mission *schema.Mission, route *schema.RouteNetwork) error {
	var errs schema.LinkErrors

	if mission.RouteName != "" && mission.RouteName != route.Name {
		rndlog.Warnf("mission route name %q does not match route name %q", mission.RouteName, route.Name)
	}

	for i := range route.Segments {
		route.Segments[i].MinSpeed = 0
		route.Segments[i].MaxSpeed = 0
	}
	for i := range route.Zones {
		route.Zones[i].MinSpeed = 0
		route.Zones[i].MaxSpeed = 0
	}

	mission.Checkpoints = mission.Checkpoints[:0]
	for _, id := range mission.CheckpointIDs {
		cp := schema.FindCheckpointByID(route, id)
		if cp == nil {
			errs.Add(schema.NewParseError(schema.KindLink, 0, "mission checkpoint %d not found in route", id))
			continue
		}
		mission.Checkpoints = append(mission.Checkpoints, cp.Waypoint)
	}

	for _, sl := range mission.SpeedLimits {
		cp := schema.FindCheckpointByID(route, sl.ID)
		if cp == nil {
			errs.Add(schema.NewParseError(schema.KindLink, 0, "speed limit checkpoint %d not found in route", sl.ID))
			continue
		}
		seg, zone := schema.SpeedRegion(cp.Waypoint)
		switch {
		case seg != nil:
			seg.MinSpeed = sl.MinSpeed
			seg.MaxSpeed = sl.MaxSpeed
		case zone != nil:
			zone.MinSpeed = sl.MinSpeed
			zone.MaxSpeed = sl.MaxSpeed
		default:
			errs.Add(schema.NewParseError(schema.KindLink, 0, "checkpoint %d has no speed region", sl.ID))
		}
	}

	mission.Route = route
	return errs.AsError()
}
