// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

// JSON document shapes for the RouteNetwork/Mission model. The live model
// represents exit edges and checkpoint/parent references as ordinary Go
// pointers, which may form cycles across waypoints (§3.2) -- encoding/json
// has no cycle detection, so these Doc types flatten every reference to its
// dotted waypoint identifier instead of a pointer before marshaling.

type WaypointDoc struct {
	ID     int      `json:"id"`
	Lat    float64  `json:"lat"`
	Lon    float64  `json:"lon"`
	IsStop bool     `json:"is_stop,omitempty"`
	Exits  []string `json:"exits,omitempty"`
}

type LaneDoc struct {
	ID            int           `json:"id"`
	LaneWidth     *int          `json:"lane_width,omitempty"`
	LeftBoundary  string        `json:"left_boundary,omitempty"`
	RightBoundary string        `json:"right_boundary,omitempty"`
	Waypoints     []WaypointDoc `json:"waypoints"`
}

type SegmentDoc struct {
	ID       int       `json:"id"`
	Name     string    `json:"name,omitempty"`
	Lanes    []LaneDoc `json:"lanes"`
	MinSpeed int       `json:"min_speed,omitempty"`
	MaxSpeed int       `json:"max_speed,omitempty"`
}

type SpotDoc struct {
	ID           int            `json:"id"`
	SpotWidth    *int           `json:"spot_width,omitempty"`
	Waypoints    [2]WaypointDoc `json:"waypoints"`
	CheckpointID *int           `json:"checkpoint_id,omitempty"`
}

type ZoneDoc struct {
	ID              int           `json:"id"`
	Name            string        `json:"name,omitempty"`
	PerimeterPoints []WaypointDoc `json:"perimeter_points"`
	Spots           []SpotDoc     `json:"spots"`
	MinSpeed        int           `json:"min_speed,omitempty"`
	MaxSpeed        int           `json:"max_speed,omitempty"`
}

type ObstacleDoc struct {
	ID     int     `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	W1     float64 `json:"w1"`
	W2     float64 `json:"w2"`
	Height float64 `json:"height"`
	Orient float64 `json:"orient"`
}

type CheckpointDoc struct {
	ID       int    `json:"id"`
	Waypoint string `json:"waypoint"`
}

type RouteNetworkDoc struct {
	Name            string          `json:"name,omitempty"`
	FormatVersion   string          `json:"format_version,omitempty"`
	CreationDate    string          `json:"creation_date,omitempty"`
	Valid           bool            `json:"valid"`
	Segments        []SegmentDoc    `json:"segments"`
	Zones           []ZoneDoc       `json:"zones"`
	Obstacles       []ObstacleDoc   `json:"obstacles,omitempty"`
	Checkpoints     []CheckpointDoc `json:"checkpoints"`
	MaxCheckpointID int             `json:"max_checkpoint_id"`
}

type SpeedlimitDoc struct {
	ID       int `json:"id"`
	MinSpeed int `json:"min_speed"`
	MaxSpeed int `json:"max_speed"`
}

type MissionDoc struct {
	Name          string          `json:"name,omitempty"`
	RouteName     string          `json:"route_name,omitempty"`
	FormatVersion string          `json:"format_version,omitempty"`
	CreationDate  string          `json:"creation_date,omitempty"`
	Valid         bool            `json:"valid"`
	CheckpointIDs []int           `json:"checkpoint_ids"`
	Checkpoints   []string        `json:"checkpoints,omitempty"`
	SpeedLimits   []SpeedlimitDoc `json:"speed_limits"`
}

func waypointDoc(w *Waypoint) WaypointDoc {
	d := WaypointDoc{ID: w.ID, Lat: w.Lat, Lon: w.Lon, IsStop: w.IsStop}
	for _, e := range w.Exits {
		d.Exits = append(d.Exits, WaypointString(e))
	}
	return d
}

// ToDoc flattens route into its JSON-interchange representation. The
// required array fields are seeded as empty (never nil) slices so an empty
// RouteNetwork still marshals to "[]" instead of "null", which the embedded
// schema's "type": "array" would reject.
func (route *RouteNetwork) ToDoc() RouteNetworkDoc {
	doc := RouteNetworkDoc{
		Name:            route.Name,
		FormatVersion:   route.FormatVersion,
		CreationDate:    route.CreationDate,
		Valid:           route.Valid,
		MaxCheckpointID: route.MaxCheckpointID,
		Segments:        []SegmentDoc{},
		Zones:           []ZoneDoc{},
		Checkpoints:     []CheckpointDoc{},
	}

	for i := range route.Segments {
		s := &route.Segments[i]
		sd := SegmentDoc{ID: s.ID, Name: s.Name, MinSpeed: s.MinSpeed, MaxSpeed: s.MaxSpeed, Lanes: []LaneDoc{}}
		for j := range s.Lanes {
			l := &s.Lanes[j]
			ld := LaneDoc{
				ID:            l.ID,
				LaneWidth:     l.LaneWidth,
				LeftBoundary:  l.LeftBoundary.String(),
				RightBoundary: l.RightBoundary.String(),
				Waypoints:     []WaypointDoc{},
			}
			for k := range l.Waypoints {
				ld.Waypoints = append(ld.Waypoints, waypointDoc(&l.Waypoints[k]))
			}
			sd.Lanes = append(sd.Lanes, ld)
		}
		doc.Segments = append(doc.Segments, sd)
	}

	for i := range route.Zones {
		z := &route.Zones[i]
		zd := ZoneDoc{
			ID: z.ID, Name: z.Name, MinSpeed: z.MinSpeed, MaxSpeed: z.MaxSpeed,
			PerimeterPoints: []WaypointDoc{}, Spots: []SpotDoc{},
		}
		for k := range z.PerimeterPoints {
			zd.PerimeterPoints = append(zd.PerimeterPoints, waypointDoc(&z.PerimeterPoints[k]))
		}
		for j := range z.Spots {
			sp := &z.Spots[j]
			spd := SpotDoc{
				ID:           sp.ID,
				SpotWidth:    sp.SpotWidth,
				CheckpointID: sp.CheckpointID,
				Waypoints:    [2]WaypointDoc{waypointDoc(&sp.Waypoints[0]), waypointDoc(&sp.Waypoints[1])},
			}
			zd.Spots = append(zd.Spots, spd)
		}
		doc.Zones = append(doc.Zones, zd)
	}

	for _, o := range route.Obstacles {
		doc.Obstacles = append(doc.Obstacles, ObstacleDoc{
			ID: o.ID, Lat: o.Lat, Lon: o.Lon, W1: o.W1, W2: o.W2, Height: o.Height, Orient: o.Orient,
		})
	}

	for _, c := range route.Checkpoints {
		doc.Checkpoints = append(doc.Checkpoints, CheckpointDoc{ID: c.ID, Waypoint: WaypointString(c.Waypoint)})
	}

	return doc
}

// ToDoc flattens mission into its JSON-interchange representation.
func (mission *Mission) ToDoc() MissionDoc {
	doc := MissionDoc{
		Name:          mission.Name,
		RouteName:     mission.RouteName,
		FormatVersion: mission.FormatVersion,
		CreationDate:  mission.CreationDate,
		Valid:         mission.Valid,
		CheckpointIDs: append([]int{}, mission.CheckpointIDs...),
		SpeedLimits:   []SpeedlimitDoc{},
	}
	for _, w := range mission.Checkpoints {
		doc.Checkpoints = append(doc.Checkpoints, WaypointString(w))
	}
	for _, sl := range mission.SpeedLimits {
		doc.SpeedLimits = append(doc.SpeedLimits, SpeedlimitDoc{ID: sl.ID, MinSpeed: sl.MinSpeed, MaxSpeed: sl.MaxSpeed})
	}
	return doc
}
