// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mission implements the Mission Definition parser and the
// mission-to-route linking step (C4): ParseMission reads a flat mode
// machine with top/checkpoints/speed_limits modes; LinkMissionRoute
// validates checkpoint ids against an already-parsed route and projects
// per-checkpoint speed limits onto the containing segment/zone.
package mission

import (
	"io"
	"strconv"

	"github.com/oygx210/navguide/internal/rndio"
	"github.com/oygx210/navguide/pkg/rndlog"
	"github.com/oygx210/navguide/pkg/schema"
)

type mode int

const (
	modeTop mode = iota
	modeCheckpoints
	modeSpeedLimits
)

// ParseMission reads a Mission Definition file from r.
func ParseMission(r io.Reader) (*schema.Mission, error) {
	rd, err := rndio.NewReader(r)
	if err != nil {
		return nil, schema.NewParseError(schema.KindIO, 0, "%s", err)
	}

	m := &schema.Mission{}
	md := mode(modeTop)

	var declaredCheckpoints, declaredSpeedLimits int
	haveCheckpointCount, haveSpeedLimitCount := false, false

	errf := func(kind schema.ErrorKind, format string, args ...interface{}) error {
		return schema.NewParseError(kind, rd.Line(), format, args...)
	}

	for {
		line, ok := rd.NextLine()
		if !ok {
			break
		}
		fields := rndio.SplitFields(line)
		cmd := fields[0]
		args := fields[1:]

		switch {
		case cmd == "MDF_name":
			if len(args) == 0 {
				rndlog.Warn("MDF_name is empty")
			} else {
				m.Name = args[0]
			}
		case cmd == "RNDF":
			if len(args) == 0 {
				rndlog.Warn("MDF route name is empty")
			} else {
				m.RouteName = args[0]
			}
		case cmd == "format_version":
			if len(args) == 0 {
				rndlog.Warn("format_version is empty")
			} else {
				m.FormatVersion = args[0]
			}
		case cmd == "creation_date":
			if len(args) == 0 {
				rndlog.Warn("creation_date is empty")
			} else {
				m.CreationDate = args[0]
			}
		case cmd == "checkpoints":
			md = modeCheckpoints
		case cmd == "end_checkpoints":
			md = modeTop
		case cmd == "speed_limits":
			md = modeSpeedLimits
		case cmd == "end_speed_limits":
			md = modeTop
		case cmd == "num_checkpoints":
			// Recognized in any mode, unlike num_speed_limits below, which
			// is only matched inside modeSpeedLimits and otherwise falls
			// through to the generic unknown-command case. This asymmetry
			// mirrors the original parser and is intentionally preserved.
			if md != modeCheckpoints {
				return m, errf(schema.KindSchema, "num_checkpoints outside checkpoints section")
			}
			if len(args) == 0 || haveCheckpointCount {
				return m, errf(schema.KindSchema, "invalid num_checkpoints")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return m, errf(schema.KindSyntax, "invalid num_checkpoints %q", args[0])
			}
			declaredCheckpoints = n
			haveCheckpointCount = true
		case md == modeSpeedLimits && cmd == "num_speed_limits":
			if len(args) == 0 || haveSpeedLimitCount {
				return m, errf(schema.KindSchema, "invalid num_speed_limits")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return m, errf(schema.KindSyntax, "invalid num_speed_limits %q", args[0])
			}
			declaredSpeedLimits = n
			haveSpeedLimitCount = true
		case md == modeCheckpoints:
			id, err := strconv.Atoi(cmd)
			if err != nil || len(m.CheckpointIDs) >= declaredCheckpoints {
				return m, errf(schema.KindSyntax, "error reading checkpoint id %q", cmd)
			}
			m.CheckpointIDs = append(m.CheckpointIDs, id)
		case md == modeSpeedLimits:
			if len(args) != 2 {
				return m, errf(schema.KindSyntax, "error reading speed limit record")
			}
			id, err := strconv.Atoi(cmd)
			if err != nil || len(m.SpeedLimits) >= declaredSpeedLimits {
				return m, errf(schema.KindSyntax, "error reading speed id %q", cmd)
			}
			minSpeed, err1 := strconv.Atoi(args[0])
			maxSpeed, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				return m, errf(schema.KindSyntax, "error reading speed limit bounds for id %d", id)
			}
			m.SpeedLimits = append(m.SpeedLimits, schema.Speedlimit{ID: id, MinSpeed: minSpeed, MaxSpeed: maxSpeed})
		case md == modeTop && cmd == "end_file":
			if len(m.SpeedLimits) != declaredSpeedLimits {
				rndlog.Warn("missing speed limits in MDF file")
			} else if len(m.CheckpointIDs) != declaredCheckpoints {
				rndlog.Warn("missing checkpoints in MDF file")
			} else {
				m.Valid = true
				return m, nil
			}
			return m, nil
		default:
			return m, errf(schema.KindSyntax, "unknown command %q (mode %d)", cmd, md)
		}
	}

	return m, errf(schema.KindIO, "premature end of mission definition file")
}
