// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command rndnav-lint loads a Route Network Definition file (and
// optionally a Mission Definition file linked against it), reports what it
// found, and can round-trip both back out to disk to sanity-check the
// emitter against the parser.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oygx210/navguide/internal/emit"
	"github.com/oygx210/navguide/internal/mission"
	"github.com/oygx210/navguide/internal/rnd"
	"github.com/oygx210/navguide/pkg/rndlog"
	"github.com/oygx210/navguide/pkg/schema"
)

const version = "0.1.0"

// ProgramConfig mirrors the subset of flags that make sense to default from
// a file instead of the command line, for use in a wrapper script.
type ProgramConfig struct {
	LogLevel string `json:"loglevel"`
	LogDate  bool   `json:"logdate"`
}

var programConfig = ProgramConfig{
	LogLevel: "info",
}

func main() {
	cliInit()

	if flagVersion {
		fmt.Printf("rndnav-lint %s\n", version)
		return
	}

	if flagConfigFile != "" {
		f, err := os.Open(flagConfigFile)
		if err != nil {
			rndlog.Fatal(err)
		}
		dec := json.NewDecoder(f)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&programConfig); err != nil {
			rndlog.Fatal(err)
		}
		f.Close()
		flag.Visit(func(fl *flag.Flag) {
			if fl.Name == "loglevel" {
				programConfig.LogLevel = flagLogLevel
			}
		})
		if !flagLogDateTime {
			flagLogDateTime = programConfig.LogDate
		}
	} else {
		programConfig.LogLevel = flagLogLevel
	}

	rndlog.SetLevel(programConfig.LogLevel)
	rndlog.SetLogDateTime(flagLogDateTime)

	if flagRNDFile == "" {
		rndlog.Fatal("missing required -rnd flag")
	}

	route := loadRoute(flagRNDFile)
	printRouteSummary(route)

	var mdef *schema.Mission
	if flagMDFile != "" {
		mdef = loadMission(flagMDFile)
		if err := mission.LinkMissionRoute(mdef, route); err != nil {
			rndlog.Warnf("mission link reported errors: %s", err)
		}
		printMissionSummary(mdef)
	}

	if flagValidateJSON {
		if err := schema.ValidateRoute(route); err != nil {
			rndlog.Errorf("route failed JSON schema validation: %s", err)
		} else {
			rndlog.Info("route passed JSON schema validation")
		}
		if mdef != nil {
			if err := schema.ValidateMission(mdef); err != nil {
				rndlog.Errorf("mission failed JSON schema validation: %s", err)
			} else {
				rndlog.Info("mission passed JSON schema validation")
			}
		}
	}

	if flagEmitDir != "" {
		emitRoundTrip(flagEmitDir, route, mdef)
	}
}

func loadRoute(path string) *schema.RouteNetwork {
	f, err := os.Open(path)
	if err != nil {
		rndlog.Fatalf("opening %s: %s", path, err)
	}
	defer f.Close()

	route, err := rnd.Parse(f)
	if err != nil {
		rndlog.Fatalf("parsing %s: %s", path, err)
	}
	return route
}

func loadMission(path string) *schema.Mission {
	f, err := os.Open(path)
	if err != nil {
		rndlog.Fatalf("opening %s: %s", path, err)
	}
	defer f.Close()

	mdef, err := mission.ParseMission(f)
	if err != nil {
		rndlog.Fatalf("parsing %s: %s", path, err)
	}
	return mdef
}

func printRouteSummary(route *schema.RouteNetwork) {
	fmt.Printf("Route name: %s\n", route.Name)
	fmt.Printf("Route format version: %s\n", route.FormatVersion)
	fmt.Printf("Route creation date: %s\n", route.CreationDate)
	fmt.Printf("Route # segments: %d\n", len(route.Segments))
	fmt.Printf("Route # zones: %d\n", len(route.Zones))
	fmt.Printf("Route # obstacles: %d\n", len(route.Obstacles))
	fmt.Printf("Route # checkpoints: %d\n", len(route.Checkpoints))
}

func printMissionSummary(m *schema.Mission) {
	fmt.Printf("Mission name: %s\n", m.Name)
	fmt.Printf("Mission route name: %s\n", m.RouteName)
	fmt.Printf("Mission # checkpoints: %d (resolved %d)\n", len(m.CheckpointIDs), len(m.Checkpoints))
	fmt.Printf("Mission # speed limits: %d\n", len(m.SpeedLimits))
	for _, sl := range m.SpeedLimits {
		fmt.Printf("   speed limit %d: min = %d max = %d\n", sl.ID, sl.MinSpeed, sl.MaxSpeed)
	}
}

func emitRoundTrip(dir string, route *schema.RouteNetwork, m *schema.Mission) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		rndlog.Fatalf("creating %s: %s", dir, err)
	}

	rndPath := filepath.Join(dir, "route.rnd")
	rf, err := os.Create(rndPath)
	if err != nil {
		rndlog.Fatalf("creating %s: %s", rndPath, err)
	}
	defer rf.Close()
	if err := emit.EmitRoute(rf, route); err != nil {
		rndlog.Fatalf("emitting %s: %s", rndPath, err)
	}
	rndlog.Infof("wrote %s", rndPath)

	if m == nil {
		return
	}
	mdPath := filepath.Join(dir, "mission.md")
	mf, err := os.Create(mdPath)
	if err != nil {
		rndlog.Fatalf("creating %s: %s", mdPath, err)
	}
	defer mf.Close()
	if err := emit.EmitMission(mf, m); err != nil {
		rndlog.Fatalf("emitting %s: %s", mdPath, err)
	}
	rndlog.Infof("wrote %s", mdPath)
}
