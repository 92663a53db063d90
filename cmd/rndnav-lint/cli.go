// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import "flag"

var (
	flagRNDFile, flagMDFile, flagEmitDir, flagConfigFile, flagLogLevel string
	flagValidateJSON, flagLogDateTime, flagVersion                     bool
)

func cliInit() {
	flag.StringVar(&flagRNDFile, "rnd", "", "Parse the Route Network Definition file at `path`")
	flag.StringVar(&flagMDFile, "md", "", "Parse and link the Mission Definition file at `path` against -rnd")
	flag.StringVar(&flagEmitDir, "emit", "", "Round-trip: re-emit the parsed route (and mission) as files under `dir`")
	flag.StringVar(&flagConfigFile, "config", "", "Load defaults for -loglevel/-logdate from the JSON file at `path`")
	flag.StringVar(&flagLogLevel, "loglevel", "info", "Sets the logging level: `[debug, info, warn, err]`")
	flag.BoolVar(&flagValidateJSON, "validate-json", false, "Validate the JSON-exported route/mission against the embedded schemas")
	flag.BoolVar(&flagLogDateTime, "logdate", false, "Add date and time to log messages")
	flag.BoolVar(&flagVersion, "version", false, "Show version information and exit")
	flag.Parse()
}
