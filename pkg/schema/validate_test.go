// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

import "testing"

func TestValidateRoute(t *testing.T) {
	route := buildTestRoute()
	route.Valid = true

	if err := ValidateRoute(route); err != nil {
		t.Errorf("Error is not nil! %v", err)
	}
}

func TestValidateMission(t *testing.T) {
	mission := &Mission{
		Name:          "m",
		RouteName:     "r",
		Valid:         true,
		CheckpointIDs: []int{1, 2},
		SpeedLimits:   []Speedlimit{{ID: 1, MinSpeed: 0, MaxSpeed: 10}},
	}

	if err := ValidateMission(mission); err != nil {
		t.Errorf("Error is not nil! %v", err)
	}
}
