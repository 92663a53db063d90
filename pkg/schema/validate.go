// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Kind selects which embedded JSON schema Validate compiles against.
type Kind int

const (
	Route Kind = iota + 1
	MissionKind
)

//go:embed schemas/*
var schemaFiles embed.FS

func loadSchemaFile(s string) (io.ReadCloser, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	return schemaFiles.Open(u.Path)
}

func init() {
	jsonschema.Loaders["embedFS"] = loadSchemaFile
}

// Validate decodes r as JSON and validates it against the schema for k.
// Used to check a RouteNetwork/Mission JSON export before handing it to a
// downstream consumer.
func Validate(k Kind, r io.Reader) error {
	var s *jsonschema.Schema
	var err error

	switch k {
	case Route:
		s, err = jsonschema.Compile("embedFS://schemas/route.schema.json")
	case MissionKind:
		s, err = jsonschema.Compile("embedFS://schemas/mission.schema.json")
	default:
		return fmt.Errorf("schema.Validate: unknown schema kind %d", k)
	}
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return fmt.Errorf("schema.Validate: failed to decode: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("schema.Validate: %w", err)
	}
	return nil
}

// ValidateRoute marshals route to JSON and validates it against the
// embedded route schema.
func ValidateRoute(route *RouteNetwork) error {
	buf, err := json.Marshal(route.ToDoc())
	if err != nil {
		return err
	}
	return Validate(Route, bytes.NewReader(buf))
}

// ValidateMission marshals mission to JSON and validates it against the
// embedded mission schema.
func ValidateMission(mission *Mission) error {
	buf, err := json.Marshal(mission.ToDoc())
	if err != nil {
		return err
	}
	return Validate(MissionKind, bytes.NewReader(buf))
}
