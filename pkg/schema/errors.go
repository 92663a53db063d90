// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a parse/link failure per the error handling design:
// SyntaxError, SchemaError, ReferenceError, and IoError abort the current
// parse; LinkError is accumulated by the linker instead.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota + 1
	KindSchema
	KindReference
	KindIO
	KindLink
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindSchema:
		return "schema error"
	case KindReference:
		return "reference error"
	case KindIO:
		return "io error"
	case KindLink:
		return "link error"
	default:
		return "error"
	}
}

// ParseError is a line-tagged error produced while reading an RND or MD
// file. Every diagnostic produced during parsing is prefixed with the
// 1-based line number it occurred on.
type ParseError struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func NewParseError(kind ErrorKind, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// LinkErrors accumulates LinkError failures encountered while projecting a
// mission onto a route: an unresolved checkpoint or speed-limit id does not
// abort the link, so every failure is collected and returned together.
type LinkErrors struct {
	Errs []error
}

func (e *LinkErrors) Add(err error) {
	e.Errs = append(e.Errs, err)
}

func (e *LinkErrors) HasErrors() bool {
	return len(e.Errs) > 0
}

func (e *LinkErrors) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// AsError returns e as an error if it has accumulated any failures,
// otherwise nil -- callers must not return a non-nil *LinkErrors with no
// entries, since a typed nil interface would compare != nil.
func (e *LinkErrors) AsError() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
