// Copyright (C) 2024 navguide contributors.
// All rights reserved. This file is part of navguide.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package schema

import "testing"

func TestParseErrorFormatsLineAndKind(t *testing.T) {
	err := NewParseError(KindSyntax, 12, "unexpected token %q", "foo")
	want := `line 12: syntax error: unexpected token "foo"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseErrorWithoutLine(t *testing.T) {
	err := NewParseError(KindIO, 0, "boom")
	want := "io error: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLinkErrorsAsErrorNilWhenEmpty(t *testing.T) {
	var errs LinkErrors
	if errs.AsError() != nil {
		t.Error("AsError() should be nil when no errors were accumulated")
	}
}

func TestLinkErrorsAccumulates(t *testing.T) {
	var errs LinkErrors
	errs.Add(NewParseError(KindLink, 0, "missing checkpoint 1"))
	errs.Add(NewParseError(KindLink, 0, "missing checkpoint 2"))

	if !errs.HasErrors() {
		t.Fatal("expected HasErrors() to be true")
	}
	if got := errs.AsError(); got == nil {
		t.Error("AsError() should be non-nil once errors were accumulated")
	}
	if len(errs.Errs) != 2 {
		t.Errorf("len(Errs) = %d, want 2", len(errs.Errs))
	}
}
