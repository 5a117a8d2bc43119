package services

import (
	"errors"
	"testing"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	enabled, err := ParseManifest([]byte(`{"mods":[{"name":"base","enabled":true},{"name":"foo","enabled":true},{"name":"bar","enabled":false}]}`))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	want := map[string]bool{"base": true, "foo": true, "bar": false}
	if len(enabled) != len(want) {
		t.Fatalf("len = %d, want %d", len(enabled), len(want))
	}
	for name, value := range want {
		got, ok := enabled[name]
		if !ok || got != value {
			t.Errorf("enabled[%q] = %v (listed %v), want %v", name, got, ok, value)
		}
	}
}

func TestParseManifestLastEntryWins(t *testing.T) {
	t.Parallel()

	enabled, err := ParseManifest([]byte(`{"mods":[{"name":"foo","enabled":true},{"name":"foo","enabled":false}]}`))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if enabled["foo"] {
		t.Error("foo = true, want the later false entry")
	}
}

func TestParseManifestIgnoresExtraFields(t *testing.T) {
	t.Parallel()

	enabled, err := ParseManifest([]byte(`{"mods":[{"name":"foo","enabled":true,"version":"1.0.0"}],"extra":1}`))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if !enabled["foo"] {
		t.Error("foo = false, want true")
	}
}

func TestParseManifestEmptyList(t *testing.T) {
	t.Parallel()

	enabled, err := ParseManifest([]byte(`{"mods":[]}`))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if len(enabled) != 0 {
		t.Errorf("len = %d, want 0", len(enabled))
	}
}

func TestParseManifestRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"mods":[`},
		{name: "empty", data: ``},
		{name: "missing mods", data: `{"packages":[]}`},
		{name: "mods not array", data: `{"mods":{"foo":true}}`},
		{name: "entry missing enabled", data: `{"mods":[{"name":"foo"}]}`},
		{name: "entry missing name", data: `{"mods":[{"enabled":true}]}`},
		{name: "enabled as string", data: `{"mods":[{"name":"foo","enabled":"yes"}]}`},
		{name: "name as number", data: `{"mods":[{"name":7,"enabled":true}]}`},
		{name: "top level array", data: `[{"name":"foo","enabled":true}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseManifest([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseManifest() error = nil, want error")
			}
			if !errors.Is(err, ErrManifestParse) {
				t.Errorf("errors.Is(err, ErrManifestParse) = false for %v", err)
			}
			var parseErr *ManifestParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error %T is not a *ManifestParseError", err)
			}
		})
	}
}

func TestManifestDigestIgnoresFormatting(t *testing.T) {
	t.Parallel()

	compact, err := ManifestDigest([]byte(`{"mods":[{"name":"foo","enabled":true}]}`))
	if err != nil {
		t.Fatalf("ManifestDigest() error = %v", err)
	}
	spaced, err := ManifestDigest([]byte("{\n  \"mods\": [\n    { \"enabled\": true, \"name\": \"foo\" }\n  ]\n}\n"))
	if err != nil {
		t.Fatalf("ManifestDigest() error = %v", err)
	}
	if compact != spaced {
		t.Errorf("digests differ: %s vs %s", compact, spaced)
	}
	if len(compact) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(compact))
	}

	changed, err := ManifestDigest([]byte(`{"mods":[{"name":"foo","enabled":false}]}`))
	if err != nil {
		t.Fatalf("ManifestDigest() error = %v", err)
	}
	if changed == compact {
		t.Error("digest unchanged after flipping enabled")
	}
}

func TestManifestParseErrorChain(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest([]byte(`{"mods":`))
	var parseErr *ManifestParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("ParseManifest() error = %v, want *ManifestParseError", err)
	}
	if cause := errors.Unwrap(parseErr); cause == nil || cause != parseErr.Cause {
		t.Errorf("errors.Unwrap() = %v, want the decode cause", cause)
	}
	if !errors.Is(parseErr, ErrManifestParse) {
		t.Error("errors.Is(err, ErrManifestParse) = false")
	}
	if errors.Is(parseErr, ErrMissingManifest) {
		t.Error("parse error matches ErrMissingManifest")
	}
}
