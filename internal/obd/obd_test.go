package obd

import (
	"strings"
	"testing"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain lowercase", "p0420", "P0420"},
		{"embedded in sentence", "j'ai un code P0301 sur ma clio", "P0301"},
		{"extra leading zeros", "P00002", "P0002"},
		{"whitespace between prefix and digits", "code P 0420 détecté", "P0420"},
		{"lenient three digits padded", "le scanner affiche p123", "P0123"},
		{"network code", "U0100 lost communication", "U0100"},
		{"body code", "b0001", "B0001"},
		{"too short", "p42", ""},
		{"no code", "ma voiture fait un bruit bizarre", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCode(tt.in)
			if got != tt.want {
				t.Fatalf("ExtractCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("P0420")
	if !ok {
		t.Fatal("expected P0420 to be in the table")
	}
	if info.Severity != "medium" {
		t.Errorf("P0420 severity = %q, want %q", info.Severity, "medium")
	}
	if !strings.Contains(info.DescriptionFR, "catalyseur") {
		t.Errorf("P0420 description %q does not mention the catalyst", info.DescriptionFR)
	}

	// Lowercase and bare numbers are tolerated.
	if _, ok := Lookup("p0420"); !ok {
		t.Error("lowercase lookup failed")
	}
	if _, ok := Lookup("0420"); !ok {
		t.Error("bare number lookup should default to the P prefix")
	}

	if _, ok := Lookup("P9999"); ok {
		t.Error("P9999 should not be in the table")
	}
	if _, ok := Lookup(""); ok {
		t.Error("empty lookup should fail")
	}
}

func TestCodesTableBreadth(t *testing.T) {
	if got := len(Codes); got != 121 {
		t.Fatalf("table has %d codes, want 121", got)
	}

	// Entries across every family and severity tier.
	tests := []struct {
		code, severity, fragment string
	}{
		{"P0303", "high", "Cylindre 3"},
		{"P0150", "medium", "sonde O2"},
		{"P0381", "low", "préchauffage"},
		{"P0606", "high", "calculateur"},
		{"P2003", "high", "FAP"},
		{"U0100", "high", "calculateur moteur"},
		{"B0001", "high", "airbag"},
		{"C0045", "medium", "arrière gauche"},
	}
	for _, tt := range tests {
		info, ok := Lookup(tt.code)
		if !ok {
			t.Errorf("%s missing from the table", tt.code)
			continue
		}
		if info.Severity != tt.severity {
			t.Errorf("%s severity = %q, want %q", tt.code, info.Severity, tt.severity)
		}
		if !strings.Contains(info.DescriptionFR, tt.fragment) {
			t.Errorf("%s description %q missing %q", tt.code, info.DescriptionFR, tt.fragment)
		}
	}
}

func TestSearch(t *testing.T) {
	results := Search("catalyseur")
	if len(results) == 0 {
		t.Fatal("expected results for 'catalyseur'")
	}
	found := false
	for _, r := range results {
		if r.Code == "P0420" {
			found = true
		}
	}
	if !found {
		t.Error("P0420 missing from 'catalyseur' search results")
	}

	// Broad queries stay capped at 10.
	if got := len(Search("le")); got > 10 {
		t.Errorf("search returned %d results, cap is 10", got)
	}

	// Deterministic ordering.
	first := Search("allumage")
	second := Search("allumage")
	if len(first) != len(second) {
		t.Fatalf("search not deterministic: %d vs %d results", len(first), len(second))
	}
	for i := range first {
		if first[i].Code != second[i].Code {
			t.Fatalf("search order changed at %d: %s vs %s", i, first[i].Code, second[i].Code)
		}
	}
}

func TestFormatResponse(t *testing.T) {
	info, _ := Lookup("P0420")
	out := FormatResponse("P0420", info)

	for _, want := range []string{"P0420", info.DescriptionFR, "🟡", "MOYENNE", "KOUNHANY"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted response missing %q", want)
		}
	}
}

func TestFormatUnknownCode(t *testing.T) {
	out := FormatUnknownCode("P9999")
	if !strings.Contains(out, "P9999") {
		t.Error("unknown-code response should echo the code")
	}
	if !strings.Contains(out, "base de données") {
		t.Error("unknown-code response should say the code is not in the table")
	}
}
