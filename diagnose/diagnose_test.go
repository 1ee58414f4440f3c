// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package diagnose_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	nenio "github.com/Nen-Co/nen-io"
	"github.com/Nen-Co/nen-io/diagnose"
	"github.com/google/go-cmp/cmp"
)

func sampleReports(t *testing.T) []diagnose.Report {
	t.Helper()
	okRes, err := nenio.ValidateBytes([]byte(`{"a":1}`), nenio.DefaultLimits())
	if err != nil {
		t.Fatalf("ValidateBytes failed: %v", err)
	}
	badRes, err := nenio.ValidateBytes([]byte("{\n }]"), nenio.DefaultLimits())
	if err != nil {
		t.Fatalf("ValidateBytes failed: %v", err)
	}
	return []diagnose.Report{
		diagnose.New("good.json", okRes),
		diagnose.New("bad.json", badRes),
	}
}

func TestNew(t *testing.T) {
	reps := sampleReports(t)
	want := []diagnose.Report{
		{Input: "good.json", Valid: true, Position: 7},
		{Input: "bad.json", Position: 4, Error: &diagnose.Fault{
			Kind:    "unmatched-closing",
			Message: "unmatched close bracket",
			Offset:  4,
			Line:    2,
			Column:  3,
		}},
	}
	if diff := cmp.Diff(want, reps); diff != "" {
		t.Errorf("Reports: (-want, +got)\n%s", diff)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := (diagnose.Text{}).Format(&buf, sampleReports(t)...); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	const want = "good.json: ok (7 bytes)\n" +
		"bad.json:2:3: unmatched close bracket (offset 4)\n"
	if got := buf.String(); got != want {
		t.Errorf("Text output:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestJSONFormat(t *testing.T) {
	reps := sampleReports(t)
	var buf bytes.Buffer
	if err := (diagnose.JSON{Indent: true}).Format(&buf, reps...); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	// The output must decode back to the same reports.
	var got []diagnose.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Decoding output failed: %v", err)
	}
	if diff := cmp.Diff(reps, got); diff != "" {
		t.Errorf("Round trip: (-want, +got)\n%s", diff)
	}

	// No reports renders an empty array, not null.
	buf.Reset()
	if err := (diagnose.JSON{}).Format(&buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Empty output: got %q, want %q", got, "[]")
	}
}

func TestXMLFormat(t *testing.T) {
	reps := sampleReports(t)
	var buf bytes.Buffer
	if err := (diagnose.XML{Indent: true}).Format(&buf, reps...); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<reports>", "</reports>",
		`<report input="good.json" valid="true">`,
		`<report input="bad.json" valid="false">`,
		"<kind>unmatched-closing</kind>",
		"<line>2</line>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("XML output missing %q:\n%s", want, out)
		}
	}

	// The document must still parse as XML.
	var doc struct {
		XMLName xml.Name          `xml:"reports"`
		Reports []diagnose.Report `xml:"report"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Decoding output failed: %v", err)
	}
	if len(doc.Reports) != len(reps) {
		t.Errorf("Decoded %d reports, want %d", len(doc.Reports), len(reps))
	}
}
