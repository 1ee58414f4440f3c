// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

// Package diagnose renders validation results for people and machines.
// The renderers treat the Result as opaque data: they read its fields and
// never reach back into the validator.
package diagnose

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	nenio "github.com/Nen-Co/nen-io"
)

// A Report is the renderable form of one validation run.
type Report struct {
	XMLName  xml.Name `json:"-" xml:"report"`
	Input    string   `json:"input" xml:"input,attr"` // source name, typically a file path
	Valid    bool     `json:"valid" xml:"valid,attr"`
	Position int64    `json:"position" xml:"position"`
	Error    *Fault   `json:"error,omitempty" xml:"error,omitempty"`
}

// A Fault describes the first structural failure of an invalid run.
type Fault struct {
	Kind        string `json:"kind" xml:"kind"`
	Message     string `json:"message" xml:"message"`
	Offset      int64  `json:"offset" xml:"offset"`
	Line        int    `json:"line" xml:"line"`
	Column      int    `json:"column" xml:"column"`
	Recoverable bool   `json:"recoverable" xml:"recoverable"`
}

// New builds the Report for the result of validating the named input.
func New(input string, res nenio.Result) Report {
	rep := Report{Input: input, Valid: res.Valid, Position: res.Position}
	if res.Err != nil {
		rep.Error = &Fault{
			Kind:        res.Err.Kind.Name(),
			Message:     res.Err.Kind.String(),
			Offset:      res.Err.Offset,
			Line:        res.Err.Location.Line,
			Column:      res.Err.Location.Column,
			Recoverable: res.Err.Kind.Recoverable(),
		}
	}
	return rep
}

// A Formatter renders reports in one output format.
type Formatter interface {
	Format(w io.Writer, reps ...Report) error
}

// Text renders one human-readable line per report.
type Text struct{}

// Format implements Formatter.
func (Text) Format(w io.Writer, reps ...Report) error {
	for _, rep := range reps {
		var err error
		if rep.Valid {
			_, err = fmt.Fprintf(w, "%s: ok (%d bytes)\n", rep.Input, rep.Position)
		} else {
			_, err = fmt.Fprintf(w, "%s:%d:%d: %s (offset %d)\n",
				rep.Input, rep.Error.Line, rep.Error.Column, rep.Error.Message, rep.Error.Offset)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// JSON renders reports as a JSON array.
type JSON struct {
	Indent bool
}

// Format implements Formatter.
func (f JSON) Format(w io.Writer, reps ...Report) error {
	if reps == nil {
		reps = []Report{}
	}
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(reps)
}

// XML renders reports as a single XML document.
type XML struct {
	Indent bool
}

// Format implements Formatter.
func (f XML) Format(w io.Writer, reps ...Report) error {
	doc := struct {
		XMLName xml.Name `xml:"reports"`
		Reports []Report `xml:"report"`
	}{Reports: reps}
	enc := xml.NewEncoder(w)
	if f.Indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
