// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package nenio

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A tracker accumulates the cumulative byte offset, line, and column of a
// scan. Offsets carry across chunk boundaries; a tracker belongs to exactly
// one validation run.
type tracker struct {
	offset int64
	line   int
	col    int
}

func newTracker() tracker { return tracker{line: 1, col: 1} }

// advance records that b has been consumed. A "\n" begins a new line and a
// "\r" resets the column without advancing the line, so a CRLF pair
// advances the line exactly once, via its "\n".
func (t *tracker) advance(b byte) {
	t.offset++
	switch b {
	case '\n':
		t.line++
		t.col = 1
	case '\r':
		t.col = 1
	default:
		t.col++
	}
}

func (t *tracker) lineCol() LineCol { return LineCol{Line: t.line, Column: t.col} }
