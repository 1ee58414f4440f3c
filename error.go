// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package nenio

import "fmt"

// Kind is the type of a structural validation failure.
type Kind byte

// Constants defining the valid Kind values.
const (
	NoError            Kind = iota // no failure
	EmptyInput                     // the input contains no bytes at all
	WhitespaceOnly                 // the input contains only whitespace
	InvalidStart                   // the first significant byte is not "{" or "["
	NestingTooDeep                 // nesting exceeds the configured depth limit
	UnmatchedClosing               // a close bracket with no matching open
	UnmatchedOpening               // an open bracket with no matching close
	UnterminatedString             // a string still open at end of input
	InputTooLarge                  // the input exceeds the configured size limit
)

var kindStr = [...]string{
	NoError:            "no error",
	EmptyInput:         "empty input",
	WhitespaceOnly:     "whitespace-only input",
	InvalidStart:       `input does not start with "{" or "["`,
	NestingTooDeep:     "nesting too deep",
	UnmatchedClosing:   "unmatched close bracket",
	UnmatchedOpening:   "unmatched open bracket",
	UnterminatedString: "unterminated string",
	InputTooLarge:      "input too large",
}

var kindName = [...]string{
	NoError:            "no-error",
	EmptyInput:         "empty-input",
	WhitespaceOnly:     "whitespace-only",
	InvalidStart:       "invalid-start",
	NestingTooDeep:     "nesting-too-deep",
	UnmatchedClosing:   "unmatched-closing",
	UnmatchedOpening:   "unmatched-opening",
	UnterminatedString: "unterminated-string",
	InputTooLarge:      "input-too-large",
}

// String returns a human-readable description of the failure kind.
func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid error kind"
	}
	return kindStr[v]
}

// Name returns a stable machine-readable identifier for the failure kind,
// suitable for structured diagnostics.
func (k Kind) Name() string {
	v := int(k)
	if v >= len(kindName) {
		return "invalid"
	}
	return kindName[v]
}

// Recoverable reports whether a failure of kind k permits the caller to
// substitute a default document in place of the input. Only the two
// no-content kinds are recoverable; every structural failure is final.
func (k Kind) Recoverable() bool { return k == EmptyInput || k == WhitespaceOnly }

// Error is the concrete type of structural validation failures. It records
// the failure kind and the location of the first offending byte. For
// failures detected at end of input the offset is the total number of bytes
// consumed.
type Error struct {
	Kind     Kind    // what went wrong
	Offset   int64   // byte offset of the failure, 0-based
	Location LineCol // line and column of the failure
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("at %s: %s (offset %d)", e.Location, e.Kind, e.Offset)
}
