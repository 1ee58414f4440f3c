// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package nenio

import (
	"fmt"
	"io"
)

// A Validator checks that a stream of bytes is structurally well-formed
// JSON: balanced brackets and braces, properly quoted and escaped strings,
// and nesting within a fixed depth limit. It does not build a parse tree,
// does not check value-level grammar, and uses a fixed amount of memory
// regardless of input size.
//
// A Validator consumes its input through Write, so any chunk source can
// drive it, and splitting the same input into different chunks never
// changes the verdict. Each Validator checks exactly one stream: call
// Finish to obtain the Result, then discard the Validator.
type Validator struct {
	limits Limits

	depth      uint8 // open "{" and "[" not yet closed
	inString   bool  // inside an unterminated quoted string
	escapeNext bool  // the previous byte was an unescaped "\" in a string
	started    bool  // a valid start byte has been seen

	fail *Error
	at   tracker
}

// NewValidator constructs a Validator for a single stream, or reports an
// error if the limits are unusable.
func NewValidator(limits Limits) (*Validator, error) {
	if err := limits.Check(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	return &Validator{limits: limits, at: newTracker()}, nil
}

// Write feeds the next chunk of the stream to the validator. It implements
// io.Writer. When a structural failure is found, Write reports it as an
// *Error and every later call reports the same failure; the verdict is also
// available from Finish. A nil error means the chunk was consumed with no
// failure so far, not that the stream is complete.
func (v *Validator) Write(p []byte) (int, error) {
	if v.fail != nil {
		return 0, v.fail
	}
	for i, b := range p {
		if err := v.step(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Finish signals end of stream and returns the verdict. If no terminal
// failure was found while scanning, the residual state is checked here: a
// still-open string, unbalanced opens, or an input that never produced a
// significant byte all fail at the end-of-stream position.
func (v *Validator) Finish() Result {
	if v.fail == nil {
		switch {
		case !v.started && v.at.offset == 0:
			v.failHere(EmptyInput)
		case !v.started:
			v.failHere(WhitespaceOnly)
		case v.inString:
			v.failHere(UnterminatedString)
		case v.depth != 0:
			v.failHere(UnmatchedOpening)
		}
	}
	return Result{Valid: v.fail == nil, Err: v.fail, Position: v.at.offset}
}

// step consumes one byte, updating state or recording a terminal failure.
func (v *Validator) step(b byte) error {
	// The size guard runs before anything else so that adversarial input is
	// cut off even inside a string or in leading whitespace.
	if v.at.offset >= v.limits.MaxInputSize {
		return v.failHere(InputTooLarge)
	}

	// Until the first significant byte arrives the only valid inputs are
	// whitespace and a top-level open bracket. This phase spans chunks: a
	// first chunk of pure whitespace leaves it unfinished.
	if !v.started {
		if isSpace(b) {
			v.at.advance(b)
			return nil
		}
		if b != '{' && b != '[' {
			return v.failHere(InvalidStart)
		}
		v.started = true
		// The start byte is also the scanner's first input.
	}

	switch {
	case v.escapeNext:
		// The byte after an unescaped "\" is consumed unconditionally,
		// whatever it is. In particular an escaped quote must not toggle
		// the string state.
		v.escapeNext = false

	case b == '"':
		v.inString = !v.inString

	case b == '\\':
		// Outside a string a lone backslash is structurally inert.
		if v.inString {
			v.escapeNext = true
		}

	case (b == '{' || b == '[') && !v.inString:
		// The limit applies to the depth after this open is counted; the
		// comparison is widened so a limit of 255 cannot wrap.
		if int(v.depth)+1 > int(v.limits.MaxNestingDepth) {
			return v.failHere(NestingTooDeep)
		}
		v.depth++

	case (b == '}' || b == ']') && !v.inString:
		if v.depth == 0 {
			return v.failHere(UnmatchedClosing)
		}
		v.depth--

	default:
		// Everything else is structurally inert: whitespace, the bytes of
		// numbers and barewords, punctuation. Value grammar is not checked.
	}
	v.at.advance(b)
	return nil
}

// failHere records a terminal failure at the current byte and returns it.
func (v *Validator) failHere(kind Kind) *Error {
	v.fail = &Error{Kind: kind, Offset: v.at.offset, Location: v.at.lineCol()}
	return v.fail
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// readBufSize is the chunk size Validate requests from its reader.
const readBufSize = 4096

// Validate checks the stream from r, pulling one chunk at a time and
// processing it to completion before requesting the next. Memory use is
// fixed regardless of input size.
//
// Every structural verdict, positive or negative, is returned in the
// Result. The error return is reserved for unusable limits and for faults
// of the reader itself, which abort the run without a verdict.
func Validate(r io.Reader, limits Limits) (Result, error) {
	v, err := NewValidator(limits)
	if err != nil {
		return Result{}, err
	}
	var buf [readBufSize]byte
	for {
		n, rerr := r.Read(buf[:])
		if n > 0 {
			if _, werr := v.Write(buf[:n]); werr != nil {
				return v.Finish(), nil
			}
		}
		if rerr == io.EOF {
			return v.Finish(), nil
		} else if rerr != nil {
			return Result{}, fmt.Errorf("read input: %w", rerr)
		}
	}
}

// ValidateBytes checks a complete in-memory document against limits. It is
// equivalent to a Validate over any chunking of data.
func ValidateBytes(data []byte, limits Limits) (Result, error) {
	v, err := NewValidator(limits)
	if err != nil {
		return Result{}, err
	}
	v.Write(data) // a failure here is folded into Finish
	return v.Finish(), nil
}
