// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

// Package nenio implements an incremental structural validator for
// JSON-shaped byte streams.
//
// The validator checks that its input has balanced brackets and braces,
// properly quoted and escaped strings, and nesting within a fixed depth
// limit. It does not build a parse tree and it does not check value-level
// grammar (number syntax, the spelling of true/false/null); memory use is
// fixed regardless of input size.
//
// # Validating
//
// To check a complete in-memory document, call ValidateBytes with the
// resource limits the run must respect:
//
//	res, err := nenio.ValidateBytes(data, nenio.DefaultLimits())
//	if err != nil {
//	   log.Fatalf("Validation aborted: %v", err)
//	}
//	if !res.Valid {
//	   log.Printf("Invalid input: %v", res.Err)
//	}
//
// The error result is reserved for unusable limits and for faults of the
// input source; every structural verdict, positive or negative, is carried
// by the Result. The Result records the first failure with its byte offset
// and line/column, and the total number of bytes consumed.
//
// # Streaming
//
// To check a stream, call Validate with an io.Reader. The stream is pulled
// one chunk at a time and each chunk is processed to completion before the
// next is requested:
//
//	res, err := nenio.Validate(r, nenio.DefaultLimits())
//
// For sources that deliver chunks by some other means, construct a
// Validator and drive it directly. A Validator is an io.Writer; its state
// persists across writes, so the verdict is the same no matter how the
// input is split:
//
//	v, err := nenio.NewValidator(limits)
//	// ...
//	for _, chunk := range chunks {
//	   if _, err := v.Write(chunk); err != nil {
//	      break // structural failure; the verdict is in Finish
//	   }
//	}
//	res := v.Finish()
//
// A Validator checks exactly one stream and must be discarded after Finish.
// Independent validations may run concurrently as long as each has its own
// Validator.
//
// # Limits and errors
//
// Every run is bounded by an explicit Limits value giving the maximum
// nesting depth and the maximum input size; there is no process-wide
// configuration. Failures are values of type *Error and carry one of a
// closed set of kinds. The two no-content kinds (EmptyInput,
// WhitespaceOnly) are recoverable, meaning a caller may substitute a
// default document; all structural kinds are final. Malformed input never
// causes a panic.
package nenio
