// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package nenio

// A Result is the verdict of one validation run. It is constructed once, by
// Finish, and is immutable thereafter.
type Result struct {
	Valid    bool   // whether the input is structurally well-formed
	Err      *Error // the first failure; nil when Valid
	Position int64  // total bytes consumed
}
