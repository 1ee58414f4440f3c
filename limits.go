// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package nenio

import "fmt"

// MinNestingDepth is the smallest MaxNestingDepth a Limits may carry.
const MinNestingDepth = 16

// Limits bounds the resources a single validation run may consume. A
// Limits value is immutable once constructed and is passed explicitly into
// each run; there is no process-wide configuration.
type Limits struct {
	MaxNestingDepth uint8 // maximum open "{"/"[" at any point
	MaxInputSize    int64 // maximum total input size in bytes
}

// DefaultLimits returns limits suitable for general use: documents up to
// 64 MiB nested at most 128 levels deep.
func DefaultLimits() Limits {
	return Limits{MaxNestingDepth: 128, MaxInputSize: 64 << 20}
}

// Check reports whether l is a usable set of limits.
func (l Limits) Check() error {
	if l.MaxNestingDepth < MinNestingDepth {
		return fmt.Errorf("max nesting depth %d is below the minimum %d", l.MaxNestingDepth, MinNestingDepth)
	}
	if l.MaxInputSize <= 0 {
		return fmt.Errorf("max input size must be positive, got %d", l.MaxInputSize)
	}
	return nil
}
