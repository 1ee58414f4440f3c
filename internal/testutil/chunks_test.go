// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package testutil_test

import (
	"strings"
	"testing"

	"github.com/Nen-Co/nen-io/internal/testutil"
)

func TestPartitions(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"a", 1},
		{"ab", 2},
		{"abcd", 8},
	}
	for _, test := range tests {
		got := testutil.Partitions(test.input)
		if len(got) != test.want {
			t.Errorf("Partitions(%q): got %d partitions, want %d", test.input, len(got), test.want)
		}
		for _, parts := range got {
			if joined := strings.Join(parts, ""); joined != test.input {
				t.Errorf("Partition %q does not reassemble to %q", parts, test.input)
			}
			for _, p := range parts {
				if p == "" {
					t.Errorf("Partition of %q contains an empty chunk: %q", test.input, parts)
				}
			}
		}
	}
}
