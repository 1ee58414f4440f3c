// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

// Partitions returns every way of splitting s into non-empty consecutive
// chunks, including the single-chunk split. The empty string has exactly
// one partition, the empty sequence of chunks. The number of partitions is
// 2^(len(s)-1), so keep inputs short.
func Partitions(s string) [][]string {
	if s == "" {
		return [][]string{nil}
	}
	out := make([][]string, 0, 1<<(len(s)-1))
	for mask := 0; mask < 1<<(len(s)-1); mask++ {
		var parts []string
		start := 0
		for i := 1; i < len(s); i++ {
			if mask&(1<<(i-1)) != 0 {
				parts = append(parts, s[start:i])
				start = i
			}
		}
		out = append(out, append(parts, s[start:]))
	}
	return out
}
