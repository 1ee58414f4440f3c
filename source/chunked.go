// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package source

import "io"

// Chunked caps every Read from r at n bytes, fixing the largest chunk the
// consumer can observe. Validation verdicts must not depend on chunking;
// this wrapper exists so callers and tests can pick a size deliberately.
// A size less than 1 is treated as 1.
func Chunked(r io.Reader, n int) io.Reader {
	if n < 1 {
		n = 1
	}
	return &chunked{r: r, n: n}
}

type chunked struct {
	r io.Reader
	n int
}

func (c *chunked) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}
