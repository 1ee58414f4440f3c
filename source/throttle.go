// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package source

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// Throttle paces reads from r to roughly bytesPerSec, smoothing the load a
// network-backed source puts on a consumer. A limit of 0 or less leaves r
// unpaced. Reads block while the token bucket refills and return the
// context's error if it is canceled first.
func Throttle(ctx context.Context, r io.Reader, bytesPerSec int) io.Reader {
	if bytesPerSec <= 0 {
		return r
	}
	return &throttled{ctx: ctx, r: r, lim: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)}
}

type throttled struct {
	ctx context.Context
	r   io.Reader
	lim *rate.Limiter
}

func (t *throttled) Read(p []byte) (int, error) {
	// Reads larger than the burst could never acquire enough tokens.
	if burst := t.lim.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.lim.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
