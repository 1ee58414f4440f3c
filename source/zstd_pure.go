// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

//go:build !cgo

package source

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader decompresses with the pure Go zstd implementation when cgo
// is unavailable.
func newZstdReader(r io.Reader) (io.Reader, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}
