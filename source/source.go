// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

// Package source provides byte sources for validation: plain and
// compressed files, chunk-size capped readers, and rate-paced readers.
// Every source delivers ordered chunks of a single logical stream; apart
// from removing a compression layer, none of them change the bytes the
// validator sees.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
	"go4.org/mem"
)

// Magic prefixes of the supported compression framings. The 0xff chunk
// header covers both the snappy and s2 stream identifiers; the s2 reader
// accepts either.
var (
	magicGzip   = mem.S("\x1f\x8b")
	magicZstd   = mem.S("\x28\xb5\x2f\xfd")
	magicLZ4    = mem.S("\x04\x22\x4d\x18")
	magicSnappy = mem.S("\xff\x06\x00\x00")
)

// Open opens the named file as a validation byte source. Files compressed
// with gzip, zstd, lz4, or s2/snappy stream framing are recognized by their
// magic bytes and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := Detect(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{r: r, c: f}, nil
}

// Detect sniffs the first bytes of r and stacks the matching decompressor,
// if any. Streams without a known compression magic pass through
// unmodified. Detect consumes from r; callers must read from the returned
// reader only.
func Detect(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	hdr, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniff input: %w", err)
	}
	head := mem.B(hdr)
	switch {
	case hasPrefix(head, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip input: %w", err)
		}
		return zr, nil
	case hasPrefix(head, magicZstd):
		return newZstdReader(br)
	case hasPrefix(head, magicLZ4):
		return lz4.NewReader(br), nil
	case hasPrefix(head, magicSnappy):
		return s2.NewReader(br), nil
	}
	return br, nil
}

func hasPrefix(b, prefix mem.RO) bool {
	return b.Len() >= prefix.Len() && mem.HasPrefix(b, prefix)
}

type readCloser struct {
	r io.Reader
	c io.Closer
}

func (rc *readCloser) Read(p []byte) (int, error) { return rc.r.Read(p) }
func (rc *readCloser) Close() error               { return rc.c.Close() }
