// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

package nenio_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	nenio "github.com/Nen-Co/nen-io"
)

// benchInput synthesizes a moderately nested document of at least n bytes.
func benchInput(n int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"records": [`)
	for i := 0; buf.Len() < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id": %d, "name": "record \"%d\"", "tags": ["a", "b"], "ok": true}`, i, i)
	}
	buf.WriteString("]}")
	return buf.Bytes()
}

func BenchmarkValidate(b *testing.B) {
	input := benchInput(1 << 16)
	b.Logf("Benchmark input: %d bytes", len(input))

	// encoding/json checks the full value grammar, which is strictly more
	// work; it is here for scale, not as a target.
	b.Run("StdValid", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			if !json.Valid(input) {
				b.Fatal("input reported invalid")
			}
		}
	})

	b.Run("ValidateBytes", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			res, err := nenio.ValidateBytes(input, nenio.DefaultLimits())
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			} else if !res.Valid {
				b.Fatalf("Input reported invalid: %v", res.Err)
			}
		}
	})

	b.Run("Validator", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			v, err := nenio.NewValidator(nenio.DefaultLimits())
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			v.Write(input)
			if res := v.Finish(); !res.Valid {
				b.Fatalf("Input reported invalid: %v", res.Err)
			}
		}
	})
}
