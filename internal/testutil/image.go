// Package testutil provides shared helpers for tests.
package testutil

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

// PNGPixel returns a valid 1x1 PNG for exercising image upload paths.
func PNGPixel(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
